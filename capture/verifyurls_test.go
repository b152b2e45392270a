package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyURLHelpers(t *testing.T) {
	assert.Equal(t,
		"https://verify.numbersprotocol.io/search?nid=bafybeitest",
		SearchURLByNID("bafybeitest"))

	assert.Equal(t,
		"https://verify.numbersprotocol.io/search?contract=0x1234&nft=42",
		SearchURLByNFT("42", "0x1234"))

	assert.Equal(t,
		"https://verify.numbersprotocol.io/asset-profile?nid=bafybeitest",
		AssetProfileURL("bafybeitest"))

	assert.Equal(t,
		"https://verify.numbersprotocol.io/asset-profile?contract=0x1234&nft=42",
		AssetProfileURLByNFT("42", "0x1234"))
}

func TestVerifyURLHelpersEscapeParams(t *testing.T) {
	assert.Equal(t,
		"https://verify.numbersprotocol.io/search?nid=a+b%2Fc",
		SearchURLByNID("a b/c"))
}
