package capture

import "net/url"

// URL helpers into the hosted verify-engine web UI. Pure string building,
// no network I/O; hand these to end users who want to inspect provenance
// in a browser.

// SearchURLByNID links the verify engine's search page for an asset.
func SearchURLByNID(nid string) string {
	params := url.Values{}
	params.Set("nid", nid)
	return VerifyBaseURL + "/search?" + params.Encode()
}

// SearchURLByNFT links the verify engine's search page for an NFT by
// token id and contract address.
func SearchURLByNFT(tokenID, contract string) string {
	params := url.Values{}
	params.Set("nft", tokenID)
	params.Set("contract", contract)
	return VerifyBaseURL + "/search?" + params.Encode()
}

// AssetProfileURL links an asset's profile page.
func AssetProfileURL(nid string) string {
	params := url.Values{}
	params.Set("nid", nid)
	return VerifyBaseURL + "/asset-profile?" + params.Encode()
}

// AssetProfileURLByNFT links an asset's profile page by its NFT linkage.
func AssetProfileURLByNFT(tokenID, contract string) string {
	params := url.Values{}
	params.Set("nft", tokenID)
	params.Set("contract", contract)
	return VerifyBaseURL + "/asset-profile?" + params.Encode()
}
