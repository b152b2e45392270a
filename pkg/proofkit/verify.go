package proofkit

import (
	"encoding/hex"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// VerifySignature reports whether signatureHex is a valid EIP-191
// personal-sign signature of message by expectedAddress. The signature may
// carry an optional 0x prefix and uses the trailing-V layout with V in
// {0, 1, 27, 28}. Any malformed input or recovery failure yields false,
// never an error.
func VerifySignature(message, signatureHex, expectedAddress string) bool {
	raw := strings.TrimPrefix(signatureHex, "0x")
	sig, err := hex.DecodeString(raw)
	if err != nil || len(sig) != 65 {
		return false
	}

	v := sig[64]
	if v < 27 {
		v += 27
	}
	if v != 27 && v != 28 {
		return false
	}

	compact := make([]byte, 65)
	compact[0] = v
	copy(compact[1:], sig[:64])

	pub, _, err := ecdsa.RecoverCompact(compact, personalSignDigest([]byte(message)))
	if err != nil {
		return false
	}
	return strings.EqualFold(AddressFromPublicKey(pub), expectedAddress)
}
