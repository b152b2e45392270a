package proofkit

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sha256Hex computes the SHA-256 hash of data and returns it hex-encoded.
func Sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
