package proofkit

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

// personalSignDigest hashes msg per the EIP-191 personal-sign convention:
// Keccak-256("\x19Ethereum Signed Message:\n" + len(msg) + msg).
func personalSignDigest(msg []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	fmt.Fprintf(h, "\x19Ethereum Signed Message:\n%d", len(msg))
	h.Write(msg)
	return h.Sum(nil)
}

// parsePrivateKey decodes a 32-byte hex private key, accepting an optional
// 0x prefix.
func parsePrivateKey(privateKey string) (*secp256k1.PrivateKey, error) {
	raw := strings.TrimPrefix(privateKey, "0x")
	keyBytes, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}
	if len(keyBytes) != 32 {
		return nil, fmt.Errorf("private key must be 32 bytes, got %d", len(keyBytes))
	}
	return secp256k1.PrivKeyFromBytes(keyBytes), nil
}

// AddressFromPublicKey derives the EIP-55 checksummed 0x address of pub:
// the last 20 bytes of Keccak-256 over the uncompressed public key without
// its 0x04 tag.
func AddressFromPublicKey(pub *secp256k1.PublicKey) string {
	uncompressed := pub.SerializeUncompressed()
	h := sha3.NewLegacyKeccak256()
	h.Write(uncompressed[1:])
	sum := h.Sum(nil)
	return checksumAddress(sum[12:])
}

// checksumAddress renders a 20-byte address with EIP-55 mixed-case
// checksumming: a hex letter is uppercased when the matching nibble of
// Keccak-256(lowercase address) has its high bit set.
func checksumAddress(addr []byte) string {
	lower := hex.EncodeToString(addr)
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	sum := h.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := sum[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x08 != 0 {
			out[i] = c - ('a' - 'A')
		}
	}
	return "0x" + string(out)
}

// SignPersonalMessage signs msg per EIP-191 with the given private key and
// returns the 65-byte {R || S || V} signature (V in {27, 28}) together
// with the signer's address.
func SignPersonalMessage(msg []byte, privateKey string) ([]byte, string, error) {
	key, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, "", err
	}

	// SignCompact yields {V || R || S} with V = 27 + recovery id for an
	// uncompressed key; rotate to the Ethereum trailing-V layout.
	compact := ecdsa.SignCompact(key, personalSignDigest(msg), false)
	sig := make([]byte, 65)
	copy(sig, compact[1:])
	sig[64] = compact[0]

	return sig, AddressFromPublicKey(key.PubKey()), nil
}

// SignIntegrityProof canonical-serializes proof, hashes that serialization
// (the "integrity sha"), and signs the integrity sha per EIP-191. The key
// may carry an optional 0x prefix; it fails on a malformed key.
func SignIntegrityProof(proof IntegrityProof, privateKey string) (AssetSignature, error) {
	canonical, err := CanonicalProofJSON(proof)
	if err != nil {
		return AssetSignature{}, err
	}
	integritySha := Sha256Hex(canonical)

	sig, address, err := SignPersonalMessage([]byte(integritySha), privateKey)
	if err != nil {
		return AssetSignature{}, fmt.Errorf("failed to sign integrity proof: %w", err)
	}

	return AssetSignature{
		ProofHash:    proof.ProofHash,
		Provider:     Provider,
		Signature:    "0x" + hex.EncodeToString(sig),
		PublicKey:    address,
		IntegritySha: integritySha,
	}, nil
}
