package proofkit

import (
	"fmt"
	"time"

	json "github.com/json-iterator/go"
)

// Provider is the tag attached to every signature produced by this SDK.
const Provider = "capture-go"

// IntegrityProof is the exact payload that gets signed at registration
// time: the asset's content hash, its MIME type, and a creation timestamp
// in epoch milliseconds. Field order matters: the canonical serialization
// is {proof_hash, asset_mime_type, created_at}.
type IntegrityProof struct {
	ProofHash     string `json:"proof_hash"`
	AssetMimeType string `json:"asset_mime_type"`
	CreatedAt     int64  `json:"created_at"`
}

// AssetSignature binds a signer identity to an integrity proof. The JSON
// keys match what the registration endpoint expects in its signature field.
type AssetSignature struct {
	ProofHash    string `json:"proofHash"`
	Provider     string `json:"provider"`
	Signature    string `json:"signature"`
	PublicKey    string `json:"publicKey"`
	IntegritySha string `json:"integritySha"`
}

// NewIntegrityProof stamps a proof for the given content hash and MIME
// type with the current wall-clock time in epoch milliseconds.
func NewIntegrityProof(proofHash, mimeType string) IntegrityProof {
	return IntegrityProof{
		ProofHash:     proofHash,
		AssetMimeType: mimeType,
		CreatedAt:     time.Now().UnixMilli(),
	}
}

// CanonicalProofJSON serializes the proof compactly in the fixed key order
// {proof_hash, asset_mime_type, created_at}. The integrity hash and the
// platform's own verification both depend on these exact bytes.
func CanonicalProofJSON(proof IntegrityProof) ([]byte, error) {
	out, err := json.Marshal(proof)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal integrity proof: %w", err)
	}
	return out, nil
}
