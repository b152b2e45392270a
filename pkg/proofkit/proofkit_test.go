package proofkit

import (
	"strings"
	"testing"
)

// Throwaway key for tests only.
const testPrivateKey = "0x0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestSha256Hex(t *testing.T) {
	if got := Sha256Hex([]byte("hello world")); got != "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9" {
		t.Fatalf("unexpected hash: %s", got)
	}
	// SHA-256 of empty input
	if got := Sha256Hex(nil); got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Fatalf("unexpected empty hash: %s", got)
	}
	if Sha256Hex([]byte("hello world")) != Sha256Hex([]byte("hello world")) {
		t.Fatal("hash is not deterministic")
	}
}

func TestNewIntegrityProof(t *testing.T) {
	proof := NewIntegrityProof("abc123", "image/jpeg")
	if proof.ProofHash != "abc123" || proof.AssetMimeType != "image/jpeg" {
		t.Fatalf("unexpected proof fields: %+v", proof)
	}
	if proof.CreatedAt <= 0 {
		t.Fatalf("expected positive created_at, got %d", proof.CreatedAt)
	}
}

func TestCanonicalProofJSON_KeyOrder(t *testing.T) {
	out, err := CanonicalProofJSON(IntegrityProof{
		ProofHash:     "abc",
		AssetMimeType: "image/png",
		CreatedAt:     1700000000000,
	})
	if err != nil {
		t.Fatalf("serialize proof: %v", err)
	}
	want := `{"proof_hash":"abc","asset_mime_type":"image/png","created_at":1700000000000}`
	if string(out) != want {
		t.Fatalf("canonical JSON mismatch:\n got %s\nwant %s", out, want)
	}
}

func TestSignIntegrityProof(t *testing.T) {
	proof := NewIntegrityProof("abc123", "image/jpeg")
	sig, err := SignIntegrityProof(proof, testPrivateKey)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if sig.ProofHash != "abc123" || sig.Provider != Provider {
		t.Fatalf("unexpected signature fields: %+v", sig)
	}
	// 0x + 65 bytes hex
	if !strings.HasPrefix(sig.Signature, "0x") || len(sig.Signature) != 132 {
		t.Fatalf("unexpected signature encoding: %s", sig.Signature)
	}
	// 0x + 20 bytes hex
	if !strings.HasPrefix(sig.PublicKey, "0x") || len(sig.PublicKey) != 42 {
		t.Fatalf("unexpected public key: %s", sig.PublicKey)
	}
	if len(sig.IntegritySha) != 64 {
		t.Fatalf("unexpected integrity sha length: %d", len(sig.IntegritySha))
	}
}

func TestSignIntegrityProof_BareKey(t *testing.T) {
	// Same key, no 0x prefix.
	proof := NewIntegrityProof("abc123", "image/jpeg")
	withPrefix, err := SignIntegrityProof(proof, testPrivateKey)
	if err != nil {
		t.Fatalf("sign with prefix: %v", err)
	}
	bare, err := SignIntegrityProof(proof, strings.TrimPrefix(testPrivateKey, "0x"))
	if err != nil {
		t.Fatalf("sign without prefix: %v", err)
	}
	if bare.PublicKey != withPrefix.PublicKey {
		t.Fatalf("prefix handling changed the signer: %s vs %s", bare.PublicKey, withPrefix.PublicKey)
	}
	// RFC 6979 nonces make the signature deterministic for a fixed payload.
	if bare.Signature != withPrefix.Signature {
		t.Fatal("signature not deterministic for identical payloads")
	}
}

func TestSignIntegrityProof_MalformedKey(t *testing.T) {
	proof := NewIntegrityProof("abc123", "image/jpeg")
	if _, err := SignIntegrityProof(proof, "0xzz"); err == nil {
		t.Fatal("expected error for non-hex key")
	}
	if _, err := SignIntegrityProof(proof, "0x0123"); err == nil {
		t.Fatal("expected error for short key")
	}
}

func TestVerifySignature_RoundTrip(t *testing.T) {
	sig, err := SignIntegrityProof(NewIntegrityProof("abc123", "image/jpeg"), testPrivateKey)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if !VerifySignature(sig.IntegritySha, sig.Signature, sig.PublicKey) {
		t.Fatal("round-trip verification failed")
	}
	// Address comparison is case-insensitive.
	if !VerifySignature(sig.IntegritySha, sig.Signature, strings.ToUpper(sig.PublicKey)) {
		t.Fatal("verification should ignore address casing")
	}
}

func TestVerifySignature_WrongAddress(t *testing.T) {
	sig, err := SignIntegrityProof(NewIntegrityProof("abc123", "image/jpeg"), testPrivateKey)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if VerifySignature(sig.IntegritySha, sig.Signature, "0x0000000000000000000000000000000000000000") {
		t.Fatal("verification must fail for a different address")
	}
}

func TestVerifySignature_Malformed(t *testing.T) {
	// None of these may panic; all must report false.
	cases := []struct {
		name      string
		message   string
		signature string
		address   string
	}{
		{"all zero signature", "some message", "0x" + strings.Repeat("00", 65), "0x1234567890123456789012345678901234567890"},
		{"truncated signature", "some message", "0x1234", "0x1234567890123456789012345678901234567890"},
		{"non-hex signature", "some message", "0x" + strings.Repeat("zz", 65), "0x1234567890123456789012345678901234567890"},
		{"empty signature", "some message", "", "0x1234567890123456789012345678901234567890"},
		{"bad recovery id", "some message", "0x" + strings.Repeat("11", 64) + "63", "0x1234567890123456789012345678901234567890"},
	}
	for _, tc := range cases {
		if VerifySignature(tc.message, tc.signature, tc.address) {
			t.Fatalf("%s: expected false", tc.name)
		}
	}
}

func TestVerifySignature_TamperedMessage(t *testing.T) {
	sig, err := SignIntegrityProof(NewIntegrityProof("abc123", "image/jpeg"), testPrivateKey)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if VerifySignature(sig.IntegritySha+"x", sig.Signature, sig.PublicKey) {
		t.Fatal("verification must fail for a tampered message")
	}
}

func TestAddressChecksumShape(t *testing.T) {
	sig, err := SignIntegrityProof(NewIntegrityProof("abc123", "image/jpeg"), testPrivateKey)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	lower := strings.ToLower(sig.PublicKey)
	if !VerifySignature(sig.IntegritySha, sig.Signature, lower) {
		t.Fatal("lowercased address must still verify")
	}
}
