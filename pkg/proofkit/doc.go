// Package proofkit provides small, pure utilities for hashing asset
// content, building integrity proofs, and signing/verifying them with the
// EIP-191 personal-sign scheme used by the Capture registration flow.
//
// Scope:
//   - SHA-256 content hashing (hex)
//   - Integrity-proof construction + canonical JSON serialization
//   - EIP-191 personal-sign of the proof's integrity hash
//   - Signature verification by signer-address recovery
//
// Non-goals:
//   - No network or chain dependencies (submission is left to callers)
//   - No logging; keep functions small and deterministic
//   - No key management; callers supply raw hex private keys
package proofkit
