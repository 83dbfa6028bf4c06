// Package services contains stateless domain services for the inventory
// bounded context: content addressing, canonical text assembly and publish
// rules. Zero dependencies beyond stdlib and the domain layer.
package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashText computes the content hash of canonical source text, hex encoded.
// SHA-256: the hash decides whether to skip recomputation of derived
// artifacts, so collision resistance is required — a false match would
// silently keep stale data.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// HashEqual compares two content hashes with a constant-structure byte
// comparison.
func HashEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
