package webutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// GenerateHash returns the hex SHA-256 of data.
func GenerateHash(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// EmailFingerprint identifies an address in logs and event keys without
// exposing it. Case and surrounding whitespace are ignored.
func EmailFingerprint(email string) string {
	return GenerateHash(strings.ToLower(strings.TrimSpace(email)))[:16]
}
