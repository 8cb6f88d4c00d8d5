package utils

import (
	"crypto/rand"

	"github.com/mr-tron/base58"
)

// GenerateMintAddress allocates a fresh base58-encoded 32-byte mint address.
func GenerateMintAddress() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base58.Encode(raw), nil
}

// IsValidMintAddress reports whether s decodes to a 32-byte base58 value.
func IsValidMintAddress(s string) bool {
	raw, err := base58.Decode(s)
	if err != nil {
		return false
	}
	return len(raw) == 32
}
