package romsig

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Digest fingerprints a whole image, used to show whether the bytes on disk
// changed.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:8])
}
