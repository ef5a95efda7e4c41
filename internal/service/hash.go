package service

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	apperrors "github.com/fnurozcetin/lexStamp/pkg/errors"
)

// HashDocument computes the hex-encoded SHA-256 digest of a file's bytes.
// The file is streamed, never buffered whole. Identical bytes always yield
// an identical digest; the only failure mode is an unreadable input.
func HashDocument(file io.Reader) (string, error) {
	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", apperrors.NewProcessingError("failed to read file while hashing", err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
