// Package hashing wraps the cryptographic digest tool.
package hashing

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"
)

// Result is the output shape of the hash tool.
type Result struct {
	Input     string `json:"input"`
	Algorithm string `json:"algorithm"`
	Hash      string `json:"hash"`
	Length    int    `json:"length"` // hex digest length in characters
}

// Algorithms lists the supported digest names.
func Algorithms() []string {
	return []string{"md5", "sha1", "sha256", "sha512"}
}

// Sum computes the hex digest of text. The empty algorithm defaults to
// sha256. MD5 and SHA-1 are provided for checksum interoperability, not
// for security.
func Sum(text, algorithm string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text cannot be empty")
	}

	var h hash.Hash
	switch algorithm {
	case "md5":
		h = md5.New()
	case "sha1":
		h = sha1.New()
	case "sha256", "":
		h = sha256.New()
		algorithm = "sha256"
	case "sha512":
		h = sha512.New()
	default:
		return nil, fmt.Errorf("algorithm must be one of %v (got %q)", Algorithms(), algorithm)
	}

	h.Write([]byte(text))
	digest := hex.EncodeToString(h.Sum(nil))

	return &Result{
		Input:     text,
		Algorithm: algorithm,
		Hash:      digest,
		Length:    len(digest),
	}, nil
}
