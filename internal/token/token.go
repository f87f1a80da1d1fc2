// Package token wraps the JWT inspection tool.
//
// Tokens are decoded without signature verification: the tool exists to
// look inside a token, not to trust it. Callers must never treat the
// output as authenticated.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Result is the output shape of the jwt tool. The timestamp fields are
// pointers so absent claims serialize as null rather than zero values.
type Result struct {
	Header            map[string]any `json:"header"`
	Payload           map[string]any `json:"payload"`
	Signature         string         `json:"signature"`
	IssuedAt          *int64         `json:"issued_at"`
	ExpiresAt         *int64         `json:"expires_at"`
	IssuedAtReadable  *string        `json:"issued_at_readable"`
	ExpiresAtReadable *string        `json:"expires_at_readable"`
	IsExpired         *bool          `json:"is_expired"`
	ValidFormat       bool           `json:"valid_format"`
}

// Decode splits and decodes a JWT without verifying its signature.
//
// A token without exactly three dot-separated parts yields a Result
// with ValidFormat=false, not an error; parts that fail base64url or
// JSON decoding are an error.
func Decode(tokenString string) (*Result, error) {
	trimmed := strings.TrimSpace(tokenString)
	if trimmed == "" {
		return nil, errors.New("JWT token cannot be empty")
	}

	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return &Result{
			Header:  map[string]any{},
			Payload: map[string]any{},
		}, nil
	}

	parser := jwt.NewParser()
	tok, _, err := parser.ParseUnverified(trimmed, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to decode JWT: %w", err)
	}
	claims := tok.Claims.(jwt.MapClaims)

	result := &Result{
		Header:      tok.Header,
		Payload:     map[string]any(claims),
		Signature:   parts[2],
		ValidFormat: true,
	}

	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		sec := iat.Unix()
		readable := formatTimestamp(sec)
		result.IssuedAt = &sec
		result.IssuedAtReadable = &readable
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		sec := exp.Unix()
		readable := formatTimestamp(sec)
		expired := sec < time.Now().UTC().Unix()
		result.ExpiresAt = &sec
		result.ExpiresAtReadable = &readable
		result.IsExpired = &expired
	}

	return result, nil
}

func formatTimestamp(sec int64) string {
	return time.Unix(sec, 0).UTC().Format("2006-01-02 15:04:05 UTC")
}
