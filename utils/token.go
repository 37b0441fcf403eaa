package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// anonTokenBytes yields a 16 character URL-safe token, enough that a
// collision is only ever seen as a unique-index violation.
const anonTokenBytes = 12

// NewAnonToken returns a fresh unguessable identity token.
func NewAnonToken() (string, error) {
	b := make([]byte, anonTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
