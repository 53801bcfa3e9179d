// Package password wraps bcrypt hashing for account credentials.
//
// Hashes embed their own salt and cost, so a stored hash is all that is
// needed to verify a login attempt. Plaintext passwords are never stored
// or logged.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned by Hash when the plaintext is empty.
var ErrEmptyPassword = errors.New("password: empty password")

// Hash returns the bcrypt hash of plaintext at the default cost.
func Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed
// hash counts as a mismatch rather than an error.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
