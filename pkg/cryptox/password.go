package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor used for all stored credentials.
// Deliberately above the library default so brute forcing stays expensive.
const PasswordCost = 12

// ErrPasswordMismatch is returned when a candidate password does not match
// the stored hash.
var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// HashPassword hashes a plaintext password with bcrypt. The salt is generated
// by bcrypt and embedded in the returned encoded hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext candidate against a bcrypt hash.
// Any failure, malformed hash included, is reported as ErrPasswordMismatch so
// callers can't distinguish the cases.
func VerifyPassword(password, encodedHash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
