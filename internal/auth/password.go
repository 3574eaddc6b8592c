package auth

import "golang.org/x/crypto/bcrypt"

// MinPasswordLen is the shortest plaintext password accepted at registration.
const MinPasswordLen = 6

// HashPassword returns a salted bcrypt hash of the plaintext. Hashing the
// same plaintext twice produces different outputs; use VerifyPassword.
func HashPassword(plaintext string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
}

// VerifyPassword reports whether plaintext matches the stored hash.
func VerifyPassword(plaintext string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(plaintext)) == nil
}
