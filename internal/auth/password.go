package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLen applies to worker accounts and the bootstrap admin.
const MinPasswordLen = 6

var ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", MinPasswordLen)

func HashPassword(p string) (string, error) {
	if len(p) < MinPasswordLen {
		return "", ErrPasswordTooShort
	}
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// PasswordMatches reports whether plain hashes to hash. A malformed hash
// never matches.
func PasswordMatches(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
