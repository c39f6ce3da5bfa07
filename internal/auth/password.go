package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"rentbaaz/internal/ident"
)

// ErrCredential marks a hashing or digest failure, as opposed to a plain
// password mismatch. A malformed stored hash must never look like a wrong
// password to the caller.
var ErrCredential = errors.New("credential failure")

func HashPassword(plain string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCredential, err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.
// A mismatch is (false, nil); anything else bcrypt reports (malformed hash,
// unsupported cost) comes back as ErrCredential.
func VerifyPassword(hash, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", ErrCredential, err)
}

// GenerateTemporaryPassword returns a random printable password for the
// forgot-password flow. The plaintext goes out once by mail; only the hash
// is stored.
func GenerateTemporaryPassword(n int) (string, error) {
	return ident.Random(n, ident.Hex)
}
