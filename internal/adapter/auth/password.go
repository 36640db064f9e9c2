package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/kursuslab/kursus/internal/core"
)

// PasswordHasher hashes and verifies credentials with bcrypt.
type PasswordHasher struct{}

// NewPasswordHasher constructs a bcrypt-backed PasswordHasher.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

var _ core.PasswordHasher = (*PasswordHasher)(nil)

func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func (h *PasswordHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
