package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes passwords with a deliberately slow, salted one-way function
// and verifies candidates against stored hashes.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

var _ Hasher = (*Bcrypt)(nil)

// Bcrypt implements Hasher with the bcrypt KDF.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a Bcrypt hasher with the given cost factor.
func NewBcrypt(cost int) *Bcrypt {
	return &Bcrypt{cost: cost}
}

// Hash derives a salted hash of the password.
func (b *Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare checks the password against the stored hash. The comparison is
// constant-time with respect to the derived key.
func (b *Bcrypt) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
