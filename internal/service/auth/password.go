package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher produces one-way salted password hashes.
type PasswordHasher interface {
	// Hash returns a self-describing salted hash of the plaintext; salt
	// and cost are embedded in the output.
	Hash(password string) (string, error)
}

// PasswordVerifier compares passwords against stored hashes.
type PasswordVerifier interface {
	// Compare compares a hashed password with its possible plaintext
	// equivalent. Returns nil on match, an error otherwise. A malformed
	// hash is reported as an error, never a panic.
	Compare(hashedPassword, password string) error
}

// BcryptHasher implements PasswordHasher and PasswordVerifier using bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the default bcrypt cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash implements PasswordHasher.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare implements PasswordVerifier. bcrypt's comparison is
// constant-time on the digest.
func (h *BcryptHasher) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
