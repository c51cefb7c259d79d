package domain

import (
	"errors"
	"strings"
	"time"
)

// User validation errors.
var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrNameLength      = errors.New("name must be between 3 and 16 characters")
	ErrEmptyEmail      = errors.New("email cannot be empty")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrEmailTooLong    = errors.New("email must be at most 100 characters")
	ErrPasswordLength  = errors.New("password must be between 8 and 100 characters")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrMissingPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered author. The ID is assigned by the store on
// creation. HashedPassword is never serialized.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // plaintext, only set transiently during registration
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates an unsaved User with the given name, email and plaintext
// password. The caller is responsible for hashing the password before the
// user is persisted.
func NewUser(name, email, password string) (*User, error) {
	user := &User{
		Name:      name,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the field constraints: name 3-16 characters, email
// syntactically valid and at most 100 characters, password 8-100 characters
// (only when a plaintext password is set; stored users carry the hash).
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyName
	}
	if len(u.Name) < 3 || len(u.Name) > 16 {
		return ErrNameLength
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if len(u.Email) > 100 {
		return ErrEmailTooLong
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		if len(u.Password) < 8 || len(u.Password) > 100 {
			return ErrPasswordLength
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// validEmailFormat is a structural check: local part, one @, and a domain
// containing an interior dot. Request payloads are additionally validated
// with the "email" rule of go-playground/validator at the API boundary.
func validEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
