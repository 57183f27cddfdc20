package domain

import "errors"

// Role is the closed set of access levels a user can hold. Persisted as a
// string but only ever one of the two values below; ParseRole is the sole
// entry point for untrusted input.
type Role string

const (
	RoleManager  Role = "manager"
	RoleCustomer Role = "customer"
)

// ParseRole maps a stored role string onto the Role enum. Unknown values
// return false rather than a zero Role so callers must handle corruption
// explicitly.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleManager:
		return RoleManager, true
	case RoleCustomer:
		return RoleCustomer, true
	default:
		return "", false
	}
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOldPassword = errors.New("invalid old password")
)

// User models an account in the system. PasswordHash only ever holds a
// bcrypt hash, never the plaintext secret.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}
