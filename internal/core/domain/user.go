package domain

import "time"

// Role is the closed set of roles a user can hold. Keeping this a dedicated
// type (instead of a free string) means an unknown role can never be
// persisted or compared against a route requirement.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole validates a raw role value coming from a request body.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the authenticated identity attached to a request after a
// token has been verified. It lives only for the duration of the request.
type Principal struct {
	UserID string
	Role   Role
}
