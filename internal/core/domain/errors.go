package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")

	ErrEmailTaken    = errors.New("email already registered")
	ErrProductExists = errors.New("product name already exists")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")

	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")

	ErrForbidden = errors.New("access forbidden")

	// ErrMissingPrincipal signals a mis-ordered middleware chain: a role
	// check ran before authentication populated the request context.
	ErrMissingPrincipal = errors.New("principal missing from request context")
)
