package ports

import (
	"context"
	"time"

	"github.com/mercadito/catalog-api/internal/core/domain"
)

// TokenService issues, verifies and invalidates the bearer tokens used by the
// authentication gate. Verify distinguishes the failure kinds via the domain
// sentinel errors (invalid, expired, revoked); callers decide what to leak.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(ctx context.Context, token string) (*domain.Principal, error)
	Invalidate(ctx context.Context, token string) error
}

// RevocationStore tracks invalidated token IDs until their natural expiry.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
