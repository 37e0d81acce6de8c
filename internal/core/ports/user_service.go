package ports

import (
	"context"

	"github.com/mercadito/catalog-api/internal/core/domain"
)

// UpdateUserInput uses pointers so only the fields present in the request
// body are applied; a nil field leaves the stored value untouched.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Role     *string
	Password *string
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
