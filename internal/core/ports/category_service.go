package ports

import (
	"context"

	"github.com/mercadito/catalog-api/internal/core/domain"
)

type CreateCategoryInput struct {
	Name string
	Code string
}

type UpdateCategoryInput struct {
	Name *string
	Code *string
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id string, input UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) (*domain.Category, error)
}
