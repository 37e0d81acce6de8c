package ports

import (
	"context"

	"github.com/mercadito/catalog-api/internal/core/domain"
)

type CreateProductInput struct {
	Name        string
	Description string
	Price       string
}

type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *string
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) (*domain.Product, error)
}
