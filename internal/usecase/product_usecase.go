// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"affiliate/internal/domain/entity"
)

// ProductUsecase defines the interface for catalog operations.
type ProductUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ProductQRCode(ctx context.Context, id string) ([]byte, error)
}

// --- Input DTOs ---

// ListProductsInput carries the raw listing query parameters; nil means the parameter was absent.
type ListProductsInput struct {
	Category *string
	Search   *string
	SortBy   *string
	Order    *string
	Limit    *string
}

// CreateProductInput defines the data required to create a product. Every field is required.
type CreateProductInput struct {
	Title             *string  `json:"title"`
	Description       *string  `json:"description"`
	Category          *string  `json:"category"`
	Price             *float64 `json:"price"`
	CommissionPercent *float64 `json:"commissionPercent"`
	OriginalURL       *string  `json:"originalUrl"`
}

// UpdateProductInput defines a partial product update; nil fields are left unchanged.
type UpdateProductInput struct {
	Title             *string  `json:"title,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Category          *string  `json:"category,omitempty"`
	Price             *float64 `json:"price,omitempty"`
	CommissionPercent *float64 `json:"commissionPercent,omitempty"`
	OriginalURL       *string  `json:"originalUrl,omitempty"`
}
