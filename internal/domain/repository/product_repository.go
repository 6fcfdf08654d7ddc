// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"affiliate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when no product matches the identifier or referral code.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateReferralCode is returned when a generated referral code is already taken.
	ErrDuplicateReferralCode = errors.New("referral code already exists")
)

// MaxListLimit is the hard upper bound of a product listing.
const MaxListLimit = 100

// SortField is a product attribute a listing can be ordered by.
type SortField string

const (
	SortByCreatedAt         SortField = "createdAt"
	SortByPrice             SortField = "price"
	SortByCommissionPercent SortField = "commissionPercent"
	SortByClicks            SortField = "clicks"
	SortByTitle             SortField = "title"
)

// SortFields returns every supported sort key.
func SortFields() []SortField {
	return []SortField{SortByCreatedAt, SortByPrice, SortByCommissionPercent, SortByClicks, SortByTitle}
}

// SortOrder is the direction of a listing.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ProductFilter is a validated listing query.
type ProductFilter struct {
	Category *entity.Category // Exact match; nil means every category.
	Search   string           // Case-insensitive substring of the title; empty means no filter.
	SortBy   SortField
	Order    SortOrder
	Limit    int // 0 means unbounded.
}

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves the products matching the filter in the requested order.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Update overwrites the editable fields of an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its ID. Its click records are kept.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementClicks atomically adds one to the click counter of the product owning the
	// referral code and returns the updated product.
	IncrementClicks(ctx context.Context, referralCode string) (*entity.Product, error)

	// Count returns the number of products.
	Count(ctx context.Context) (int64, error)

	// SumPotentialIncome returns the sum of price * commissionPercent * 0.01 * clicks over all products.
	SumPotentialIncome(ctx context.Context) (float64, error)

	// CountByCategory returns product counts per category, largest first, ties by category name.
	CountByCategory(ctx context.Context) ([]entity.CategoryCount, error)

	// TopByClicks returns up to limit products with at least one click, most clicked first.
	TopByClicks(ctx context.Context, limit int) ([]entity.ProductClicks, error)

	// DeleteAll removes every product.
	DeleteAll(ctx context.Context) error
}
