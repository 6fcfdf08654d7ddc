package repository

import (
	"context"

	"affiliate/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when the operator profile has not been created yet.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateEmail is returned when the email is used by another profile record.
	ErrDuplicateEmail = errors.New("email already exists")
)

// ProfileRepository defines the interface for the singleton operator profile stored under entity.ProfileID.
type ProfileRepository interface {
	// Get retrieves the operator profile.
	Get(ctx context.Context) (*entity.Profile, error)

	// Update overwrites the operator profile; it must already exist.
	Update(ctx context.Context, profile *entity.Profile) error

	// Upsert creates or replaces the operator profile.
	Upsert(ctx context.Context, profile *entity.Profile) error

	// DeleteAll removes every profile record.
	DeleteAll(ctx context.Context) error
}
