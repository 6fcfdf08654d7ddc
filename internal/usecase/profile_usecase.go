package usecase

import (
	"context"

	"affiliate/internal/domain/entity"
)

// ProfileUsecase defines the interface for operator profile operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.Profile, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines a partial profile update; nil fields are left unchanged.
type UpdateProfileInput struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}
