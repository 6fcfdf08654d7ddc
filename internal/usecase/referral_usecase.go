package usecase

import (
	"context"

	"affiliate/internal/domain/entity"
)

// ReferralUsecase records visits through referral links.
type ReferralUsecase interface {
	// TrackClick counts one click for the product owning the code, logs the visitor address
	// and returns the updated product so the caller can redirect to its original URL.
	TrackClick(ctx context.Context, referralCode, ipAddress string) (*entity.Product, error)
}
