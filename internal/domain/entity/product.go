// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry promoted through a short referral link.
type Product struct {
	ID                uuid.UUID `json:"id"`                // System-assigned identifier.
	Title             string    `json:"title"`             // Display title, never empty.
	Description       string    `json:"description"`       // Free text, never empty.
	Category          Category  `json:"category"`          // One of Categories().
	Price             float64   `json:"price"`             // Non-negative price of the product.
	CommissionPercent float64   `json:"commissionPercent"` // Commission paid per sale, 0-100.
	ReferralCode      string    `json:"referralCode"`      // Unique short code, immutable after creation.
	OriginalURL       string    `json:"originalUrl"`       // Absolute URL the referral link redirects to.
	Clicks            int64     `json:"clicks"`            // Number of referral redirects served.
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// PotentialIncome projects the commission earned if every click converted into a sale.
func (p *Product) PotentialIncome() float64 {
	return p.Price * p.CommissionPercent * 0.01 * float64(p.Clicks)
}
