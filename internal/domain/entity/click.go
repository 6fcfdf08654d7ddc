package entity

import (
	"time"

	"github.com/google/uuid"
)

// Click is one recorded redirect through a product's referral link. Clicks are append-only.
type Click struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"` // The product whose referral link was followed.
	IPAddress string    `json:"ipAddress"` // Address of the visitor as seen by the server.
	CreatedAt time.Time `json:"createdAt"`
}
