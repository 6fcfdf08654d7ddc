package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProfileID is the well-known identifier of the operator profile.
// The service has exactly one operator, so the profile is addressed by this constant
// instead of "whichever record comes first".
var ProfileID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// Profile holds the operator's public details shown on the dashboard.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
