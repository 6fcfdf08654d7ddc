package model

import (
	"time"

	"github.com/google/uuid"
)

// ClickModel is the GORM-specific struct for the append-only 'clicks' table.
// ProductID carries no foreign key so the log survives product removal.
type ClickModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	IPAddress string    `gorm:"column:ip_address;type:varchar(64);not null;default:''"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClickModel) TableName() string {
	return "clicks"
}
