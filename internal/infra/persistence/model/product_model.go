package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title             string    `gorm:"type:varchar(255);not null"`
	Description       string    `gorm:"type:text;not null"`
	Category          string    `gorm:"type:varchar(32);not null;index"`
	Price             float64   `gorm:"type:double precision;not null"`
	CommissionPercent float64   `gorm:"type:double precision;not null"`
	ReferralCode      string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	OriginalURL       string    `gorm:"column:original_url;type:text;not null"`
	Clicks            int64     `gorm:"not null;default:0"`
	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
