package mongodb

import (
	"time"

	"affiliate/internal/domain/entity"

	"github.com/google/uuid"
)

// productDocument is the stored shape of a product. IDs are kept as canonical UUID strings.
type productDocument struct {
	ID                string    `bson:"_id"`
	Title             string    `bson:"title"`
	Description       string    `bson:"description"`
	Category          string    `bson:"category"`
	Price             float64   `bson:"price"`
	CommissionPercent float64   `bson:"commissionPercent"`
	ReferralCode      string    `bson:"referralCode"`
	OriginalURL       string    `bson:"originalUrl"`
	Clicks            int64     `bson:"clicks"`
	CreatedAt         time.Time `bson:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt"`
}

type clickDocument struct {
	ID        string    `bson:"_id"`
	ProductID string    `bson:"productId"`
	IPAddress string    `bson:"ipAddress"`
	CreatedAt time.Time `bson:"createdAt"`
}

type profileDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Avatar    string    `bson:"avatar"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func toProductDomain(doc *productDocument) *entity.Product {
	id, _ := uuid.Parse(doc.ID)

	return &entity.Product{
		ID:                id,
		Title:             doc.Title,
		Description:       doc.Description,
		Category:          entity.Category(doc.Category),
		Price:             doc.Price,
		CommissionPercent: doc.CommissionPercent,
		ReferralCode:      doc.ReferralCode,
		OriginalURL:       doc.OriginalURL,
		Clicks:            doc.Clicks,
		CreatedAt:         doc.CreatedAt.UTC(),
		UpdatedAt:         doc.UpdatedAt.UTC(),
	}
}

func fromProductDomain(product *entity.Product) *productDocument {
	return &productDocument{
		ID:                product.ID.String(),
		Title:             product.Title,
		Description:       product.Description,
		Category:          string(product.Category),
		Price:             product.Price,
		CommissionPercent: product.CommissionPercent,
		ReferralCode:      product.ReferralCode,
		OriginalURL:       product.OriginalURL,
		Clicks:            product.Clicks,
		CreatedAt:         product.CreatedAt,
		UpdatedAt:         product.UpdatedAt,
	}
}

func toProfileDomain(doc *profileDocument) *entity.Profile {
	id, _ := uuid.Parse(doc.ID)

	return &entity.Profile{
		ID:        id,
		Name:      doc.Name,
		Email:     doc.Email,
		Avatar:    doc.Avatar,
		CreatedAt: doc.CreatedAt.UTC(),
		UpdatedAt: doc.UpdatedAt.UTC(),
	}
}
