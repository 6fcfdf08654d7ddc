package postgres

import (
	"context"
	"strings"
	"time"

	"affiliate/internal/domain/entity"
	"affiliate/internal/domain/repository"
	"affiliate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// sortColumns maps listing sort keys onto table columns.
var sortColumns = map[repository.SortField]string{
	repository.SortByCreatedAt:         "created_at",
	repository.SortByPrice:             "price",
	repository.SortByCommissionPercent: "commission_percent",
	repository.SortByClicks:            "clicks",
	repository.SortByTitle:             "title",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicateReferralCode, err.Error())
		}

		return errors.Wrap(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// List retrieves the products matching the filter.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}
	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Search)) + "%"
		query = query.Where(`LOWER(title) LIKE ? ESCAPE '\'`, pattern)
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = sortColumns[repository.SortByCreatedAt]
	}
	desc := filter.Order != repository.SortAsc
	query = query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var productModels []*model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Update overwrites the editable fields. Clicks and the referral code are never written here.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"title":              product.Title,
			"description":        product.Description,
			"category":           string(product.Category),
			"price":              product.Price,
			"commission_percent": product.CommissionPercent,
			"original_url":       product.OriginalURL,
			"updated_at":         product.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by its ID.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// IncrementClicks runs a single UPDATE ... SET clicks = clicks + 1 and reads the row back from the primary.
func (repo *productRepository) IncrementClicks(ctx context.Context, referralCode string) (*entity.Product, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("referral_code = ?", referralCode).
		UpdateColumn("clicks", gorm.Expr("clicks + ?", 1))

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to increment clicks")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("referral_code = ?", referralCode).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to reload product")
	}

	return toProductDomain(&productM), nil
}

// Count returns the number of products.
func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

// SumPotentialIncome returns the catalog-wide earnings estimate; 0 when the table is empty.
func (repo *productRepository) SumPotentialIncome(ctx context.Context) (float64, error) {
	var sum float64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("COALESCE(SUM(price * commission_percent * 0.01 * clicks), 0)").
		Scan(&sum).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum potential income")
	}

	return sum, nil
}

// CountByCategory groups products by category, largest group first.
func (repo *productRepository) CountByCategory(ctx context.Context) ([]entity.CategoryCount, error) {
	var rows []struct {
		Category string
		Count    int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC, category ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count products by category")
	}

	counts := make([]entity.CategoryCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, entity.CategoryCount{Category: entity.Category(row.Category), Count: row.Count})
	}

	return counts, nil
}

// TopByClicks returns up to limit clicked products, most clicked first.
func (repo *productRepository) TopByClicks(ctx context.Context, limit int) ([]entity.ProductClicks, error) {
	var rows []struct {
		Title  string
		Clicks int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("title, clicks").
		Where("clicks > 0").
		Order("clicks DESC, title ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load top products")
	}

	top := make([]entity.ProductClicks, 0, len(rows))
	for _, row := range rows {
		top = append(top, entity.ProductClicks{Title: row.Title, Clicks: row.Clicks})
	}

	return top, nil
}

// DeleteAll removes every product.
func (repo *productRepository) DeleteAll(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.ProductModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete products")
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:                data.ID,
		Title:             data.Title,
		Description:       data.Description,
		Category:          entity.Category(data.Category),
		Price:             data.Price,
		CommissionPercent: data.CommissionPercent,
		ReferralCode:      data.ReferralCode,
		OriginalURL:       data.OriginalURL,
		Clicks:            data.Clicks,
		CreatedAt:         data.CreatedAt.UTC(),
		UpdatedAt:         data.UpdatedAt.UTC(),
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	productM := &model.ProductModel{
		ID:                data.ID,
		Title:             data.Title,
		Description:       data.Description,
		Category:          string(data.Category),
		Price:             data.Price,
		CommissionPercent: data.CommissionPercent,
		ReferralCode:      data.ReferralCode,
		OriginalURL:       data.OriginalURL,
		Clicks:            data.Clicks,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
	if productM.ID == uuid.Nil {
		productM.ID = uuid.New()
		data.ID = productM.ID
	}
	if productM.CreatedAt.IsZero() {
		productM.CreatedAt = time.Now().UTC()
		productM.UpdatedAt = productM.CreatedAt
	}

	return productM
}
