package mongodb

import (
	"context"
	"regexp"
	"time"

	"affiliate/internal/domain/entity"
	"affiliate/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	sessionBinder

	coll *mongo.Collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{coll: db.Collection(productsCollection)}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
		product.UpdatedAt = product.CreatedAt
	}

	if _, err := repo.coll.InsertOne(repo.bind(ctx), fromProductDomain(product)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Wrap(repository.ErrDuplicateReferralCode, err.Error())
		}

		return errors.Wrap(err, "failed to create product")
	}

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return repo.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
}

func (repo *productRepository) findOne(ctx context.Context, filter bson.D) (*entity.Product, error) {
	var doc productDocument
	if err := repo.coll.FindOne(repo.bind(ctx), filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&doc), nil
}

// List maps the filter onto a find query. Sort keys coincide with document field names.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := bson.D{}
	if filter.Category != nil {
		query = append(query, bson.E{Key: "category", Value: string(*filter.Category)})
	}
	if filter.Search != "" {
		query = append(query, bson.E{Key: "title", Value: primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}})
	}

	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = repository.SortByCreatedAt
	}
	direction := -1
	if filter.Order == repository.SortAsc {
		direction = 1
	}

	opts := options.Find().SetSort(bson.D{
		{Key: string(sortBy), Value: direction},
		{Key: "_id", Value: 1},
	})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := repo.coll.Find(repo.bind(ctx), query, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode products")
	}

	products := make([]*entity.Product, 0, len(docs))
	for i := range docs {
		products = append(products, toProductDomain(&docs[i]))
	}

	return products, nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result, err := repo.coll.UpdateOne(repo.bind(ctx),
		bson.D{{Key: "_id", Value: product.ID.String()}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "title", Value: product.Title},
			{Key: "description", Value: product.Description},
			{Key: "category", Value: string(product.Category)},
			{Key: "price", Value: product.Price},
			{Key: "commissionPercent", Value: product.CommissionPercent},
			{Key: "originalUrl", Value: product.OriginalURL},
			{Key: "updatedAt", Value: product.UpdatedAt},
		}}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to update product")
	}

	if result.MatchedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(repo.bind(ctx), bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	if result.DeletedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// IncrementClicks applies $inc and returns the post-update document in one round trip.
func (repo *productRepository) IncrementClicks(ctx context.Context, referralCode string) (*entity.Product, error) {
	var doc productDocument
	err := repo.coll.FindOneAndUpdate(repo.bind(ctx),
		bson.D{{Key: "referralCode", Value: referralCode}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "clicks", Value: int64(1)}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to increment clicks")
	}

	return toProductDomain(&doc), nil
}

func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.coll.CountDocuments(repo.bind(ctx), bson.D{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

func (repo *productRepository) SumPotentialIncome(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$multiply", Value: bson.A{"$price", "$commissionPercent", 0.01, "$clicks"}},
			}}}},
		}}},
	}

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := repo.aggregate(ctx, pipeline, &rows); err != nil {
		return 0, errors.Wrap(err, "failed to sum potential income")
	}

	if len(rows) == 0 {
		return 0, nil
	}

	return rows[0].Total, nil
}

func (repo *productRepository) CountByCategory(ctx context.Context) ([]entity.CategoryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}

	var rows []struct {
		Category string `bson:"_id"`
		Count    int64  `bson:"count"`
	}
	if err := repo.aggregate(ctx, pipeline, &rows); err != nil {
		return nil, errors.Wrap(err, "failed to count products by category")
	}

	counts := make([]entity.CategoryCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, entity.CategoryCount{Category: entity.Category(row.Category), Count: row.Count})
	}

	return counts, nil
}

func (repo *productRepository) TopByClicks(ctx context.Context, limit int) ([]entity.ProductClicks, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "clicks", Value: -1}, {Key: "title", Value: 1}}).
		SetProjection(bson.D{{Key: "title", Value: 1}, {Key: "clicks", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := repo.coll.Find(repo.bind(ctx), bson.D{{Key: "clicks", Value: bson.D{{Key: "$gt", Value: 0}}}}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load top products")
	}

	var rows []struct {
		Title  string `bson:"title"`
		Clicks int64  `bson:"clicks"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "failed to decode top products")
	}

	top := make([]entity.ProductClicks, 0, len(rows))
	for _, row := range rows {
		top = append(top, entity.ProductClicks{Title: row.Title, Clicks: row.Clicks})
	}

	return top, nil
}

func (repo *productRepository) DeleteAll(ctx context.Context) error {
	if _, err := repo.coll.DeleteMany(repo.bind(ctx), bson.D{}); err != nil {
		return errors.Wrap(err, "failed to delete products")
	}

	return nil
}

func (repo *productRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error {
	cursor, err := repo.coll.Aggregate(repo.bind(ctx), pipeline)
	if err != nil {
		return err
	}

	return cursor.All(ctx, out)
}
