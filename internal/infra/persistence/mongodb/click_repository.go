package mongodb

import (
	"context"
	"time"

	"affiliate/internal/domain/entity"
	"affiliate/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// clickRepository implements the repository.ClickRepository interface.
type clickRepository struct {
	sessionBinder

	coll *mongo.Collection
}

// NewClickRepository is the constructor for clickRepository.
func NewClickRepository(db *mongo.Database) repository.ClickRepository {
	return &clickRepository{coll: db.Collection(clicksCollection)}
}

func (repo *clickRepository) Create(ctx context.Context, click *entity.Click) error {
	if click.ID == uuid.Nil {
		click.ID = uuid.New()
	}
	if click.CreatedAt.IsZero() {
		click.CreatedAt = time.Now().UTC()
	}

	doc := clickDocument{
		ID:        click.ID.String(),
		ProductID: click.ProductID.String(),
		IPAddress: click.IPAddress,
		CreatedAt: click.CreatedAt,
	}
	if _, err := repo.coll.InsertOne(repo.bind(ctx), doc); err != nil {
		return errors.Wrap(err, "failed to create click")
	}

	return nil
}

func (repo *clickRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.coll.CountDocuments(repo.bind(ctx), bson.D{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count clicks")
	}

	return count, nil
}

func (repo *clickRepository) DeleteAll(ctx context.Context) error {
	if _, err := repo.coll.DeleteMany(repo.bind(ctx), bson.D{}); err != nil {
		return errors.Wrap(err, "failed to delete clicks")
	}

	return nil
}
