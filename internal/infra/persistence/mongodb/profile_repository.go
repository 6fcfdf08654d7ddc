package mongodb

import (
	"context"
	"time"

	"affiliate/internal/domain/entity"
	"affiliate/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// profileRepository implements the repository.ProfileRepository interface.
// The operator profile is the single document keyed by entity.ProfileID.
type profileRepository struct {
	sessionBinder

	coll *mongo.Collection
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &profileRepository{coll: db.Collection(profilesCollection)}
}

func profileFilter() bson.D {
	return bson.D{{Key: "_id", Value: entity.ProfileID.String()}}
}

func (repo *profileRepository) Get(ctx context.Context) (*entity.Profile, error) {
	var doc profileDocument
	if err := repo.coll.FindOne(repo.bind(ctx), profileFilter()).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return toProfileDomain(&doc), nil
}

func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	result, err := repo.coll.UpdateOne(repo.bind(ctx), profileFilter(), bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: profile.Name},
		{Key: "email", Value: profile.Email},
		{Key: "avatar", Value: profile.Avatar},
		{Key: "updatedAt", Value: profile.UpdatedAt},
	}}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Wrap(repository.ErrDuplicateEmail, err.Error())
		}

		return errors.Wrap(err, "failed to update profile")
	}

	if result.MatchedCount == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = now
	}
	profile.ID = entity.ProfileID

	_, err := repo.coll.UpdateOne(repo.bind(ctx), profileFilter(),
		bson.D{
			{Key: "$set", Value: bson.D{
				{Key: "name", Value: profile.Name},
				{Key: "email", Value: profile.Email},
				{Key: "avatar", Value: profile.Avatar},
				{Key: "updatedAt", Value: profile.UpdatedAt},
			}},
			{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: profile.CreatedAt}}},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Wrap(repository.ErrDuplicateEmail, err.Error())
		}

		return errors.Wrap(err, "failed to upsert profile")
	}

	return nil
}

func (repo *profileRepository) DeleteAll(ctx context.Context) error {
	if _, err := repo.coll.DeleteMany(repo.bind(ctx), bson.D{}); err != nil {
		return errors.Wrap(err, "failed to delete profiles")
	}

	return nil
}
