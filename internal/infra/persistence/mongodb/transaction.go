package mongodb

import (
	"context"

	"affiliate/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

// sessionBinder attaches an active session to the context of every repository call.
type sessionBinder struct {
	session mongo.Session
}

func (b sessionBinder) bind(ctx context.Context) context.Context {
	if b.session == nil {
		return ctx
	}

	return mongo.NewSessionContext(ctx, b.session)
}

type mongoRepositoryFactory struct {
	db      *mongo.Database
	session mongo.Session
}

func (f *mongoRepositoryFactory) ProductRepo() repository.ProductRepository {
	return &productRepository{coll: f.db.Collection(productsCollection), sessionBinder: sessionBinder{f.session}}
}

func (f *mongoRepositoryFactory) ClickRepo() repository.ClickRepository {
	return &clickRepository{coll: f.db.Collection(clicksCollection), sessionBinder: sessionBinder{f.session}}
}

func (f *mongoRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return &profileRepository{coll: f.db.Collection(profilesCollection), sessionBinder: sessionBinder{f.session}}
}

// mongoTransactionManager runs units of work in a multi-document transaction when enabled.
// Standalone servers do not support transactions; there the callback runs without one.
type mongoTransactionManager struct {
	db           *mongo.Database
	transactions bool
}

// NewTransactionManager is the constructor for mongoTransactionManager.
func NewTransactionManager(db *mongo.Database, transactions bool) repository.TransactionManager {
	return &mongoTransactionManager{db: db, transactions: transactions}
}

// Execute runs fn with repositories bound to one session transaction.
func (tm *mongoTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if !tm.transactions {
		return fn(&mongoRepositoryFactory{db: tm.db})
	}

	session, err := tm.db.Client().StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(mongo.SessionContext) (any, error) {
		return nil, fn(&mongoRepositoryFactory{db: tm.db, session: session})
	})

	return err
}
