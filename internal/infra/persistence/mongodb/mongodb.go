// Package mongodb contains the document store implementation of the persistence layer.
package mongodb

import (
	"context"
	"log/slog"

	"affiliate/config"
	"affiliate/internal/domain/lifecycle"
	"affiliate/internal/errors"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Collection names.
const (
	productsCollection = "products"
	clicksCollection   = "clicks"
	profilesCollection = "profiles"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the client lazily and connects, pings and builds indexes on start.
func New(params Params) (*mongo.Database, error) {
	mongoCfg := params.Config.Mongo
	if mongoCfg == nil {
		return nil, errors.New("mongo config is missing")
	}

	opts := options.Client().
		ApplyURI(mongoCfg.URI).
		SetConnectTimeout(mongoCfg.Timeout).
		SetServerSelectionTimeout(mongoCfg.Timeout).
		SetMonitor(newCommandMonitor(params.Logger))

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(mongoCfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", mongoCfg.Database),
				slog.Bool("transactions", mongoCfg.Transactions),
			)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return client.Disconnect(stopCtx)
		},
	})

	return db, nil
}

// newCommandMonitor logs failed commands. Successful commands stay silent.
func newCommandMonitor(logger *slog.Logger) *event.CommandMonitor {
	return &event.CommandMonitor{
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			if logger == nil {
				return
			}
			logger.WarnContext(ctx, "Mongo command failed",
				slog.String("command", evt.CommandName),
				slog.String("database", evt.DatabaseName),
				slog.Duration("duration", evt.Duration),
				slog.String("failure", evt.Failure),
			)
		},
	}
}
