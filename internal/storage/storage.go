package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/pennyledger/expense-server/internal/config"
	"github.com/pennyledger/expense-server/internal/storage/mongoconfig"
)

// ErrNotConfigured is returned when the document store connection string is
// missing, so every dependent operation can surface the same fixed failure.
var ErrNotConfigured = errors.New("database not configured")

type Storage struct {
	Client     *mongo.Client
	Categories mongoconfig.ICategoryCollection
	Expenses   mongoconfig.IExpenseCollection
	Budgets    mongoconfig.IBudgetCollection
}

func NewStorage(env *config.Config) (*Storage, error) {
	if env == nil || env.MongoURI == "" {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(env.MongoURI))
	if err != nil {
		return nil, err
	}

	db := client.Database(env.MongoDatabase)

	return &Storage{
		Client:     client,
		Categories: mongoconfig.NewCategoryCollection(db),
		Expenses:   mongoconfig.NewExpenseCollection(db),
		Budgets:    mongoconfig.NewBudgetCollection(db),
	}, nil
}

// Ping reports whether the document store is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	if s == nil || s.Client == nil {
		return ErrNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.Client.Ping(ctx, readpref.Primary())
}
