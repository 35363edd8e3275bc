package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/blackivy/onboarding/internal/config"
	"github.com/blackivy/onboarding/internal/survey"
)

type insertOner interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// Mongo inserts responses into a collection, keyed by response ID.
type Mongo struct {
	client     *mongo.Client
	collection insertOner
}

// NewMongo connects to cfg.URI and checks the connection.
func NewMongo(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	return &Mongo{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

func (m *Mongo) Submit(ctx context.Context, resp survey.Response) (string, error) {
	if err := validate(resp); err != nil {
		return "", err
	}

	_, err := m.collection.InsertOne(ctx, resp)
	if err != nil {
		// The response is already stored.
		if mongo.IsDuplicateKeyError(err) {
			return resp.ID, nil
		}
		return "", fmt.Errorf("failed to insert response: %w", err)
	}
	return resp.ID, nil
}

func (m *Mongo) Name() string { return string(config.BackendMongo) }

func (m *Mongo) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
