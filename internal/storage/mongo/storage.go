package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/repository"
)

const (
	usersCollection = "users"
	menuCollection  = "menu_items"
	orderCollection = "orders"
)

// Storage acts as repository facade backed by MongoDB.
type Storage struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

var _ repository.Factory = (*Storage)(nil)

var connect = func(ctx context.Context, uri string) (*mongo.Client, error) {
	return mongo.Connect(ctx, options.Client().ApplyURI(uri))
}

// New connects to MongoDB and prepares indexes.
func New(ctx context.Context, uri, database string, logger *zap.Logger) (*Storage, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := connect(connectCtx, uri)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	storage := NewWithDatabase(client.Database(database), logger)
	if err := storage.ensureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("mongo storage ready", zap.String("database", database))
	return storage, nil
}

// NewWithDatabase wraps an already connected database.
func NewWithDatabase(db *mongo.Database, logger *zap.Logger) *Storage {
	return &Storage{client: db.Client(), db: db, logger: logger}
}

func (s *Storage) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users index: %w", err)
	}
	_, err = s.db.Collection(orderCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create orders index: %w", err)
	}
	return nil
}

// Ping checks database connectivity.
func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the client.
func (s *Storage) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepository{collection: s.db.Collection(usersCollection)}
}

func (s *Storage) Menu() repository.MenuRepository {
	return &menuRepository{collection: s.db.Collection(menuCollection)}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{collection: s.db.Collection(orderCollection)}
}

// objectID parses a hex identifier. Malformed ids cannot match any document.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domainErrors.ErrNotFound
	}
	return oid, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return domainErrors.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return domainErrors.ErrAlreadyExists
	}
	return err
}
