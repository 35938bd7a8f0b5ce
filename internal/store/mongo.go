package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is a MongoDB-backed Gateway. A Store with no database handle is
// valid and reports every operation as ErrUnavailable.
type Store struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

// Disconnected returns a Store with no database behind it.
func Disconnected() *Store {
	return &Store{timeout: 10 * time.Second}
}

// Open connects to MongoDB and pings it. A single attempt is made; the
// caller decides whether a failure is fatal. Callers should Close the
// returned Store.
func Open(ctx context.Context, uri, database string, timeout time.Duration) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Store{client: client, db: client.Database(database), timeout: timeout}, nil
}

// Close releases the underlying client. Safe on a disconnected Store.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if s.db == nil {
		return "", ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *Store) FetchAll(ctx context.Context, collection string) ([]bson.M, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cur.Close(ctx)
	docs := []bson.M{}
	for cur.Next(ctx) {
		var d bson.M
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode from %s: %w", collection, err)
		}
		docs = append(docs, d)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("read from %s: %w", collection, err)
	}
	return docs, nil
}

func (s *Store) Diagnostics(ctx context.Context) Diagnostics {
	if s.db == nil {
		return Diagnostics{}
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	return Diagnostics{Connected: true, Collections: names, ListErr: err}
}
