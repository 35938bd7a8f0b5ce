// Package store provides the document store behind the portfolio API.
// The backing MongoDB deployment is optional: a Store opened without a
// reachable database still serves reads and writes, failing them with
// ErrUnavailable so handlers can fall back to canned content.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUnavailable is returned when no database connection is held.
var ErrUnavailable = errors.New("document store unavailable")

// Diagnostics reports the health of the store connection.
type Diagnostics struct {
	// Connected is true when a database handle is held.
	Connected bool
	// Collections are the collection names visible in the database.
	Collections []string
	// ListErr is the error from listing collections, if any.
	ListErr error
}

// Gateway is the persistence surface handlers depend on.
type Gateway interface {
	// Insert stores doc in the named collection and returns its ID.
	Insert(ctx context.Context, collection string, doc any) (string, error)
	// FetchAll returns every document in the named collection.
	FetchAll(ctx context.Context, collection string) ([]bson.M, error)
	// Diagnostics inspects the connection state.
	Diagnostics(ctx context.Context) Diagnostics
}
