// Package atlas wraps the MongoDB driver behind the narrow capability
// surface the demo needs: liveness check, collection ops, search index
// management, and aggregation.
package atlas

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/kailas-cloud/rankfusion/internal/domain"
)

// Store owns the client connection for the process lifetime.
type Store struct {
	client *mongo.Client
}

// Open creates a client for the given connection URI. The driver connects
// lazily; use Ping to verify connectivity.
func Open(ctx context.Context, uri string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("create client: %w: %v", domain.ErrConfiguration, err)
	}
	return &Store{client: client}, nil
}

// Ping verifies connectivity against the primary.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping: %w: %v", domain.ErrConnectivity, err)
	}
	return nil
}

// Collection returns a handle for the named collection.
func (s *Store) Collection(database, name string) *Collection {
	return &Collection{coll: s.client.Database(database).Collection(name)}
}

// Close releases the client connection.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	return nil
}
