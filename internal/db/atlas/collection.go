package atlas

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kailas-cloud/rankfusion/internal/domain"
)

// Collection is a handle over one Atlas collection.
type Collection struct {
	coll *mongo.Collection
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.coll.Name()
}

// Exists reports whether the collection is present in its database.
func (c *Collection) Exists(ctx context.Context) (bool, error) {
	names, err := c.coll.Database().ListCollectionNames(ctx, bson.D{{Key: "name", Value: c.coll.Name()}})
	if err != nil {
		return false, operr("list collections", err)
	}
	return len(names) > 0, nil
}

// Count returns the number of documents in the collection.
func (c *Collection) Count(ctx context.Context) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, operr("count documents", err)
	}
	return n, nil
}

// Drop removes the collection. Dropping a missing collection is a no-op.
func (c *Collection) Drop(ctx context.Context) error {
	if err := c.coll.Drop(ctx); err != nil {
		return operr("drop collection", err)
	}
	return nil
}

// InsertMovies bulk-inserts the records in one call.
func (c *Collection) InsertMovies(ctx context.Context, movies []domain.Movie) error {
	docs := make([]interface{}, len(movies))
	for i, m := range movies {
		docs[i] = m
	}
	if _, err := c.coll.InsertMany(ctx, docs); err != nil {
		return operr("insert documents", err)
	}
	return nil
}

// ListSearchIndexes returns the state of every search index on the collection.
func (c *Collection) ListSearchIndexes(ctx context.Context) ([]domain.IndexState, error) {
	cursor, err := c.coll.SearchIndexes().List(ctx, options.SearchIndexes())
	if err != nil {
		return nil, operr("list search indexes", err)
	}
	var states []domain.IndexState
	if err := cursor.All(ctx, &states); err != nil {
		return nil, operr("decode search indexes", err)
	}
	return states, nil
}

// SearchIndexState returns the state of the named search index, and whether
// the server reported it at all.
func (c *Collection) SearchIndexState(ctx context.Context, name string) (domain.IndexState, bool, error) {
	cursor, err := c.coll.SearchIndexes().List(ctx, options.SearchIndexes().SetName(name))
	if err != nil {
		return domain.IndexState{}, false, operr("list search indexes", err)
	}
	var states []domain.IndexState
	if err := cursor.All(ctx, &states); err != nil {
		return domain.IndexState{}, false, operr("decode search indexes", err)
	}
	if len(states) == 0 {
		return domain.IndexState{}, false, nil
	}
	return states[0], true, nil
}

// CreateSearchIndex submits an asynchronous index creation request. The
// lexical kind maps every field dynamically; the vector kind declares a
// cosine knnVector field over the plot embedding.
func (c *Collection) CreateSearchIndex(ctx context.Context, name string, kind domain.IndexKind, dims int) error {
	var definition bson.D
	switch kind {
	case domain.IndexLexical:
		definition = bson.D{
			{Key: "mappings", Value: bson.D{{Key: "dynamic", Value: true}}},
		}
	case domain.IndexVector:
		definition = bson.D{
			{Key: "mappings", Value: bson.D{
				{Key: "fields", Value: bson.D{
					{Key: domain.FieldPlotEmbedding, Value: bson.D{
						{Key: "type", Value: "knnVector"},
						{Key: "dimensions", Value: dims},
						{Key: "similarity", Value: "cosine"},
					}},
				}},
			}},
		}
	default:
		return fmt.Errorf("unknown index kind %q", kind)
	}

	model := mongo.SearchIndexModel{
		Definition: definition,
		Options:    options.SearchIndexes().SetName(name),
	}
	if _, err := c.coll.SearchIndexes().CreateOne(ctx, model); err != nil {
		return operr("create search index", err)
	}
	return nil
}

// RunHybrid executes one rank-fusion aggregation and decodes the fused,
// server-ordered results.
func (c *Collection) RunHybrid(ctx context.Context, q domain.HybridQuery) ([]domain.ScoredResult, error) {
	cursor, err := c.coll.Aggregate(ctx, hybridPipeline(q))
	if err != nil {
		if isFusionUnsupported(err) {
			return nil, fmt.Errorf("aggregate: %w (server 8.1+ required): %v", domain.ErrFusionUnsupported, err)
		}
		return nil, operr("aggregate", err)
	}

	var rows []struct {
		Title        string `bson:"title"`
		Plot         string `bson:"plot"`
		ScoreDetails struct {
			Value float64 `bson:"value"`
		} `bson:"scoreDetails"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, operr("decode results", err)
	}

	results := make([]domain.ScoredResult, len(rows))
	for i, r := range rows {
		results[i] = domain.ScoredResult{Title: r.Title, Plot: r.Plot, Score: r.ScoreDetails.Value}
	}
	return results, nil
}
