package atlas

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kailas-cloud/rankfusion/internal/domain"
)

// hybridPipeline builds the $rankFusion aggregation for one hybrid query:
// exactly two named input pipelines (vector similarity and full-text), the
// per-pipeline weights, score detail metadata, a display projection, and the
// final result cap. Requires server 8.1+.
func hybridPipeline(q domain.HybridQuery) mongo.Pipeline {
	vectorStages := bson.A{
		bson.D{{Key: "$vectorSearch", Value: bson.D{
			{Key: "index", Value: q.VectorIndex},
			{Key: "path", Value: domain.FieldPlotEmbedding},
			{Key: "queryVector", Value: q.Vector},
			{Key: "numCandidates", Value: q.NumCandidates},
			{Key: "limit", Value: q.PipelineLimit},
		}}},
	}

	fullTextStages := bson.A{
		bson.D{{Key: "$search", Value: bson.D{
			{Key: "index", Value: q.LexicalIndex},
			{Key: "text", Value: bson.D{
				{Key: "query", Value: q.Text},
				{Key: "path", Value: bson.A{"title", "plot"}},
			}},
		}}},
		bson.D{{Key: "$limit", Value: q.PipelineLimit}},
	}

	return mongo.Pipeline{
		bson.D{{Key: "$rankFusion", Value: bson.D{
			{Key: "input", Value: bson.D{
				{Key: "pipelines", Value: bson.D{
					{Key: domain.PipelineVector, Value: vectorStages},
					{Key: domain.PipelineFullText, Value: fullTextStages},
				}},
			}},
			{Key: "combination", Value: bson.D{
				{Key: "weights", Value: bson.D{
					{Key: domain.PipelineVector, Value: q.VectorWeight},
					{Key: domain.PipelineFullText, Value: q.TextWeight},
				}},
			}},
			{Key: "scoreDetails", Value: true},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "title", Value: 1},
			{Key: "plot", Value: 1},
			{Key: "scoreDetails", Value: bson.D{{Key: "$meta", Value: "scoreDetails"}}},
		}}},
		bson.D{{Key: "$limit", Value: q.Limit}},
	}
}
