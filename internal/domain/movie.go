package domain

// FieldPlotEmbedding is the document field carrying the plot vector. The
// vector index definition and the vector subquery path must agree on it.
const FieldPlotEmbedding = "plot_embedding"

// Movie is one sample record. Written once during seeding, never mutated.
type Movie struct {
	Title         string    `bson:"title"`
	Plot          string    `bson:"plot"`
	Genre         string    `bson:"genre"`
	PlotEmbedding []float32 `bson:"plot_embedding,omitempty"`
}

// ScoredResult is one row of a fused ranking. Order is owned by the server.
type ScoredResult struct {
	Title string
	Plot  string
	Score float64
}
