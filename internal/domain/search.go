package domain

// Names of the two rank-fusion input pipelines.
const (
	PipelineVector   = "vectorPipeline"
	PipelineFullText = "fullTextPipeline"
)

// HybridQuery describes one fused lexical+vector retrieval request.
// Weights are relative, non-negative, and need not sum to one; the fusion
// semantics belong to the server.
type HybridQuery struct {
	Text   string
	Vector []float32

	LexicalIndex string
	VectorIndex  string

	// NumCandidates is the vector subquery's over-fetch pool, narrowed to
	// PipelineLimit per pipeline before fusion.
	NumCandidates int
	PipelineLimit int

	VectorWeight float64
	TextWeight   float64

	// Limit caps the fused result set.
	Limit int
}
