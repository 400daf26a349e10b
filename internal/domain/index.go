package domain

// IndexKind distinguishes the two search index flavors.
type IndexKind string

const (
	IndexLexical IndexKind = "lexical"
	IndexVector  IndexKind = "vector"
)

// IndexStatusReady is the terminal build status reported by the server.
const IndexStatusReady = "READY"

// IndexState is a snapshot of one search index as reported by the server.
// Build lifecycle: absent -> creating -> building -> ready, or failed.
type IndexState struct {
	Name      string `bson:"name"`
	Status    string `bson:"status"`
	Queryable bool   `bson:"queryable"`
}

// Ready reports whether the index can serve queries.
func (s IndexState) Ready() bool {
	return s.Status == IndexStatusReady || s.Queryable
}
