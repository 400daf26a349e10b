package domain

import "errors"

var (
	// ErrConfiguration signals a missing or invalid required setting.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrConnectivity signals a failed store liveness check.
	ErrConnectivity = errors.New("store unreachable")
	// ErrIndexTimeout signals an index build that never reached ready state.
	ErrIndexTimeout = errors.New("index build timed out")
	// ErrOperation signals a failed store call.
	ErrOperation = errors.New("store operation failed")
	// ErrFusionUnsupported signals a server without the rank-fusion aggregation stage.
	ErrFusionUnsupported = errors.New("rank fusion not supported by server")
	// ErrEmbeddingProvider signals an embedding provider failure.
	ErrEmbeddingProvider = errors.New("embedding provider error")
)

// Classify maps an error to its failure class for the top-level diagnostic.
func Classify(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrConnectivity):
		return "connectivity"
	case errors.Is(err, ErrIndexTimeout):
		return "index_timeout"
	case errors.Is(err, ErrOperation),
		errors.Is(err, ErrFusionUnsupported),
		errors.Is(err, ErrEmbeddingProvider):
		return "operation"
	default:
		return "unexpected"
	}
}
