package atlas

import (
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kailas-cloud/rankfusion/internal/domain"
)

// unrecognizedStageCode is the server error code for an unknown pipeline
// stage, which is what a pre-8.1 server answers to $rankFusion.
const unrecognizedStageCode = 40324

// operr tags a failed store call with the operation-error class.
func operr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrOperation, err)
}

// isFusionUnsupported reports whether the aggregation failed because the
// server does not know the $rankFusion stage.
func isFusionUnsupported(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.Code == unrecognizedStageCode {
			return true
		}
		return strings.Contains(cmdErr.Message, "Unrecognized pipeline stage")
	}
	return false
}
