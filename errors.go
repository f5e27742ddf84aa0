package matchgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/matchgo/engine"
)

var (
	// ErrInvalidArgument is returned for a nil provider, nil scorer or
	// negative limit.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrResourceExhausted is returned when query admission fails because
	// all query slots are busy. The operation is not executed.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrWorkerFailure is returned when a scoring worker fails. All workers
	// are joined before it is reported and no partial results are returned.
	ErrWorkerFailure = errors.New("worker failure")

	// ErrScoringFailure is returned when the scorer reports an error for a
	// candidate. The query is aborted, not retried.
	ErrScoringFailure = errors.New("scoring failure")
)

// translateError maps engine-layer sentinels to the public error contract.
// The underlying error remains reachable via errors.Unwrap / errors.Is.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, engine.ErrNilScorer) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if errors.Is(err, engine.ErrScoring) {
		return fmt.Errorf("%w: %w", ErrScoringFailure, err)
	}
	if errors.Is(err, engine.ErrWorker) {
		return fmt.Errorf("%w: %w", ErrWorkerFailure, err)
	}

	return err
}
