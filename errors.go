package covey

import "fmt"

// Common errors returned by the worker pool.
var (
	// ErrPoolTerminated is returned when attempting to enqueue a job on a pool
	// that is draining or has been terminated. Once shutdown begins, the pool
	// never accepts new jobs.
	//
	// Example:
	//  pool.Terminate()
	//  err := pool.Enqueue(job)
	//  if errors.Is(err, covey.ErrPoolTerminated) {
	//      log.Println("Cannot enqueue: pool is terminated")
	//  }
	ErrPoolTerminated = &PoolError{msg: "pool is terminated"}

	// ErrNilJob is returned when attempting to enqueue a nil job function.
	// All enqueued jobs must be non-nil function values.
	//
	// Example:
	//  var job func()
	//  err := pool.Enqueue(job)
	//  if errors.Is(err, covey.ErrNilJob) {
	//      log.Println("Cannot enqueue nil job")
	//  }
	ErrNilJob = &PoolError{msg: "job is nil"}
)

// PoolError represents an error that occurred within the worker pool.
// It wraps underlying errors and provides context about pool operations.
//
// PoolError implements the error interface and supports error unwrapping
// via errors.Unwrap for compatibility with Go 1.13+ error handling.
type PoolError struct {
	msg string // Human-readable error message
	err error  // Underlying error (if any)
}

// Error returns a formatted error message.
// If an underlying error exists, it is included in the output.
func (e *PoolError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("covey: %s: %v", e.msg, e.err)
	}
	return fmt.Sprintf("covey: %s", e.msg)
}

// Unwrap returns the underlying error, allowing use with errors.Is and errors.As.
func (e *PoolError) Unwrap() error {
	return e.err
}
