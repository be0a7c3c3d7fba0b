package covey

// Stats contains statistics about pool operation. All values are a snapshot
// taken under the pool lock at the time Stats() is called.
//
// Example:
//
//	stats := pool.Stats()
//	fmt.Printf("Pending: %d of %d submitted\n",
//	    stats.Outstanding, stats.Submitted)
type Stats struct {
	// Submitted is the total number of jobs accepted by Enqueue since
	// the pool was created.
	Submitted uint64

	// Completed is the total number of jobs that have finished executing.
	Completed uint64

	// Outstanding is the number of jobs enqueued but not yet finished:
	// jobs waiting in the queue plus jobs currently mid-execution. This
	// is the counter Wait blocks on.
	Outstanding int

	// QueueDepth is the number of jobs waiting in the queue, excluding
	// jobs already handed to a worker.
	QueueDepth int

	// NumWorkers is the number of workers in the pool: the count fixed
	// at Start, or zero after Terminate.
	NumWorkers int

	// State is the pool's lifecycle state at snapshot time.
	State PoolState

	// WorkerStats contains statistics for each individual worker. The
	// slice is empty once the pool has terminated.
	WorkerStats []WorkerStats
}

// WorkerStats contains statistics for an individual worker goroutine.
type WorkerStats struct {
	// WorkerID is the unique identifier for this worker (0-indexed).
	WorkerID int

	// JobsRun is the total number of jobs this worker has executed.
	JobsRun uint64

	// State is the worker's current state: waiting, busy, or stopped.
	State WorkerState
}
