package covey

import "sync/atomic"

// WorkerState represents the current state of a worker
type WorkerState int32

const (
	// StateWaiting means the worker is idle, blocked until a job is
	// queued or the pool begins draining.
	StateWaiting WorkerState = iota
	// StateBusy means the worker is executing a job.
	StateBusy
	// StateStopped means the worker has exited its loop.
	StateStopped
)

// String returns a human-readable name for the state.
func (s WorkerState) String() string {
	switch s {
	case StateWaiting:
		return "WAITING"
	case StateBusy:
		return "BUSY"
	case StateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// worker is one goroutine of execution bound to the pool for its lifetime.
// Workers are created only by Start and exit only during shutdown.
type worker struct {
	id   int
	pool *Pool

	// Metrics
	jobsRun uint64 // atomic

	// State management
	state atomic.Value // WorkerState
}

func newWorker(id int, pool *Pool) *worker {
	w := &worker{id: id, pool: pool}
	w.state.Store(StateWaiting)
	return w
}

// run is the main worker loop: wait for a job or a drain signal, execute
// at most one job, and re-wait. The loop holds the pool lock except while
// a job body is running.
func (w *worker) run() {
	p := w.pool
	p.mu.Lock()
	for {
		// Wait for pool shutdown or an available job. The predicate is
		// the queue length, not the outstanding counter: the counter
		// also covers jobs mid-execution on other workers, and waking
		// on it could land a worker on an empty queue.
		for p.loadState() == PoolStateRunning && p.jobs.len() == 0 {
			p.workCond.Wait()
		}

		// Only pull jobs while the pool is still running. A draining
		// pool leaves the remainder of the queue untouched.
		if p.loadState() != PoolStateRunning {
			break
		}

		job := p.jobs.pop()
		w.state.Store(StateBusy)
		p.mu.Unlock()

		// The job body runs with the lock released so other workers and
		// the submitter stay unblocked. Jobs run without panic recovery:
		// an unrecovered panic in a job terminates the process.
		job()

		p.mu.Lock()
		w.state.Store(StateWaiting)
		atomic.AddUint64(&w.jobsRun, 1)
		atomic.AddUint64(&p.metrics.completed, 1)

		// The job is no longer outstanding; let Wait callers recheck.
		p.numJobs--
		if p.numJobs == 0 {
			p.waitCond.Broadcast()
		}
	}
	w.state.Store(StateStopped)
	p.mu.Unlock()
}

// getState returns the current worker state
func (w *worker) getState() WorkerState {
	return w.state.Load().(WorkerState)
}
