package covey

import (
	"sync"
	"sync/atomic"
)

// PoolState represents pool lifecycle states
type PoolState uint32

const (
	// PoolStateIdle is the state of a pool that has been constructed but
	// not yet started. No workers exist.
	PoolStateIdle PoolState = iota
	// PoolStateRunning is the state of a started pool whose workers are
	// actively pulling from the job queue.
	PoolStateRunning
	// PoolStateDraining is the state of a pool whose shutdown has been
	// requested. Workers finish their current job and exit without
	// pulling further work.
	PoolStateDraining
	// PoolStateTerminated is the terminal state: all workers have joined
	// and the pool can never be restarted.
	PoolStateTerminated
)

// String returns a human-readable name for the state.
func (s PoolState) String() string {
	switch s {
	case PoolStateIdle:
		return "IDLE"
	case PoolStateRunning:
		return "RUNNING"
	case PoolStateDraining:
		return "DRAINING"
	case PoolStateTerminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

// Pool is a fixed-size worker pool with a FIFO job queue.
//
// A Pool is constructed idle with NewPool, started exactly once with Start,
// fed with Enqueue, and shut down with Finish or Terminate. It is not
// restartable after shutdown.
type Pool struct {
	mu       sync.Mutex
	workCond *sync.Cond // workers wait here for a job or a drain signal
	waitCond *sync.Cond // Wait callers block here for the outstanding count to reach zero

	// Pending jobs and the outstanding-job counter. The counter covers
	// queued jobs plus jobs currently mid-execution, so it only reaches
	// zero once every accepted job has finished running. Both are
	// guarded by mu.
	jobs    *jobQueue
	numJobs int

	// Workers, created once in Start and released once in Terminate.
	workers []*worker
	wg      sync.WaitGroup

	// Lifecycle state, written only while holding mu.
	state atomic.Value // PoolState

	// Metrics
	metrics poolMetrics
}

// poolMetrics tracks pool-wide statistics
type poolMetrics struct {
	submitted uint64 // atomic
	completed uint64 // atomic
}

// NewPool creates a new, idle worker pool. The pool owns no workers until
// Start is called.
//
// Example:
//
//	pool := covey.NewPool()
//	pool.Start(4)
//	defer pool.Finish()
func NewPool() *Pool {
	p := &Pool{jobs: newJobQueue()}
	p.workCond = sync.NewCond(&p.mu)
	p.waitCond = sync.NewCond(&p.mu)
	p.state.Store(PoolStateIdle)
	return p
}

// Start spawns exactly numWorkers worker goroutines and transitions the
// pool to the running state.
//
// Start must be called at most once per pool; calling it a second time, or
// after shutdown, panics. A worker count of zero is legal but produces a
// pool that accepts jobs without ever executing them, so a later Wait would
// block forever.
func (p *Pool) Start(numWorkers int) {
	if numWorkers < 0 {
		panic("covey: Start called with negative worker count")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loadState() != PoolStateIdle {
		panic("covey: Start called more than once")
	}

	// Spin off worker goroutines
	p.workers = make([]*worker, numWorkers)
	for i := range p.workers {
		p.workers[i] = newWorker(i, p)
	}
	p.state.Store(PoolStateRunning)

	for _, w := range p.workers {
		p.wg.Add(1)
		go func(wk *worker) {
			defer p.wg.Done()
			wk.run()
		}(w)
	}
}

// Enqueue adds a job to the end of the job queue and wakes one idle worker.
//
// Jobs are dispatched in FIFO order relative to other Enqueue calls from
// the same goroutine. Enqueue returns ErrNilJob for a nil job and
// ErrPoolTerminated once shutdown has begun; it never blocks beyond the
// time needed to acquire the pool lock.
//
// Example:
//
//	err := pool.Enqueue(func() {
//	    fmt.Println("job executed")
//	})
func (p *Pool) Enqueue(job func()) error {
	if job == nil {
		return ErrNilJob
	}

	p.mu.Lock()
	if st := p.loadState(); st == PoolStateDraining || st == PoolStateTerminated {
		p.mu.Unlock()
		return ErrPoolTerminated
	}
	p.jobs.push(job)
	p.numJobs++
	p.mu.Unlock()

	atomic.AddUint64(&p.metrics.submitted, 1)

	// Exactly one new job became available, so wake exactly one worker.
	p.workCond.Signal()
	return nil
}

// Wait blocks the calling goroutine until every outstanding job has
// finished executing. It may be called repeatedly, and returns immediately
// when no jobs are outstanding.
//
// Wait does not stop other goroutines from enqueueing more jobs; if that
// happens, Wait may return only after those jobs have also completed.
//
// Example:
//
//	pool.Enqueue(job1)
//	pool.Enqueue(job2)
//	pool.Wait() // blocks until job1 and job2 complete
func (p *Pool) Wait() {
	p.mu.Lock()
	for p.numJobs != 0 {
		p.waitCond.Wait()
	}
	p.mu.Unlock()
}

// Finish runs all queued jobs to completion and then shuts the pool down.
// The pool is unusable afterward.
func (p *Pool) Finish() {
	p.Wait()
	p.Terminate()
}

// Terminate shuts the pool down, letting jobs already mid-execution finish.
// It blocks until every worker goroutine has exited, then releases the
// workers. The pool is unusable afterward. Terminate is safe to call
// repeatedly, and before Start.
//
// Jobs still queued when Terminate is called are silently discarded: they
// never run, and the outstanding-job counter stays non-zero, so a
// concurrent Wait caller would block forever. Callers that need every
// queued job to run must use Finish instead.
func (p *Pool) Terminate() {
	p.mu.Lock()
	if p.loadState() != PoolStateTerminated {
		p.state.Store(PoolStateDraining)
	}
	p.mu.Unlock()

	// Wake every worker and wait for in-flight jobs to finish
	p.workCond.Broadcast()
	p.wg.Wait()

	p.mu.Lock()
	p.workers = nil
	p.state.Store(PoolStateTerminated)
	p.mu.Unlock()
}

// NumWorkers returns the number of worker goroutines in the pool: the
// count fixed at Start, or zero before Start and after Terminate.
func (p *Pool) NumWorkers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.workers)
}

// State returns the pool's current lifecycle state.
func (p *Pool) State() PoolState {
	return p.loadState()
}

// Stats returns a snapshot of pool statistics including job counts and
// per-worker statistics.
//
// Example:
//
//	stats := pool.Stats()
//	fmt.Printf("Completed: %d/%d\n", stats.Completed, stats.Submitted)
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	workerStats := make([]WorkerStats, len(p.workers))
	for i, w := range p.workers {
		workerStats[i] = WorkerStats{
			WorkerID: w.id,
			JobsRun:  atomic.LoadUint64(&w.jobsRun),
			State:    w.getState(),
		}
	}

	return Stats{
		Submitted:   atomic.LoadUint64(&p.metrics.submitted),
		Completed:   atomic.LoadUint64(&p.metrics.completed),
		Outstanding: p.numJobs,
		QueueDepth:  p.jobs.len(),
		NumWorkers:  len(p.workers),
		State:       p.loadState(),
		WorkerStats: workerStats,
	}
}

func (p *Pool) loadState() PoolState {
	return p.state.Load().(PoolState)
}
