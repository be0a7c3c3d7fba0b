// Package covey provides a fixed-size worker pool with a FIFO job queue and
// a chunked parallel-for built on top of it.
//
// Covey is designed for the start-once, submit, wait, shut-down lifecycle:
// a pool is created idle, started with a fixed worker count, fed deferred
// jobs, and torn down exactly once. There is no work-stealing, priority
// scheduling, per-job cancellation, or dynamic resizing; the pool trades
// those features for a small, predictable core.
//
// # Key Features
//
//   - Fixed worker count with strict FIFO job dispatch
//   - Blocking Wait keyed on an outstanding-job counter, so jobs still
//     mid-execution count until they finish
//   - Chunked parallel iteration over slices and index ranges, with a
//     sequential fast path for small ranges
//   - Graceful (Finish) and immediate (Terminate) shutdown modes
//   - Lightweight statistics snapshots
//
// # Quick Start
//
//	pool := covey.NewPool()
//	pool.Start(4)
//	defer pool.Finish()
//
//	for i := 0; i < 100; i++ {
//	    i := i
//	    err := pool.Enqueue(func() {
//	        fmt.Printf("job %d executed\n", i)
//	    })
//	    if err != nil {
//	        log.Printf("failed to enqueue job: %v", err)
//	    }
//	}
//
//	// Wait for all jobs to complete
//	pool.Wait()
//
// # Parallel Iteration
//
// ForEach splits a slice into contiguous chunks, one job per chunk, and
// blocks until every element has been processed:
//
//	images := loadImages()
//	covey.ForEach(pool, images, func(img *Image) {
//	    img.Sharpen()
//	})
//
// ForEachIndex is the index-range form, useful when the work is not backed
// by a single slice:
//
//	covey.ForEachIndex(pool, height, func(y int) {
//	    renderRow(frame, y)
//	})
//
// Partitioning is tuned per call. A higher schedule factor requests more
// chunks than workers, which averages out uneven per-element cost; a larger
// minimum chunk size keeps per-job overhead down when elements are cheap:
//
//	covey.ForEach(pool, rows, process,
//	    covey.WithScheduleFactor(4),
//	    covey.WithMinChunkSize(64),
//	)
//
// Ranges that fit in a single chunk run directly on the calling goroutine,
// skipping the pool entirely.
//
// # Shutdown
//
// Finish drains the queue before stopping, guaranteeing every enqueued job
// runs:
//
//	pool.Finish()
//
// Terminate stops as soon as in-flight jobs complete. Jobs still waiting
// in the queue are silently discarded and never run, and because the
// outstanding-job counter is left non-zero, a concurrent Wait caller would
// block forever. Use Terminate only when dropping queued work is
// acceptable:
//
//	pool.Terminate()
//
// Both forms leave the pool terminated; a pool cannot be restarted.
//
// # Error Handling
//
// Covey's contract is deliberately precondition-based. Enqueue reports nil
// jobs and enqueue-after-shutdown as sentinel errors:
//
//	if errors.Is(err, covey.ErrPoolTerminated) {
//	    // Pool is no longer accepting jobs
//	}
//
// Misuse that cannot be reported cheaply panics instead: starting a pool
// twice, or calling ForEach with a non-positive schedule factor or minimum
// chunk size.
//
// Job bodies run without panic recovery. A panic inside a job propagates
// up the worker goroutine and terminates the process, exactly as an
// unhandled panic on any other goroutine would. Jobs that can fail should
// recover internally and report through caller-owned storage.
//
// # Thread Safety
//
// Enqueue, Wait, and the statistics accessors are safe for concurrent use.
// Start must be called once, before jobs are submitted from other
// goroutines. Job bodies run concurrently with the lock released, so any
// state shared between jobs is the jobs' own responsibility.
package covey
