package covey

// forConfig holds the partitioning knobs for a single parallel-for call.
type forConfig struct {
	scheduleFactor int
	minChunkSize   int
}

func defaultForConfig() forConfig {
	return forConfig{
		scheduleFactor: 1,
		minChunkSize:   1,
	}
}

// ForOption configures a single ForEach or ForEachIndex call.
type ForOption func(*forConfig)

// WithScheduleFactor sets the multiplier on the pool's worker count used to
// determine how many chunks the range is divided into. Lower values suit
// ranges whose elements cost about the same to process; higher values
// spread uneven per-element cost across workers at the price of more
// per-job overhead. The default factor of 1 targets one chunk per worker.
//
// The factor must be positive; ForEach panics otherwise.
func WithScheduleFactor(factor int) ForOption {
	return func(c *forConfig) { c.scheduleFactor = factor }
}

// WithMinChunkSize sets the minimum number of elements processed as one
// chunk. The default of 1 allows single-element chunks; larger minimums
// keep job overhead from dominating when elements are cheap, and may
// reduce the chunk count below what the schedule factor suggests.
//
// The size must be positive; ForEach panics otherwise.
func WithMinChunkSize(size int) ForOption {
	return func(c *forConfig) { c.minChunkSize = size }
}

// ForEachIndex applies fn to every index in the half-open range [0, n),
// exactly once each, splitting the range into contiguous chunks executed
// on the pool's workers. It blocks until every application has completed.
//
// Small ranges (at most one chunk) run sequentially on the calling
// goroutine with no pool involvement. An n of zero or less returns
// immediately. Chunks from the same call are enqueued in index order, but
// there is no completion-order guarantee across chunks, and fn must
// synchronize any shared state it touches.
//
// ForEachIndex returns ErrPoolTerminated if the pool shuts down before
// every chunk could be enqueued; chunks already enqueued may still run.
//
// Example:
//
//	sums := make([]int, len(rows))
//	covey.ForEachIndex(pool, len(rows), func(i int) {
//	    sums[i] = rows[i].Sum()
//	})
func ForEachIndex(pool *Pool, n int, fn func(int), opts ...ForOption) error {
	cfg := defaultForConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.scheduleFactor <= 0 {
		panic("covey: schedule factor must be positive")
	}
	if cfg.minChunkSize <= 0 {
		panic("covey: minimum chunk size must be positive")
	}

	if n <= 0 {
		return nil
	}

	// Calculate the chunk size. A zero-worker pool yields zero chunks;
	// the minimum-chunk clamp below turns that into a plain minimum-size
	// partition instead of a divide-by-zero.
	numChunks := cfg.scheduleFactor * pool.NumWorkers()
	chunkSize := 0
	if numChunks > 0 {
		chunkSize = n / numChunks
	}

	// Adjust to guarantee the minimum chunk size
	if chunkSize < cfg.minChunkSize {
		chunkSize = cfg.minChunkSize
	}

	// Run on the calling goroutine if the range fits in a single chunk
	if n <= chunkSize {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return nil
	}

	// Split the range into chunks of chunkSize, the final chunk holding
	// whatever remains
	idxBegin := 0
	idxEnd := chunkSize
	for idxBegin != n {
		lo, hi := idxBegin, idxEnd
		err := pool.Enqueue(func() {
			for i := lo; i < hi; i++ {
				fn(i)
			}
		})
		if err != nil {
			// Skip the Wait: after a terminate the outstanding count
			// may never reach zero.
			return err
		}

		// Move to the range of the next chunk
		idxBegin = idxEnd
		idxEnd = min(idxEnd+chunkSize, n)
	}

	// Block until every chunk has finished
	pool.Wait()
	return nil
}

// ForEach applies fn to every element of items, exactly once each, in
// parallel on the pool's workers. Elements are passed by pointer, so fn
// may mutate them in place. ForEach blocks until every application has
// completed; see ForEachIndex for partitioning and error semantics.
//
// Example:
//
//	prices := []float64{9.99, 24.50, 3.75}
//	covey.ForEach(pool, prices, func(p *float64) {
//	    *p *= 1.08
//	})
func ForEach[E any](pool *Pool, items []E, fn func(*E), opts ...ForOption) error {
	return ForEachIndex(pool, len(items), func(i int) {
		fn(&items[i])
	}, opts...)
}
