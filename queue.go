package covey

import "github.com/eapache/queue"

// jobQueue is the pool's pending-job queue: a strict FIFO over opaque
// func() jobs, backed by a ring buffer. It carries no synchronization of
// its own; the pool mutates it only while holding the pool lock.
type jobQueue struct {
	q *queue.Queue
}

func newJobQueue() *jobQueue {
	return &jobQueue{q: queue.New()}
}

// push appends a job to the tail of the queue. Ownership of the job
// transfers to the queue until a worker pops it.
func (jq *jobQueue) push(job func()) {
	jq.q.Add(job)
}

// pop removes and returns the job at the head of the queue. Popping an
// empty queue is a contract violation and panics; the worker loop's wake
// predicate guarantees the queue is non-empty here.
func (jq *jobQueue) pop() func() {
	return jq.q.Remove().(func())
}

// len returns the number of jobs waiting in the queue. Jobs already
// handed to a worker are not counted.
func (jq *jobQueue) len() int {
	return jq.q.Length()
}
