package metadata

import "sync"

// Queue is the shared result sink for a lookup. Pushes from concurrent fetch
// tasks are safe, including pushes that land after the coordinator has
// stopped waiting; those records are simply never drained.
type Queue struct {
	mu      sync.Mutex
	records []Record
}

// NewQueue returns an empty result queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends a record to the queue.
func (q *Queue) Push(r Record) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.records = append(q.records, r)
}

// Len returns the number of records currently queued.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.records)
}

// Drain removes and returns all queued records in arrival order.
func (q *Queue) Drain() []Record {
	q.mu.Lock()
	defer q.mu.Unlock()
	records := q.records
	q.records = nil
	return records
}
