// sim/scheduler.go
package sim

import "container/heap"

// eventQueue implements heap.Interface and orders events by scheduled time.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
// Ties between equal-time events are broken by heap order, which is
// implementation-defined and not semantically significant.
type eventQueue []Event

func (eq eventQueue) Len() int           { return len(eq) }
func (eq eventQueue) Less(i, j int) bool { return eq[i].Time < eq[j].Time }
func (eq eventQueue) Swap(i, j int)      { eq[i], eq[j] = eq[j], eq[i] }

func (eq *eventQueue) Push(x any) {
	*eq = append(*eq, x.(Event))
}

func (eq *eventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Scheduler is a time-ordered priority queue of events. It owns no
// particles; events reference particles by arena index. There is no removal
// primitive: superseded events stay queued and are expired by the validity
// check when dequeued.
type Scheduler struct {
	pq   eventQueue
	peak int
}

// NewScheduler creates an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{pq: make(eventQueue, 0)}
}

// Schedule inserts an event into the queue.
func (s *Scheduler) Schedule(ev Event) {
	heap.Push(&s.pq, ev)
	if len(s.pq) > s.peak {
		s.peak = len(s.pq)
	}
}

// PopMin removes and returns the earliest event. The second return value is
// false when the queue is empty.
func (s *Scheduler) PopMin() (Event, bool) {
	if len(s.pq) == 0 {
		return Event{}, false
	}
	return heap.Pop(&s.pq).(Event), true
}

// Len returns the number of queued events, stale ones included.
func (s *Scheduler) Len() int {
	return len(s.pq)
}

// PeakLen returns the largest queue depth seen so far.
func (s *Scheduler) PeakLen() int {
	return s.peak
}
