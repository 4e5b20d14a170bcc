package sirsim

import "container/heap"

// EventFunc is a scheduled event's body. It is invoked with the time it
// fires at and a Scheduler handle through which it may enqueue successor
// events. It returns false on a (logged, non-fatal) failure, per spec
// §7's tally-refusal propagation policy.
type EventFunc func(t float64, schedule Scheduler) bool

// Scheduler is the only view an event body has of the queue: it may insert
// further events, but never peek or pop. This preserves invariant I1 (no
// event is ever inserted with t < current_time is the caller's
// responsibility, not something a misbehaving event could violate by
// draining the queue out from under the driver).
type Scheduler interface {
	Schedule(e ScheduledEvent)
}

// ScheduledEvent pairs a firing time with the closure that runs at that
// time. Ordering in the queue is strictly by T ascending; ties are broken
// in insertion order (FIFO), via the queue's internal sequence counter.
type ScheduledEvent struct {
	T   float64
	Run EventFunc
}

// MakeEvent wraps a user-supplied event function, binding nothing beyond
// what the queue needs to order it. It exists chiefly so call sites read
// the way the original source's MakeScheduledEvent did.
func MakeEvent(t float64, fn EventFunc) ScheduledEvent {
	return ScheduledEvent{T: t, Run: fn}
}

// queuedEvent is the heap element: a ScheduledEvent plus the monotonic
// sequence number used to break ties at equal T (O2).
type queuedEvent struct {
	event ScheduledEvent
	seq   uint64
}

type eventHeap []queuedEvent

func (h eventHeap) Len() int { return len(h) }
func (h eventHeap) Less(i, j int) bool {
	if h[i].event.T != h[j].event.T {
		return h[i].event.T < h[j].event.T
	}
	return h[i].seq < h[j].seq
}
func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(queuedEvent))
}
func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// EventQueue is a single-threaded, time-ordered min-priority queue of
// ScheduledEvents. It is generic only in the sense that it carries
// arbitrary event closures; the time type is fixed to float64 (days) per
// the SIR model's needs.
type EventQueue struct {
	heap    eventHeap
	nextSeq uint64
	now     float64
}

// NewEventQueue creates an empty EventQueue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Schedule inserts e into the queue. Scheduling an event with e.T before the
// queue's current time is a contract violation (I1): it indicates a
// programmer error, not a recoverable runtime condition, so it panics in
// debug-equivalent fashion rather than silently corrupting ordering.
func (q *EventQueue) Schedule(e ScheduledEvent) {
	if e.T < q.now {
		panic("sirsim: scheduled event in the past")
	}
	heap.Push(&q.heap, queuedEvent{event: e, seq: q.nextSeq})
	q.nextSeq++
}

// Empty reports whether the queue holds no events.
func (q *EventQueue) Empty() bool { return len(q.heap) == 0 }

// Top returns the earliest-scheduled event without removing it.
func (q *EventQueue) Top() ScheduledEvent { return q.heap[0].event }

// Pop removes the earliest-scheduled event. Current_time advances to the
// popped event's T, preserving I2 (monotonic consumption).
func (q *EventQueue) Pop() {
	item := heap.Pop(&q.heap).(queuedEvent)
	q.now = item.event.T
}
