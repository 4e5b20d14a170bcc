package sirsim

import "testing"

func TestEventQueueOrdersByTime(t *testing.T) {
	q := NewEventQueue()
	var order []string
	record := func(name string) EventFunc {
		return func(t float64, s Scheduler) bool {
			order = append(order, name)
			return true
		}
	}
	q.Schedule(MakeEvent(3.0, record("c")))
	q.Schedule(MakeEvent(1.0, record("a")))
	q.Schedule(MakeEvent(2.0, record("b")))

	for !q.Empty() {
		e := q.Top()
		e.Run(e.T, q)
		q.Pop()
	}

	want := []string{"a", "b", "c"}
	for i, name := range want {
		if order[i] != name {
			t.Errorf("order[%d] = %s, want %s", i, order[i], name)
		}
	}
}

func TestEventQueueBreaksTiesFIFO(t *testing.T) {
	q := NewEventQueue()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		q.Schedule(MakeEvent(1.0, func(t float64, s Scheduler) bool {
			order = append(order, i)
			return true
		}))
	}
	for !q.Empty() {
		e := q.Top()
		e.Run(e.T, q)
		q.Pop()
	}
	for i := 0; i < 5; i++ {
		if order[i] != i {
			t.Errorf(UnequalIntParameterError, "FIFO tie-break position", i, order[i])
		}
	}
}

func TestEventQueueEmpty(t *testing.T) {
	q := NewEventQueue()
	if !q.Empty() {
		t.Error("new queue should be empty")
	}
	q.Schedule(MakeEvent(1.0, func(t float64, s Scheduler) bool { return true }))
	if q.Empty() {
		t.Error("queue with one scheduled event should not be empty")
	}
}

func TestEventQueueSchedulePastPanics(t *testing.T) {
	q := NewEventQueue()
	q.Schedule(MakeEvent(5.0, func(t float64, s Scheduler) bool { return true }))
	q.Pop()

	defer func() {
		if r := recover(); r == nil {
			t.Error("scheduling an event before current time should panic")
		}
	}()
	q.Schedule(MakeEvent(1.0, func(t float64, s Scheduler) bool { return true }))
}

func TestEventQueueScheduleDuringRun(t *testing.T) {
	q := NewEventQueue()
	var secondRan bool
	q.Schedule(MakeEvent(1.0, func(t float64, s Scheduler) bool {
		s.Schedule(MakeEvent(2.0, func(t float64, s Scheduler) bool {
			secondRan = true
			return true
		}))
		return true
	}))

	for !q.Empty() {
		e := q.Top()
		e.Run(e.T, q)
		q.Pop()
	}
	if !secondRan {
		t.Error("event scheduled from within a running event should still run")
	}
}
