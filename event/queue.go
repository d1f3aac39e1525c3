package event

import (
	"sync/atomic"

	"github.com/lixenwraith/starglyph/parameter"
)

// EventQueue is a bounded multi-producer, single-consumer ring of scene events
// Producers are the frame loop and the font loader goroutine; only the frame loop drains
//
// Every slot carries a sequence stamp: odd while a writer holds it, 2*(ticket+1) once written.
// Producers that lap the consumer overwrite the oldest events, which are counted in Dropped.
type EventQueue struct {
	slots   [parameter.EventQueueSize]slot
	tail    atomic.Uint64 // next ticket handed to a producer
	head    atomic.Uint64 // next ticket to deliver; stored by the consumer only
	dropped atomic.Uint64
}

type slot struct {
	seq atomic.Uint64
	ev  SceneEvent
}

func stamp(ticket uint64) uint64 {
	return 2 * (ticket + 1)
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims a ticket and publishes ev into its slot; it never blocks
func (eq *EventQueue) Push(ev SceneEvent) {
	ticket := eq.tail.Add(1) - 1
	s := &eq.slots[ticket&parameter.EventBufferMask]

	s.seq.Store(stamp(ticket) - 1)
	s.ev = ev
	s.seq.Store(stamp(ticket))
}

// Drain hands pending events to fn in ticket order and returns how many were delivered
// It stops at the first slot whose writer has not finished; that slot is retried on the next call
func (eq *EventQueue) Drain(fn func(SceneEvent)) int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if lag := tail - head; lag > parameter.EventQueueSize {
		eq.dropped.Add(lag - parameter.EventQueueSize)
		head = tail - parameter.EventQueueSize
	}

	n := 0
	for ; head < tail; head++ {
		s := &eq.slots[head&parameter.EventBufferMask]
		want := stamp(head)

		seq := s.seq.Load()
		if seq > want {
			// Lapped after tail was sampled
			eq.dropped.Add(1)
			continue
		}
		if seq != want {
			break
		}

		ev := s.ev
		if s.seq.Load() != want {
			eq.dropped.Add(1)
			continue
		}
		fn(ev)
		n++
	}

	eq.head.Store(head)
	return n
}

// Consume returns all deliverable events in FIFO order, nil when there are none
func (eq *EventQueue) Consume() []SceneEvent {
	var out []SceneEvent
	eq.Drain(func(ev SceneEvent) {
		out = append(out, ev)
	})
	return out
}

// Len returns the approximate pending count, capped at the ring size
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	if diff := tail - head; diff < parameter.EventQueueSize {
		return int(diff)
	}
	return parameter.EventQueueSize
}

// Dropped counts events overwritten before they were drained
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
