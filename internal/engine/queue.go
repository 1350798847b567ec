package engine

// QueueCapacity is the number of events kept in the history buffer.
const QueueCapacity = 5

// Queue is the bounded event history. Free slots hold EvNone; when the buffer
// is full the oldest entry is dropped to admit the newest.
type Queue struct {
	buf  [QueueCapacity]Event
	last Event
}

// Push appends ev and records it as the last event.
func (q *Queue) Push(ev Event) {
	if ev == EvNone {
		return
	}
	if q.IsFull() {
		copy(q.buf[:], q.buf[1:])
		q.buf[QueueCapacity-1] = EvNone
	}
	for i := range q.buf {
		if q.buf[i] == EvNone {
			q.buf[i] = ev
			break
		}
	}
	q.last = ev
}

// Last returns the most recently pushed event.
func (q *Queue) Last() Event { return q.last }

// IsEmpty reports whether nothing was pushed yet.
func (q *Queue) IsEmpty() bool { return q.buf[0] == EvNone }

// IsFull reports whether the next push drops the oldest entry.
func (q *Queue) IsFull() bool { return q.buf[QueueCapacity-1] != EvNone }

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	n := 0
	for _, ev := range q.buf {
		if ev != EvNone {
			n++
		}
	}
	return n
}

// Events returns the buffered events, oldest first.
func (q *Queue) Events() []Event {
	out := make([]Event, 0, QueueCapacity)
	for _, ev := range q.buf {
		if ev != EvNone {
			out = append(out, ev)
		}
	}
	return out
}
