package subtitle

import "github.com/vovakirdan/dimensions/internal/core"

// Queue shows subtitles first in, first out. At most one is current.
type Queue struct {
	clock   core.Clock
	pending []*Subtitle
	current *Subtitle
}

// NewQueue creates an empty queue timed by clock. A nil clock means the
// system clock.
func NewQueue(clock core.Clock) *Queue {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Queue{clock: clock}
}

// Add appends subtitles to the end of the queue.
func (q *Queue) Add(subs ...Subtitle) {
	for i := range subs {
		s := subs[i]
		s.start(q.clock)
		q.pending = append(q.pending, &s)
	}
}

// Clear drops the current subtitle and everything queued.
func (q *Queue) Clear() {
	q.pending = nil
	q.current = nil
}

// Len returns the number of subtitles waiting behind the current one.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Idle reports whether nothing is showing and nothing is queued.
func (q *Queue) Idle() bool {
	return q.current == nil && len(q.pending) == 0
}

// Current returns the text on screen, if any.
func (q *Queue) Current() (string, bool) {
	if q.current == nil {
		return "", false
	}
	return q.current.Text, true
}

// Update ticks the current subtitle and promotes the next one once it
// retires. A promoted subtitle's timer starts from the moment it shows.
func (q *Queue) Update() {
	if q.current == nil {
		q.promote()
		return
	}
	q.current.update()
	if q.current.done {
		q.current = nil
		q.promote()
	}
}

func (q *Queue) promote() {
	if len(q.pending) == 0 {
		return
	}
	q.current = q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	q.current.timer.Reset()
}

// Draw renders the current subtitle.
func (q *Queue) Draw(r core.Renderer) {
	if q.current != nil {
		q.current.draw(r)
	}
}
