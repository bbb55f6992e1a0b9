package schedule

// Step describes one realized entry.
type Step struct {
	Entry Entry

	// Skipped counts entries the cursor jumped over after firing because
	// the clock had already moved past them. They are never replayed.
	Skipped int
}

// Sequencer walks a schedule with a cursor that never moves backwards.
type Sequencer struct {
	schedule Schedule
	cursor   int
}

// NewSequencer starts a cursor at the beginning of s.
func NewSequencer(s Schedule) *Sequencer {
	return &Sequencer{schedule: s}
}

// Cursor returns how many entries have been fired or skipped.
func (q *Sequencer) Cursor() int {
	return q.cursor
}

// Done reports whether every entry has been consumed.
func (q *Sequencer) Done() bool {
	return q.cursor >= q.schedule.Len()
}

// Schedule returns the schedule being walked.
func (q *Sequencer) Schedule() Schedule {
	return q.schedule
}

// Next realizes at most one entry for this tick.
//
// The entry under the cursor fires once the clock has reached it. The
// cursor then advances by one and is pulled forward past every entry
// strictly earlier than the clock, so a jump ahead drops the entries in
// between. Entries sharing the clock's exact timestamp stay pending and
// fire on the following ticks, one per tick.
func (q *Sequencer) Next(clock float64) (Step, bool) {
	if q.Done() {
		return Step{}, false
	}
	e := q.schedule.At(q.cursor)
	if e.At > clock {
		return Step{}, false
	}
	q.cursor++

	step := Step{Entry: e}
	if behind := q.schedule.CountBefore(clock); behind > q.cursor {
		step.Skipped = behind - q.cursor
		q.cursor = behind
	}
	return step, true
}
