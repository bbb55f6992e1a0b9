package schedule

import (
	"fmt"
	"sort"
)

// Entry is an action due at a soundtrack position in seconds.
type Entry struct {
	At     float64
	Action Action
}

func (e Entry) String() string {
	return fmt.Sprintf("%.3fs %T", e.At, e.Action)
}

// Schedule is an immutable list of entries ordered by time.
// Entries sharing a timestamp keep the order they were given in.
type Schedule struct {
	entries []Entry
}

// New builds a schedule from entries in any order.
func New(entries ...Entry) Schedule {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].At < sorted[j].At
	})
	return Schedule{entries: sorted}
}

// Concat builds a schedule from several entry groups.
func Concat(groups ...[]Entry) Schedule {
	var all []Entry
	for _, g := range groups {
		all = append(all, g...)
	}
	return New(all...)
}

// Len returns the number of entries.
func (s Schedule) Len() int {
	return len(s.entries)
}

// At returns entry i.
func (s Schedule) At(i int) Entry {
	return s.entries[i]
}

// Entries returns a copy of all entries.
func (s Schedule) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// CountBefore returns the number of entries strictly earlier than clock.
func (s Schedule) CountBefore(clock float64) int {
	return sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].At >= clock
	})
}

// CountThrough returns the number of entries due at or before clock.
func (s Schedule) CountThrough(clock float64) int {
	return sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].At > clock
	})
}

// End returns the timestamp of the last entry, or 0 for an empty schedule.
func (s Schedule) End() float64 {
	if len(s.entries) == 0 {
		return 0
	}
	return s.entries[len(s.entries)-1].At
}
