// Package subtitle shows timed lines of text one after another.
package subtitle

import (
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/dimensions/internal/core"
)

// Infinite keeps a subtitle on screen until the queue is cleared.
const Infinite time.Duration = -1

const (
	// DefaultSize is the nominal text size of a subtitle.
	DefaultSize = 35

	perChar  = 250 * time.Millisecond
	typeStep = 50 * time.Millisecond
)

// Subtitle is one line of text with a display duration.
type Subtitle struct {
	Text string

	// Duration is how long the line stays up. Zero means a quarter second
	// per character; Infinite never retires.
	Duration time.Duration

	Size  int
	Color core.Color

	// Pos is the center of the text. The zero value centers it on screen.
	Pos core.Vec2

	// OnDone runs when a finite subtitle retires.
	OnDone func()

	timer *core.Timer
	done  bool
}

// Infinite reports whether the subtitle never retires on its own.
func (s *Subtitle) Infinite() bool {
	return s.Duration == Infinite
}

// Timeout returns the effective display duration.
func (s *Subtitle) Timeout() time.Duration {
	if s.Duration > 0 {
		return s.Duration
	}
	return time.Duration(utf8.RuneCountInString(s.Text)) * perChar
}

// Done reports whether the subtitle has retired.
func (s *Subtitle) Done() bool {
	return s.done
}

func (s *Subtitle) start(clock core.Clock) {
	s.timer = core.NewTimer(s.Timeout(), clock)
}

func (s *Subtitle) update() {
	if !s.timer.Tick() || s.Infinite() {
		return
	}
	s.done = true
	if s.OnDone != nil {
		s.OnDone()
	}
}

func (s *Subtitle) draw(r core.Renderer) {
	size := s.Size
	if size <= 0 {
		size = DefaultSize
	}
	pos := s.Pos
	if pos == (core.Vec2{}) {
		pos = r.Bounds().Center()
	}
	r.Blit(r.Text(s.Text, size, s.Color), pos, core.AnchorCenter)
}

// Typed builds a typewriter reveal of text: one short entry per growing
// prefix, then the full text held for hold. onDone runs when the last
// prefix retires, just as the full text appears.
func Typed(text string, hold time.Duration, pos core.Vec2, onDone func()) []Subtitle {
	runes := []rune(text)
	n := len(runes)
	subs := make([]Subtitle, 0, n+1)
	for i := 1; i < n-2; i++ {
		subs = append(subs, Subtitle{Text: string(runes[:i]), Duration: typeStep, Pos: pos})
	}
	last := 0
	if n > 0 {
		last = n - 1
	}
	subs = append(subs,
		Subtitle{Text: string(runes[:last]), Duration: typeStep, Pos: pos, OnDone: onDone},
		Subtitle{Text: text, Duration: hold, Pos: pos},
	)
	return subs
}
