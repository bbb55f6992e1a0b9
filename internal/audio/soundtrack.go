package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dimensions/internal/core"
)

// Soundtrack tracks the playback position of the current backing track
// on a clock and forwards playback to a Backend.
type Soundtrack struct {
	mu        sync.Mutex
	backend   Backend
	clock     core.Clock
	durations map[string]float64
	logger    *log.Logger

	started time.Time
	playing bool
}

// NewSoundtrack creates a soundtrack. Nil arguments fall back to the
// silent backend, the system clock and DefaultDurations.
func NewSoundtrack(backend Backend, clock core.Clock, durations map[string]float64, logger *log.Logger) *Soundtrack {
	if backend == nil {
		backend = Silent{}
	}
	if clock == nil {
		clock = core.SystemClock{}
	}
	if durations == nil {
		durations = DefaultDurations
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Soundtrack{backend: backend, clock: clock, durations: durations, logger: logger}
}

// PlayTrack starts name at start seconds in.
func (s *Soundtrack) PlayTrack(name string, start float64) {
	if start < 0 {
		start = 0
	}
	s.mu.Lock()
	s.playing = true
	s.started = s.clock.Now().Add(-core.Seconds(start))
	s.mu.Unlock()

	s.logger.Debug("play track", "track", name, "start", start)
	s.backend.StartMusic(name, core.Seconds(start))
}

// Stop silences the track and drops the clock.
func (s *Soundtrack) Stop() {
	s.mu.Lock()
	s.playing = false
	s.mu.Unlock()
	s.backend.StopMusic()
}

// Fade lowers the track to silence over d.
func (s *Soundtrack) Fade(d time.Duration) {
	s.logger.Debug("fade track", "duration", d)
	s.backend.FadeMusic(d)
}

// Elapsed returns the track position in seconds.
func (s *Soundtrack) Elapsed() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.playing {
		return 0, false
	}
	return s.clock.Now().Sub(s.started).Seconds(), true
}

// TotalDuration returns the length of name in seconds, or 0 if unknown.
func (s *Soundtrack) TotalDuration(name string) float64 {
	return s.durations[name]
}

// PlaySound plays a one-shot effect.
func (s *Soundtrack) PlaySound(name string) {
	s.backend.Effect(name)
}

// Close releases the backend.
func (s *Soundtrack) Close() {
	s.backend.Close()
}
