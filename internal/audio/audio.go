// Package audio keeps the soundtrack clock that drives enemy choreography
// and plays music and sound effects through a pluggable backend.
package audio

import "time"

// Track names.
const (
	TrackPoints    = "points"
	TrackLines     = "lines"
	TrackTriangles = "triangles"
)

// SoundPing is the menu navigation blip.
const SoundPing = "ping"

// DefaultDurations are the track lengths in seconds. Streamed tracks do
// not report their length, so it is looked up here.
var DefaultDurations = map[string]float64{
	TrackPoints:    153,
	TrackLines:     103,
	TrackTriangles: 79,
}

// Player is what scenes need from the audio collaborator.
type Player interface {
	// PlayTrack starts a backing track at start seconds in and resets the
	// soundtrack clock to start.
	PlayTrack(name string, start float64)

	// Stop silences the track and forgets the soundtrack clock.
	Stop()

	// Fade lowers the track to silence over d. The clock keeps running.
	Fade(d time.Duration)

	// Elapsed returns the soundtrack position. ok is false while no
	// track has been started.
	Elapsed() (seconds float64, ok bool)

	// TotalDuration returns the known length of a track, or 0.
	TotalDuration(name string) float64

	// PlaySound plays a one-shot effect.
	PlaySound(name string)
}

// Backend produces the actual sound.
type Backend interface {
	StartMusic(name string, offset time.Duration)
	StopMusic()
	FadeMusic(d time.Duration)
	Effect(name string)
	Close()
}

// Silent is a backend that plays nothing.
type Silent struct{}

func (Silent) StartMusic(string, time.Duration) {}
func (Silent) StopMusic()                       {}
func (Silent) FadeMusic(time.Duration)          {}
func (Silent) Effect(string)                    {}
func (Silent) Close()                           {}
