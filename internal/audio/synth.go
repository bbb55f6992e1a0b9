package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// trackSpec describes a procedurally generated backing loop.
type trackSpec struct {
	root  float64 // Hz
	bpm   float64
	steps []int // semitones above root, one per eighth note
}

var trackSpecs = map[string]trackSpec{
	TrackPoints:    {root: 220, bpm: 120, steps: []int{0, 7, 12, 7, 3, 7, 10, 7}},
	TrackLines:     {root: 196, bpm: 132, steps: []int{0, 5, 7, 12, 0, 5, 10, 12}},
	TrackTriangles: {root: 246.94, bpm: 150, steps: []int{0, 4, 7, 11, 12, 11, 7, 4}},
}

// trackGenerator plays an endless arpeggio over a bass drone.
type trackGenerator struct {
	sr    beep.SampleRate
	spec  trackSpec
	note  int // samples per step
	pos   int
	phase float64
}

func newTrackGenerator(sr beep.SampleRate, spec trackSpec, offset time.Duration) *trackGenerator {
	note := int(float64(sr) * 60 / spec.bpm / 2)
	if note <= 0 {
		note = 1
	}
	return &trackGenerator{sr: sr, spec: spec, note: note, pos: sr.N(offset)}
}

func (g *trackGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		step := g.spec.steps[(g.pos/g.note)%len(g.spec.steps)]
		freq := g.spec.root * math.Pow(2, float64(step)/12)

		inNote := float64(g.pos%g.note) / float64(g.sr)
		env := math.Exp(-6 * inNote)
		lead := math.Sin(2 * math.Pi * g.phase)

		t := float64(g.pos) / float64(g.sr)
		bass := math.Sin(2 * math.Pi * g.spec.root / 2 * t)

		sample := 0.25*env*lead + 0.1*bass
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *trackGenerator) Err() error { return nil }

// pingGenerator is a short decaying sine blip.
type pingGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newPingGenerator(sr beep.SampleRate, freq float64) *pingGenerator {
	return &pingGenerator{sr: sr, freq: freq}
}

func (g *pingGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.3 * math.Exp(-t*30) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *pingGenerator) Err() error { return nil }

// fader ramps its streamer down to silence once started, then ends.
type fader struct {
	beep.Streamer
	total  int
	left   int
	fading bool
}

// start begins a linear ramp over n samples. A running ramp is not
// restarted.
func (f *fader) start(n int) {
	if f.fading {
		return
	}
	if n <= 0 {
		n = 1
	}
	f.fading = true
	f.total, f.left = n, n
}

func (f *fader) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.Streamer.Stream(samples)
	if !f.fading {
		return n, ok
	}
	for i := 0; i < n; i++ {
		if f.left <= 0 {
			return i, false
		}
		gain := float64(f.left) / float64(f.total)
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.left--
	}
	return n, ok
}

// newVolume wraps s with a linear volume. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
