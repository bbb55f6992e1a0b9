package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/dimensions/internal/core"
)

// recordingBackend remembers what it was asked to play.
type recordingBackend struct {
	music   string
	offset  time.Duration
	stopped int
	fade    time.Duration
	effects []string
}

func (b *recordingBackend) StartMusic(name string, offset time.Duration) {
	b.music, b.offset = name, offset
}
func (b *recordingBackend) StopMusic()                { b.stopped++ }
func (b *recordingBackend) FadeMusic(d time.Duration) { b.fade = d }
func (b *recordingBackend) Effect(name string)        { b.effects = append(b.effects, name) }
func (b *recordingBackend) Close()                    {}

func newTestSoundtrack() (*Soundtrack, *recordingBackend, *core.ManualClock) {
	b := &recordingBackend{}
	clk := core.NewManualClock(time.Unix(1_000_000, 0))
	return NewSoundtrack(b, clk, nil, nil), b, clk
}

func TestSoundtrackClock(t *testing.T) {
	s, b, clk := newTestSoundtrack()

	if _, ok := s.Elapsed(); ok {
		t.Fatal("Elapsed() should be unavailable before a track starts")
	}

	s.PlayTrack(TrackPoints, 0)
	if b.music != TrackPoints {
		t.Errorf("backend music = %q, expected %q", b.music, TrackPoints)
	}
	clk.Advance(2500 * time.Millisecond)
	if e, ok := s.Elapsed(); !ok || e != 2.5 {
		t.Errorf("Elapsed() = %v, %v, expected 2.5", e, ok)
	}

	s.Fade(500 * time.Millisecond)
	clk.Advance(time.Second)
	if e, _ := s.Elapsed(); e != 3.5 {
		t.Errorf("Elapsed() after fade = %v, expected the clock to keep running", e)
	}
	if b.fade != 500*time.Millisecond {
		t.Errorf("backend fade = %v", b.fade)
	}

	s.Stop()
	if _, ok := s.Elapsed(); ok {
		t.Error("Elapsed() should be unavailable after Stop")
	}
	if b.stopped != 1 {
		t.Errorf("backend stopped %d times, expected 1", b.stopped)
	}
}

func TestSoundtrackStartOffset(t *testing.T) {
	s, b, clk := newTestSoundtrack()
	s.PlayTrack(TrackLines, 40)
	clk.Advance(time.Second)

	if e, _ := s.Elapsed(); e != 41 {
		t.Errorf("Elapsed() = %v, expected 41", e)
	}
	if b.offset != 40*time.Second {
		t.Errorf("backend offset = %v, expected 40s", b.offset)
	}

	s.PlayTrack(TrackLines, 0)
	if e, _ := s.Elapsed(); e != 0 {
		t.Errorf("Elapsed() after replay = %v, expected 0", e)
	}
}

func TestTotalDuration(t *testing.T) {
	s, _, _ := newTestSoundtrack()

	tests := []struct {
		track    string
		expected float64
	}{
		{TrackPoints, 153},
		{TrackLines, 103},
		{TrackTriangles, 79},
		{"unknown", 0},
	}

	for _, tc := range tests {
		if got := s.TotalDuration(tc.track); got != tc.expected {
			t.Errorf("TotalDuration(%q) = %v, expected %v", tc.track, got, tc.expected)
		}
	}
}

func TestPlaySoundForwards(t *testing.T) {
	s, b, _ := newTestSoundtrack()
	s.PlaySound(SoundPing)
	s.PlaySound(SoundPing)
	if len(b.effects) != 2 || b.effects[0] != SoundPing {
		t.Errorf("effects = %v", b.effects)
	}
}

func TestTrackSpecs(t *testing.T) {
	for name := range DefaultDurations {
		if _, ok := trackSpecs[name]; !ok {
			t.Errorf("track %q has no synth spec", name)
		}
	}
}

func TestTrackGeneratorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for name, spec := range trackSpecs {
		g := newTrackGenerator(rate, spec, 3*time.Second)
		samples := make([][2]float64, 2048)
		n, ok := g.Stream(samples)
		if !ok || n != len(samples) {
			t.Errorf("%s: Stream() = %d, %v", name, n, ok)
		}
		for i := 0; i < n; i++ {
			if math.Abs(samples[i][0]) > 1 || samples[i][0] != samples[i][1] {
				t.Fatalf("%s: sample %d = %v", name, i, samples[i])
			}
		}
		if g.Err() != nil {
			t.Errorf("%s: Err() = %v", name, g.Err())
		}
	}
}

func TestPingIsShort(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := beep.Take(rate.N(pingDuration), newPingGenerator(rate, pingFreq))

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != rate.N(pingDuration) {
		t.Errorf("ping streamed %d samples, expected %d", total, rate.N(pingDuration))
	}
}

// constant streams ones forever.
type constant struct{}

func (constant) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{1, 1}
	}
	return len(samples), true
}
func (constant) Err() error { return nil }

func TestFader(t *testing.T) {
	f := &fader{Streamer: constant{}}
	buf := make([][2]float64, 10)

	if n, ok := f.Stream(buf); !ok || n != 10 || buf[9][0] != 1 {
		t.Fatalf("unfaded Stream() = %d, %v, last %v", n, ok, buf[9])
	}

	f.start(4)
	n, ok := f.Stream(buf)
	if ok || n != 4 {
		t.Errorf("fading Stream() = %d, %v, expected 4, false", n, ok)
	}
	expected := []float64{1, 0.75, 0.5, 0.25}
	for i, g := range expected {
		if buf[i][0] != g {
			t.Errorf("gain[%d] = %v, expected %v", i, buf[i][0], g)
		}
	}
}
