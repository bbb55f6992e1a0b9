package audio

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	pingDuration = 120 * time.Millisecond
	pingFreq     = 880
)

// Speaker plays synthesized music and effects on the default output
// device.
type Speaker struct {
	sr     beep.SampleRate
	mixer  *beep.Mixer
	music  *beep.Ctrl
	fade   *fader
	volume float64
	logger *log.Logger
}

// NewSpeaker opens the output device.
func NewSpeaker(volume float64, logger *log.Logger) (*Speaker, error) {
	if logger == nil {
		logger = log.Default()
	}
	sp := &Speaker{
		sr:     sampleRate,
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
	if err := speaker.Init(sp.sr, sp.sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(sp.mixer)
	return sp, nil
}

// Open returns a speaker backend, or Silent when audio is disabled or the
// device cannot be opened.
func Open(enabled bool, volume float64, logger *log.Logger) Backend {
	if logger == nil {
		logger = log.Default()
	}
	if !enabled {
		return Silent{}
	}
	sp, err := NewSpeaker(volume, logger)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		return Silent{}
	}
	return sp
}

func (sp *Speaker) StartMusic(name string, offset time.Duration) {
	spec, ok := trackSpecs[name]
	if !ok {
		sp.logger.Warn("unknown track", "track", name)
		return
	}
	f := &fader{Streamer: newTrackGenerator(sp.sr, spec, offset)}
	ctrl := &beep.Ctrl{Streamer: newVolume(f, sp.volume)}

	speaker.Lock()
	sp.dropMusic()
	sp.music, sp.fade = ctrl, f
	sp.mixer.Add(ctrl)
	speaker.Unlock()
}

func (sp *Speaker) StopMusic() {
	speaker.Lock()
	sp.dropMusic()
	speaker.Unlock()
}

// dropMusic detaches the current track; the mixer removes it on its next
// pass. Callers hold the speaker lock.
func (sp *Speaker) dropMusic() {
	if sp.music != nil {
		sp.music.Paused = true
		sp.music.Streamer = nil
	}
	sp.music, sp.fade = nil, nil
}

func (sp *Speaker) FadeMusic(d time.Duration) {
	speaker.Lock()
	if sp.fade != nil {
		sp.fade.start(sp.sr.N(d))
	}
	speaker.Unlock()
}

func (sp *Speaker) Effect(name string) {
	if name != SoundPing {
		sp.logger.Warn("unknown sound", "sound", name)
		return
	}
	s := newVolume(beep.Take(sp.sr.N(pingDuration), newPingGenerator(sp.sr, pingFreq)), sp.volume)
	speaker.Lock()
	sp.mixer.Add(s)
	speaker.Unlock()
}

func (sp *Speaker) Close() {
	speaker.Lock()
	sp.dropMusic()
	sp.mixer.Clear()
	speaker.Unlock()
}
