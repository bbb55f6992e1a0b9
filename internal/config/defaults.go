package config

import (
	_ "embed"

	"github.com/vovakirdan/dimensions/internal/audio"
	"github.com/vovakirdan/dimensions/internal/transition"
)

//go:embed defaults/dimensions.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}

// DefaultSettings returns the hardcoded configuration.
func DefaultSettings() Settings {
	tracks := make(map[string]float64, len(audio.DefaultDurations))
	for name, d := range audio.DefaultDurations {
		tracks[name] = d
	}
	transitions := make(map[string]TransitionConfig, len(transition.DefaultSpecs))
	for kind, spec := range transition.DefaultSpecs {
		transitions[string(kind)] = TransitionConfig{Size: spec.Size, Rate: spec.Rate}
	}

	return Settings{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Size:   15,
			Speed:  7,
			Boost:  3,
			Trail:  20,
			SpawnX: 400,
			SpawnY: 450,
		},
		Tracks:      tracks,
		Transitions: transitions,
		Difficulty:  DifficultyPro,
		Input: InputConfig{
			HoldMs: 120,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0,
		},
		FPS: 60,
	}
}
