// Package config provides YAML-based game configuration loading and
// difficulty presets for Dimensions.
package config

import (
	"math/rand"
	"sort"
	"time"

	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/objects"
	"github.com/vovakirdan/dimensions/internal/transition"
)

// Settings contains all configuration for the game.
type Settings struct {
	Playfield   PlayfieldConfig             `yaml:"playfield"`
	Player      PlayerConfig                `yaml:"player"`
	Tracks      map[string]float64          `yaml:"tracks"` // track name -> duration in seconds
	Transitions map[string]TransitionConfig `yaml:"transitions"`
	Themes      map[string]string           `yaml:"themes,omitempty"` // level id -> progress bar color name
	Difficulty  DifficultyPreset            `yaml:"difficulty"`
	Input       InputConfig                 `yaml:"input"`
	Audio       AudioConfig                 `yaml:"audio"`
	FPS         int                         `yaml:"fps"`
}

// PlayfieldConfig defines the world area in world units.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player square.
type PlayerConfig struct {
	Size   float64 `yaml:"size"`
	Speed  float64 `yaml:"speed"`
	Boost  float64 `yaml:"boost"`
	Trail  int     `yaml:"trail"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

// TransitionConfig tunes one transition kind.
type TransitionConfig struct {
	Size float64 `yaml:"size"`
	Rate float64 `yaml:"rate"`
}

// InputConfig defines keyboard handling.
type InputConfig struct {
	// HoldMs is how long a key counts as held after its last press.
	// Terminals only report repeats, never releases.
	HoldMs int `yaml:"hold_ms"`
}

// AudioConfig defines the speaker.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0 is unchanged, negative is quieter
}

// HoldWindow returns the held-key window as a duration.
func (s Settings) HoldWindow() time.Duration {
	return time.Duration(s.Input.HoldMs) * time.Millisecond
}

// Field returns the playfield box anchored at the origin.
func (s Settings) Field() core.Box {
	return core.Box{W: s.Playfield.Width, H: s.Playfield.Height}
}

// Env builds the entity environment. A nil rng is seeded from the clock.
func (s Settings) Env(clock core.Clock, rng *rand.Rand) objects.Env {
	if clock == nil {
		clock = core.SystemClock{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(clock.Now().UnixNano()))
	}
	return objects.Env{
		Field: s.Field(),
		Clock: clock,
		Rand:  rng,
		Player: objects.PlayerConfig{
			Size:  s.Player.Size,
			Speed: s.Player.Speed,
			Boost: s.Player.Boost,
			Trail: s.Player.Trail,
			Spawn: core.V(s.Player.SpawnX, s.Player.SpawnY),
		},
	}
}

// TransitionSpecs converts the transitions section, skipping unknown kinds.
func (s Settings) TransitionSpecs() map[transition.Kind]transition.Spec {
	specs := make(map[transition.Kind]transition.Spec, len(s.Transitions))
	for name, tc := range s.Transitions {
		kind, err := transition.ParseKind(name)
		if err != nil {
			continue
		}
		specs[kind] = transition.Spec{Size: tc.Size, Rate: tc.Rate}
	}
	return specs
}

// ThemeColors resolves the theme overrides. Unknown names are skipped;
// Validate reports them.
func (s Settings) ThemeColors() map[string]core.Color {
	themes := make(map[string]core.Color, len(s.Themes))
	for level, name := range s.Themes {
		if c, ok := core.ParseColor(name); ok {
			themes[level] = c
		}
	}
	return themes
}

// TrackNames returns the configured track names, sorted.
func (s Settings) TrackNames() []string {
	names := make([]string, 0, len(s.Tracks))
	for name := range s.Tracks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
