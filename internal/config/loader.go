package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/transition"
)

const (
	userDir   = ".dimensions"
	userFile  = "config.yaml"
	localFile = "configs/dimensions.yaml"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.dimensions/config.yaml -> ./configs/dimensions.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (Settings, error) {
	return LoadWithLogger(customPath, nil)
}

// LoadWithLogger is Load that reports which source was used.
func LoadWithLogger(customPath string, logger *log.Logger) (Settings, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Settings{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Settings{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		debugf(logger, "loaded config", "path", customPath)
		return cfg, nil
	}

	// Try user config directory
	if path := UserConfigPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				debugf(logger, "loaded config", "path", path)
				return cfg, nil
			} else if logger != nil {
				logger.Warn("ignoring invalid config", "path", path, "err", err)
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localFile); err == nil {
		if cfg, err := Parse(data); err == nil {
			debugf(logger, "loaded config", "path", localFile)
			return cfg, nil
		} else if logger != nil {
			logger.Warn("ignoring invalid config", "path", localFile, "err", err)
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultSettings(), nil // Fallback to hardcoded if embed fails
	}
	debugf(logger, "loaded embedded config")
	return cfg, nil
}

// Parse decodes YAML over the hardcoded defaults and validates the result.
func Parse(data []byte) (Settings, error) {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (s Settings) Validate() error {
	if s.Playfield.Width <= 0 || s.Playfield.Height <= 0 {
		return fmt.Errorf("config: playfield must be positive, got %vx%v", s.Playfield.Width, s.Playfield.Height)
	}
	if s.Player.Size <= 0 {
		return fmt.Errorf("config: player size must be positive, got %v", s.Player.Size)
	}
	if s.Player.Trail < 0 {
		return fmt.Errorf("config: player trail must not be negative, got %d", s.Player.Trail)
	}
	for name, d := range s.Tracks {
		if d < 0 {
			return fmt.Errorf("config: track %q has negative duration %v", name, d)
		}
	}
	for name, tc := range s.Transitions {
		if _, err := transition.ParseKind(name); err != nil {
			return fmt.Errorf("config: unknown transition %q (want one of %v)", name, transition.Kinds())
		}
		if tc.Size <= 0 || tc.Rate <= 0 {
			return fmt.Errorf("config: transition %q needs positive size and rate", name)
		}
	}
	for level, name := range s.Themes {
		if c, ok := core.ParseColor(name); !ok || c == core.ColorBlack {
			return fmt.Errorf("config: level %q has unknown theme color %q", level, name)
		}
	}
	if _, err := ParseDifficulty(string(s.Difficulty)); err != nil {
		return err
	}
	if s.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", s.FPS)
	}
	return nil
}

// Marshal encodes settings back to YAML.
func Marshal(s Settings) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userDir, userFile)
}

func debugf(logger *log.Logger, msg string, kv ...any) {
	if logger != nil {
		logger.Debug(msg, kv...)
	}
}
