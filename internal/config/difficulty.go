package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyPro  DifficultyPreset = "pro"  // bullets kill the player
	DifficultyNoob DifficultyPreset = "noob" // collisions off
)

// ParseDifficulty validates a preset name. Empty means pro.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyPro, nil
	case DifficultyPro, DifficultyNoob:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want pro or noob)", s)
	}
}

// Collisions reports whether the preset starts with collisions enabled.
func (p DifficultyPreset) Collisions() bool {
	return p != DifficultyNoob
}

// ApplyDifficultyPreset overrides the configured difficulty.
func ApplyDifficultyPreset(s *Settings, preset DifficultyPreset) {
	s.Difficulty = preset
}
