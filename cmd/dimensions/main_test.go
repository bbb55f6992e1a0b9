package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/dimensions/internal/audio"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in       string
		expected string
	}{
		{"~/.dimensions/dimensions.log", filepath.Join(home, ".dimensions", "dimensions.log")},
		{"~", home},
		{"/tmp/dimensions.log", "/tmp/dimensions.log"},
		{"logs/~/x.log", "logs/~/x.log"},
	}

	for _, tc := range tests {
		got, err := expandHome(tc.in)
		if err != nil {
			t.Fatalf("expandHome(%q) error: %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("expandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"play", "levels", "config"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
	for _, flag := range []string{"fps", "seed", "config", "level", "difficulty", "log-file", "log-level"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("flag --%s not registered", flag)
		}
	}
}

func TestMusicReady(t *testing.T) {
	if musicReady(audio.Silent{}) {
		t.Error("silent backend should not report music")
	}
	if musicReady(audio.Open(false, 0, nil)) {
		t.Error("disabled audio should not report music")
	}
}
