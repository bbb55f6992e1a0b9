package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dimensions/internal/audio"
	"github.com/vovakirdan/dimensions/internal/config"
	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/globals"
	"github.com/vovakirdan/dimensions/internal/objects"
	"github.com/vovakirdan/dimensions/internal/platform/tui"
	"github.com/vovakirdan/dimensions/internal/registry"
	"github.com/vovakirdan/dimensions/internal/scene"
	"github.com/vovakirdan/dimensions/internal/transition"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Start the game at the home menu.

Controls:
  Arrows/WASD  - Move (menus: navigate)
  Shift        - Move three times faster
  Enter/Space  - Select
  Esc          - Back to home (quits from home once you have played)
  E            - Toggle pro/noob mode (collisions on/off)
  Ctrl+S       - Save a screenshot
  Ctrl+C       - Quit

Difficulty options:
  pro   - Bullets kill (default)
  noob  - Collisions off

Examples:
  dimensions play
  dimensions play --level triangle
  dimensions play --difficulty noob --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// loadSettings loads the config file and applies flag overrides.
func loadSettings() (config.Settings, error) {
	settings, err := config.LoadWithLogger(flagConfig, logger)
	if err != nil {
		return settings, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return settings, err
		}
		config.ApplyDifficultyPreset(&settings, preset)
	}
	if flagFPS > 0 {
		settings.FPS = flagFPS
	}
	return settings, nil
}

// musicReady reports whether the backend drives a real output device.
func musicReady(backend audio.Backend) bool {
	_, ok := backend.(*audio.Speaker)
	return ok
}

func runPlay(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	if flagLevel != "" && !registry.Exists(flagLevel) {
		return fmt.Errorf("unknown level %q (run 'dimensions levels' to see available levels)", flagLevel)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: settings.FPS,
		Seed:     flagSeed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	clock := core.SystemClock{}
	rng := rand.New(rand.NewSource(cfg.Seed))

	backend := audio.Open(settings.Audio.Enabled, settings.Audio.Volume, logger)
	defer backend.Close()
	soundtrack := audio.NewSoundtrack(backend, clock, settings.Tracks, logger)

	rt := objects.NewRuntime(settings.Env(clock, rng))
	rt.SetCollisions(settings.Difficulty.Collisions())

	manager := scene.NewManager(scene.Services{
		Runtime:     rt,
		Transitions: transition.NewManager(settings.TransitionSpecs()),
		Audio:       soundtrack,
		Logger:      logger,
		Rand:        rng,
		Clock:       clock,
		Themes:      settings.ThemeColors(),
	})
	manager.Services().Globals.Set(globals.MusicInit, musicReady(backend))

	if flagLevel != "" {
		g := manager.Services().Globals
		g.Set(globals.FirstTimePlayed, true)
		g.Set(globals.UpcomingLevel, flagLevel)
		manager.SwitchMode(scene.LevelIntro, true, false)
	}

	logger.Info("game started",
		"seed", cfg.Seed,
		"fps", cfg.TickRate,
		"difficulty", settings.Difficulty,
		"level", flagLevel,
		"music", musicReady(backend),
	)

	if err := tui.Run(manager, tui.Options{
		Runtime:    cfg,
		Field:      settings.Field(),
		HoldWindow: settings.HoldWindow(),
		Clock:      clock,
		Logger:     logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("game closed")
	return nil
}
