// dimensions is a bullet-hell game about shapes, played in the terminal.
//
// Usage:
//
//	dimensions               - Start at the home menu
//	dimensions play          - Same as above
//	dimensions levels        - List available levels
//	dimensions config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible spreads
//	--config <path>       - Use a custom config YAML
//	--level <id>          - Jump straight to a level intro
//	--difficulty <preset> - pro or noob
//	--log-file <path>     - Log destination (default: ~/.dimensions/dimensions.log)
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import levels to register them
	_ "github.com/vovakirdan/dimensions/internal/levels"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagLevel      string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dimensions",
	Short: "Dimensions - dodge points, lines and triangles in your terminal",
	Long: `Dimensions is a rhythm bullet-hell: every level is an enemy shape whose
attacks follow its soundtrack. Survive the track to move on.

Available commands:
  play     - Start the game (default)
  levels   - Show all levels
  config   - Print the effective configuration

Examples:
  dimensions
  dimensions play --level line
  dimensions play --difficulty noob
  dimensions config --config ./my-dimensions.yaml`,
	SilenceErrors:      true,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
	RunE:               runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Start at this level's intro")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: pro, noob")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.dimensions/dimensions.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}
