package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dimensions/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all levels",
	Long:  `Shows every level in play order with its soundtrack, then the configured track lengths.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	levels := registry.List()

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Levels:")
	fmt.Println()

	// Calculate column widths
	idLen, trackLen := len("ID"), len("Track")
	for _, l := range levels {
		idLen = max(idLen, len(l.ID))
		trackLen = max(trackLen, len(l.Track))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", idLen, "ID", trackLen, "Track", "Title")
	fmt.Printf("  %-*s  %-*s  %s\n", idLen, "--", trackLen, "-----", "-----")
	for _, l := range levels {
		fmt.Printf("  %-*s  %-*s  %s\n", idLen, l.ID, trackLen, l.Track, l.Title)
	}

	fmt.Println()
	fmt.Println("Tracks:")
	for _, name := range settings.TrackNames() {
		fmt.Printf("  %-*s  %6.1fs\n", trackLen, name, settings.Tracks[name])
	}

	fmt.Println()
	fmt.Println("Run 'dimensions play --level <id>' to start at a level.")
	return nil
}
