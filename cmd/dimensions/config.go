package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dimensions/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, after the config
search (--config, ~/.dimensions/config.yaml, ./configs/dimensions.yaml,
embedded defaults) and flag overrides. The output is valid config YAML.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	data, err := config.Marshal(settings)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
