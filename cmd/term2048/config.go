package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use, after the config file
search and any --size/--start-tiles/--target overrides, as YAML.

Search order: --config, ~/.term2048/config.yaml, ./configs/term2048.yaml,
then the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "# source: %s\n", source)
	os.Stdout.Write(data)
	return nil
}
