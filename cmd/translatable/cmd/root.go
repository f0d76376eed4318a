package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/translatable"
)

var (
	flagConfig   string
	flagPath     string
	flagSeekMode string
	flagOverlap  string
)

var rootCmd = &cobra.Command{
	Use:   "translatable",
	Short: "Inspect and validate hierarchical translation files",
	Long: `translatable works with directories of TOML/YAML translation files
whose leaves map ISO 639-1 language codes to template strings.

Settings come from translatable.toml in the working directory (if present)
and can be overridden per invocation with --path, --seek-mode and --overlap.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", translatable.ConfigFile, "configuration file")
	rootCmd.PersistentFlags().StringVar(&flagPath, "path", "", "translations directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagSeekMode, "seek-mode", "", "alphabetical or unalphabetical (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagOverlap, "overlap", "", "overwrite or ignore (overrides config)")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// loadEngine builds an engine from the config file plus flag overrides.
func loadEngine() (*translatable.Translatable, error) {
	cfg, err := translatable.LoadConfig(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagPath != "" {
		cfg.Path = flagPath
	}
	if flagSeekMode != "" {
		cfg.SeekMode = translatable.SeekMode(flagSeekMode)
	}
	if flagOverlap != "" {
		cfg.Overlap = translatable.Overlap(flagOverlap)
	}

	return translatable.New(
		translatable.WithFS(os.DirFS(cfg.Path)),
		translatable.WithSeekMode(cfg.SeekMode),
		translatable.WithOverlap(cfg.Overlap),
	)
}
