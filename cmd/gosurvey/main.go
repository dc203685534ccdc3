package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gosurvey/internal/config"
	"github.com/philipparndt/gosurvey/internal/monitoring"
	"github.com/philipparndt/gosurvey/pkg/analysis"
	"github.com/philipparndt/gosurvey/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	decimals   int
	quiet      bool

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gosurvey",
	Short: "Surveying geometry calculator",
	Long: `gosurvey fits circles, pipe ends and planes to surveyed points, projects points
onto axes and baselines, solves triangles, and fits rigid, similarity and affine
transformations between point sets.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "JSON settings file")
	rootCmd.PersistentFlags().IntVar(&decimals, "decimals", config.DefaultDecimals, "Decimals in printed results")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress diagnostic messages")
}

func loadSettings(cmd *cobra.Command, args []string) error {
	if quiet {
		monitoring.SetLogger(nil)
	}

	cfg = config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		monitoring.Logf("loaded settings from %s", configPath)
	}

	if cmd.Flags().Changed("decimals") {
		d := decimals
		cfg.Decimals = &d
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// formatter renders numbers with the configured decimals
func formatter() analysis.Formatter {
	return analysis.Formatter{Decimals: cfg.GetDecimals()}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
