// flappy is a terminal side-scroller: flap through the pipes, earn missiles,
// blast the pipes.
//
// Usage:
//
//	flappy play              - Play the game (missiles and rising difficulty)
//	flappy play --classic    - Play without missiles at a constant pace
//	flappy simulate          - Run a headless game with the autopilot
//	flappy config            - Print the effective configuration
//	flappy list              - List available variants
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--config <path>    - Load a custom config YAML
//	--difficulty <p>   - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>  - Write logs to a file
//	--verbose          - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagClassic    bool
	flagLogFile    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap, shoot and dodge pipes in your terminal",
	Long: `Flappy is a terminal side-scroller. Flap through the gaps between
pipes; every third pipe earns a missile that blasts the pipe ahead.

Available commands:
  play      - Play the game
  simulate  - Run a headless game driven by the autopilot
  config    - Print the effective configuration as YAML
  list      - Show available variants

Examples:
  flappy play
  flappy play --classic
  flappy play --difficulty hard --seed 42
  flappy simulate --ticks 10000 --seed 7
  flappy config --difficulty easy > my-flappy.yaml`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		flappy.SetConfigPath(flagConfig)
		flappy.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagClassic, "classic", false, "Classic variant: no missiles, constant pace")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Logs go to --log-file when set,
// otherwise to fallback. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closer := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// variantID returns the registry ID selected by --classic.
func variantID() string {
	if flagClassic {
		return "flappy_classic"
	}
	return "flappy"
}

// variant returns the game variant selected by --classic.
func variant() flappy.Variant {
	if flagClassic {
		return flappy.VariantClassic
	}
	return flappy.VariantExtended
}
