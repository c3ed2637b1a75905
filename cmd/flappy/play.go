package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play the game",
	Long: `Start playing. The variant defaults to "flappy", or "flappy_classic"
with --classic.

Controls:
  Space/Up/W  - Flap (starts a run when none is active)
  F/X/Right   - Fire a missile
  Left click  - Fire if a missile is ready, otherwise flap
  P/Esc       - Pause
  R           - Restart
  ?           - More help
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Wider gaps, lower top speed
  normal - The default curve
  hard   - Faster start, tighter minimum gap
  fixed  - No progression, stays at the base speed and gap

Examples:
  flappy play
  flappy play flappy_classic
  flappy play --difficulty hard
  flappy play --config ./my-flappy.yaml --log-file flappy.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// checkConfig loads the configuration the variant will use. The game itself
// falls back to defaults on a bad file, so problems are reported here.
func checkConfig(gameID string) error {
	v := flappy.VariantExtended
	if gameID == "flappy_classic" {
		v = flappy.VariantClassic
	}
	_, err := flappy.LoadConfig(v)
	return err
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := variantID()
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'flappy list' to see available variants.")
		os.Exit(1)
	}

	if err := checkConfig(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns the terminal, so logs only go to a file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", "game", gameID, "size", fmt.Sprintf("%dx%d", width, height), "fps", flagFPS)

	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("game exited", "error", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
