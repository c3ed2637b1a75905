package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// execute runs the root command with fresh flag values and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flagFPS, flagSeed = 60, 0
	flagConfig, flagDifficulty, flagLogFile = "", "", ""
	flagClassic, flagVerbose = false, false
	flagTicks, flagFlapEvery, flagFireEvery = 36000, 0, 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListShowsVariants(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, id := range []string{"flappy", "flappy_classic"} {
		if !strings.Contains(out, id) {
			t.Errorf("expected %q in list output:\n%s", id, out)
		}
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	args := []string{"simulate", "--seed", "42", "--ticks", "2000", "--log-file", t.TempDir() + "/sim.log"}

	first, err := execute(t, args...)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	second, err := execute(t, args...)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	if first != second {
		t.Errorf("same seed produced different results:\n%s\n---\n%s", first, second)
	}
	if !strings.Contains(first, "seed:     42") || !strings.Contains(first, "hash:") {
		t.Errorf("unexpected output:\n%s", first)
	}
}

func TestSimulateFixedCadence(t *testing.T) {
	// Never flapping, the flyer sinks to the ground and hits the first pipe.
	out, err := execute(t, "simulate", "--seed", "3", "--flap-every", "100000", "--log-file", t.TempDir()+"/sim.log")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if !strings.Contains(out, "phase:    game_over") || !strings.Contains(out, "score:    0") {
		t.Errorf("expected an early crash:\n%s", out)
	}
}

func TestConfigPrintsEffectiveYAML(t *testing.T) {
	out, err := execute(t, "config", "--classic", "--difficulty", "easy")
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	cfg, err := config.ParseFlappy([]byte(out))
	if err != nil {
		t.Fatalf("output is not a valid config: %v\n%s", err, out)
	}
	if cfg.Missiles.Enabled || cfg.Difficulty.Enabled || cfg.Effects.Trail.Enabled {
		t.Error("classic variant should disable missiles, difficulty and trail")
	}
}

func TestConfigRejectsMissingFile(t *testing.T) {
	if _, err := execute(t, "config", "--config", t.TempDir()+"/missing.yaml"); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestCheckConfigReportsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  base_gap: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	flappy.SetDifficultyPreset("")
	flappy.SetConfigPath(path)
	defer flappy.SetConfigPath("")

	for _, id := range []string{"flappy", "flappy_classic"} {
		if err := checkConfig(id); err == nil {
			t.Errorf("%s: expected an error for an invalid config file", id)
		}
	}

	flappy.SetConfigPath("")
	if err := checkConfig("flappy"); err != nil {
		t.Errorf("defaults should load cleanly: %v", err)
	}
}
