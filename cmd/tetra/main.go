// tetra is a falling-block puzzle arcade for the terminal.
//
// Usage:
//
//	tetra list               - List available variants
//	tetra play <variant>     - Play a variant
//	tetra menu               - Start menu to pick variants interactively
//	tetra serve              - Start SSH server for remote play
//	tetra scores [variant]   - Show high scores, or a summary of all variants
//	tetra simulate           - Run a headless game with random input
//	tetra config [variant]   - Print the default or effective config
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--tick <duration>    - Override the gravity interval (e.g. 300ms)
//	--config <path>      - Custom tetris config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetra-arcade/internal/config"
	"github.com/vovakirdan/tetra-arcade/internal/core"
	"github.com/vovakirdan/tetra-arcade/internal/registry"
	"github.com/vovakirdan/tetra-arcade/internal/storage"

	// Import variants to register them
	_ "github.com/vovakirdan/tetra-arcade/internal/games/variants"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagTick       time.Duration
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetra",
	Short: "Tetra - falling blocks in your terminal",
	Long: `Tetra is a terminal falling-block puzzle game with local and SSH play.

Available commands:
  list      - Show all available variants
  play      - Play a specific variant directly
  menu      - Interactive variant picker menu
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Headless run with random input
  config    - Print game config

Examples:
  tetra list
  tetra play tetris
  tetra play tetris_plus --difficulty hard
  tetra menu
  tetra serve --ssh :2222
  tetra simulate --steps 2000 --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Gravity interval override (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tetris config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the command logger. Interactive modes own the terminal,
// so without --log-file their logs are discarded.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case interactive:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "tetra",
	})
	return logger, closeFn, nil
}

// loadGameConfig reads the tetris config and resolves --difficulty.
// An empty preset is returned when the flag was not given.
func loadGameConfig() (config.TetrisConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	preset, err := parseDifficultyFlag()
	return cfg, preset, err
}

// parseDifficultyFlag validates --difficulty; unset yields "".
func parseDifficultyFlag() (config.DifficultyPreset, error) {
	if flagDifficulty == "" {
		return "", nil
	}
	return config.ParsePreset(flagDifficulty)
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickInterval = flagTick
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games still run when it cannot be
// opened, just without saving; the returned close func is always safe.
func openStore(logger *log.Logger) (*storage.Store, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores disabled", "db", flagDBPath, "error", err)
		return nil, func() {}
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing scores database", "error", err)
		}
	}
}

// variantTitle is the display name for id, or id itself when unknown.
func variantTitle(id string) string {
	if g, err := registry.Create(id); err == nil {
		return g.Title()
	}
	return id
}
