package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/audio/speaker"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/platform/tcellui"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBackend    string
	flagSound      bool
)

func newPlayCmd(env config.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the game",
		Long: `Start a game. Press Enter on the title screen to launch, Enter again
after a crash to start a new round.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  P            - Pause
  Tab          - Rounds of this run (tea backend)
  M            - Mute (with --sound)
  Ctrl+S       - Screenshot (tea backend)
  Q/Esc        - Quit

Difficulty options:
  easy   - Slower ramp, slower asteroids
  normal - The configured ramp
  hard   - Fast ramp, faster asteroids
  fixed  - No ramp, spawn interval never shrinks

Examples:
  shooter play
  shooter play --difficulty hard --seed 42
  shooter play --config ./my-shooter.yaml
  shooter play --backend tcell --sound`,
		Args: cobra.NoArgs,
		Run:  runPlay,
	}

	cmd.Flags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", env.Difficulty, "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagBackend, "backend", env.Backend, "Terminal backend: tea or tcell")
	cmd.Flags().BoolVar(&flagSound, "sound", env.Sound, "Play sound effects")
	return cmd
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch flagBackend {
	case "tea", "tcell":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q (expected tea or tcell)\n", flagBackend)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	store, err := storage.OpenMemory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctrl, err := shooter.NewController(cfg, rt, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sounds, closeSound := openSound(flagSound, logger)
	defer closeSound()

	logger.Info("starting", "backend", flagBackend, "seed", seed, "fps", flagFPS, "difficulty", flagDifficulty)

	if flagBackend == "tcell" {
		err = tcellui.Run(ctrl, rt, tcellui.Options{Sounds: sounds, Logger: logger})
	} else {
		err = tui.Run(ctrl, rt, tui.Options{Sounds: sounds, Rounds: store, Logger: logger})
	}
	if err != nil {
		logger.Error("game exited", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := printSummary(os.Stdout, store); err != nil {
		logger.Warn("no summary", "err", err)
	}
}

// loadConfig loads the YAML config and applies the difficulty preset.
func loadConfig(path, difficulty string) (config.ShooterConfig, error) {
	preset, ok := config.ParsePreset(difficulty)
	if !ok {
		return config.ShooterConfig{}, fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", difficulty)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.ShooterConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.ShooterConfig{}, err
	}
	return cfg, nil
}

// openSound opens the audio device when enabled. Failing to open it only
// costs the sound; the game runs silent.
func openSound(enabled bool, logger *log.Logger) (*audio.Board, func()) {
	if !enabled {
		return nil, func() {}
	}

	out, err := speaker.Open(audio.SampleRate)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: %v (continuing without sound)\n", err)
		return nil, func() {}
	}
	return audio.NewBoard(out, audio.SampleRate), out.Close
}

// printSummary writes the round summary of the run.
func printSummary(w io.Writer, store *storage.Store) error {
	sum, err := store.Summary()
	if err != nil {
		return err
	}
	if sum.Rounds == 0 {
		fmt.Fprintln(w, "No rounds finished.")
		return nil
	}

	fmt.Fprintf(w, "Rounds: %d  Best: %d  Average: %.1f\n", sum.Rounds, sum.Best, sum.Average())
	accuracy := 0.0
	if sum.Shots > 0 {
		accuracy = float64(sum.Destroyed) / float64(sum.Shots) * 100
	}
	fmt.Fprintf(w, "Shots: %d  Hits: %d  Accuracy: %.0f%%\n", sum.Shots, sum.Destroyed, accuracy)

	top, err := store.TopRounds(3)
	if err != nil {
		return err
	}
	for i, r := range top {
		fmt.Fprintf(w, "  %d. round %d - %d points\n", i+1, r.Round, r.Score)
	}
	return nil
}
