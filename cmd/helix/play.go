package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/helix-drop/internal/core"
	"github.com/vovakirdan/helix-drop/internal/helix"
	"github.com/vovakirdan/helix-drop/internal/platform/tui"
	"github.com/vovakirdan/helix-drop/internal/storage"
)

var flagStartLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Helix Drop",
	Long: `Start a game in the terminal.

Controls:
  Left/Right, A/D  - Spin the tower
  Mouse drag       - Spin the tower
  Space/Enter      - Start
  P/Esc            - Pause
  R                - Restart
  [ / ]            - Lower / raise rotation sensitivity (saved)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Longer combo window, slower spin
  normal - Starts at level 2
  hard   - Starts at level 5, shorter combo window, lower bounces

Examples:
  helix play
  helix play --difficulty hard
  helix play --level 4 --seed 42
  helix play --config ./my-helix.yaml --log-file helix.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartLevel, "level", 0, "Start level (overrides config and difficulty)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagStartLevel > 0 {
		cfg.Difficulty.StartLevel = flagStartLevel
	}

	// Logs would corrupt the alternate screen, so they only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(),
	}

	// Open score storage; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if store != nil {
		if cfg.Input, err = tui.SensitivityFromStore(store, cfg.Input); err != nil {
			logger.Warn("could not load sensitivity", "err", err)
		}
	}

	game, err := helix.New(cfg, rt, helix.WithLogger(logger))
	if err != nil {
		return err
	}
	if store != nil {
		if best, err := store.HighScore(helix.GameID); err == nil {
			game.SetHighScore(best)
		}
	}

	logger.Info("session started", "seed", rt.Seed, "level", game.Level(), "fps", rt.TickRate)
	if err := tui.Run(game, store, rt, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	logger.Info("session ended", "score", game.Score(), "best", game.HighScore())
	return nil
}
