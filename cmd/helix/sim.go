package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/helix-drop/internal/core"
	"github.com/vovakirdan/helix-drop/internal/helix"
	"github.com/vovakirdan/helix-drop/internal/storage"
)

var (
	flagSimSeconds float64
	flagSimGain    float64
	flagSimSave    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot session",
	Long: `Run the simulation without a terminal UI. An autopilot spins the tower
toward the nearest gap. Events are logged to stderr and a summary is printed
when the session ends, either at game over or after --seconds.

The same seed, fps and config always produce the same summary hash.

Examples:
  helix sim --seed 42
  helix sim --seed 7 --seconds 300 --difficulty hard
  helix sim --log-level debug --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 60, "Simulated seconds to run")
	simCmd.Flags().Float64Var(&flagSimGain, "gain", 1, "Autopilot drag per radian of misalignment")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the final score in the scores database")
}

func runSim(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d", flagFPS)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close

	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: resolveSeed()}
	game, err := helix.New(cfg, rt, helix.WithLogger(logger))
	if err != nil {
		return err
	}

	frames := int(flagSimSeconds * float64(flagFPS))
	logger.Info("sim started", "seed", rt.Seed, "frames", frames, "level", game.Level())

	res := helix.Simulate(game, helix.NewAutopilot(flagSimGain), frames, 1/float64(flagFPS), func(e helix.Event) {
		switch e := e.(type) {
		case helix.LevelCompletedEvent:
			logger.Info("level completed", "level", e.NewLevel, "bonus", e.Bonus)
		case helix.BallDiedEvent:
			logger.Info("ball died", "y", e.Y)
		case helix.GameOverEvent:
			logger.Info("game over", "score", e.Score, "level", e.Level)
		default:
			logger.Debug("event", "type", fmt.Sprintf("%T", e), "data", e)
		}
	})

	fmt.Printf("seed:      %d\n", rt.Seed)
	fmt.Printf("frames:    %d (%.2fs simulated)\n", res.Frames, res.SimTime)
	fmt.Printf("score:     %d\n", res.Score)
	fmt.Printf("level:     %d (%d cleared)\n", res.Level, res.LevelsCleared)
	fmt.Printf("smashed:   %d\n", res.PlatformsSmashed)
	fmt.Printf("game over: %t\n", res.GameOver)
	fmt.Printf("hash:      %016x\n", res.Hash)

	if flagSimSave && res.Score > 0 {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("error opening scores database: %w", err)
		}
		defer store.Close()
		if _, err := store.SaveScore(helix.GameID, res.Score, res.Level); err != nil {
			return err
		}
		logger.Info("score saved", "score", res.Score)
	}
	return nil
}
