package helix

import (
	"errors"
	"testing"

	"github.com/vovakirdan/helix-drop/internal/config"
	"github.com/vovakirdan/helix-drop/internal/core"
	"github.com/vovakirdan/helix-drop/internal/physics"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.HelixConfig)
	}{
		{"segment count", func(c *config.HelixConfig) { c.Tower.SegmentCount = 0 }},
		{"fixed step", func(c *config.HelixConfig) { c.Physics.FixedStep = 0 }},
		{"no themes", func(c *config.HelixConfig) { c.Themes = nil }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultHelixConfig()
			tc.modify(&cfg)
			g, err := New(cfg, core.DefaultConfig())
			if !errors.Is(err, config.ErrInvalidConfig) {
				t.Errorf("New() error = %v, expected ErrInvalidConfig", err)
			}
			if g != nil {
				t.Error("New() should not return a game on error")
			}
		})
	}
}

func TestStepWaitsForStart(t *testing.T) {
	g, err := New(config.DefaultHelixConfig(), core.DefaultConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	y := g.ball.Position().Y()

	for i := 0; i < 10; i++ {
		g.Step(1.0 / 60.0)
	}
	if g.loop.Steps() != 0 || g.ball.Position().Y() != y {
		t.Error("Game must not advance before Start")
	}

	g.Start()
	g.Step(1.0 / 60.0)
	if g.loop.Steps() != 2 {
		t.Errorf("Steps = %d, expected 2", g.loop.Steps())
	}
}

func TestBallBouncesOnStartPlatform(t *testing.T) {
	cfg := config.DefaultHelixConfig()
	g := newTestGame(t, cfg, 1)

	falling := false
	for i := 0; i < 480; i++ {
		g.tick(cfg.Physics.FixedStep)
		vy := g.ball.Velocity().Y()
		if vy < 0 {
			falling = true
			continue
		}
		if falling && vy > 0 {
			if vy < cfg.Bounce.Min || vy > cfg.Bounce.Max {
				t.Fatalf("Bounce vy = %f outside [%f, %f]", vy, cfg.Bounce.Min, cfg.Bounce.Max)
			}
			if g.tower.Platforms()[0].Passed {
				t.Error("Bouncing on a platform must not pass it")
			}
			return
		}
	}
	t.Fatal("Ball never bounced")
}

func TestPassThroughGap(t *testing.T) {
	cfg := config.DefaultHelixConfig()
	g := newTestGame(t, cfg, 1)

	start := g.tower.Platforms()[0]
	gap := segmentOf(t, start, SegmentEmpty)
	slot := core.TwoPi / float64(cfg.Tower.SegmentCount)
	g.tower.rotation = cfg.Ball.SpawnAngle - (float64(gap)+0.5)*slot
	g.tower.Sync()

	for i := 0; i < 120 && !start.Passed; i++ {
		g.Step(1.0 / 60.0)
	}
	if !start.Passed {
		t.Fatalf("Ball should fall through the start gap, y = %f", g.ball.Position().Y())
	}
	if g.ball.ConsecutivePasses != 1 || g.score.Combo() != 1 {
		t.Errorf("passes = %d combo = %d, expected 1/1", g.ball.ConsecutivePasses, g.score.Combo())
	}
	if g.Score() != cfg.Scoring.PassPoints+cfg.Scoring.ComboBonus {
		t.Errorf("Score = %d, expected %d", g.Score(), cfg.Scoring.PassPoints+cfg.Scoring.ComboBonus)
	}

	events := g.Events()
	combo, ok := findEvent[ComboChangedEvent](events)
	if !ok || combo.Count != 1 || combo.Bonus != g.Score() {
		t.Errorf("ComboChangedEvent = %+v (found=%v)", combo, ok)
	}
	if _, ok := findEvent[ScoreChangedEvent](events); !ok {
		t.Error("Expected ScoreChangedEvent")
	}
}

func TestComboMilestonesGrantPowerUps(t *testing.T) {
	cfg := config.DefaultHelixConfig()
	g := newTestGame(t, cfg, 1)

	for i := 1; i <= cfg.Scoring.FireballComboMilestone; i++ {
		g.score.OnPassThrough(g.ball)
		g.checkMilestones()
		switch {
		case i >= cfg.Scoring.FireballComboMilestone:
			if !g.ball.IsFireball || g.ball.HasShield {
				t.Errorf("combo %d: expected fireball only", i)
			}
		case i >= cfg.Scoring.ShieldComboMilestone:
			if !g.ball.HasShield || g.ball.IsFireball {
				t.Errorf("combo %d: expected shield only", i)
			}
		default:
			if g.ball.PowerUp() != PowerUpNone {
				t.Errorf("combo %d: unexpected power-up %s", i, g.ball.PowerUp())
			}
		}
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, config.DefaultHelixConfig(), 1)
	for i := 0; i < 5; i++ {
		g.Step(1.0 / 60.0)
	}

	g.Pause()
	before := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Drag(2)
		g.Step(1.0 / 60.0)
	}
	after := g.Snapshot()

	if !after.Paused {
		t.Fatal("Snapshot should report paused")
	}
	if after.Steps != before.Steps || after.BallY != before.BallY || after.Rotation != before.Rotation {
		t.Error("No simulation time may accrue while paused")
	}
	if g.input.Pending() != 0 {
		t.Error("Drag while paused should be ignored")
	}

	g.TogglePause()
	g.Step(1.0 / 60.0)
	if g.Snapshot().Steps == before.Steps {
		t.Error("Simulation should resume")
	}
}

func TestRotationSyncAfterDrag(t *testing.T) {
	g := newTestGame(t, config.DefaultHelixConfig(), 3)

	for i := 0; i < 90; i++ {
		if i%30 < 15 {
			g.Drag(1.2)
		} else {
			g.Drag(-0.7)
		}
		g.Step(1.0 / 60.0)

		want := physics.YawQuat(g.tower.Rotation())
		for _, p := range g.tower.Platforms() {
			for _, id := range p.Bodies() {
				if got := g.world.Body(id).Orientation; got != want {
					t.Fatalf("frame %d: platform %d orientation %v, expected %v", i, p.Index, got, want)
				}
			}
		}
	}
	if g.tower.Rotation() == 0 {
		t.Error("Drag should have rotated the tower")
	}
}

func TestBallStaysOnItsAxis(t *testing.T) {
	g := newTestGame(t, config.DefaultHelixConfig(), 3)
	x, z := g.ball.Position().X(), g.ball.Position().Z()

	for i := 0; i < 300; i++ {
		g.Drag(0.8)
		g.Step(1.0 / 60.0)
		p := g.ball.Position()
		if p.X() != x || p.Z() != z {
			t.Fatalf("frame %d: ball moved off its axis: %v", i, p)
		}
	}
}

func runScripted(t *testing.T, seed int64) Snapshot {
	t.Helper()
	g := newTestGame(t, config.DefaultHelixConfig(), seed)
	for i := 0; i < 600; i++ {
		switch {
		case i%40 < 10:
			g.Drag(1.5)
		case i%40 < 20:
			g.Drag(-1.5)
		}
		g.Step(1.0/60.0 + float64(i%3)*0.004)
		g.Events()
	}
	return g.Snapshot()
}

func TestGameDeterminism(t *testing.T) {
	snap1 := runScripted(t, 12345)
	snap2 := runScripted(t, 12345)

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.BallY != snap2.BallY || snap1.Rotation != snap2.Rotation {
		t.Error("Determinism failed: ball or rotation differ")
	}

	other := runScripted(t, 54321)
	if other.RNGState == snap1.RNGState {
		t.Error("Different seeds should produce different generator states")
	}
}

func TestRestartKeepsHighScore(t *testing.T) {
	g := newTestGame(t, config.DefaultHelixConfig(), 1)
	g.SetHighScore(500)
	g.score.Add(700)
	g.emitScore(false)

	if g.HighScore() != 700 {
		t.Fatalf("HighScore = %d, expected 700", g.HighScore())
	}

	g.Restart()

	if g.Score() != 0 {
		t.Errorf("Restart should clear score, got %d", g.Score())
	}
	if g.HighScore() != 700 {
		t.Errorf("Restart should keep high score, got %d", g.HighScore())
	}
	if !g.Started() || g.State().GameOver {
		t.Error("Restart should leave a running game")
	}
	if g.Level() != config.DefaultHelixConfig().Difficulty.StartLevel {
		t.Errorf("Level = %d after restart", g.Level())
	}
	ev, ok := findEvent[ScoreChangedEvent](g.Events())
	if !ok || ev.Score != 0 {
		t.Errorf("Restart should announce a zero score, got %+v", ev)
	}
}

func TestStartAfterGameOverRestarts(t *testing.T) {
	g := newTestGame(t, config.DefaultHelixConfig(), 1)
	g.die()
	g.endGame()
	if !g.State().GameOver {
		t.Fatal("Expected game over")
	}

	g.Start()
	if g.State().GameOver || !g.ball.Visible {
		t.Error("Start after game over should restart")
	}
}

func TestSnapshotProgress(t *testing.T) {
	g := newTestGame(t, config.DefaultHelixConfig(), 1)
	snap := g.Snapshot()

	if snap.Progress != 0 {
		t.Errorf("Progress above the start platform = %f, expected 0", snap.Progress)
	}

	g.ball.Place(g.tower.FinishY())
	if p := g.Progress(); p != 1 {
		t.Errorf("Progress at the finish = %f, expected 1", p)
	}

	snap = g.Snapshot()
	snap.Platforms[0].Pattern[0] = SegmentHazard
	if g.tower.Platforms()[0].Pattern[0] == SegmentHazard {
		t.Error("Snapshot patterns must be copies")
	}
}

func TestAutopilotDescends(t *testing.T) {
	cfg := config.DefaultHelixConfig()
	cfg.Difficulty.MaxHazards = 0
	g := newTestGame(t, cfg, 77)
	pilot := NewAutopilot(1)

	for i := 0; i < 1200; i++ {
		g.Drag(pilot.Drag(g.Snapshot()))
		g.Step(1.0 / 60.0)
	}

	passed := 0
	for _, p := range g.Snapshot().Platforms {
		if p.Passed {
			passed++
		}
	}
	if passed < 2 && g.Level() == cfg.Difficulty.StartLevel {
		t.Errorf("Autopilot passed %d platforms in 20 s, expected at least 2", passed)
	}
	if g.State().GameOver {
		t.Error("Ball cannot die without hazards")
	}
}

func TestAutopilotSteersTowardGap(t *testing.T) {
	slot := core.TwoPi / 12
	pattern := make([]SegmentType, 12)
	for i := range pattern {
		pattern[i] = SegmentSafe
	}
	pattern[5] = SegmentEmpty

	snap := Snapshot{
		SegmentCount: 12,
		SpawnAngle:   3.5 * slot, // Ball over segment 3
		BallSegment:  3,
		BallY:        2,
		BallRadius:   0.3,
		Platforms:    []PlatformView{{Y: 0, Pattern: pattern}},
	}

	// The gap is two slots ahead of the ball; reaching it takes negative rotation.
	if d := NewAutopilot(1).Drag(snap); d >= 0 {
		t.Errorf("Drag = %f, expected negative", d)
	}

	snap.Platforms[0].Pattern = make([]SegmentType, 12) // all empty
	snap.BallY = 0.1
	if d := NewAutopilot(1).Drag(snap); d != 0 {
		t.Errorf("Drag while threading a gap = %f, expected 0", d)
	}
}
