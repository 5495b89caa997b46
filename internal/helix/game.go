// Package helix is the simulation core of Helix Drop: a ball falls through
// a rotating tower of segmented rings. Game owns every subsystem and is
// driven by one render-frame Step call; physics runs at a fixed step
// inside it.
package helix

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/helix-drop/internal/config"
	"github.com/vovakirdan/helix-drop/internal/core"
	"github.com/vovakirdan/helix-drop/internal/physics"
)

// GameID is the key scores are stored under.
const GameID = "helix"

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// Game is the owning context of one simulation. It is not safe for
// concurrent use.
type Game struct {
	cfg config.HelixConfig
	rt  core.RuntimeConfig
	log *log.Logger

	world     *physics.World
	tower     *Tower
	ball      *Ball
	score     *ScoreKeeper
	input     *RotationInput
	loop      *Loop
	scheduler Scheduler
	rng       *core.SimpleRNG

	events []Event
	hits   map[*Platform]*platformHit // Accepted contacts of the current fixed step

	started    bool
	paused     bool
	dying      bool
	completing bool
	gameOver   bool

	highScore int
	frames    uint64
}

// New validates the configuration and builds a game at the configured
// start level. The game does not advance until Start is called.
func New(cfg config.HelixConfig, rt core.RuntimeConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("helix: %w", err)
	}

	g := &Game{
		cfg:  cfg,
		rt:   rt,
		log:  log.New(io.Discard),
		hits: make(map[*Platform]*platformHit),
	}
	for _, opt := range opts {
		opt(g)
	}

	world, err := physics.NewWorld(physics.Config{
		Gravity:   mgl64.Vec3{0, cfg.Physics.Gravity, 0},
		FixedStep: cfg.Physics.FixedStep,
		MaxSpeed:  cfg.Physics.MaxFallSpeed,
	})
	if err != nil {
		return nil, fmt.Errorf("helix: %w", err)
	}
	g.world = world

	g.loop, err = NewLoop(cfg.Physics.FixedStep, cfg.Physics.MaxFrameDelta)
	if err != nil {
		return nil, err
	}

	g.rng = core.NewRNG(uint64(rt.Seed)) //#nosec G115 -- seed bits are reinterpreted, sign is irrelevant
	g.tower, err = NewTower(world, cfg, g.rng)
	if err != nil {
		return nil, err
	}

	g.ball = newBall(world, cfg.Ball, g.spawnY())
	g.score = NewScoreKeeper(cfg.Scoring)
	g.input = NewRotationInput(cfg.Input)

	g.reset()
	return g, nil
}

// reset rebuilds the level at the start level and clears all run state.
func (g *Game) reset() {
	g.scheduler.Clear()
	g.loop.Reset()
	g.input.Reset()
	g.score.Reset()
	g.world.DrainContacts()

	level := config.NewDifficultyRamp(g.cfg.Difficulty).StartLevel()
	g.tower.GenerateLevel(level)
	g.ball.Reset(g.spawnY())

	g.started = false
	g.paused = false
	g.dying = false
	g.completing = false
	g.gameOver = false
	g.events = nil
	g.frames = 0

	g.log.Debug("level generated", "level", level, "platforms", len(g.tower.Platforms()), "theme", g.tower.Theme().Name)
}

func (g *Game) spawnY() float64 {
	return g.cfg.Tower.StartY + g.cfg.Ball.SpawnHeight
}

// Start begins the simulation. After a game over it restarts instead.
func (g *Game) Start() {
	if g.gameOver {
		g.Restart()
		return
	}
	g.started = true
	g.paused = false
}

// Restart discards the run and starts again from the start level. The high
// score is kept.
func (g *Game) Restart() {
	g.reset()
	g.started = true
	g.emit(ScoreChangedEvent{Score: 0})
	g.log.Info("game restarted", "level", g.tower.Level())
}

// Pause suspends the simulation clock and gameplay logic.
func (g *Game) Pause() {
	if g.started && !g.gameOver {
		g.paused = true
	}
}

// Resume continues after Pause.
func (g *Game) Resume() {
	g.paused = false
}

// TogglePause flips the paused state.
func (g *Game) TogglePause() {
	if g.paused {
		g.Resume()
	} else {
		g.Pause()
	}
}

// Drag feeds a horizontal drag delta into rotation input. Ignored while
// the game is not running.
func (g *Game) Drag(dx float64) {
	if !g.started || g.paused || g.gameOver {
		return
	}
	g.input.Feed(dx)
}

// SetSensitivity replaces the rotation tuning.
func (g *Game) SetSensitivity(in config.InputConfig) {
	g.cfg.Input.RotationGain = in.RotationGain
	g.cfg.Input.MaxRotationSpeed = in.MaxRotationSpeed
	g.cfg.Input.DampingFactor = in.DampingFactor
	g.input.SetSensitivity(g.cfg.Input)
}

// Sensitivity returns the rotation tuning in use.
func (g *Game) Sensitivity() config.InputConfig {
	return g.cfg.Input
}

// Step advances the simulation by one render frame of renderDelta seconds:
// zero or more fixed physics steps, then one pass of gameplay logic.
func (g *Game) Step(renderDelta float64) {
	if !g.started || g.paused || g.gameOver {
		return
	}
	g.frames++

	g.loop.Advance(renderDelta, g.tick)
	if g.gameOver {
		return
	}
	g.updateGameplay(g.loop.ClampFrame(renderDelta))
}

// tick is one fixed physics step.
func (g *Game) tick(dt float64) {
	if g.gameOver {
		return
	}
	g.tower.Rotate(g.input.Integrate(dt))
	g.tower.Sync()

	g.world.Step()
	g.ball.pin()
	g.resolveContacts()

	g.ball.decaySquash(dt, g.cfg.Ball.SquashDecay)
	g.scheduler.Advance(dt)
}

// updateGameplay runs the per-frame logic that depends on continuous
// position: pass-through detection and combo decay.
func (g *Game) updateGameplay(dt float64) {
	if !g.ball.Frozen {
		g.detectPassThrough()
	}
	if g.score.Tick(dt) {
		g.emit(ComboChangedEvent{Count: 0})
	}
}

// detectPassThrough marks every platform the ball has dropped below.
// Platforms are ordered top to bottom, so the scan stops at the first one
// still below the ball.
func (g *Game) detectPassThrough() {
	y := g.ball.Position().Y()
	for _, p := range g.tower.Platforms() {
		if y >= p.Y {
			break
		}
		if p.Passed || p.Destroyed {
			continue
		}
		p.Passed = true
		if p.IsFinish {
			continue
		}

		award := g.score.OnPassThrough(g.ball)
		g.emit(ComboChangedEvent{Count: g.score.Combo(), Bonus: award})
		g.emitScore(false)
		g.checkMilestones()
	}
}

// checkMilestones grants power-ups when the combo reaches a milestone.
func (g *Game) checkMilestones() {
	combo := g.score.Combo()
	s := g.cfg.Scoring
	switch {
	case s.FireballComboMilestone > 0 && combo == s.FireballComboMilestone:
		g.GrantFireball()
	case s.ShieldComboMilestone > 0 && combo == s.ShieldComboMilestone && g.ball.PowerUp() == PowerUpNone:
		g.GrantShield()
	}
}

// GrantShield gives the ball a shield, replacing any fireball.
func (g *Game) GrantShield() {
	g.ball.GrantShield()
	g.emit(PowerUpChangedEvent{Active: PowerUpShield})
}

// GrantFireball gives the ball a fireball, replacing any shield.
func (g *Game) GrantFireball() {
	g.ball.GrantFireball()
	g.emit(PowerUpChangedEvent{Active: PowerUpFireball})
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

func (g *Game) emitScore(animated bool) {
	score := g.score.Score()
	if score > g.highScore {
		g.highScore = score
	}
	g.emit(ScoreChangedEvent{Score: score, Animated: animated})
}

// Events drains the queued notifications in emission order.
func (g *Game) Events() []Event {
	out := g.events
	g.events = nil
	return out
}

// HighScore returns the best score seen, including the current run.
func (g *Game) HighScore() int {
	return g.highScore
}

// SetHighScore seeds the high score, typically from storage.
func (g *Game) SetHighScore(n int) {
	if n < 0 {
		n = 0
	}
	g.highScore = n
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score.Score()
}

// Level returns the current level.
func (g *Game) Level() int {
	return g.tower.Level()
}

// Progress returns how far the ball has descended, from 0 at the start
// platform to 1 at the finish.
func (g *Game) Progress() float64 {
	top := g.tower.StartY()
	span := top - g.tower.FinishY()
	if span <= 0 {
		return 0
	}
	return core.ClampF((top-g.ball.Position().Y())/span, 0, 1)
}

// State returns the coarse status for the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Score(),
		Level:    g.tower.Level(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Started reports whether Start has been called for this run.
func (g *Game) Started() bool {
	return g.started
}
