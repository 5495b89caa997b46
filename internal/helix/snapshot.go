package helix

import (
	"math"

	"github.com/vovakirdan/helix-drop/internal/config"
)

// PlatformView is the read-only state of one platform.
type PlatformView struct {
	Index     int
	Y         float64
	Pattern   []SegmentType
	IsFinish  bool
	Passed    bool
	Destroyed bool
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Frames  uint64 // Render frames stepped
	Steps   uint64 // Fixed physics steps run
	SimTime float64

	Score             int
	HighScore         int
	Combo             int
	ComboTimer        float64
	ConsecutivePasses int
	Level             int
	Progress          float64

	BallX, BallY, BallZ float64
	BallVY              float64
	BallRadius          float64
	BallVisible         bool
	Squash              float64
	HasShield           bool
	IsFireball          bool

	Rotation     float64
	SpawnAngle   float64 // World angle of the ball around the pole
	SegmentCount int
	BallSegment  int // Local segment index currently under the ball
	Platforms    []PlatformView
	Theme        config.Theme

	Started    bool
	Paused     bool
	Dying      bool
	Completing bool
	GameOver   bool

	RNGState uint64
}

// Snapshot returns the current state. Pattern slices are copies.
func (g *Game) Snapshot() Snapshot {
	pos := g.ball.Position()
	platforms := g.tower.Platforms()
	views := make([]PlatformView, len(platforms))
	for i, p := range platforms {
		pattern := make([]SegmentType, len(p.Pattern))
		copy(pattern, p.Pattern)
		views[i] = PlatformView{
			Index:     p.Index,
			Y:         p.Y,
			Pattern:   pattern,
			IsFinish:  p.IsFinish,
			Passed:    p.Passed,
			Destroyed: p.Destroyed,
		}
	}

	return Snapshot{
		Frames:  g.frames,
		Steps:   g.loop.Steps(),
		SimTime: g.loop.SimTime(),

		Score:             g.score.Score(),
		HighScore:         g.highScore,
		Combo:             g.score.Combo(),
		ComboTimer:        g.score.Timer(),
		ConsecutivePasses: g.ball.ConsecutivePasses,
		Level:             g.tower.Level(),
		Progress:          g.Progress(),

		BallX:       pos.X(),
		BallY:       pos.Y(),
		BallZ:       pos.Z(),
		BallVY:      g.ball.Velocity().Y(),
		BallRadius:  g.ball.Radius(),
		BallVisible: g.ball.Visible,
		Squash:      g.ball.Squash,
		HasShield:   g.ball.HasShield,
		IsFireball:  g.ball.IsFireball,

		Rotation:     g.tower.Rotation(),
		SpawnAngle:   g.cfg.Ball.SpawnAngle,
		SegmentCount: g.tower.SegmentCount(),
		BallSegment:  g.tower.SegmentAt(g.cfg.Ball.SpawnAngle),
		Platforms:    views,
		Theme:        g.tower.Theme(),

		Started:    g.started,
		Paused:     g.paused,
		Dying:      g.dying,
		Completing: g.completing,
		GameOver:   g.gameOver,

		RNGState: g.rng.State(),
	}
}

// NextPlatform returns the index of the highest platform below the ball
// that is neither passed nor destroyed, or -1.
func (s *Snapshot) NextPlatform() int {
	for i, p := range s.Platforms {
		if p.Passed || p.Destroyed || p.Y > s.BallY {
			continue
		}
		return i
	}
	return -1
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := s.Frames
	h = h*31 + s.Steps
	h = h*31 + uint64(s.Score)             //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Combo)             //#nosec G115 -- hash computation
	h = h*31 + uint64(s.ConsecutivePasses) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Level)             //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(s.BallY)
	h = h*31 + math.Float64bits(s.BallVY)
	h = h*31 + math.Float64bits(s.Rotation)
	h = h*31 + math.Float64bits(s.ComboTimer)

	for _, flag := range []bool{s.HasShield, s.IsFireball, s.BallVisible, s.Dying, s.Completing, s.GameOver} {
		h *= 31
		if flag {
			h++
		}
	}

	for _, p := range s.Platforms {
		h = h*31 + math.Float64bits(p.Y)
		for _, seg := range p.Pattern {
			h = h*31 + uint64(seg)
		}
		if p.Passed {
			h = h*31 + 1
		}
		if p.Destroyed {
			h = h*31 + 2
		}
	}

	h = h*31 + s.RNGState
	return h
}
