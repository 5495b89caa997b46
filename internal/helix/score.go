package helix

import "github.com/vovakirdan/helix-drop/internal/config"

// ScoreKeeper tracks score and the combo counter. Combo rises only on
// pass-throughs and decays when its timer runs out.
type ScoreKeeper struct {
	cfg config.ScoringConfig

	score int
	combo int
	timer float64
}

// NewScoreKeeper creates a keeper with zero score.
func NewScoreKeeper(cfg config.ScoringConfig) *ScoreKeeper {
	return &ScoreKeeper{cfg: cfg}
}

// OnPassThrough records a gap pass: it extends the ball's pass chain and
// the combo, restarts the combo window and returns the points awarded.
func (s *ScoreKeeper) OnPassThrough(b *Ball) int {
	b.ConsecutivePasses++
	s.combo++
	s.timer = s.cfg.ComboWindow

	award := s.cfg.PassPoints + s.cfg.ComboBonus*s.combo
	if b.ConsecutivePasses > 1 {
		award += s.cfg.ChainBonus * b.ConsecutivePasses
	}
	s.score += award
	return award
}

// Tick runs the combo timer down. It reports whether the combo was reset.
func (s *ScoreKeeper) Tick(dt float64) bool {
	if s.combo == 0 {
		return false
	}
	s.timer -= dt
	if s.timer > 0 {
		return false
	}
	s.combo = 0
	s.timer = 0
	return true
}

// Add awards points and returns the new score. Negative awards are ignored.
func (s *ScoreKeeper) Add(points int) int {
	if points > 0 {
		s.score += points
	}
	return s.score
}

// ResetCombo drops the combo without touching the score.
func (s *ScoreKeeper) ResetCombo() {
	s.combo = 0
	s.timer = 0
}

// Reset clears score and combo.
func (s *ScoreKeeper) Reset() {
	s.score = 0
	s.ResetCombo()
}

// Score returns the current score.
func (s *ScoreKeeper) Score() int {
	return s.score
}

// Combo returns the current combo count.
func (s *ScoreKeeper) Combo() int {
	return s.combo
}

// Timer returns the remaining combo window in seconds.
func (s *ScoreKeeper) Timer() float64 {
	return s.timer
}
