package helix

import (
	"github.com/vovakirdan/helix-drop/internal/physics"
)

// platformHit gathers the accepted contacts of one platform within a step.
type platformHit struct {
	contact physics.Contact // First accepted contact
	hazard  bool            // Any accepted contact touched a hazard segment
}

// resolveContacts drains the contact queue of the step that just ran.
func (g *Game) resolveContacts() {
	g.resolveStepContacts(g.world.DrainContacts())
}

// resolveStepContacts groups the accepted contacts of one step by platform
// and resolves each platform once, in the order its first contact was
// detected.
func (g *Game) resolveStepContacts(contacts []physics.Contact) {
	clear(g.hits)
	var order []*Platform
	for _, c := range contacts {
		ref, ok := g.acceptContact(c)
		if !ok {
			continue
		}
		h := g.hits[ref.Platform]
		if h == nil {
			h = &platformHit{contact: c}
			g.hits[ref.Platform] = h
			order = append(order, ref.Platform)
		}
		if ref.Platform.Pattern[ref.Segment] == SegmentHazard {
			h.hazard = true
		}
	}
	for _, p := range order {
		g.resolvePlatform(p, g.hits[p])
	}
}

// acceptContact reports the segment a ball contact touched, or false when
// the contact carries no gameplay outcome.
func (g *Game) acceptContact(c physics.Contact) (SegmentRef, bool) {
	if c.Body != g.ball.ID() || g.ball.Frozen {
		return SegmentRef{}, false
	}
	body := g.world.Body(c.Other)
	if body == nil {
		return SegmentRef{}, false // Removed earlier in this step
	}
	ref, ok := body.UserData.(SegmentRef)
	if !ok || ref.Platform == nil || ref.Platform.Destroyed {
		return SegmentRef{}, false
	}
	if ref.Segment < 0 || ref.Segment >= len(ref.Platform.Pattern) {
		return SegmentRef{}, false
	}

	// Reject lateral scrapes against a rising ball.
	if c.Normal.Y() < g.cfg.Bounce.ContactNormalMinY && c.ImpactVelocity.Y() > 0 {
		return SegmentRef{}, false
	}
	return ref, true
}

// resolvePlatform applies the gameplay outcome of a step's contacts with one
// platform. Rules are evaluated in priority order: finish, smash-through,
// hazard, safe bounce. A hazard touched anywhere on the platform outranks
// the safe segments touched alongside it.
func (g *Game) resolvePlatform(p *Platform, h *platformHit) {
	if g.ball.Frozen || p.Destroyed {
		return // An earlier platform in this step ended the fall
	}

	switch {
	case p.IsFinish:
		g.reachFinish(p)
	case g.ball.ConsecutivePasses >= g.cfg.Scoring.SmashThreshold:
		g.smash(p, h.contact)
	case h.hazard:
		g.hitHazard()
	default:
		g.bounce()
	}
}

// bounce launches the ball upward: at least the minimum bounce speed, at
// least the current vertical speed plus the increment, at most the maximum.
func (g *Game) bounce() {
	b := g.cfg.Bounce
	vy := g.ball.Velocity().Y() + b.Increment
	if vy < b.Min {
		vy = b.Min
	}
	if vy > b.Max {
		vy = b.Max
	}
	g.ball.SetVerticalVelocity(vy)
	g.ball.ConsecutivePasses = 0
	g.ball.Squash = 1
}

// smash destroys the platform and lets the ball fall through with damped
// speed.
func (g *Game) smash(p *Platform, c physics.Contact) {
	passes := g.ball.ConsecutivePasses
	bonus := g.cfg.Scoring.SmashPointsPerPass * passes

	g.tower.Destroy(p)
	g.emit(PlatformDestroyedEvent{Platform: p.Index, Y: p.Y, Cause: CauseSmash})

	g.ball.ConsecutivePasses = 0
	g.ball.SetVerticalVelocity(c.ImpactVelocity.Y() * g.cfg.Bounce.SmashDamping)

	if g.score.Combo() != 0 {
		g.score.ResetCombo()
		g.emit(ComboChangedEvent{Count: 0})
	}
	g.score.Add(bonus)
	g.emitScore(true)

	g.log.Debug("platform smashed", "platform", p.Index, "passes", passes, "bonus", bonus)
}

// hitHazard consumes a power-up and bounces, or kills the ball.
func (g *Game) hitHazard() {
	s := g.cfg.Scoring
	switch {
	case g.ball.HasShield:
		g.ball.HasShield = false
		g.bounce()
		g.score.Add(s.ShieldAbsorbPoints)
		g.emit(PowerUpChangedEvent{Active: PowerUpNone})
		g.emitScore(true)
	case g.ball.IsFireball:
		g.ball.IsFireball = false
		g.bounce()
		g.score.Add(s.FireballPoints)
		g.emit(PowerUpChangedEvent{Active: PowerUpNone})
		g.emitScore(true)
	default:
		g.die()
	}
}

// die freezes and hides the ball and schedules game over.
func (g *Game) die() {
	if g.dying || g.gameOver {
		return
	}
	g.dying = true

	y := g.ball.Position().Y()
	g.ball.Freeze()
	g.ball.Visible = false
	g.input.Reset()
	g.emit(BallDiedEvent{Y: y})

	g.log.Info("ball died", "level", g.tower.Level(), "score", g.score.Score())
	g.scheduler.After(g.cfg.Timing.GameOverDelay, g.endGame)
}

func (g *Game) endGame() {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.dying = false
	if s := g.score.Score(); s > g.highScore {
		g.highScore = s
	}
	g.emit(GameOverEvent{Score: g.score.Score(), Level: g.tower.Level(), HighScore: g.highScore})
	g.log.Info("game over", "score", g.score.Score(), "level", g.tower.Level(), "high", g.highScore)
}

// reachFinish starts the level-completion sequence once per level.
func (g *Game) reachFinish(p *Platform) {
	if g.completing {
		return
	}
	g.completing = true

	g.tower.Destroy(p)
	g.emit(PlatformDestroyedEvent{Platform: p.Index, Y: p.Y, Cause: CauseFinish})
	g.ball.Freeze()
	g.input.Reset()

	g.scheduler.After(g.cfg.Timing.LevelCompleteDelay, g.completeLevel)
}

// completeLevel advances to the next level and awards the level bonus.
func (g *Game) completeLevel() {
	level := g.tower.Level() + 1
	bonus := g.cfg.Scoring.LevelMultiplier * level

	g.score.Add(bonus)
	g.emit(LevelCompletedEvent{NewLevel: level, Bonus: bonus})
	g.emitScore(true)

	g.tower.GenerateLevel(level)
	g.ball.Place(g.spawnY())
	g.completing = false

	g.log.Info("level completed", "level", level, "bonus", bonus, "score", g.score.Score())
}
