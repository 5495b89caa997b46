package helix

// Event is a notification queued by the simulation for UI and VFX
// consumers. Drain the queue with Game.Events once per frame.
type Event interface {
	helixEvent()
}

// DestroyCause says why a platform was destroyed.
type DestroyCause int

const (
	CauseSmash  DestroyCause = iota // Smash-through after a pass chain
	CauseFinish                     // Ball reached the finish platform
)

func (c DestroyCause) String() string {
	switch c {
	case CauseSmash:
		return "smash"
	case CauseFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// PowerUp identifies the active damage absorber on the ball.
type PowerUp int

const (
	PowerUpNone PowerUp = iota
	PowerUpShield
	PowerUpFireball
)

func (p PowerUp) String() string {
	switch p {
	case PowerUpNone:
		return "none"
	case PowerUpShield:
		return "shield"
	case PowerUpFireball:
		return "fireball"
	default:
		return "unknown"
	}
}

// PlatformDestroyedEvent is emitted when a platform's collision geometry is
// removed.
type PlatformDestroyedEvent struct {
	Platform int // Platform index within the current level
	Y        float64
	Cause    DestroyCause
}

func (PlatformDestroyedEvent) helixEvent() {}

// BallDiedEvent is emitted when the ball hits a hazard unprotected.
type BallDiedEvent struct {
	Y float64
}

func (BallDiedEvent) helixEvent() {}

// LevelCompletedEvent is emitted after the finish delay, once the level
// counter has moved on.
type LevelCompletedEvent struct {
	NewLevel int
	Bonus    int
}

func (LevelCompletedEvent) helixEvent() {}

// ComboChangedEvent is emitted whenever the combo counter changes.
// Bonus is the points awarded with the change (0 on a reset).
type ComboChangedEvent struct {
	Count int
	Bonus int
}

func (ComboChangedEvent) helixEvent() {}

// ScoreChangedEvent is emitted whenever the score changes. Animated marks
// bonus awards the UI should highlight.
type ScoreChangedEvent struct {
	Score    int
	Animated bool
}

func (ScoreChangedEvent) helixEvent() {}

// PowerUpChangedEvent is emitted when a power-up is granted or consumed.
type PowerUpChangedEvent struct {
	Active PowerUp
}

func (PowerUpChangedEvent) helixEvent() {}

// GameOverEvent is emitted when the game-over delay after a death elapses.
type GameOverEvent struct {
	Score     int
	Level     int
	HighScore int
}

func (GameOverEvent) helixEvent() {}
