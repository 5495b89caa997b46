package core

// Color is a palette slot for a screen cell. Slots are resolved to concrete
// terminal colors by the platform layer, using the active theme.
type Color uint8

// Palette slots used by the tower renderer.
const (
	ColorDefault Color = iota
	ColorBackground
	ColorPole
	ColorSafe
	ColorDanger
	ColorFinish
	ColorBall
	ColorShield
	ColorFireball
	ColorParticle
	ColorHUD
	ColorDim
)
