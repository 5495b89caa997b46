package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/helix-drop/internal/config"
	"github.com/vovakirdan/helix-drop/internal/core"
	"github.com/vovakirdan/helix-drop/internal/helix"
)

func newStartedGame(t *testing.T) *helix.Game {
	t.Helper()
	g, err := helix.New(config.DefaultHelixConfig(), core.RuntimeConfig{TickRate: 60, Seed: 7})
	if err != nil {
		t.Fatalf("helix.New() failed: %v", err)
	}
	g.Start()
	return g
}

func TestDrawGameBallAndStartPlatform(t *testing.T) {
	g := newStartedGame(t)
	snap := g.Snapshot()

	s := core.NewScreen(60, 24)
	DrawGame(s, &snap, "")

	l := newTowerLayout(s.Width(), s.Height(), &snap)
	if got := s.Get(l.centerCol, l.ballRow); got != glyphBall {
		t.Errorf("ball cell = %q, expected %q", got, glyphBall)
	}

	row := l.rowOf(0)
	if row != l.ballRow+3 {
		t.Fatalf("start platform row = %d, expected %d", row, l.ballRow+3)
	}
	cell := s.GetCell(l.centerCol, row)
	if cell.Rune != glyphSafe || cell.Color != core.ColorSafe {
		t.Errorf("cell under ball = %q/%v, expected safe segment", cell.Rune, cell.Color)
	}

	if !strings.Contains(s.Row(0), "SCORE 0") {
		t.Errorf("HUD row = %q, expected score", s.Row(0))
	}
}

func TestDrawGameRotationMovesSegments(t *testing.T) {
	snap := helix.Snapshot{
		Started:      true,
		BallY:        1,
		BallVisible:  true,
		SpawnAngle:   math.Pi / 4,
		SegmentCount: 4,
		Platforms: []helix.PlatformView{{
			Y: 0,
			Pattern: []helix.SegmentType{
				helix.SegmentSafe, helix.SegmentEmpty, helix.SegmentHazard, helix.SegmentEmpty,
			},
		}},
	}
	s := core.NewScreen(40, 20)
	l := newTowerLayout(s.Width(), s.Height(), &snap)
	row := l.rowOf(0)

	DrawGame(s, &snap, "")
	if got := s.Get(l.centerCol, row); got != glyphSafe {
		t.Errorf("unrotated center = %q, expected %q", got, glyphSafe)
	}

	// Segment 3 is empty: the track shows through.
	snap.Rotation = math.Pi / 2
	DrawGame(s, &snap, "")
	if got := s.Get(l.centerCol, row); got != glyphTrack {
		t.Errorf("rotated center = %q, expected %q", got, glyphTrack)
	}

	// Segment 2 is a hazard.
	snap.Rotation = math.Pi
	DrawGame(s, &snap, "")
	cell := s.GetCell(l.centerCol, row)
	if cell.Rune != glyphHazard || cell.Color != core.ColorDanger {
		t.Errorf("half turn center = %q/%v, expected hazard", cell.Rune, cell.Color)
	}
}

func TestDrawGameSkipsDestroyedPlatforms(t *testing.T) {
	snap := helix.Snapshot{
		Started:      true,
		SegmentCount: 4,
		Platforms: []helix.PlatformView{{
			Y:         -1,
			Pattern:   []helix.SegmentType{helix.SegmentSafe, helix.SegmentSafe, helix.SegmentSafe, helix.SegmentSafe},
			Destroyed: true,
		}},
	}
	s := core.NewScreen(40, 20)
	DrawGame(s, &snap, "")

	l := newTowerLayout(s.Width(), s.Height(), &snap)
	if strings.ContainsRune(s.Row(l.rowOf(-1)), glyphSafe) {
		t.Error("destroyed platform should not be drawn")
	}
}

func TestDrawGameOverlays(t *testing.T) {
	tests := []struct {
		name     string
		snap     helix.Snapshot
		expected string
	}{
		{"not started", helix.Snapshot{}, "space to start"},
		{"paused", helix.Snapshot{Started: true, Paused: true}, "PAUSED"},
		{"game over", helix.Snapshot{Started: true, GameOver: true, Score: 42, HighScore: 99}, "score 42  best 99"},
		{"level clear", helix.Snapshot{Started: true, Completing: true}, "LEVEL CLEAR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := core.NewScreen(60, 20)
			DrawGame(s, &tc.snap, "")
			if !strings.Contains(s.String(), tc.expected) {
				t.Errorf("screen does not contain %q", tc.expected)
			}
		})
	}
}

func TestDrawGamePowerUpsAndFlash(t *testing.T) {
	snap := helix.Snapshot{Started: true, BallVisible: true, HasShield: true, Combo: 3}
	s := core.NewScreen(60, 20)
	DrawGame(s, &snap, "SMASH!")

	l := newTowerLayout(s.Width(), s.Height(), &snap)
	if got := s.Get(l.centerCol, l.ballRow); got != glyphShield {
		t.Errorf("shielded ball = %q, expected %q", got, glyphShield)
	}
	if !strings.Contains(s.Row(0), "x3 SHIELD") {
		t.Errorf("HUD row = %q, expected combo and power-up", s.Row(0))
	}
	if !strings.Contains(s.String(), "SMASH!") {
		t.Error("flash message not drawn")
	}
}

func TestDrawGameTooSmall(t *testing.T) {
	s := core.NewScreen(5, 3)
	DrawGame(s, &helix.Snapshot{}, "")
	if !strings.HasPrefix(s.Row(0), "too s") {
		t.Errorf("row 0 = %q, expected size warning", s.Row(0))
	}
}

func TestLayoutAngleAtCenter(t *testing.T) {
	snap := helix.Snapshot{SpawnAngle: 1.25}
	l := newTowerLayout(80, 24, &snap)
	if got := l.angleAt(l.centerCol); math.Abs(got-1.25) > 1e-12 {
		t.Errorf("angleAt(center) = %v, expected 1.25", got)
	}
	if l.angleAt(l.centerCol+1) <= 1.25 {
		t.Error("angle should grow to the right")
	}
}
