package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/helix-drop/internal/core"
	"github.com/vovakirdan/helix-drop/internal/helix"
)

// rowsPerUnit is the vertical zoom: screen rows per world unit.
const rowsPerUnit = 1.5

// Glyphs of the unrolled tower view.
const (
	glyphSafe     = '━'
	glyphHazard   = '▓'
	glyphFinish   = '█'
	glyphWall     = '│'
	glyphBall     = 'O'
	glyphSquashed = 'o'
	glyphShield   = '◎'
	glyphFireball = '●'
	glyphShard    = '*'
	glyphProgress = '█'
	glyphTrack    = '┆'
)

// towerLayout maps world coordinates to screen cells. The tower is drawn
// unrolled: columns are world angles around the pole, centred on the ball,
// and rows are heights, centred on the ball with more room below it.
type towerLayout struct {
	left, right int // Ring area columns, inclusive
	top, bottom int // Ring area rows, inclusive
	centerCol   int
	ballRow     int
	cameraY     float64
	spawnAngle  float64
}

func newTowerLayout(w, h int, snap *helix.Snapshot) towerLayout {
	l := towerLayout{
		left:       1,
		right:      core.Max(1, w-4),
		top:        1,
		bottom:     core.Max(1, h-1),
		cameraY:    snap.BallY,
		spawnAngle: snap.SpawnAngle,
	}
	l.centerCol = (l.left + l.right) / 2
	l.ballRow = l.top + (l.bottom-l.top)/3
	return l
}

// width returns the number of ring columns.
func (l towerLayout) width() int {
	return l.right - l.left + 1
}

// angleAt returns the world angle shown in column x.
func (l towerLayout) angleAt(x int) float64 {
	return core.WrapAngle(l.spawnAngle + float64(x-l.centerCol)*core.TwoPi/float64(l.width()))
}

// rowOf returns the screen row of height y.
func (l towerLayout) rowOf(y float64) int {
	return l.ballRow + int(math.Round((l.cameraY-y)*rowsPerUnit))
}

// inside reports whether row is part of the ring area.
func (l towerLayout) inside(row int) bool {
	return row >= l.top && row <= l.bottom
}

// DrawGame renders a snapshot into the screen buffer. flash is an optional
// transient message shown under the HUD.
func DrawGame(s *core.Screen, snap *helix.Snapshot, flash string) {
	s.Clear()
	if s.Width() < 8 || s.Height() < 6 {
		s.DrawText(0, 0, "too small")
		return
	}

	l := newTowerLayout(s.Width(), s.Height(), snap)

	drawWalls(s, l)
	for i := range snap.Platforms {
		drawPlatform(s, l, snap, &snap.Platforms[i])
	}
	drawBall(s, l, snap)
	drawProgress(s, l, snap.Progress)
	drawHUD(s, snap)

	if flash != "" {
		s.DrawTextCentered(l.top+1, flash, core.ColorParticle)
	}
	drawOverlay(s, snap)
}

func drawWalls(s *core.Screen, l towerLayout) {
	s.DrawVLine(l.left-1, l.top, l.bottom-l.top+1, glyphWall, core.ColorPole)
	s.DrawVLine(l.right+1, l.top, l.bottom-l.top+1, glyphWall, core.ColorPole)
	s.DrawVLine(l.centerCol, l.top, l.bottom-l.top+1, glyphTrack, core.ColorDim)
}

func drawPlatform(s *core.Screen, l towerLayout, snap *helix.Snapshot, p *helix.PlatformView) {
	if p.Destroyed || snap.SegmentCount == 0 {
		return
	}
	row := l.rowOf(p.Y)
	if !l.inside(row) {
		return
	}

	for x := l.left; x <= l.right; x++ {
		local := l.angleAt(x) - snap.Rotation
		seg := core.RingIndex(local, snap.SegmentCount)
		if seg >= len(p.Pattern) {
			continue
		}

		switch {
		case p.IsFinish:
			s.SetColored(x, row, glyphFinish, core.ColorFinish)
		case p.Pattern[seg] == helix.SegmentSafe:
			c := core.ColorSafe
			if p.Passed {
				c = core.ColorDim
			}
			s.SetColored(x, row, glyphSafe, c)
		case p.Pattern[seg] == helix.SegmentHazard:
			s.SetColored(x, row, glyphHazard, core.ColorDanger)
		}
	}
}

func drawBall(s *core.Screen, l towerLayout, snap *helix.Snapshot) {
	if !snap.BallVisible {
		if snap.Dying {
			for _, d := range [][2]int{{-2, 0}, {2, 0}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
				s.SetColored(l.centerCol+d[0], l.ballRow+d[1], glyphShard, core.ColorParticle)
			}
		}
		return
	}

	glyph, c := glyphBall, core.ColorBall
	switch {
	case snap.IsFireball:
		glyph, c = glyphFireball, core.ColorFireball
	case snap.HasShield:
		glyph, c = glyphShield, core.ColorShield
	case snap.Squash > 0.3:
		glyph = glyphSquashed
	}
	s.SetColored(l.centerCol, l.ballRow, glyph, c)
}

func drawProgress(s *core.Screen, l towerLayout, progress float64) {
	x := l.right + 3
	height := l.bottom - l.top + 1
	filled := int(math.Round(core.ClampF(progress, 0, 1) * float64(height)))
	for i := range height {
		if i < filled {
			s.SetColored(x, l.top+i, glyphProgress, core.ColorParticle)
		} else {
			s.SetColored(x, l.top+i, glyphWall, core.ColorDim)
		}
	}
}

func drawHUD(s *core.Screen, snap *helix.Snapshot) {
	hud := fmt.Sprintf(" SCORE %d  BEST %d  LV %d", snap.Score, snap.HighScore, snap.Level)
	s.DrawTextColored(0, 0, hud, core.ColorHUD)

	var extras []string
	if snap.Combo > 1 {
		extras = append(extras, fmt.Sprintf("x%d", snap.Combo))
	}
	switch {
	case snap.IsFireball:
		extras = append(extras, "FIREBALL")
	case snap.HasShield:
		extras = append(extras, "SHIELD")
	}
	if len(extras) > 0 {
		text := strings.Join(extras, " ") + " "
		s.DrawTextColored(s.Width()-len([]rune(text)), 0, text, core.ColorParticle)
	}
}

func drawOverlay(s *core.Screen, snap *helix.Snapshot) {
	mid := s.Height() / 2
	switch {
	case snap.GameOver:
		s.DrawTextCentered(mid-1, " GAME OVER ", core.ColorDanger)
		s.DrawTextCentered(mid, fmt.Sprintf(" score %d  best %d ", snap.Score, snap.HighScore), core.ColorHUD)
		s.DrawTextCentered(mid+1, " r to restart ", core.ColorDim)
	case !snap.Started:
		s.DrawTextCentered(mid-1, " HELIX DROP ", core.ColorFinish)
		s.DrawTextCentered(mid, " space to start ", core.ColorHUD)
	case snap.Paused:
		s.DrawTextCentered(mid, " PAUSED ", core.ColorHUD)
	case snap.Completing:
		s.DrawTextCentered(mid, " LEVEL CLEAR ", core.ColorFinish)
	}
}
