package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/helix-drop/internal/config"
	"github.com/vovakirdan/helix-drop/internal/core"
)

// Fixed colors for slots the theme does not cover.
const (
	finishColor   = "#ffffff"
	ballColor     = "#fafafa"
	shieldColor   = "#4dd0e1"
	fireballColor = "#ff7043"
	hudColor      = "#e0e0e0"
	dimColor      = "#5c5c6e"
)

// Palette maps core.Color slots to lipgloss styles for one theme.
type Palette struct {
	name   string
	styles map[core.Color]lipgloss.Style
}

// NewPalette builds the styles of a theme. Every slot shares the theme
// background.
func NewPalette(theme config.Theme) Palette {
	base := lipgloss.NewStyle()
	if theme.Background != "" {
		base = base.Background(lipgloss.Color(theme.Background))
	}
	fg := func(c string) lipgloss.Style {
		return base.Foreground(lipgloss.Color(c))
	}

	return Palette{
		name: theme.Name,
		styles: map[core.Color]lipgloss.Style{
			core.ColorDefault:    base,
			core.ColorBackground: base,
			core.ColorPole:       fg(theme.Pole),
			core.ColorSafe:       fg(theme.Safe),
			core.ColorDanger:     fg(theme.Danger).Bold(true),
			core.ColorFinish:     fg(finishColor).Bold(true),
			core.ColorBall:       fg(ballColor).Bold(true),
			core.ColorShield:     fg(shieldColor).Bold(true),
			core.ColorFireball:   fg(fireballColor).Bold(true),
			core.ColorParticle:   fg(theme.Particle),
			core.ColorHUD:        fg(hudColor),
			core.ColorDim:        fg(dimColor),
		},
	}
}

// Name returns the theme name the palette was built from.
func (p Palette) Name() string {
	return p.name
}

// Style returns the style of a slot, falling back to the default slot.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if style, ok := p.styles[c]; ok {
		return style
	}
	return p.styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
