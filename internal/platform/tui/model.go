package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/helix-drop/internal/config"
	"github.com/vovakirdan/helix-drop/internal/core"
	"github.com/vovakirdan/helix-drop/internal/helix"
	"github.com/vovakirdan/helix-drop/internal/storage"
)

// Play screen tuning.
const (
	mouseDragScale   = 0.25 // Drag units per mouse cell
	sensitivityStep  = 0.1  // Rotation gain change per key press
	minRotationGain  = 0.1
	maxRotationGain  = 3.0
	flashDuration    = 90 // Frames a flash message stays visible
	helpLines        = 1
	fallbackTickRate = 60
)

// Model is the Bubble Tea model for a Helix Drop session.
type Model struct {
	game   *helix.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	log    *log.Logger

	keys       *KeyMapper
	help       help.Model
	palette    Palette
	inputFrame core.InputFrame
	keyDrag    float64

	lastTick   time.Time
	mouseX     int
	dragging   bool
	flash      string
	flashLeft  int
	quitting   bool
	scoreSaved bool // Whether the current run's score has been saved
	dirty      bool // Sensitivity changed since last save
}

// NewModel creates a new Bubble Tea model around a game. store and logger
// may be nil.
func NewModel(game *helix.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = fallbackTickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	snap := game.Snapshot()
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-helpLines)),
		store:      store,
		config:     cfg,
		log:        logger,
		keys:       NewKeyMapper(),
		help:       help.New(),
		palette:    NewPalette(snap.Theme),
		inputFrame: core.NewInputFrame(),
		keyDrag:    game.Sensitivity().KeyDrag,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame, m.keyDrag) {
		m.quitting = true
		m.saveRun()
		m.saveSensitivity()
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns horizontal motion with the left button held into drag.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragging = true
		m.mouseX = msg.X
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.inputFrame.AddDrag(float64(msg.X-m.mouseX) * mouseDragScale)
		m.mouseX = msg.X
	}
	return m, nil
}

// handleResize processes window resize events. The simulation is independent
// of the screen size, so only the buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-helpLines))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick applies the input gathered since the last tick and advances the
// game by the real elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.applyInput()
	m.game.Step(dt)
	m.drainEvents()

	if m.flashLeft > 0 {
		m.flashLeft--
		if m.flashLeft == 0 {
			m.flash = ""
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// applyInput forwards one frame of input to the game.
func (m *Model) applyInput() {
	f := m.inputFrame
	state := m.game.State()

	switch {
	case f.Has(core.ActionRestart):
		m.saveRun()
		m.game.Restart()
		m.scoreSaved = false
	case f.Has(core.ActionConfirm) && (!m.game.Started() || state.GameOver):
		m.game.Start()
		m.scoreSaved = false
	case f.Has(core.ActionPause):
		m.game.TogglePause()
	}

	if f.Has(core.ActionSensitivityDown) {
		m.adjustSensitivity(-sensitivityStep)
	}
	if f.Has(core.ActionSensitivityUp) {
		m.adjustSensitivity(sensitivityStep)
	}

	if f.DragX != 0 {
		m.game.Drag(f.DragX)
	}
}

// adjustSensitivity changes the rotation gain within bounds.
func (m *Model) adjustSensitivity(delta float64) {
	in := m.game.Sensitivity()
	in.RotationGain = core.ClampF(in.RotationGain+delta, minRotationGain, maxRotationGain)
	m.game.SetSensitivity(in)
	m.dirty = true
	m.showFlash(fmt.Sprintf("sensitivity %.1f", in.RotationGain))
}

// saveSensitivity persists a changed sensitivity. Errors are logged only.
func (m *Model) saveSensitivity() {
	if !m.dirty || m.store == nil {
		return
	}
	in := m.game.Sensitivity()
	err := m.store.SaveSensitivity(storage.Sensitivity{
		RotationGain:     in.RotationGain,
		MaxRotationSpeed: in.MaxRotationSpeed,
		DampingFactor:    in.DampingFactor,
	})
	if err != nil {
		m.log.Warn("save sensitivity", "err", err)
		return
	}
	m.dirty = false
}

// drainEvents reacts to the game's notifications.
func (m *Model) drainEvents() {
	for _, e := range m.game.Events() {
		switch e := e.(type) {
		case helix.LevelCompletedEvent:
			m.showFlash(fmt.Sprintf("LEVEL %d  +%d", e.NewLevel, e.Bonus))
		case helix.ComboChangedEvent:
			if e.Count > 1 {
				m.showFlash(fmt.Sprintf("COMBO x%d  +%d", e.Count, e.Bonus))
			}
		case helix.PlatformDestroyedEvent:
			if e.Cause == helix.CauseSmash {
				m.showFlash("SMASH!")
			}
		case helix.PowerUpChangedEvent:
			if e.Active != helix.PowerUpNone {
				m.showFlash(e.Active.String() + "!")
			}
		case helix.GameOverEvent:
			m.saveScore(e.Score, e.Level)
		}
		m.log.Debug("event", "type", fmt.Sprintf("%T", e), "data", e)
	}

	snap := m.game.Snapshot()
	if snap.Theme.Name != m.palette.Name() {
		m.palette = NewPalette(snap.Theme)
	}
}

// saveRun records the run in progress before it is abandoned by a restart
// or quit.
func (m *Model) saveRun() {
	m.saveScore(m.game.Score(), m.game.Level())
}

// saveScore records a run once.
func (m *Model) saveScore(score, level int) {
	if m.scoreSaved || m.store == nil || score <= 0 {
		m.scoreSaved = true
		return
	}
	if _, err := m.store.SaveScore(helix.GameID, score, level); err != nil {
		m.log.Warn("save score", "err", err)
	}
	m.scoreSaved = true
}

func (m *Model) showFlash(text string) {
	m.flash = text
	m.flashLeft = flashDuration
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()
	DrawGame(m.screen, &snap, m.flash)
	return RenderScreen(m.screen, m.palette) + "\n" + m.help.View(m.keys.Keys())
}

// Run starts the Bubble Tea program with the given game.
func Run(game *helix.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag to spin the tower
	)

	_, err := p.Run()
	return err
}

// SensitivityFromStore overlays stored sensitivity on the configured one.
func SensitivityFromStore(store *storage.Store, in config.InputConfig) (config.InputConfig, error) {
	if store == nil {
		return in, nil
	}
	s, err := store.LoadSensitivity(storage.Sensitivity{
		RotationGain:     in.RotationGain,
		MaxRotationSpeed: in.MaxRotationSpeed,
		DampingFactor:    in.DampingFactor,
	})
	if err != nil {
		return in, err
	}
	in.RotationGain = s.RotationGain
	in.MaxRotationSpeed = s.MaxRotationSpeed
	in.DampingFactor = s.DampingFactor
	return in, nil
}
