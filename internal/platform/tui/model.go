package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/letterfall/letterfall/internal/core"
	"github.com/letterfall/letterfall/internal/game"
	"github.com/letterfall/letterfall/internal/storage"
)

// GameModel is the Bubble Tea model for one letterfall round.
// It can run standalone (local play) or embedded in a SessionModel (SSH).
type GameModel struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	topicID    string
	player     string
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	roundSaved bool // Whether the round has been persisted for current game over
}

// NewGameModel creates a Bubble Tea model for the given game.
func NewGameModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, topicID, player string) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		topicID:    topicID,
		player:     player,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the round.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRound(storage.OutcomeAbandoned)
		m.quitting = true
		return m, tea.Quit
	}

	// B or Esc returns to the menu when game over or paused
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.saveRound(storage.OutcomeAbandoned)
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleMouse turns a left press into a catch at the pointer position.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.SetClick(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The playfield geometry depends on the screen, so a resize restarts
	// the round unless it is already over.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Reseed on restart so each round plays differently
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.roundSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Persist the round once when it ends
	if m.gameState.GameOver && !m.roundSaved {
		outcome := storage.OutcomeLost
		if m.gameState.Won {
			outcome = storage.OutcomeWon
		}
		m.saveRound(outcome)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRound persists the current round, at most once per round.
// Abandoning before game over records an abandoned outcome; quitting from
// the game-over screen records nothing extra.
func (m *GameModel) saveRound(outcome string) {
	if m.roundSaved || m.store == nil {
		return
	}
	if outcome == storage.OutcomeAbandoned && m.gameState.GameOver {
		return
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRound(storage.RoundRecord{
		TopicID:    m.topicID,
		Player:     m.player,
		Outcome:    outcome,
		WordsFound: m.game.WordsFound(),
		Credits:    m.game.Credits(),
		Score:      m.gameState.Score,
		Duration:   m.game.Elapsed(),
	})
	m.roundSaved = true
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the given game.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, topicID, player string) error {
	model := NewGameModel(g, store, cfg, topicID, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse catches
	)

	_, err := p.Run()
	return err
}
