// Package model implements the hot-seat terminal client.
package model

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/dasar/internal/apperrors"
	"github.com/palemoky/dasar/internal/game/session"
	"github.com/palemoky/dasar/internal/game/table"
	"github.com/palemoky/dasar/internal/logger"
	"github.com/palemoky/dasar/internal/protocol"
)

// GamePhase represents the current screen.
type GamePhase int

const (
	PhaseStarting GamePhase = iota
	PhasePlaying
	PhaseGameOver
)

const (
	eventBuffer = 256
	maxLogLines = 6
	tickWarning = 5 * time.Second
)

// --- Tea Messages ---

// EventMsg wraps a table event for tea.Msg.
type EventMsg struct {
	Event protocol.Event
}

// StartErrorMsg indicates the game could not be started.
type StartErrorMsg struct {
	Err error
}

// SoundPlayer plays named sound effects, see sound.SoundManager.
type SoundPlayer interface {
	Init() error
	Play(name string)
	Close()
}

// TableFactory builds a fresh table that reports to notifier.
type TableFactory func(notifier table.Notifier) *table.Table

// channelNotifier forwards table events into the tea event loop.
type channelNotifier chan protocol.Event

func (c channelNotifier) Notify(ev protocol.Event) {
	select {
	case c <- ev:
	default:
		logger.LogError("event buffer full, dropped %s", ev.Type)
	}
}

// GameModel is the hot-seat client: every player shares the terminal and only
// the current player's hand is shown.
type GameModel struct {
	newTable TableFactory
	names    []string
	table    *table.Table
	events   channelNotifier
	sound    SoundPlayer

	phase  GamePhase
	state  session.State
	width  int
	height int

	input textinput.Model
	timer timer.Model

	logLines    []string
	error       string
	hint        string
	showingHelp bool
}

// NewGameModel creates a model that starts a game for names on Init.
func NewGameModel(names []string, newTable TableFactory, sound SoundPlayer) *GameModel {
	ti := textinput.New()
	ti.Placeholder = "输入命令，如 d 1 2 3 (? 查看帮助)"
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	events := make(channelNotifier, eventBuffer)
	return &GameModel{
		newTable: newTable,
		names:    names,
		table:    newTable(events),
		events:   events,
		sound:    sound,
		input:    ti,
	}
}

func (m *GameModel) Init() tea.Cmd {
	if m.sound != nil {
		go func() {
			if err := m.sound.Init(); err != nil {
				logger.LogError("sound init failed: %v", err)
			}
		}()
	}

	return tea.Batch(
		m.startGame(),
		m.listenForEvents(),
		textinput.Blink,
	)
}

func (m *GameModel) startGame() tea.Cmd {
	t := m.table
	names := m.names
	return func() tea.Msg {
		if err := t.Start(names); err != nil {
			return StartErrorMsg{Err: err}
		}
		return nil
	}
}

func (m *GameModel) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		return EventMsg{Event: <-m.events}
	}
}

// restart stops the current table and starts a new game with the same players.
func (m *GameModel) restart() tea.Cmd {
	m.table.Stop()
	m.table = m.newTable(m.events)
	m.phase = PhaseStarting
	m.state = session.State{}
	m.logLines = nil
	m.error = ""
	m.hint = ""
	m.input.SetValue("")
	return m.startGame()
}

// Accessors

func (m *GameModel) Phase() GamePhase        { return m.phase }
func (m *GameModel) State() session.State    { return m.state }
func (m *GameModel) Error() string           { return m.error }
func (m *GameModel) Hint() string            { return m.hint }
func (m *GameModel) ShowingHelp() bool       { return m.showingHelp }
func (m *GameModel) LogLines() []string      { return m.logLines }
func (m *GameModel) Table() *table.Table     { return m.table }
func (m *GameModel) Input() *textinput.Model { return &m.input }

func (m *GameModel) playSound(name string) {
	if m.sound != nil {
		m.sound.Play(name)
	}
}

func (m *GameModel) appendLog(line string) {
	m.logLines = append(m.logLines, line)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
}

// currentPlayer returns the player whose turn it is, if the game is running.
func (m *GameModel) currentPlayer() (session.Player, bool) {
	if m.state.Status != session.StatusPlaying || len(m.state.Players) == 0 {
		return session.Player{}, false
	}
	return m.state.Players[m.state.CurrentPlayerIndex], true
}

// errorText returns the user-facing message of an engine error.
func errorText(err error) string {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		return gameErr.Message
	}
	return err.Error()
}

func newTurnTimer(d time.Duration) timer.Model {
	return timer.NewWithInterval(d, time.Second)
}
