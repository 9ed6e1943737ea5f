package model

import (
	"errors"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/dasar/internal/protocol"
	"github.com/palemoky/dasar/internal/sound"
	"github.com/palemoky/dasar/internal/ui/input"
	"github.com/palemoky/dasar/internal/ui/view"
)

func (m *GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if handled, returnCmd := m.handleKeyPress(msg); handled {
			return m, returnCmd
		}

	case EventMsg:
		cmds = append(cmds, m.handleEvent(msg.Event), m.listenForEvents())

	case StartErrorMsg:
		m.error = "无法开始游戏: " + errorText(msg.Err)

	case timer.TickMsg:
		// 最后几秒每秒提示一次
		if msg.ID == m.timer.ID() && m.timer.Running() && m.timer.Timeout <= tickWarning {
			m.playSound(sound.EffectTick)
		}
	}

	m.timer, cmd = m.timer.Update(msg)
	cmds = append(cmds, cmd)

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleEvent 刷新快照并按事件类型更新界面
func (m *GameModel) handleEvent(ev protocol.Event) tea.Cmd {
	m.state = m.table.Snapshot()
	m.appendLog(view.FormatEvent(ev))

	switch ev.Type {
	case protocol.EventGameStart:
		m.phase = PhasePlaying
	case protocol.EventTurn:
		m.phase = PhasePlaying
		m.hint = ""
		if ev.Timeout > 0 {
			m.timer = newTurnTimer(ev.Timeout)
			return m.timer.Init()
		}
	case protocol.EventCardPlayed:
		m.playSound(sound.EffectPlay)
	case protocol.EventPlayerDead:
		m.playSound(sound.EffectDead)
	case protocol.EventGameOver:
		m.phase = PhaseGameOver
		m.playSound(sound.EffectWin)
		return m.timer.Stop()
	}
	return nil
}

// handleKeyPress 处理按键消息，返回是否已处理和命令
func (m *GameModel) handleKeyPress(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		if m.showingHelp && msg.Type == tea.KeyEsc {
			m.showingHelp = false
			return true, nil
		}
		return true, m.quit()
	}

	if m.phase == PhaseGameOver {
		switch msg.String() {
		case "n", "N":
			return true, m.restart()
		case "q", "Q":
			return true, m.quit()
		}
		return true, nil
	}

	if msg.Type == tea.KeyEnter {
		line := m.input.Value()
		m.input.SetValue("")
		return true, m.handleCommand(line)
	}
	return false, nil
}

func (m *GameModel) handleCommand(line string) tea.Cmd {
	cmd, err := input.Parse(line)
	if err != nil {
		if !errors.Is(err, input.ErrEmpty) {
			m.error = err.Error()
		}
		return nil
	}
	m.error = ""

	switch cmd.Kind {
	case input.KindQuit:
		return m.quit()
	case input.KindHelp:
		m.showingHelp = !m.showingHelp
		return nil
	case input.KindHint:
		m.showHint()
		return nil
	}

	if m.phase != PhasePlaying {
		m.error = "游戏还没有开始"
		return nil
	}
	cur, ok := m.currentPlayer()
	if !ok {
		return nil
	}
	intent, err := cmd.Intent(cur.ID, cur.Hand, m.state.Plays)
	if err != nil {
		m.error = err.Error()
		return nil
	}
	if _, err := m.table.Submit(intent); err != nil {
		m.error = errorText(err)
	}
	return nil
}

func (m *GameModel) showHint() {
	cur, ok := m.currentPlayer()
	if !ok {
		return
	}
	s, ok := m.table.Hint()
	if !ok {
		m.hint = "没有可出的牌"
		return
	}
	m.hint = "提示: " + input.Format(s, cur.Hand, m.state.Plays)
}

func (m *GameModel) quit() tea.Cmd {
	m.table.Stop()
	if m.sound != nil {
		m.sound.Close()
	}
	return tea.Quit
}
