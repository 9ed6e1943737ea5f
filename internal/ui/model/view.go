package model

import (
	"fmt"
	"strings"

	"github.com/palemoky/dasar/internal/ui/common"
	"github.com/palemoky/dasar/internal/ui/view"
)

func (m *GameModel) View() string {
	if m.showingHelp {
		return view.HelpOverlay(m.width, m.height)
	}

	var content string
	switch m.phase {
	case PhaseStarting:
		content = m.startingView()
	case PhaseGameOver:
		content = view.GameOverView(m.state, m.width)
	default:
		content = m.playingView()
	}
	return common.DocStyle.Render(content)
}

func (m *GameModel) startingView() string {
	if m.error != "" {
		return common.ErrorStyle.Render(m.error) + "\n\n按 ESC 退出"
	}
	return common.TitleStyle.Render("🃏 Dasar") + "\n\n正在发牌..."
}

func (m *GameModel) playingView() string {
	var sb strings.Builder
	sb.WriteString(common.TitleStyle.Render("🃏 Dasar"))
	sb.WriteString("\n\n")
	sb.WriteString(view.RenderPlayers(m.state))
	sb.WriteString("\n")
	sb.WriteString(view.RenderTable(m.state))
	sb.WriteString("\n")

	if cur, ok := m.currentPlayer(); ok {
		sb.WriteString(view.RenderHand(cur))
		sb.WriteString("\n")
		sb.WriteString(m.renderPrompt(cur.Name))
	}

	sb.WriteString(m.input.View())
	sb.WriteString("\n")

	if m.hint != "" {
		sb.WriteString(common.HintStyle.Render(m.hint))
		sb.WriteString("\n")
	}
	if m.error != "" {
		sb.WriteString(common.ErrorStyle.Render(m.error))
		sb.WriteString("\n")
	}
	if log := view.RenderEventLog(m.logLines); log != "" {
		sb.WriteString("\n")
		sb.WriteString(log)
	}
	return sb.String()
}

func (m *GameModel) renderPrompt(name string) string {
	if m.table.Remaining() > 0 {
		return common.PromptStyle.Render(fmt.Sprintf("%s %s | 轮到 %s 出牌!", common.TimerIcon, m.timer.View(), name)) + "\n"
	}
	return common.PromptStyle.Render(fmt.Sprintf("%s 轮到 %s 出牌!", common.TurnIcon, name)) + "\n"
}
