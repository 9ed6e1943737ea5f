package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/dasar/internal/game/session"
	"github.com/palemoky/dasar/internal/protocol"
	"github.com/palemoky/dasar/internal/ui/common"
)

const maxNameLen = 10

var winReasonNames = map[session.WinReason]string{
	session.WinZonk:         "出完手牌",
	session.WinFourJokers:   "集齐 4 张王",
	session.WinEightOfAKind: "同点数 8 张",
	session.WinLowestScore:  "手牌分数最低",
}

// WinReasonName returns a readable description of a win reason.
func WinReasonName(r session.WinReason) string {
	if name, ok := winReasonNames[r]; ok {
		return name
	}
	return string(r)
}

func playerName(st session.State, id string) string {
	for _, p := range st.Players {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}

// RenderPlayers renders one box per player in seat order. Other players' hands stay hidden.
func RenderPlayers(st session.State) string {
	parts := make([]string, 0, len(st.Players))
	for i, p := range st.Players {
		name := common.TruncateName(p.Name, maxNameLen)
		icon := "  "
		switch {
		case !p.IsAlive:
			icon = common.DeadIcon
			name = common.DeadStyle.Render(name)
		case i == st.CurrentPlayerIndex && st.Status == session.StatusPlaying:
			icon = common.TurnIcon
			name = common.CurrentStyle.Render(name)
		}

		base := ""
		if p.HasPlayedBase {
			base = " " + common.BaseIcon
		}
		info := fmt.Sprintf("%s %s%s\n%d张", icon, name, base, len(p.Hand))
		parts = append(parts, common.BoxStyle.Width(16).Render(info))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderTable renders the combinations on the table, numbered for the extend command.
func RenderTable(st session.State) string {
	if len(st.Plays) == 0 {
		return common.BoxStyle.Width(60).Render("桌面 (还没有人出牌)")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("桌面 (牌堆剩余 %d 张)\n", st.RemainingCards))
	for i, p := range st.Plays {
		fmt.Fprintf(&sb, "#%d %-6s %-10s %s\n", i+1, p.Type, common.TruncateName(playerName(st, p.OwnerID), maxNameLen), RenderCards(p.Cards))
	}
	return common.BoxStyle.Width(60).Render(strings.TrimSuffix(sb.String(), "\n"))
}

// RenderEventLog renders the most recent event lines.
func RenderEventLog(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return common.HintStyle.Render(strings.Join(lines, "\n"))
}

// FormatEvent describes a table event in one line.
func FormatEvent(ev protocol.Event) string {
	switch ev.Type {
	case protocol.EventGameStart:
		return "🎮 游戏开始"
	case protocol.EventTurn:
		return fmt.Sprintf("第 %d 回合: 轮到 %s", ev.Turn+1, ev.PlayerName)
	case protocol.EventCardPlayed:
		if ev.Play == nil {
			return fmt.Sprintf("%s 出牌", ev.PlayerName)
		}
		return fmt.Sprintf("%s 出了 %s (%d张)", ev.PlayerName, ev.Play.Type, len(ev.Play.Cards))
	case protocol.EventTimeout:
		return fmt.Sprintf("%s %s 出牌超时", common.TimerIcon, ev.PlayerName)
	case protocol.EventPlayerDead:
		reason := "超时"
		if ev.Reason == "no_move" {
			reason = "无牌可出"
		}
		return fmt.Sprintf("%s %s 出局 (%s)", common.DeadIcon, ev.PlayerName, reason)
	case protocol.EventGameOver:
		return fmt.Sprintf("%s %s 获胜", common.WinnerIcon, ev.PlayerName)
	default:
		return string(ev.Type)
	}
}

// GameOverView renders the result screen.
func GameOverView(st session.State, width int) string {
	var sb strings.Builder
	sb.WriteString("🎮 游戏结束!\n\n")
	if st.Winner != nil {
		fmt.Fprintf(&sb, "%s %s 获胜! (%s)\n", common.WinnerIcon, st.Winner.Name, WinReasonName(st.WinReason))
	}

	if len(st.Scores) > 0 {
		sb.WriteString("\n结算 (分数越低越好):\n")
		for _, p := range st.Players {
			fmt.Fprintf(&sb, "  %-10s %3d 分\n", common.TruncateName(p.Name, maxNameLen), st.Scores[p.ID])
		}
	}
	sb.WriteString("\n按 N 开始新的一局, Q 退出")

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(sb.String())
}
