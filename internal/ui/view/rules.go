package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/dasar/internal/ui/common"
)

// RenderGameRules renders the game rules.
func RenderGameRules() string {
	var sb strings.Builder
	sb.WriteString("📖 Dasar 游戏规则\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	sb.WriteString("【游戏目标】\n")
	sb.WriteString("两副牌加 4 张王，每人 20 张。满足任一条件立即获胜：\n")
	sb.WriteString("• 出完手牌\n")
	sb.WriteString("• 手里集齐 4 张王\n")
	sb.WriteString("• 手里有同点数的 8 张牌\n\n")

	sb.WriteString("【牌型说明】\n")
	sb.WriteString("• Dasar：至少 3 张同花色的连续牌，王可以代替缺的牌，A 不能接 2\n")
	sb.WriteString("• Triple：3 张同点数的牌，王可以代替，但至少要有 1 张普通牌\n")
	sb.WriteString("• 接牌：把同花色的牌接到桌上任意 dasar 的两端\n\n")

	sb.WriteString("【出牌规则】\n")
	sb.WriteString("1. 每回合出一次：开 dasar、出 triple 或接牌\n")
	sb.WriteString("2. 开过 dasar 后，判断能否出牌时只看 triple 和接牌\n")
	sb.WriteString("3. 超时或无牌可出的玩家出局\n")
	sb.WriteString("4. 只剩一人时按手牌计分，分数最低者获胜\n")
	sb.WriteString("   A=15, J/Q/K=10, 其余按点数, 王=0\n\n")

	sb.WriteString("【命令】\n")
	sb.WriteString("• d 1 2 3：用第 1、2、3 张牌开 dasar\n")
	sb.WriteString("• t 4 5 6：出 triple\n")
	sb.WriteString("• e 2 7：把第 7 张牌接到桌上第 2 组\n")
	sb.WriteString("• h：提示  ?：显示/隐藏帮助  q：退出\n")

	return common.BoxStyle.Render(sb.String())
}

// HelpOverlay places the rules over the whole screen.
func HelpOverlay(width, height int) string {
	return lipgloss.Place(width, height,
		lipgloss.Center, lipgloss.Center,
		RenderGameRules(),
		lipgloss.WithWhitespaceChars(" "),
	)
}
