// Package view provides UI rendering functions.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/dasar/internal/game/card"
	"github.com/palemoky/dasar/internal/game/session"
	"github.com/palemoky/dasar/internal/ui/common"
)

func cardStyle(c card.Card) lipgloss.Style {
	switch {
	case c.IsJoker():
		return common.JokerStyle
	case c.Suit.IsRed():
		return common.RedStyle
	default:
		return common.BlackStyle
	}
}

// RenderCard renders a single card inline, e.g. "10♥".
func RenderCard(c card.Card) string {
	return cardStyle(c).Render(c.String())
}

// RenderCards renders cards inline separated by spaces.
func RenderCards(cards []card.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = RenderCard(c)
	}
	return strings.Join(parts, " ")
}

// RenderHand renders a hand as columns of index, rank and suit so cards can be picked by number.
func RenderHand(p session.Player) string {
	if len(p.Hand) == 0 {
		return common.BoxStyle.Render("(无手牌)")
	}

	var idxStr, rankStr, suitStr strings.Builder
	for i, c := range p.Hand {
		style := cardStyle(c).Align(lipgloss.Center).Margin(0, 1)
		rank, suit := c.Rank.String(), c.Suit.String()
		if c.IsJoker() {
			rank, suit = "JK", "★"
		}
		idxStr.WriteString(lipgloss.NewStyle().Width(2).Margin(0, 1).Align(lipgloss.Center).Render(fmt.Sprintf("%d", i+1)))
		rankStr.WriteString(style.Render(fmt.Sprintf("%-2s", rank)))
		suitStr.WriteString(style.Render(fmt.Sprintf("%-2s", suit)))
	}

	title := fmt.Sprintf("%s 的手牌 (%d张, %d分)", p.Name, len(p.Hand), session.CalculateScore(p.Hand))
	content := lipgloss.JoinVertical(lipgloss.Center, title, common.HintStyle.Render(idxStr.String()), rankStr.String(), suitStr.String())
	return common.BoxStyle.Render(content)
}
