// Package common provides shared styles and utilities for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"
)

// Icon constants
const (
	TurnIcon   = "👉"
	DeadIcon   = "💀"
	BaseIcon   = "🃏"
	WinnerIcon = "🏆"
	TimerIcon  = "⏳"
)

// Lipgloss Styles
var (
	DocStyle     = lipgloss.NewStyle().Margin(1, 2)
	RedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	BlackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	JokerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B008B")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	TitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	BoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	PromptStyle  = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	HintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	CurrentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	DeadStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
)
