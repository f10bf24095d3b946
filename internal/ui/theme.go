package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Hangman theme (CLI + TUI).

const (
	IconRope   = "🪢"
	IconTrophy = "🏆"
	IconSkull  = "💀"
	IconBulb   = "💡"
	IconPause  = "⏸"
	IconInfo   = "ℹ️"
	IconWarn   = "⚠️"
	IconError  = "🧨"
	IconBook   = "📖"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	Selected    = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
	WordDisplay = lipgloss.NewStyle().Bold(true).Foreground(cGold).Padding(1, 2)
	Gallows     = lipgloss.NewStyle().Foreground(cMuted)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// StatusText colours a round status ("in_progress", "won", "lost").
func StatusText(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "won":
		return Good.Render("won")
	case "lost":
		return Bad.Render("lost")
	case "in_progress":
		return H2.Render("in progress")
	default:
		return Muted.Render(status)
	}
}

// Attempts renders wrong/max, turning orange then red as the gallows fills.
func Attempts(wrong, max int) string {
	s := fmt.Sprintf("%d/%d", wrong, max)
	switch {
	case wrong >= max:
		return Bad.Render(s)
	case wrong >= max-2:
		return Warn.Render(s)
	default:
		return Good.Render(s)
	}
}
