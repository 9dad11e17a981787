package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jubams/ramadan-tracker/internal/catalog"
)

// Ramadan tracker theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconMoon     = "🌙"
	IconSparkle  = "✨"
	IconDone     = "✅"
	IconTrophy   = "🏆"
	IconFlame    = "🔥"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconBook     = "📖"
	IconChart    = "📊"
	IconLock     = "🔒"
	IconCalendar = "📅"
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
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
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

// ProgressIcon buckets a percentage into the matrix glyphs.
func ProgressIcon(pct int) string {
	switch {
	case pct == 0:
		return "○"
	case pct <= 33:
		return "◐"
	case pct <= 66:
		return "◑"
	case pct < 100:
		return "◒"
	default:
		return "●"
	}
}

// ProgressLabel buckets a percentage into a short status phrase.
func ProgressLabel(pct int) string {
	switch {
	case pct == 0:
		return "Not Started"
	case pct <= 33:
		return "Getting Started"
	case pct <= 66:
		return "Good Progress"
	case pct < 100:
		return "Almost There"
	default:
		return "Complete!"
	}
}

// ProgressStyle buckets a percentage into the theme color for it.
func ProgressStyle(pct int) lipgloss.Style {
	switch {
	case pct == 0:
		return Muted
	case pct <= 33:
		return Bad
	case pct <= 66:
		return Warn
	default:
		return Good
	}
}

// ProgressCell renders one colored matrix cell.
func ProgressCell(pct int) string {
	return ProgressStyle(pct).Render(ProgressIcon(pct))
}

// KindIcon returns the emoji for a catalog item.
func KindIcon(it catalog.Item) string {
	if it.Kind == catalog.KindPrayer {
		return IconMoon
	}
	if it.GoalKind == catalog.GoalNumber {
		return IconBook
	}
	return IconSparkle
}

// ProgressBar renders a fixed-width [###---] bar for a percentage.
func ProgressBar(pct int, width int) string {
	if width <= 3 {
		width = 3
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
