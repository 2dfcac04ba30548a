package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pomoplan/pomoplan/internal/domain"
	"github.com/pomoplan/pomoplan/internal/timer"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Timer mode colors
	Focus      lipgloss.Color
	ShortBreak lipgloss.Color
	LongBreak  lipgloss.Color

	// Status colors
	Todo lipgloss.Color
	Done lipgloss.Color
}{
	Primary:   lipgloss.Color("#E17055"), // Tomato
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	Focus:      lipgloss.Color("#E17055"), // Tomato
	ShortBreak: lipgloss.Color("#00B894"), // Green
	LongBreak:  lipgloss.Color("#74B9FF"), // Light blue

	Todo: lipgloss.Color("#74B9FF"), // Light blue
	Done: lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header lipgloss.Style

	// Timer pane
	TimerPane    lipgloss.Style
	TimerClock   lipgloss.Style
	TimerMode    lipgloss.Style
	TimerState   lipgloss.Style
	TimerNoTask  lipgloss.Style
	TimerRunning lipgloss.Style
	TimerPaused  lipgloss.Style

	// Task list
	TaskTitle         lipgloss.Style
	TaskTitleSelected lipgloss.Style
	TaskMeta          lipgloss.Style
	ActiveMarker      lipgloss.Style

	// Status badges
	StatusTodo lipgloss.Style
	StatusDone lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Error
	Error lipgloss.Style

	// Help
	Help lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Header: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		TimerPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted).
			Padding(0, 2),
		TimerClock: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleNormal),
		TimerMode: lipgloss.NewStyle().
			Foreground(Colors.Secondary),
		TimerState: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		TimerNoTask: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),
		TimerRunning: lipgloss.NewStyle().
			Foreground(Colors.Success),
		TimerPaused: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),
		TaskTitleSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),
		TaskMeta: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		ActiveMarker: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		StatusTodo: lipgloss.NewStyle().Foreground(Colors.Todo),
		StatusDone: lipgloss.NewStyle().Foreground(Colors.Done),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),
		DialogPrompt: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		Error: lipgloss.NewStyle().
			Foreground(Colors.Error),

		Help: lipgloss.NewStyle().
			Foreground(Colors.Muted),
	}
}

// StatusStyle returns the badge style for a task status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	if status == domain.StatusDone {
		return s.StatusDone
	}
	return s.StatusTodo
}

// ModeColor returns the accent color for a timer mode.
func ModeColor(mode timer.Mode) lipgloss.Color {
	switch mode {
	case timer.ModeShortBreak:
		return Colors.ShortBreak
	case timer.ModeLongBreak:
		return Colors.LongBreak
	default:
		return Colors.Focus
	}
}
