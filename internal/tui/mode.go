// Package tui provides the terminal user interface for pomoplan.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal     Mode = iota // Default navigation mode
	ModeInputTitle             // Title input mode (for new task)
	ModeInputNotes             // Notes input mode (for new task)
	ModeInputPlan              // Plan description input mode
	ModeConfirm                // Confirmation dialog mode
	ModeHelp                   // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInputTitle:
		return "input_title"
	case ModeInputNotes:
		return "input_notes"
	case ModeInputPlan:
		return "input_plan"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeInputTitle, ModeInputNotes, ModeInputPlan:
		return true
	case ModeNormal, ModeConfirm, ModeHelp:
		return false
	}
	return false
}
