package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/pomoplan/pomoplan/internal/timer"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.styles.Header.Render("pomoplan"))
	sections = append(sections, m.renderTimer())

	switch m.mode {
	case ModeInputTitle:
		sections = append(sections, m.renderDialog("New task", m.titleInput.View()))
	case ModeInputNotes:
		sections = append(sections, m.renderDialog("New task: "+m.titleInput.Value(), m.notesInput.View()))
	case ModeInputPlan:
		sections = append(sections, m.renderDialog("Plan your day", m.planInput.View()))
	case ModeConfirm:
		sections = append(sections, m.renderConfirm())
	case ModeHelp:
		sections = append(sections, m.styles.Help.Render(m.help.FullHelpView(m.keys.FullHelp())))
	case ModeNormal:
		sections = append(sections, m.taskList.View())
	}

	if m.err != nil {
		sections = append(sections, m.styles.Error.Render("Error: "+m.err.Error()))
	}

	if m.mode == ModeNormal {
		sections = append(sections, m.styles.Help.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	}

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderTimer renders the countdown pane.
func (m *Model) renderTimer() string {
	snap := m.engine.Snapshot()

	modeStyle := m.styles.TimerMode.Foreground(ModeColor(snap.Mode))
	clock := m.styles.TimerClock.Render(formatClock(snap.TimeLeft))
	modeLabel := modeStyle.Render(snap.Mode.String())

	var stateLabel string
	switch snap.State {
	case timer.StateRunning:
		stateLabel = m.styles.TimerRunning.Render("running")
	case timer.StatePaused:
		stateLabel = m.styles.TimerPaused.Render("paused")
	case timer.StateIdle:
		stateLabel = m.styles.TimerState.Render("idle")
	}

	var taskLine string
	if id, ok := m.engine.ActiveTaskID(); ok {
		title := ""
		for _, t := range m.tasks {
			if t.ID == id {
				title = t.Title
				break
			}
		}
		taskLine = m.styles.TaskMeta.Render(fmt.Sprintf("#%d %s", id, title))
	} else {
		taskLine = m.styles.TimerNoTask.Render("no active task - press enter on a task to start")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		clock+"  "+modeLabel+"  "+stateLabel,
		taskLine,
	)
	return m.styles.TimerPane.Render(content)
}

func (m *Model) renderDialog(title, body string) string {
	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.DialogTitle.Render(title),
		body,
	))
}

func (m *Model) renderConfirm() string {
	task := m.SelectedTask()
	if task == nil {
		return ""
	}
	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.DialogTitle.Render("Delete task"),
		m.styles.DialogPrompt.Render(fmt.Sprintf("Delete #%d %q? (y/N)", task.ID, task.Title)),
	))
}

// formatClock renders seconds as mm:ss.
func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
