package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/pomoplan/pomoplan/internal/domain"
)

type taskItem struct {
	task *domain.Task
}

func (t taskItem) FilterValue() string {
	return t.task.Title
}

type taskDelegate struct {
	styles       Styles
	activeTaskID func() (int, bool)
}

func newTaskDelegate(styles Styles, activeTaskID func() (int, bool)) taskDelegate {
	return taskDelegate{styles: styles, activeTaskID: activeTaskID}
}

func (d taskDelegate) Height() int {
	return 1
}

func (d taskDelegate) Spacing() int {
	return 0
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}

	activeChar := " "
	if id, ok := d.activeTaskID(); ok && id == task.ID {
		activeChar = "●"
	}

	idStr := fmt.Sprintf("%3d", task.ID)
	progressStr := fmt.Sprintf("%-5s", progressText(task))

	prefixWidth := 16
	listWidth := m.Width()
	maxTitleLen := listWidth - prefixWidth - 2
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}

	title := task.Title
	if runewidth.StringWidth(title) > maxTitleLen {
		title = runewidth.Truncate(title, maxTitleLen-3, "...")
	}

	titleStyle := d.styles.TaskTitle
	if selected {
		titleStyle = d.styles.TaskTitleSelected
	}
	statusStyle := d.styles.StatusStyle(task.Status)

	line := "  " + d.styles.ActiveMarker.Render(activeChar) + indicatorChar + " " +
		d.styles.TaskMeta.Render(idStr) + "  " +
		statusStyle.Render(progressStr) + "  " +
		titleStyle.Render(title)

	lineWidth := runewidth.StringWidth(line)
	if lineWidth < listWidth {
		line += fmt.Sprintf("%*s", listWidth-lineWidth, "")
	}
	_, _ = fmt.Fprint(w, line)
}

// progressText shows pomodoro progress, or a check mark for done tasks.
func progressText(task *domain.Task) string {
	if task.IsDone() {
		return "✓"
	}
	if task.ExpectedPomodoros > 0 {
		return fmt.Sprintf("%d/%d", task.CompletedPomodoros, task.ExpectedPomodoros)
	}
	return fmt.Sprintf("%d", task.CompletedPomodoros)
}
