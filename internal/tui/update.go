package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pomoplan/pomoplan/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgTick:
		m.engine.Tick()
		cmds := append(m.drainPending(), m.tick())
		return m, tea.Batch(cmds...)

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.updateTaskList()
		return m, nil

	case MsgTaskCreated:
		m.mode = ModeNormal
		m.titleInput.Reset()
		m.notesInput.Reset()
		return m, m.loadTasks()

	case MsgTaskCompleted:
		if id, ok := m.engine.ActiveTaskID(); ok && id == msg.TaskID {
			m.engine.SetActiveTask(nil)
		}
		return m, m.loadTasks()

	case MsgTaskDeleted:
		m.mode = ModeNormal
		if id, ok := m.engine.ActiveTaskID(); ok && id == msg.TaskID {
			m.engine.SetActiveTask(nil)
		}
		return m, m.loadTasks()

	case MsgPomodoroRecorded:
		return m, m.loadTasks()

	case MsgPlanReady:
		m.mode = ModeNormal
		m.planInput.Reset()
		return m, m.loadTasks()

	case MsgError:
		m.err = msg.Err
		m.mode = ModeNormal
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// handleKeyMsg routes key presses by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key clears a displayed error first.
	if m.err != nil {
		m.err = nil
	}

	switch m.mode {
	case ModeInputTitle:
		return m.handleTitleInputKeys(msg)
	case ModeInputNotes:
		return m.handleNotesInputKeys(msg)
	case ModeInputPlan:
		return m.handlePlanInputKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	case ModeNormal:
		return m.handleNormalKeys(msg)
	}
	return m, nil
}

func (m *Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.engine.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.Skip):
		m.engine.Skip()
		cmds := m.drainPending()
		if len(cmds) > 0 {
			return m, tea.Batch(cmds...)
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if task := m.SelectedTask(); task != nil && !task.IsDone() {
			m.engine.SetActiveTask(task)
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.mode = ModeInputTitle
		m.titleInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Done):
		if task := m.SelectedTask(); task != nil && !task.IsDone() {
			return m, m.completeTask(task.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if m.SelectedTask() != nil {
			m.mode = ModeConfirm
		}
		return m, nil

	case key.Matches(msg, m.keys.Plan):
		m.mode = ModeInputPlan
		m.planInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.engine.UpdateSettings(m.container.ReloadSettings())
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.ToggleShowAll):
		m.showAll = !m.showAll
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m *Model) handleTitleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.titleInput.Reset()
		return m, nil

	case msg.Type == tea.KeyEnter:
		if strings.TrimSpace(m.titleInput.Value()) == "" {
			return m, nil
		}
		m.mode = ModeInputNotes
		m.titleInput.Blur()
		m.notesInput.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m *Model) handleNotesInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.titleInput.Reset()
		m.notesInput.Reset()
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.notesInput.Blur()
		return m, m.createTask(strings.TrimSpace(m.titleInput.Value()), strings.TrimSpace(m.notesInput.Value()))
	}

	var cmd tea.Cmd
	m.notesInput, cmd = m.notesInput.Update(msg)
	return m, cmd
}

func (m *Model) handlePlanInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.planInput.Reset()
		return m, nil

	case msg.Type == tea.KeyEnter:
		desc := strings.TrimSpace(m.planInput.Value())
		if desc == "" {
			return m, nil
		}
		m.planInput.Blur()
		return m, m.planTasks(desc)
	}

	var cmd tea.Cmd
	m.planInput, cmd = m.planInput.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if task := m.SelectedTask(); task != nil {
			return m, m.deleteTask(task.ID)
		}
		m.mode = ModeNormal
		return m, nil

	default:
		m.mode = ModeNormal
		return m, nil
	}
}

func (m *Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	default:
		m.mode = ModeNormal
		return m, nil
	}
}

// updateLayoutSizes recalculates layout-dependent component sizes.
func (m *Model) updateLayoutSizes() {
	listHeight := m.height - 12
	if listHeight < 3 {
		listHeight = 3
	}
	m.taskList.SetSize(m.width-4, listHeight)
}

// createTask returns a command that creates a task.
func (m *Model) createTask(title, notes string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.NewTaskUseCase().Execute(context.Background(), usecase.NewTaskInput{
			Title: title,
			Notes: notes,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCreated{TaskID: out.TaskID}
	}
}

// completeTask returns a command that marks a task done.
func (m *Model) completeTask(taskID int) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.container.CompleteTaskUseCase().Execute(context.Background(), usecase.CompleteTaskInput{
			TaskID: taskID,
		}); err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCompleted{TaskID: taskID}
	}
}

// deleteTask returns a command that deletes a task.
func (m *Model) deleteTask(taskID int) tea.Cmd {
	return func() tea.Msg {
		if err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{
			TaskID: taskID,
		}); err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: taskID}
	}
}

// planTasks returns a command that extracts and saves a task plan.
func (m *Model) planTasks(description string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.PlanTasksUseCase().Execute(context.Background(), usecase.PlanTasksInput{
			Description:      description,
			PomodoroDuration: m.container.Settings().PomodoroDuration,
			Save:             true,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgPlanReady{TaskIDs: out.TaskIDs}
	}
}
