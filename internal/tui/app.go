package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pomoplan/pomoplan/internal/app"
	"github.com/pomoplan/pomoplan/internal/domain"
	"github.com/pomoplan/pomoplan/internal/timer"
	"github.com/pomoplan/pomoplan/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	engine    *timer.Engine
	err       error

	// State (slices - contain pointers)
	tasks   []*domain.Task
	pending []int // Task IDs with finished pomodoros awaiting persistence

	// Components (structs with pointers)
	keys     KeyMap
	styles   Styles
	help     help.Model
	taskList list.Model

	// Input state (large structs)
	titleInput textinput.Model
	notesInput textinput.Model
	planInput  textinput.Model

	// Numeric state (smaller types last)
	mode    Mode
	width   int
	height  int
	showAll bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200

	ni := textinput.New()
	ni.Placeholder = "Notes (optional)"
	ni.CharLimit = 1000

	pi := textinput.New()
	pi.Placeholder = "Describe your day..."
	pi.CharLimit = 1000

	styles := DefaultStyles()

	m := &Model{
		container:  c,
		mode:       ModeNormal,
		keys:       DefaultKeyMap(),
		styles:     styles,
		help:       help.New(),
		titleInput: ti,
		notesInput: ni,
		planInput:  pi,
	}

	m.engine = timer.New(c.Settings(), timer.Hooks{
		Chime: c.Chime,
		OnPomodoroComplete: func(taskID int) {
			m.pending = append(m.pending, taskID)
		},
	})

	delegate := newTaskDelegate(styles, m.engine.ActiveTaskID)
	taskList := list.New([]list.Item{}, delegate, 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()
	m.taskList = taskList

	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadTasks(),
		m.tick(),
	)
}

// tick returns a command that fires MsgTick after one second.
func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second, func(_ time.Time) tea.Msg {
		return MsgTick{}
	})
}

// loadTasks returns a command that loads tasks from the repository.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{
			IncludeDone: m.showAll,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks}
	}
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if m.taskList.SelectedItem() == nil {
		return nil
	}
	if ti, ok := m.taskList.SelectedItem().(taskItem); ok {
		return ti.task
	}
	return nil
}

// updateTaskList updates the task list items from tasks.
func (m *Model) updateTaskList() {
	items := make([]list.Item, 0, len(m.tasks))
	for _, task := range m.tasks {
		items = append(items, taskItem{task: task})
	}
	m.taskList.SetItems(items)
}

// drainPending returns commands that persist finished pomodoros collected
// by the engine hook since the last drain.
func (m *Model) drainPending() []tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	ids := m.pending
	m.pending = nil

	cmds := make([]tea.Cmd, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, m.recordPomodoro(id))
	}
	return cmds
}

// recordPomodoro returns a command that persists a finished focus interval.
func (m *Model) recordPomodoro(taskID int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.RecordPomodoroUseCase().Execute(context.Background(), usecase.RecordPomodoroInput{
			TaskID: taskID,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgPomodoroRecorded{Task: out.Task}
	}
}
