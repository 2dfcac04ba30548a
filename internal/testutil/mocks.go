// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/pomoplan/pomoplan/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks   map[int]*domain.Task
	SaveErr error
	GetErr  error
	NextIDN int
}

// NewMockTaskRepository creates a new MockTaskRepository with initialized maps.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		Tasks:   make(map[int]*domain.Task),
		NextIDN: 1,
	}
}

// Get retrieves a task by ID.
func (m *MockTaskRepository) Get(id int) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, nil
	}
	return task, nil
}

// List returns tasks matching the filter, ordered by ID.
func (m *MockTaskRepository) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// Save saves a task.
func (m *MockTaskRepository) Save(task *domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks[task.ID] = task
	return nil
}

// Delete removes a task.
func (m *MockTaskRepository) Delete(id int) error {
	delete(m.Tasks, id)
	return nil
}

// NextID returns sequential IDs starting from NextIDN.
func (m *MockTaskRepository) NextID() (int, error) {
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// MockChime is a test double for domain.ChimePlayer.
type MockChime struct {
	Err    error
	Played int
}

// Play records the call and returns the configured error.
func (m *MockChime) Play() error {
	m.Played++
	return m.Err
}

// MockPlanExtractor is a test double for domain.PlanExtractor.
// Fields are ordered to minimize memory padding.
type MockPlanExtractor struct {
	Result          domain.PlanResult
	LastDescription string
	LastRef         time.Time
	Calls           int
}

// Extract records the call and returns the configured result.
func (m *MockPlanExtractor) Extract(_ context.Context, description string, ref time.Time) domain.PlanResult {
	m.Calls++
	m.LastDescription = description
	m.LastRef = ref
	if m.Result.Tasks == nil {
		return domain.EmptyPlan()
	}
	return m.Result
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns the configured config, or defaults when unset.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LogEntry is a captured log line.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	TaskID   int
}

// MockLogger is a test double for domain.Logger that captures entries.
type MockLogger struct {
	Entries []LogEntry
}

func (m *MockLogger) log(level string, taskID int, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Debug captures a debug entry.
func (m *MockLogger) Debug(taskID int, category, msg string) { m.log("debug", taskID, category, msg) }

// Info captures an info entry.
func (m *MockLogger) Info(taskID int, category, msg string) { m.log("info", taskID, category, msg) }

// Warn captures a warn entry.
func (m *MockLogger) Warn(taskID int, category, msg string) { m.log("warn", taskID, category, msg) }

// Error captures an error entry.
func (m *MockLogger) Error(taskID int, category, msg string) { m.log("error", taskID, category, msg) }

// HasEntry reports whether a captured entry at the given level contains msg.
func (m *MockLogger) HasEntry(level, msg string) bool {
	for _, e := range m.Entries {
		if e.Level == level && strings.Contains(e.Msg, msg) {
			return true
		}
	}
	return false
}
