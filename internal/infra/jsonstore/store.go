// Package jsonstore provides a JSON file-based implementation of TaskRepository.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"syscall"

	"github.com/pomoplan/pomoplan/internal/domain"
)

// storeData represents the JSON file structure.
type storeData struct {
	Tasks map[string]*domain.Task `json:"tasks"`
	Meta  meta                    `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	NextTaskID int `json:"nextTaskID"`
}

// Ensure Store implements the repository ports.
var (
	_ domain.TaskRepository   = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)

// Store implements domain.TaskRepository using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; Initialize creates it.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Get retrieves a task by ID. Returns nil if not found.
func (s *Store) Get(id int) (*domain.Task, error) {
	var task *domain.Task
	err := s.withLock(func(data *storeData) error {
		key := strconv.Itoa(id)
		if t, ok := data.Tasks[key]; ok {
			task = t
			task.ID = id
		}
		return nil
	})
	return task, err
}

// List retrieves tasks matching the filter, ordered by ID.
func (s *Store) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.withLock(func(data *storeData) error {
		for key, t := range data.Tasks {
			id, _ := strconv.Atoi(key)
			t.ID = id

			if filter.Status != nil && t.Status != *filter.Status {
				continue
			}
			tasks = append(tasks, t)
		}
		return nil
	})

	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		return a.ID - b.ID
	})

	return tasks, err
}

// Save creates or updates a task.
func (s *Store) Save(task *domain.Task) error {
	return s.withLockWrite(func(data *storeData) error {
		key := strconv.Itoa(task.ID)
		data.Tasks[key] = task
		return nil
	})
}

// Delete removes a task by ID.
func (s *Store) Delete(id int) error {
	return s.withLockWrite(func(data *storeData) error {
		key := strconv.Itoa(id)
		delete(data.Tasks, key)
		return nil
	})
}

// NextID returns the next available task ID.
func (s *Store) NextID() (int, error) {
	var id int
	err := s.withLockWrite(func(data *storeData) error {
		id = data.Meta.NextTaskID
		data.Meta.NextTaskID++
		return nil
	})
	return id, err
}

// IsInitialized checks if the store file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil // Already exists
	}

	data := &storeData{
		Meta:  meta{NextTaskID: 1},
		Tasks: make(map[string]*domain.Task),
	}
	return s.write(data)
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	if data.Tasks == nil {
		data.Tasks = make(map[string]*domain.Task)
	}
	if data.Meta.NextTaskID < 1 {
		data.Meta.NextTaskID = 1
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o640); err != nil { //nolint:gosec // Store readable by owner and group
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
