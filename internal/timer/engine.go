// Package timer implements the pomodoro interval state machine.
//
// The engine tracks remaining time for the current interval and advances
// once per external tick. It is safe for concurrent use; all mutating
// operations are serialized by an internal mutex. Completion side effects
// (chime, callbacks) run outside the lock so hooks may call back into the
// engine.
package timer

import (
	"sync"

	"github.com/pomoplan/pomoplan/internal/domain"
)

// State is the run state of the engine.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// Mode is the kind of interval being timed.
type Mode int

const (
	ModeFocus Mode = iota
	ModeShortBreak
	ModeLongBreak
)

// String returns a display name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeShortBreak:
		return "short break"
	case ModeLongBreak:
		return "long break"
	default:
		return "focus"
	}
}

// IsBreak returns true for short and long breaks.
func (m Mode) IsBreak() bool {
	return m == ModeShortBreak || m == ModeLongBreak
}

// pomodorosPerCycle is the number of focus intervals before a long break.
const pomodorosPerCycle = 4

// Snapshot is a copy of the engine's observable state.
type Snapshot struct {
	TimeLeft int // Remaining seconds in the current interval
	State    State
	Mode     Mode
}

// Hooks are caller-supplied completion side effects. Either field may be
// nil. OnPomodoroComplete fires when a focus interval finishes (natural
// expiry or skip); it signals the caller to increment the task's persisted
// completed-pomodoro count. Chime playback failures are swallowed.
type Hooks struct {
	OnPomodoroComplete func(taskID int)
	Chime              domain.ChimePlayer
}

// Engine is the single-instance timer state machine. It owns the
// completed-pomodoro count used for break selection: the count is seeded
// from the active task on association and incremented only here, so the
// caller's asynchronous persisted increment is never read back mid-cycle.
type Engine struct {
	mu        sync.Mutex
	settings  domain.Settings
	hooks     Hooks
	taskID    int
	completed int // Engine-owned count for the active task
	timeLeft  int // Seconds
	state     State
	mode      Mode
	hasTask   bool
}

// New creates an Engine in the idle state with no active task.
func New(settings domain.Settings, hooks Hooks) *Engine {
	e := &Engine{
		settings: settings,
		hooks:    hooks,
		state:    StateIdle,
		mode:     ModeFocus,
	}
	e.timeLeft = e.durationSeconds(ModeFocus)
	return e
}

// SetActiveTask associates the engine with a task. A change of task
// identity resets to a fresh idle focus interval at full duration,
// discarding any in-progress interval. Passing the same task is a no-op;
// passing nil clears the association.
func (e *Engine) SetActiveTask(task *domain.Task) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if task == nil {
		if !e.hasTask {
			return
		}
		e.hasTask = false
		e.taskID = 0
		e.completed = 0
		e.resetLocked()
		return
	}

	if e.hasTask && e.taskID == task.ID {
		return
	}

	e.hasTask = true
	e.taskID = task.ID
	e.completed = task.CompletedPomodoros
	e.resetLocked()
}

// UpdateSettings replaces the engine's settings. While idle, the
// remaining time is re-derived from the current mode's new duration so a
// changed pomodoro length takes effect before the interval starts.
// Mid-interval, remaining time is clamped to the new duration so it never
// exceeds the current mode's full interval.
func (e *Engine) UpdateSettings(settings domain.Settings) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.settings = settings
	if e.state == StateIdle {
		e.timeLeft = e.durationSeconds(e.mode)
		return
	}
	if full := e.durationSeconds(e.mode); e.timeLeft > full {
		e.timeLeft = full
	}
}

// Tick advances the timer by one second. Ticks are absorbed silently
// unless the engine is running with an active task.
func (e *Engine) Tick() {
	e.mu.Lock()
	if e.state != StateRunning || !e.hasTask {
		e.mu.Unlock()
		return
	}
	if e.timeLeft <= 1 {
		effects := e.finishIntervalLocked()
		e.mu.Unlock()
		runEffects(effects)
		return
	}
	e.timeLeft--
	e.mu.Unlock()
}

// Toggle switches between running and paused. Starting from idle begins
// the current interval. Remaining time and mode are untouched.
func (e *Engine) Toggle() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.hasTask {
		return
	}
	if e.state == StateRunning {
		e.state = StatePaused
		return
	}
	e.state = StateRunning
}

// Skip finishes the current interval immediately, regardless of state or
// remaining time, as if it had expired naturally at the moment of the call.
func (e *Engine) Skip() {
	e.mu.Lock()
	if !e.hasTask {
		e.mu.Unlock()
		return
	}
	effects := e.finishIntervalLocked()
	e.mu.Unlock()
	runEffects(effects)
}

// Snapshot returns a copy of the observable state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		TimeLeft: e.timeLeft,
		State:    e.state,
		Mode:     e.mode,
	}
}

// CompletedPomodoros returns the engine-owned count for the active task.
func (e *Engine) CompletedPomodoros() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completed
}

// ActiveTaskID returns the associated task ID and whether one is set.
func (e *Engine) ActiveTaskID() (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.taskID, e.hasTask
}

// finishIntervalLocked completes the current interval and decides the
// next one. The interval boundary always passes through idle before any
// auto-continuation. Returns side effects to run outside the lock.
func (e *Engine) finishIntervalLocked() []func() {
	var effects []func()

	e.state = StateIdle

	if chime := e.hooks.Chime; chime != nil {
		effects = append(effects, func() {
			_ = chime.Play()
		})
	}

	if e.mode == ModeFocus {
		if hook := e.hooks.OnPomodoroComplete; hook != nil {
			taskID := e.taskID
			effects = append(effects, func() {
				hook(taskID)
			})
		}
		e.completed++
		if e.completed%pomodorosPerCycle == 0 {
			e.mode = ModeLongBreak
		} else {
			e.mode = ModeShortBreak
		}
		e.timeLeft = e.durationSeconds(e.mode)
		if e.settings.AutoStartBreaks {
			e.state = StateRunning
		}
		return effects
	}

	e.mode = ModeFocus
	e.timeLeft = e.durationSeconds(ModeFocus)
	if e.settings.AutoStartPomodoros {
		e.state = StateRunning
	}
	return effects
}

// resetLocked returns to a fresh idle focus interval at full duration.
func (e *Engine) resetLocked() {
	e.state = StateIdle
	e.mode = ModeFocus
	e.timeLeft = e.durationSeconds(ModeFocus)
}

func (e *Engine) durationSeconds(mode Mode) int {
	switch mode {
	case ModeShortBreak:
		return e.settings.ShortBreakDuration * 60
	case ModeLongBreak:
		return e.settings.LongBreakDuration * 60
	default:
		return e.settings.PomodoroDuration * 60
	}
}

func runEffects(effects []func()) {
	for _, effect := range effects {
		effect()
	}
}
