package timer

import (
	"testing"

	"github.com/pomoplan/pomoplan/internal/domain"
	"github.com/pomoplan/pomoplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() domain.Settings {
	return domain.Settings{
		PomodoroDuration:   25,
		ShortBreakDuration: 5,
		LongBreakDuration:  15,
	}
}

func newTestEngine(settings domain.Settings, hooks Hooks) (*Engine, *domain.Task) {
	task := &domain.Task{ID: 1, Title: "Write report", Status: domain.StatusTodo}
	e := New(settings, hooks)
	e.SetActiveTask(task)
	return e, task
}

// drain runs the interval to natural expiry.
func drain(e *Engine) {
	for e.Snapshot().State == StateRunning {
		e.Tick()
	}
}

func TestEngine_InitialState(t *testing.T) {
	e, _ := newTestEngine(testSettings(), Hooks{})

	snap := e.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, ModeFocus, snap.Mode)
	assert.Equal(t, 25*60, snap.TimeLeft)
}

func TestEngine_TickDecrementsWhileRunning(t *testing.T) {
	e, _ := newTestEngine(testSettings(), Hooks{})

	e.Toggle()
	e.Tick()
	e.Tick()

	snap := e.Snapshot()
	assert.Equal(t, StateRunning, snap.State)
	assert.Equal(t, 25*60-2, snap.TimeLeft)
}

func TestEngine_TickIsNoOpWhenNotRunning(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *Engine)
	}{
		{"idle", func(_ *Engine) {}},
		{"paused", func(e *Engine) {
			e.Toggle()
			e.Tick()
			e.Toggle()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(testSettings(), Hooks{})
			tt.setup(e)
			before := e.Snapshot()

			e.Tick()
			e.Tick()

			assert.Equal(t, before, e.Snapshot())
		})
	}
}

func TestEngine_TickWithoutTaskIsAbsorbed(t *testing.T) {
	e := New(testSettings(), Hooks{})
	before := e.Snapshot()

	e.Tick()
	e.Toggle()
	e.Skip()

	assert.Equal(t, before, e.Snapshot())
}

func TestEngine_TogglePreservesTimeAndMode(t *testing.T) {
	e, _ := newTestEngine(testSettings(), Hooks{})

	e.Toggle()
	e.Tick()
	running := e.Snapshot()

	e.Toggle()
	paused := e.Snapshot()
	assert.Equal(t, StatePaused, paused.State)
	assert.Equal(t, running.TimeLeft, paused.TimeLeft)
	assert.Equal(t, running.Mode, paused.Mode)

	e.Toggle()
	assert.Equal(t, StateRunning, e.Snapshot().State)
}

func TestEngine_FocusExpiryEntersShortBreak(t *testing.T) {
	settings := domain.Settings{PomodoroDuration: 1, ShortBreakDuration: 5, LongBreakDuration: 15}
	chime := &testutil.MockChime{}
	var completed []int
	e, _ := newTestEngine(settings, Hooks{
		Chime:              chime,
		OnPomodoroComplete: func(taskID int) { completed = append(completed, taskID) },
	})

	e.Toggle()
	drain(e)

	snap := e.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, ModeShortBreak, snap.Mode)
	assert.Equal(t, 5*60, snap.TimeLeft)
	assert.Equal(t, []int{1}, completed)
	assert.Equal(t, 1, chime.Played)
}

func TestEngine_ChimeFailureIsSwallowed(t *testing.T) {
	chime := &testutil.MockChime{Err: assert.AnError}
	e, _ := newTestEngine(testSettings(), Hooks{Chime: chime})

	e.Skip()

	assert.Equal(t, 1, chime.Played)
	assert.Equal(t, ModeShortBreak, e.Snapshot().Mode)
}

func TestEngine_EveryFourthFocusSelectsLongBreak(t *testing.T) {
	settings := domain.Settings{
		PomodoroDuration:   1,
		ShortBreakDuration: 1,
		LongBreakDuration:  2,
		AutoStartBreaks:    true,
		AutoStartPomodoros: true,
	}
	e, _ := newTestEngine(settings, Hooks{})
	e.Toggle()

	var modes []Mode
	// Two full cycles of four focus completions each.
	for i := 0; i < 8; i++ {
		drainMode(e, ModeFocus)
		modes = append(modes, e.Snapshot().Mode)
		drainBreak(e)
	}

	want := []Mode{
		ModeShortBreak, ModeShortBreak, ModeShortBreak, ModeLongBreak,
		ModeShortBreak, ModeShortBreak, ModeShortBreak, ModeLongBreak,
	}
	assert.Equal(t, want, modes)
}

// drainMode ticks until the engine leaves the given mode.
func drainMode(e *Engine, mode Mode) {
	for e.Snapshot().Mode == mode {
		e.Tick()
	}
}

// drainBreak ticks through the current break back to focus.
func drainBreak(e *Engine) {
	for e.Snapshot().Mode.IsBreak() {
		e.Tick()
	}
}

func TestEngine_LongBreakSeededFromTaskCount(t *testing.T) {
	// Task with 3 completed pomodoros: the next focus completion is the
	// fourth of the cycle and must select the long break.
	settings := domain.Settings{PomodoroDuration: 25, ShortBreakDuration: 5, LongBreakDuration: 15}
	task := &domain.Task{ID: 7, Title: "Deep work", CompletedPomodoros: 3}
	e := New(settings, Hooks{})
	e.SetActiveTask(task)

	e.Skip()

	snap := e.Snapshot()
	assert.Equal(t, ModeLongBreak, snap.Mode)
	assert.Equal(t, 15*60, snap.TimeLeft)
	assert.Equal(t, 4, e.CompletedPomodoros())
}

func TestEngine_SkipFromPausedMatchesNaturalExpiry(t *testing.T) {
	settings := domain.Settings{PomodoroDuration: 1, ShortBreakDuration: 5, LongBreakDuration: 15}

	natural, _ := newTestEngine(settings, Hooks{})
	natural.Toggle()
	drain(natural)

	skipped, _ := newTestEngine(settings, Hooks{})
	skipped.Toggle()
	skipped.Tick()
	skipped.Toggle() // pause mid-interval
	skipped.Skip()

	assert.Equal(t, natural.Snapshot(), skipped.Snapshot())
}

func TestEngine_SkipBreakReturnsToFocus(t *testing.T) {
	e, _ := newTestEngine(testSettings(), Hooks{})

	e.Skip() // focus -> short break
	require.Equal(t, ModeShortBreak, e.Snapshot().Mode)

	e.Skip() // break -> focus
	snap := e.Snapshot()
	assert.Equal(t, ModeFocus, snap.Mode)
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, 25*60, snap.TimeLeft)
}

func TestEngine_BreakCompletionDoesNotFireCallback(t *testing.T) {
	calls := 0
	e, _ := newTestEngine(testSettings(), Hooks{
		OnPomodoroComplete: func(int) { calls++ },
	})

	e.Skip() // focus finishes, callback fires once
	require.Equal(t, 1, calls)

	e.Skip() // break finishes, no callback
	assert.Equal(t, 1, calls)
}

func TestEngine_SetActiveTaskResetsFromAnyState(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *Engine)
	}{
		{"while running", func(e *Engine) {
			e.Toggle()
			e.Tick()
		}},
		{"while paused in a break", func(e *Engine) {
			e.Skip()
			e.Toggle()
			e.Tick()
			e.Toggle()
		}},
		{"while idle", func(_ *Engine) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(testSettings(), Hooks{})
			tt.setup(e)

			e.SetActiveTask(&domain.Task{ID: 2, Title: "Other task"})

			snap := e.Snapshot()
			assert.Equal(t, StateIdle, snap.State)
			assert.Equal(t, ModeFocus, snap.Mode)
			assert.Equal(t, 25*60, snap.TimeLeft)
		})
	}
}

func TestEngine_SetActiveTaskSameIdentityIsNoOp(t *testing.T) {
	e, task := newTestEngine(testSettings(), Hooks{})
	e.Toggle()
	e.Tick()
	before := e.Snapshot()

	// Field mutation without identity change must not reset.
	task.CompletedPomodoros = 2
	e.SetActiveTask(task)

	assert.Equal(t, before, e.Snapshot())
}

func TestEngine_UpdateSettingsWhileIdleRederivesTimeLeft(t *testing.T) {
	e, _ := newTestEngine(testSettings(), Hooks{})

	settings := testSettings()
	settings.PomodoroDuration = 50
	e.UpdateSettings(settings)

	assert.Equal(t, 50*60, e.Snapshot().TimeLeft)
}

func TestEngine_UpdateSettingsWhileRunningKeepsTimeLeft(t *testing.T) {
	e, _ := newTestEngine(testSettings(), Hooks{})
	e.Toggle()
	e.Tick()
	before := e.Snapshot().TimeLeft

	settings := testSettings()
	settings.PomodoroDuration = 50
	e.UpdateSettings(settings)

	assert.Equal(t, before, e.Snapshot().TimeLeft)
}

func TestEngine_UpdateSettingsClampsShrunkInterval(t *testing.T) {
	e, _ := newTestEngine(testSettings(), Hooks{})
	e.Toggle()
	e.Tick()
	e.Toggle() // Pause mid-interval at 1499s.

	settings := testSettings()
	settings.PomodoroDuration = 10
	e.UpdateSettings(settings)

	snap := e.Snapshot()
	assert.Equal(t, StatePaused, snap.State)
	assert.Equal(t, 10*60, snap.TimeLeft)
}

func TestEngine_EndToEndScenario(t *testing.T) {
	// settings 25/5/15, auto_start_breaks=true, auto_start_pomodoros=false,
	// task with 3 completed pomodoros.
	settings := domain.Settings{
		PomodoroDuration:   25,
		ShortBreakDuration: 5,
		LongBreakDuration:  15,
		AutoStartBreaks:    true,
	}
	var completed []int
	task := &domain.Task{ID: 3, Title: "Finish draft", CompletedPomodoros: 3}
	e := New(settings, Hooks{
		OnPomodoroComplete: func(taskID int) { completed = append(completed, taskID) },
	})
	e.SetActiveTask(task)
	e.Toggle()

	// Focus interval reaches zero.
	for i := 0; i < 25*60; i++ {
		e.Tick()
	}

	snap := e.Snapshot()
	assert.Equal(t, []int{3}, completed)
	assert.Equal(t, 4, e.CompletedPomodoros())
	assert.Equal(t, ModeLongBreak, snap.Mode)
	assert.Equal(t, 900, snap.TimeLeft)
	assert.Equal(t, StateRunning, snap.State) // auto_start_breaks

	// Break expires: back to focus, idle, full duration.
	for i := 0; i < 15*60; i++ {
		e.Tick()
	}

	snap = e.Snapshot()
	assert.Equal(t, ModeFocus, snap.Mode)
	assert.Equal(t, 1500, snap.TimeLeft)
	assert.Equal(t, StateIdle, snap.State) // auto_start_pomodoros off
}

func TestEngine_TimeLeftStaysInRange(t *testing.T) {
	settings := domain.Settings{
		PomodoroDuration:   1,
		ShortBreakDuration: 1,
		LongBreakDuration:  1,
		AutoStartBreaks:    true,
		AutoStartPomodoros: true,
	}
	e, _ := newTestEngine(settings, Hooks{})
	e.Toggle()

	for i := 0; i < 500; i++ {
		e.Tick()
		snap := e.Snapshot()
		require.GreaterOrEqual(t, snap.TimeLeft, 0)
		require.LessOrEqual(t, snap.TimeLeft, 60)
	}
}
