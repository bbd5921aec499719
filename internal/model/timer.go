package model

import (
	"fmt"
	"time"
)

// Phase is one segment of the work/break cycle. The string values double as
// the styling class a status bar applies to the module.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Valid reports whether p is one of the known phases.
func (p Phase) Valid() bool {
	switch p {
	case PhaseIdle, PhaseWork, PhaseShortBreak, PhaseLongBreak:
		return true
	}
	return false
}

// Active reports whether p is a running cycle phase rather than idle.
func (p Phase) Active() bool {
	return p == PhaseWork || p == PhaseShortBreak || p == PhaseLongBreak
}

// Break reports whether p is one of the two break phases.
func (p Phase) Break() bool {
	return p == PhaseShortBreak || p == PhaseLongBreak
}

// Command is the single action an invocation may apply to the timer.
type Command string

const (
	CmdStatus Command = "status"
	CmdToggle Command = "toggle"
	CmdSkip   Command = "skip"
	CmdStop   Command = "stop"
	CmdReset  Command = "reset"
)

// TimerState is the single persisted record. Timer continuity lives entirely
// in these timestamps; no process memory survives between invocations.
type TimerState struct {
	Phase            Phase `json:"phase"`
	PhaseStartedAt   int64 `json:"phase_started_at"`
	Paused           bool  `json:"paused"`
	PausedAt         int64 `json:"paused_at"`
	AccumulatedPause int64 `json:"accumulated_pause"`
	CycleCount       int   `json:"cycle_count"`
	UpdatedAt        int64 `json:"updated_at"`
}

// NewTimerState returns the initial idle record.
func NewTimerState() TimerState {
	return TimerState{Phase: PhaseIdle}
}

// Elapsed returns the effective elapsed time of the current phase at now:
// wall-clock time since the phase began minus all paused spans. While paused
// the value is frozen at the pause instant. Idle has no elapsed time.
func (s TimerState) Elapsed(now time.Time) time.Duration {
	if !s.Phase.Active() {
		return 0
	}
	elapsed := now.Unix() - s.PhaseStartedAt - s.AccumulatedPause
	if s.Paused {
		elapsed -= now.Unix() - s.PausedAt
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return time.Duration(elapsed) * time.Second
}

// Validate checks the structural invariants of a loaded record. A record that
// fails here is treated like a corrupt file.
func (s TimerState) Validate() error {
	if !s.Phase.Valid() {
		return fmt.Errorf("unknown phase %q", s.Phase)
	}
	if s.PhaseStartedAt < 0 || s.PausedAt < 0 || s.AccumulatedPause < 0 || s.CycleCount < 0 {
		return fmt.Errorf("negative field in state record")
	}
	if s.Phase.Active() && s.PhaseStartedAt == 0 {
		return fmt.Errorf("active phase %q without start timestamp", s.Phase)
	}
	if s.Paused && s.PausedAt == 0 {
		return fmt.Errorf("paused without pause timestamp")
	}
	if s.Phase == PhaseIdle && (s.Paused || s.AccumulatedPause != 0) {
		return fmt.Errorf("idle state carries pause data")
	}
	return nil
}

// View is the derived, render-ready projection of a TimerState at one instant.
type View struct {
	Phase     Phase
	Remaining time.Duration
	Duration  time.Duration
	Paused    bool
	Cycles    int
}
