// Package engine advances the persisted timer state by wall-clock time and
// applies at most one command per invocation. It is pure: no I/O, no clock
// reads, every function derives its result from the arguments alone, which
// is what makes a process-per-poll timer testable.
package engine

import (
	"time"

	"github.com/pomobar/pomobar/internal/config"
	"github.com/pomobar/pomobar/internal/model"
	"github.com/pomobar/pomobar/internal/timeutil"
)

// Advance computes the successor of st at now. The daily rollover is applied
// first, then any natural phase boundary that has been reached, then the
// explicit command. A boundary crossed while the record sat unread restarts
// the next phase at now; there is no catch-up across multiple boundaries, so
// re-applying Advance at the same instant is a no-op.
func Advance(st model.TimerState, cmd model.Command, now time.Time, cfg config.Config) (model.TimerState, model.View) {
	st = applyDailyReset(st, now, cfg)
	st = applyBoundary(st, now, cfg)

	switch cmd {
	case model.CmdToggle:
		st = toggle(st, now)
	case model.CmdSkip:
		st = skip(st, now, cfg)
	case model.CmdStop:
		st = stop(st)
	case model.CmdReset:
		st = model.NewTimerState()
	}

	return st, Snapshot(st, now, cfg)
}

// Snapshot projects st into a render-ready view at now without mutating it.
func Snapshot(st model.TimerState, now time.Time, cfg config.Config) model.View {
	v := model.View{Phase: st.Phase, Paused: st.Paused, Cycles: st.CycleCount}
	if !st.Phase.Active() {
		return v
	}
	v.Duration = cfg.PhaseDuration(st.Phase)
	v.Remaining = v.Duration - st.Elapsed(now)
	if v.Remaining < 0 {
		v.Remaining = 0
	}
	return v
}

// applyDailyReset clears the pomodoro count once per day when the configured
// rollover hour has passed since the record was last written.
func applyDailyReset(st model.TimerState, now time.Time, cfg config.Config) model.TimerState {
	if !cfg.DailyResetEnabled || st.UpdatedAt == 0 || st.CycleCount == 0 {
		return st
	}
	boundary := timeutil.LastResetBoundary(now, cfg.DailyResetHour)
	if time.Unix(st.UpdatedAt, 0).Before(boundary) {
		st.CycleCount = 0
	}
	return st
}

// applyBoundary performs the natural phase transition once the effective
// elapsed time reaches the phase duration. Paused phases never cross a
// boundary; pause freezes progress entirely.
func applyBoundary(st model.TimerState, now time.Time, cfg config.Config) model.TimerState {
	if !st.Phase.Active() || st.Paused {
		return st
	}
	d := cfg.PhaseDuration(st.Phase)
	if d <= 0 {
		return st
	}
	if st.Elapsed(now) >= d {
		return transition(st, now, cfg)
	}
	return st
}

// transition moves st to its next phase starting at now. Completing a Work
// phase counts a pomodoro, and every cycles_before_long_break-th one earns
// the long break, after which the count starts over. Pause bookkeeping never
// survives a phase change.
func transition(st model.TimerState, now time.Time, cfg config.Config) model.TimerState {
	next := st
	switch st.Phase {
	case model.PhaseWork:
		next.CycleCount++
		if cfg.LongBreakEnabled && next.CycleCount >= cfg.CyclesBeforeLongBreak {
			next.Phase = model.PhaseLongBreak
			next.CycleCount = 0
		} else {
			next.Phase = model.PhaseShortBreak
		}
	case model.PhaseShortBreak:
		next.Phase = model.PhaseWork
	case model.PhaseLongBreak:
		next.Phase = model.PhaseWork
		next.CycleCount = 0
	default:
		return st
	}
	next.PhaseStartedAt = now.Unix()
	next.Paused = false
	next.PausedAt = 0
	next.AccumulatedPause = 0
	return next
}

// toggle starts a Work phase from idle, otherwise flips the pause state.
// Resuming folds the finished pause span into AccumulatedPause so Elapsed
// keeps ignoring it.
func toggle(st model.TimerState, now time.Time) model.TimerState {
	switch {
	case !st.Phase.Active():
		return model.TimerState{
			Phase:          model.PhaseWork,
			PhaseStartedAt: now.Unix(),
			CycleCount:     st.CycleCount,
		}
	case st.Paused:
		span := now.Unix() - st.PausedAt
		if span < 0 {
			span = 0
		}
		st.Paused = false
		st.PausedAt = 0
		st.AccumulatedPause += span
		return st
	default:
		st.Paused = true
		st.PausedAt = now.Unix()
		return st
	}
}

// skip forces the boundary transition immediately, clearing any pause. From
// idle it is a no-op.
func skip(st model.TimerState, now time.Time, cfg config.Config) model.TimerState {
	if !st.Phase.Active() {
		return st
	}
	return transition(st, now, cfg)
}

// stop returns to idle but keeps the pomodoro count; reset is the command
// that clears it.
func stop(st model.TimerState) model.TimerState {
	return model.TimerState{Phase: model.PhaseIdle, CycleCount: st.CycleCount}
}
