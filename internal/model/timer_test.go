package model_test

import (
	"testing"
	"time"

	"github.com/pomobar/pomobar/internal/model"
)

func TestPhaseHelpers(t *testing.T) {
	tests := []struct {
		phase  model.Phase
		valid  bool
		active bool
		brk    bool
	}{
		{model.PhaseIdle, true, false, false},
		{model.PhaseWork, true, true, false},
		{model.PhaseShortBreak, true, true, true},
		{model.PhaseLongBreak, true, true, true},
		{model.Phase("banana"), false, false, false},
		{model.Phase(""), false, false, false},
	}
	for _, tt := range tests {
		if got := tt.phase.Valid(); got != tt.valid {
			t.Errorf("Phase(%q).Valid() = %v, want %v", tt.phase, got, tt.valid)
		}
		if got := tt.phase.Active(); got != tt.active {
			t.Errorf("Phase(%q).Active() = %v, want %v", tt.phase, got, tt.active)
		}
		if got := tt.phase.Break(); got != tt.brk {
			t.Errorf("Phase(%q).Break() = %v, want %v", tt.phase, got, tt.brk)
		}
	}
}

func TestElapsed(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name  string
		state model.TimerState
		now   time.Time
		want  time.Duration
	}{
		{
			name:  "idle has no elapsed time",
			state: model.NewTimerState(),
			now:   start.Add(time.Hour),
			want:  0,
		},
		{
			name:  "running counts wall clock",
			state: model.TimerState{Phase: model.PhaseWork, PhaseStartedAt: start.Unix()},
			now:   start.Add(600 * time.Second),
			want:  600 * time.Second,
		},
		{
			name: "accumulated pause is subtracted",
			state: model.TimerState{
				Phase:            model.PhaseWork,
				PhaseStartedAt:   start.Unix(),
				AccumulatedPause: 120,
			},
			now:  start.Add(600 * time.Second),
			want: 480 * time.Second,
		},
		{
			name: "paused freezes at the pause instant",
			state: model.TimerState{
				Phase:          model.PhaseWork,
				PhaseStartedAt: start.Unix(),
				Paused:         true,
				PausedAt:       start.Add(600 * time.Second).Unix(),
			},
			now:  start.Add(900 * time.Second),
			want: 600 * time.Second,
		},
		{
			name:  "start in the future clamps to zero",
			state: model.TimerState{Phase: model.PhaseWork, PhaseStartedAt: start.Add(time.Hour).Unix()},
			now:   start,
			want:  0,
		},
	}
	for _, tt := range tests {
		if got := tt.state.Elapsed(tt.now); got != tt.want {
			t.Errorf("%s: Elapsed() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	start := time.Unix(1_700_000_000, 0).Unix()

	tests := []struct {
		name    string
		state   model.TimerState
		wantErr bool
	}{
		{"fresh idle state", model.NewTimerState(), false},
		{"running work phase", model.TimerState{Phase: model.PhaseWork, PhaseStartedAt: start, CycleCount: 2}, false},
		{"paused with pause timestamp", model.TimerState{Phase: model.PhaseWork, PhaseStartedAt: start, Paused: true, PausedAt: start + 60}, false},
		{"unknown phase", model.TimerState{Phase: "coffee"}, true},
		{"active phase without start", model.TimerState{Phase: model.PhaseWork}, true},
		{"paused without pause timestamp", model.TimerState{Phase: model.PhaseWork, PhaseStartedAt: start, Paused: true}, true},
		{"idle but paused", model.TimerState{Phase: model.PhaseIdle, Paused: true, PausedAt: start}, true},
		{"idle with accumulated pause", model.TimerState{Phase: model.PhaseIdle, AccumulatedPause: 10}, true},
		{"negative cycle count", model.TimerState{Phase: model.PhaseIdle, CycleCount: -1}, true},
	}
	for _, tt := range tests {
		err := tt.state.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
