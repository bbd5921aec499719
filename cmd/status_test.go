package cmd

import (
	"testing"
	"time"

	"github.com/pomobar/pomobar/internal/model"
)

func TestPhaseLabel(t *testing.T) {
	tests := []struct {
		phase model.Phase
		want  string
	}{
		{model.PhaseIdle, "Idle"},
		{model.PhaseWork, "Work"},
		{model.PhaseShortBreak, "Short break"},
		{model.PhaseLongBreak, "Long break"},
	}
	for _, tt := range tests {
		if got := phaseLabel(tt.phase); got != tt.want {
			t.Errorf("phaseLabel(%q) = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestPlainStatus(t *testing.T) {
	tests := []struct {
		name string
		view model.View
		want string
	}{
		{
			name: "idle",
			view: model.View{Phase: model.PhaseIdle, Cycles: 3},
			want: "No active timer.\nPomodoros: 3",
		},
		{
			name: "running work",
			view: model.View{
				Phase:     model.PhaseWork,
				Remaining: 754 * time.Second,
				Duration:  1500 * time.Second,
				Cycles:    1,
			},
			want: "Work: 12:34 remaining of 25m\nPomodoros: 1",
		},
		{
			name: "paused break",
			view: model.View{
				Phase:     model.PhaseShortBreak,
				Remaining: 300 * time.Second,
				Duration:  300 * time.Second,
				Paused:    true,
			},
			want: "Short break (paused): 05:00 remaining of 5m\nPomodoros: 0",
		},
	}
	for _, tt := range tests {
		if got := plainStatus(tt.view); got != tt.want {
			t.Errorf("%s: plainStatus() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestBoundaryNotification(t *testing.T) {
	tests := []struct {
		from, to model.Phase
		title    string
		body     string
		ok       bool
	}{
		{model.PhaseWork, model.PhaseShortBreak, "Pomodoro Complete!", "Time for a break", true},
		{model.PhaseWork, model.PhaseLongBreak, "Pomodoro Complete!", "Time for a break", true},
		{model.PhaseShortBreak, model.PhaseWork, "Break Complete!", "Time to focus", true},
		{model.PhaseLongBreak, model.PhaseWork, "Break Complete!", "Time to focus", true},
		{model.PhaseIdle, model.PhaseWork, "", "", false},
		{model.PhaseWork, model.PhaseIdle, "", "", false},
		{model.PhaseWork, model.PhaseWork, "", "", false},
		{model.PhaseShortBreak, model.PhaseLongBreak, "", "", false},
	}
	for _, tt := range tests {
		title, body, ok := boundaryNotification(tt.from, tt.to)
		if title != tt.title || body != tt.body || ok != tt.ok {
			t.Errorf("boundaryNotification(%q, %q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.from, tt.to, title, body, ok, tt.title, tt.body, tt.ok)
		}
	}
}
