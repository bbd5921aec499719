// Package waybar renders timer views as the JSON records a Waybar custom
// module consumes, one record per line on stdout.
package waybar

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pomobar/pomobar/internal/model"
	"github.com/pomobar/pomobar/internal/timeutil"
)

// Nerd Font glyphs for the bar text. Both break phases share one icon.
const (
	iconIdle   = "\U000F051F"
	iconWork   = "\U000F051B"
	iconBreak  = "\U000F0B79"
	iconPaused = "\U000F03E4"
)

const clickHints = "Click: Toggle | Right-click: Skip | Middle-click: Reset"

// Status is the record a Waybar custom module understands. Class feeds the
// CSS selector, Percentage drives the built-in progress styling.
type Status struct {
	Text       string `json:"text"`
	Alt        string `json:"alt"`
	Tooltip    string `json:"tooltip"`
	Class      string `json:"class"`
	Paused     bool   `json:"paused"`
	Percentage int    `json:"percentage"`
}

// Render projects a timer view into the bar record.
func Render(v model.View) Status {
	st := Status{
		Alt:        string(v.Phase),
		Class:      class(v),
		Paused:     v.Paused,
		Percentage: percentage(v),
	}

	switch {
	case !v.Phase.Active():
		st.Text = iconIdle + " Start"
		st.Tooltip = "Click to start a pomodoro\n" + clickHints
	case v.Paused:
		st.Text = iconPaused + " " + timeutil.FormatClock(v.Remaining)
		st.Tooltip = tooltip(v)
	case v.Phase == model.PhaseWork:
		st.Text = iconWork + " " + timeutil.FormatClock(v.Remaining)
		st.Tooltip = tooltip(v)
	default:
		st.Text = iconBreak + " " + timeutil.FormatClock(v.Remaining)
		st.Tooltip = tooltip(v)
	}
	return st
}

// Encode writes the record as a single JSON line.
func (s Status) Encode(w io.Writer) error {
	return json.NewEncoder(w).Encode(s)
}

func tooltip(v model.View) string {
	return fmt.Sprintf("Pomodoros: %d\n%s", v.Cycles, clickHints)
}

// class picks the styling tag: paused overrides the phase so themes can grey
// the module out regardless of which phase is frozen.
func class(v model.View) string {
	if v.Paused {
		return "paused"
	}
	return string(v.Phase)
}

func percentage(v model.View) int {
	if v.Duration <= 0 {
		return 0
	}
	p := int((v.Duration - v.Remaining) * 100 / v.Duration)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
