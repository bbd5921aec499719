package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pomobar/pomobar/internal/config"
	"github.com/pomobar/pomobar/internal/engine"
	"github.com/pomobar/pomobar/internal/model"
	"github.com/pomobar/pomobar/internal/notify"
	"github.com/pomobar/pomobar/internal/store"
	"github.com/pomobar/pomobar/internal/timeutil"
	"github.com/pomobar/pomobar/internal/waybar"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the timer status, applying any due phase transition",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	return runTimer(model.CmdStatus)
}

// runTimer is the pipeline every command shares: load the persisted state,
// advance it by wall-clock time, apply the command, persist the result and
// print exactly one status record.
func runTimer(command model.Command) error {
	now := time.Now()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		slog.Warn("falling back to default config", "error", err)
	}

	s := store.New(cfg.StatePath, cfg.LockWait)

	// A pure observation may skip the lock. Anything that changes the
	// record, including a due natural transition, must serialize.
	if command == model.CmdStatus {
		cur := s.Load()
		if next, view := engine.Advance(cur, command, now, cfg); next == cur {
			emit(view)
			return nil
		}
	}

	var loaded model.TimerState
	st, err := s.WithLock(context.Background(), func(cur model.TimerState) model.TimerState {
		loaded = cur
		next, _ := engine.Advance(cur, command, now, cfg)
		return next
	})
	if errors.Is(err, store.ErrLockTimeout) {
		// Another poller owns this tick; report the last persisted state
		// unchanged and let the next poll catch up.
		slog.Warn("state lock busy, reporting last persisted state", "path", cfg.StatePath)
		emit(engine.Snapshot(st, now, cfg))
		return nil
	}
	if err != nil {
		// The new state was computed but not saved. Render it anyway so the
		// bar keeps its segment, and surface the failure in the exit code.
		slog.Error("state not saved", "error", err)
		emit(engine.Snapshot(st, now, cfg))
		os.Exit(2)
	}

	notifyBoundary(cfg, command, loaded.Phase, st.Phase)
	emit(engine.Snapshot(st, now, cfg))
	return nil
}

const (
	formatWaybar = "waybar"
	formatPlain  = "plain"
)

// emit writes one status record to stdout: the Waybar JSON record, or the
// plain rendering for interactive use.
func emit(v model.View) {
	if outputFormat() == formatPlain {
		fmt.Println(plainStatus(v))
		return
	}
	if err := waybar.Render(v).Encode(os.Stdout); err != nil {
		slog.Error("writing status record", "error", err)
		os.Exit(2)
	}
}

// outputFormat resolves --format, falling back to TTY detection: a terminal
// gets the plain text, everything else the Waybar record.
func outputFormat() string {
	switch flagFormat {
	case formatWaybar, formatPlain:
		return flagFormat
	case "":
	default:
		slog.Warn("unknown format, detecting from terminal", "format", flagFormat)
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return formatPlain
	}
	return formatWaybar
}

// plainStatus renders the human-readable form of a view.
func plainStatus(v model.View) string {
	if !v.Phase.Active() {
		return fmt.Sprintf("No active timer.\nPomodoros: %d", v.Cycles)
	}
	label := phaseLabel(v.Phase)
	if v.Paused {
		label += " (paused)"
	}
	return fmt.Sprintf("%s: %s remaining of %s\nPomodoros: %d",
		label, timeutil.FormatClock(v.Remaining),
		timeutil.FormatDuration(int64(v.Duration.Seconds())), v.Cycles)
}

// phaseLabel is the human-readable phase name.
func phaseLabel(p model.Phase) string {
	switch p {
	case model.PhaseWork:
		return "Work"
	case model.PhaseShortBreak:
		return "Short break"
	case model.PhaseLongBreak:
		return "Long break"
	}
	return "Idle"
}

// notifyBoundary fires the desktop notification for a natural boundary
// crossing observed by a status query. Explicit commands never notify, and
// debug runs suppress notifications entirely.
func notifyBoundary(cfg config.Config, command model.Command, from, to model.Phase) {
	if command != model.CmdStatus || !cfg.Notifications || debugActive() {
		return
	}
	title, body, ok := boundaryNotification(from, to)
	if !ok {
		return
	}
	if err := notify.Send(title, body); err != nil {
		slog.Debug("notification not delivered", "error", err)
	}
}

// boundaryNotification maps a phase crossing to its notification text.
func boundaryNotification(from, to model.Phase) (title, body string, ok bool) {
	switch {
	case from == model.PhaseWork && to.Break():
		return "Pomodoro Complete!", "Time for a break", true
	case from.Break() && to == model.PhaseWork:
		return "Break Complete!", "Time to focus", true
	}
	return "", "", false
}
