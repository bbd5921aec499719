// Package notify delivers best-effort desktop notifications.
package notify

import (
	"fmt"
	"os/exec"
)

// Send shows a transient low-urgency notification via notify-send. A missing
// or failing notifier must never break the status pipeline, so callers log
// the returned error instead of propagating it.
func Send(title, body string) error {
	cmd := exec.Command("notify-send", title, body,
		"--transient", "--urgency=low", "--expire-time=4000")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("notify-send: %w", err)
	}
	return nil
}
