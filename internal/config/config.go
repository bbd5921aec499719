package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pomobar/pomobar/internal/model"
)

const (
	DefaultWork       = 25 * time.Minute
	DefaultShortBreak = 5 * time.Minute
	DefaultLongBreak  = 15 * time.Minute
	// DefaultCycles is the number of completed Work phases before a LongBreak.
	DefaultCycles = 4
	// DefaultDailyResetHour is the local hour at which the pomodoro count
	// rolls over when daily reset is enabled.
	DefaultDailyResetHour = 4
	// DefaultLockWait bounds how long an invocation waits for the state lock.
	// It must stay well under a typical one-second bar polling interval.
	DefaultLockWait = 500 * time.Millisecond
)

// Config is the resolved runtime configuration. It is read fresh on every
// invocation and never persisted alongside the timer state.
type Config struct {
	Work                  time.Duration
	ShortBreak            time.Duration
	LongBreak             time.Duration
	CyclesBeforeLongBreak int
	LongBreakEnabled      bool
	Notifications         bool
	DailyResetEnabled     bool
	DailyResetHour        int
	StatePath             string
	LockWait              time.Duration
}

// yamlConfig mirrors the config file. Booleans and the reset hour are
// pointers so an absent key keeps the built-in default instead of forcing
// the zero value.
type yamlConfig struct {
	WorkMinutes           int    `yaml:"work_minutes"`
	ShortBreakMinutes     int    `yaml:"short_break_minutes"`
	LongBreakMinutes      int    `yaml:"long_break_minutes"`
	CyclesBeforeLongBreak int    `yaml:"cycles_before_long_break"`
	LongBreakEnabled      *bool  `yaml:"long_break_enabled"`
	NotificationsEnabled  *bool  `yaml:"notifications_enabled"`
	DailyResetEnabled     *bool  `yaml:"daily_reset_enabled"`
	DailyResetHour        *int   `yaml:"daily_reset_hour"`
	StateFile             string `yaml:"state_file"`
	LockTimeoutMillis     int    `yaml:"lock_timeout_ms"`
}

// Default returns a Config pre-filled with the built-in defaults.
func Default() Config {
	return Config{
		Work:                  DefaultWork,
		ShortBreak:            DefaultShortBreak,
		LongBreak:             DefaultLongBreak,
		CyclesBeforeLongBreak: DefaultCycles,
		LongBreakEnabled:      true,
		Notifications:         true,
		DailyResetEnabled:     false,
		DailyResetHour:        DefaultDailyResetHour,
		StatePath:             DefaultStatePath(),
		LockWait:              DefaultLockWait,
	}
}

// DefaultStatePath places the state record in the user's runtime directory,
// falling back to the system temp dir when XDG_RUNTIME_DIR is unset.
func DefaultStatePath() string {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "pomobar", "state.json")
}

// Load reads the config file at path and returns the resolved Config. An
// empty path falls back to $POMOBAR_CONFIG, then to pomobar/config.yaml in
// the user config dir. A missing file is not an error; a present but
// unparsable file returns the defaults together with the parse error so the
// invocation can warn and still render a status.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("POMOBAR_CONFIG")
	}
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			applyEnv(&cfg)
			return cfg, fmt.Errorf("cannot determine config directory: %w", err)
		}
		path = filepath.Join(dir, "pomobar", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		applyEnv(&cfg)
		return cfg, nil
	}
	if err != nil {
		applyEnv(&cfg)
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var file yamlConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		applyEnv(&cfg)
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	applyFile(&cfg, file)
	applyEnv(&cfg)
	return cfg, nil
}

// applyFile copies the file values over the defaults. Non-positive numbers
// are ignored so a broken value degrades to the default instead of producing
// a zero-length phase.
func applyFile(cfg *Config, file yamlConfig) {
	if file.WorkMinutes > 0 {
		cfg.Work = time.Duration(file.WorkMinutes) * time.Minute
	}
	if file.ShortBreakMinutes > 0 {
		cfg.ShortBreak = time.Duration(file.ShortBreakMinutes) * time.Minute
	}
	if file.LongBreakMinutes > 0 {
		cfg.LongBreak = time.Duration(file.LongBreakMinutes) * time.Minute
	}
	if file.CyclesBeforeLongBreak > 0 {
		cfg.CyclesBeforeLongBreak = file.CyclesBeforeLongBreak
	}
	if file.LongBreakEnabled != nil {
		cfg.LongBreakEnabled = *file.LongBreakEnabled
	}
	if file.NotificationsEnabled != nil {
		cfg.Notifications = *file.NotificationsEnabled
	}
	if file.DailyResetEnabled != nil {
		cfg.DailyResetEnabled = *file.DailyResetEnabled
	}
	if file.DailyResetHour != nil && *file.DailyResetHour >= 0 && *file.DailyResetHour <= 23 {
		cfg.DailyResetHour = *file.DailyResetHour
	}
	if file.StateFile != "" {
		cfg.StatePath = file.StateFile
	}
	if file.LockTimeoutMillis > 0 {
		cfg.LockWait = time.Duration(file.LockTimeoutMillis) * time.Millisecond
	}
}

// applyEnv applies environment overrides. POMOBAR_STATE wins over both the
// default and the config file so scripts can point one-off invocations at a
// scratch state file.
func applyEnv(cfg *Config) {
	if v := os.Getenv("POMOBAR_STATE"); v != "" {
		cfg.StatePath = v
	}
}

// PhaseDuration returns the configured length of an active phase, 0 for idle.
func (c Config) PhaseDuration(p model.Phase) time.Duration {
	switch p {
	case model.PhaseWork:
		return c.Work
	case model.PhaseShortBreak:
		return c.ShortBreak
	case model.PhaseLongBreak:
		return c.LongBreak
	}
	return 0
}
