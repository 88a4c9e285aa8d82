// internal/cmdengine/options.go
package cmdengine

import "time"

// Config holds the engine's polling discipline.
type Config struct {
	// PollInterval is the sleep between status reads. Zero spins.
	PollInterval time.Duration

	// WaitBudget bounds each poll loop. A hardware fault that never
	// clears the busy bits surfaces as a TimeoutError instead of a hang.
	WaitBudget time.Duration
}

func defaultConfig() Config {
	return Config{
		PollInterval: 100 * time.Microsecond,
		WaitBudget:   2 * time.Second,
	}
}

// Option is a functional option for configuring the Engine.
type Option func(*Config)

// WithPollInterval sets the sleep between status polls.
func WithPollInterval(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.PollInterval = d
		}
	}
}

// WithWaitBudget bounds how long each poll loop waits for hardware.
func WithWaitBudget(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.WaitBudget = d
		}
	}
}
