// internal/config/normalize.go
package config

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	b := &cfg.Engine.Backend

	if b.Kind == "bench" && b.TimeoutMs == 0 {
		b.TimeoutMs = 1000
	}
	if b.Kind == "devmem" && b.DevicePath == "" {
		b.DevicePath = "/dev/mem"
	}

	p := &cfg.Engine.Poll
	if p.IntervalUs == 0 {
		p.IntervalUs = 100
	}
	if p.BudgetMs == 0 {
		p.BudgetMs = 2000
	}
}
