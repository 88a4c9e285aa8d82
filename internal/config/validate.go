// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	b := cfg.Engine.Backend

	switch b.Kind {
	case "sim":
		// self-contained, nothing to check

	case "devmem":
		if b.PhysBase == 0 {
			return fmt.Errorf("backend %q: phys_base is required", b.Kind)
		}
		if b.Endpoint != "" {
			return fmt.Errorf("backend %q: endpoint is not applicable", b.Kind)
		}

	case "bench":
		if b.Endpoint == "" {
			return fmt.Errorf("backend %q: endpoint is required", b.Kind)
		}
		if b.PhysBase != 0 {
			return fmt.Errorf("backend %q: phys_base is not applicable", b.Kind)
		}

	case "":
		return fmt.Errorf("backend kind is required (sim, devmem, bench)")

	default:
		return fmt.Errorf("unknown backend kind %q", b.Kind)
	}

	if b.TimeoutMs < 0 {
		return fmt.Errorf("backend timeout_ms must be >= 0")
	}
	if cfg.Engine.Poll.IntervalUs < 0 {
		return fmt.Errorf("poll interval_us must be >= 0")
	}
	if cfg.Engine.Poll.BudgetMs < 0 {
		return fmt.Errorf("poll budget_ms must be >= 0")
	}

	return nil
}
