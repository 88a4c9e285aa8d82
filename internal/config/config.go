// internal/config/config.go
package config

type Config struct {
	Engine EngineConfig `yaml:"engine"`
}

type EngineConfig struct {
	Backend BackendConfig `yaml:"backend"`
	Poll    PollConfig    `yaml:"poll"`
}

// ---- BACKEND ----

type BackendConfig struct {
	// Kind selects the register-file backend: sim, devmem, or bench.
	Kind string `yaml:"kind"`

	// Bench rig (Modbus register server).
	Endpoint  string `yaml:"endpoint"` // host:port, or rtu:<device-path>
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`

	// Local physical mapping.
	DevicePath string `yaml:"device_path"` // defaults to /dev/mem
	PhysBase   uint64 `yaml:"phys_base"`   // physical address of XDATA 0
}

// ---- POLL DISCIPLINE ----

type PollConfig struct {
	IntervalUs int `yaml:"interval_us"`
	BudgetMs   int `yaml:"budget_ms"`
}
