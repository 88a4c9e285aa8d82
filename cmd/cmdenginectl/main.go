// cmd/cmdenginectl/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/asmbridge/cmdengine/internal/cmdengine"
	"github.com/asmbridge/cmdengine/internal/config"
	"github.com/asmbridge/cmdengine/internal/emulator"
	"github.com/asmbridge/cmdengine/internal/regfile"
	"github.com/asmbridge/cmdengine/internal/regfile/bench"
	"github.com/asmbridge/cmdengine/internal/regfile/devmem"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "engine config yaml")
		lba     = flag.Uint64("lba", 0, "logical block address")
		mode    = flag.Uint("mode", 2, "trigger mode (1-3)")
		setup   = flag.Bool("setup", false, "run the engine enable chain before issuing")
	)
	flag.Parse()

	if *cfgPath == "" {
		log.Fatal("usage: cmdenginectl -config <engine.yaml> [-lba N] [-mode 1|2|3]")
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	// --------------------
	// Register-file backend
	// --------------------

	rf, closeRF, err := buildBackend(cfg.Engine.Backend)
	if err != nil {
		log.Fatalf("backend build failed (kind=%s): %v", cfg.Engine.Backend.Kind, err)
	}
	defer closeRF()

	eng := cmdengine.New(rf,
		cmdengine.WithPollInterval(time.Duration(cfg.Engine.Poll.IntervalUs)*time.Microsecond),
		cmdengine.WithWaitBudget(time.Duration(cfg.Engine.Poll.BudgetMs)*time.Millisecond),
	)

	if *setup {
		eng.ConfigureEngine()
		eng.PrimeDMAWindow()
		eng.EnableCompletionInterrupt()
		log.Printf("engine enable chain done (state=%s)", eng.Status())
	}

	// --------------------
	// Issue one read/write command
	// --------------------

	req := cmdengine.Request{
		LBA:  uint32(*lba),
		Mode: cmdengine.Mode(*mode),
	}

	ctx := context.Background()

	res, err := eng.IssueReadWrite(ctx, req)
	if err != nil {
		var te *cmdengine.TimeoutError
		if errors.As(err, &te) {
			log.Fatalf("command timed out: %v", te)
		}
		log.Fatalf("command failed: %v", err)
	}

	log.Printf("command complete: state=%s generation=%d slot=%d elapsed=%s",
		res.State, res.Generation, eng.Slot(), res.Elapsed)
}

// buildBackend constructs the configured register-file backend and its
// closer. Fail fast at startup, like any transport build.
func buildBackend(b config.BackendConfig) (regfile.RegisterFile, func() error, error) {
	switch b.Kind {
	case "sim":
		return emulator.New(), func() error { return nil }, nil

	case "devmem":
		f, err := devmem.Open(devmem.Config{
			Path:     b.DevicePath,
			PhysBase: int64(b.PhysBase),
		})
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil

	case "bench":
		c, err := bench.New(bench.Config{
			Endpoint: b.Endpoint,
			UnitID:   b.UnitID,
			Timeout:  time.Duration(b.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil

	default:
		return nil, nil, errors.New("unknown backend kind " + b.Kind)
	}
}
