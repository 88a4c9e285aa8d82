// internal/cmdengine/monitor.go
package cmdengine

import (
	"context"
	"time"

	"github.com/asmbridge/cmdengine/internal/regfile"
)

// EngineState classifies the command engine's status bits.
type EngineState uint8

const (
	StateUnknown EngineState = iota
	StateIdle
	StateBusy
	StateErrorPending
)

func (s EngineState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBusy:
		return "busy"
	case StateErrorPending:
		return "error-pending"
	default:
		return "unknown"
	}
}

// Classify reads the two status registers and reports the engine state.
// Read order matches the hardware polling discipline: status A bit 1,
// busy B bit 0, then status A bits 2 and 3 on fresh reads (the register
// may change between accesses).
//
// The legacy busy signal folds all four bits together; Classify keeps
// the bit semantics but separates the latched error/pending indicators
// so callers can stop spinning on a fault.
func Classify(rf regfile.RegisterFile) EngineState {
	if rf.Read8(RegStatusA)&StatusABusy != 0 {
		return StateBusy
	}
	if rf.Read8(RegBusyB)&BusyBTrigger != 0 {
		return StateBusy
	}
	if rf.Read8(RegStatusA)&StatusAErrorLatch != 0 {
		return StateErrorPending
	}
	if rf.Read8(RegStatusA)&StatusAPending != 0 {
		return StateErrorPending
	}
	return StateIdle
}

// CheckBusy is the legacy OR-fold: busy iff any of the four bits is set.
func CheckBusy(rf regfile.RegisterFile) bool {
	return Classify(rf) != StateIdle
}

// poll spins on cond until it reports done, bounded by the wait budget
// and the context. On expiry it returns a TimeoutError carrying the last
// state cond observed.
func (e *Engine) poll(ctx context.Context, op string, cond func() (bool, EngineState)) error {
	deadline := time.Now().Add(e.cfg.WaitBudget)
	last := StateUnknown

	for {
		done, state := cond()
		last = state
		if done {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return &TimeoutError{Op: op, State: last, Cause: err}
		}
		if time.Now().After(deadline) {
			return &TimeoutError{Op: op, State: last, Waited: e.cfg.WaitBudget}
		}
		if e.cfg.PollInterval > 0 {
			time.Sleep(e.cfg.PollInterval)
		}
	}
}

// waitIdle blocks until Classify reports idle.
func (e *Engine) waitIdle(ctx context.Context) error {
	return e.poll(ctx, "wait idle", func() (bool, EngineState) {
		s := Classify(e.rf)
		return s == StateIdle, s
	})
}

// waitTriggerClear blocks until hardware consumes the busy B pulse.
func (e *Engine) waitTriggerClear(ctx context.Context) error {
	return e.poll(ctx, "wait trigger clear", func() (bool, EngineState) {
		if e.rf.Read8(RegBusyB)&BusyBTrigger != 0 {
			return false, StateBusy
		}
		return true, StateIdle
	})
}

// completeCommand runs the post-execution sequence: latch the request
// status into the control register, pulse busy B bit 0, wait for the
// hardware to consume the pulse, then advance the slot/state tracker.
func (e *Engine) completeCommand(ctx context.Context, status byte) error {
	if err := e.waitIdle(ctx); err != nil {
		return err
	}

	e.rf.Write8(RegControl, status)

	// Software trigger pulse: read, clear bit 0, set bit 0, write back.
	v := e.rf.Read8(RegBusyB)
	v = (v &^ BusyBTrigger) | BusyBTrigger
	e.rf.Write8(RegBusyB, v)

	if err := e.waitTriggerClear(ctx); err != nil {
		return err
	}

	e.trk.advance()
	return nil
}
