// internal/emulator/model.go

// Package emulator models the command sequencing hardware block well
// enough to exercise the driver without a bench rig: a trigger write
// asserts the busy bit for a number of status reads, and the software
// trigger pulse on the busy register self-clears after a few reads.
package emulator

import (
	"github.com/asmbridge/cmdengine/internal/cmdengine"
	"github.com/asmbridge/cmdengine/internal/regfile"
)

// Model implements regfile.RegisterFile over an in-memory block and
// reacts to the engine's trigger writes the way the hardware does.
type Model struct {
	mem *regfile.Mem

	busyReads  int // StatusA reads showing busy after a trigger write
	pulseReads int // BusyB reads showing the pulse before it self-clears

	busyLeft  int
	pulseLeft int

	stuckBusy  bool
	errLatched bool

	lastTrigger byte
	triggers    int
}

// Option configures the model.
type Option func(*Model)

// WithBusyReads sets how many busy status reads follow a trigger write.
func WithBusyReads(n int) Option {
	return func(m *Model) {
		if n >= 0 {
			m.busyReads = n
		}
	}
}

// WithPulseReads sets how many reads the software trigger pulse survives.
func WithPulseReads(n int) Option {
	return func(m *Model) {
		if n >= 0 {
			m.pulseReads = n
		}
	}
}

// WithStuckBusy makes the engine never leave the busy state, modelling a
// hardware fault the driver must time out on.
func WithStuckBusy() Option {
	return func(m *Model) { m.stuckBusy = true }
}

// WithErrorLatched asserts the latched error bit whenever the engine is
// not busy.
func WithErrorLatched() Option {
	return func(m *Model) { m.errLatched = true }
}

// New creates a model covering the collaborator and engine register
// space (0xC800 through the last slot window).
func New(opts ...Option) *Model {
	m := &Model{
		mem:        regfile.NewMem(0xC800, 0x1E00),
		busyReads:  2,
		pulseReads: 1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Read8(addr uint16) byte {
	switch addr {
	case cmdengine.RegStatusA:
		stored := m.mem.Peek(addr) &^ (cmdengine.StatusABusy | cmdengine.StatusAErrorLatch)
		if m.stuckBusy {
			return stored | cmdengine.StatusABusy
		}
		if m.busyLeft > 0 {
			m.busyLeft--
			return stored | cmdengine.StatusABusy
		}
		if m.errLatched {
			return stored | cmdengine.StatusAErrorLatch
		}
		return stored

	case cmdengine.RegBusyB:
		stored := m.mem.Peek(addr)
		if m.pulseLeft > 0 {
			m.pulseLeft--
			return stored | cmdengine.BusyBTrigger
		}
		return stored &^ cmdengine.BusyBTrigger

	default:
		return m.mem.Peek(addr)
	}
}

func (m *Model) Write8(addr uint16, v byte) {
	switch addr {
	case cmdengine.RegTrigger:
		m.mem.Poke(addr, v)
		m.lastTrigger = v
		m.triggers++
		m.busyLeft = m.busyReads

	case cmdengine.RegBusyB:
		m.mem.Poke(addr, v)
		if v&cmdengine.BusyBTrigger != 0 {
			m.pulseLeft = m.pulseReads
		}

	default:
		m.mem.Poke(addr, v)
	}
}

// Register exposes the stored value of a register for assertions.
func (m *Model) Register(addr uint16) byte { return m.mem.Peek(addr) }

// LastTrigger returns the last value written to the trigger register.
func (m *Model) LastTrigger() byte { return m.lastTrigger }

// Triggers returns how many trigger writes the model saw.
func (m *Model) Triggers() int { return m.triggers }
