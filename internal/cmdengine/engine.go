// internal/cmdengine/engine.go
package cmdengine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/asmbridge/cmdengine/internal/regfile"
)

// Engine drives the hardware command sequencing block: it stages command
// descriptors in the register file, triggers execution, and tracks the
// slot/state counters across completions.
//
// The register layout supports 8 slots, but the engine admits one
// command at a time; a second submission while one is in flight fails
// with ErrEngineBusy instead of corrupting the shared register block.
type Engine struct {
	rf  regfile.RegisterFile
	cfg Config

	mu  sync.Mutex // serializes access to the register block
	trk tracker
}

// Result reports a completed submission.
type Result struct {
	State      EngineState
	Generation uint8 // state counter after completion
	Elapsed    time.Duration
}

// New creates an Engine over the given register file.
func New(rf regfile.RegisterFile, opts ...Option) *Engine {
	if rf == nil {
		panic("cmdengine: nil register file")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{rf: rf, cfg: cfg}
}

// IssueReadWrite stages and submits one read/write command, then blocks
// until the hardware completes it. On success the state counter has
// advanced and the slot index is back at 0.
func (e *Engine) IssueReadWrite(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	if !e.mu.TryLock() {
		return Result{}, ErrEngineBusy
	}
	defer e.mu.Unlock()

	start := time.Now()

	writeDescriptor(e.rf, req)
	e.trk.armOpCounter()

	if err := e.completeCommand(ctx, req.status()); err != nil {
		return Result{State: Classify(e.rf)}, err
	}
	if err := e.fault(); err != nil {
		return Result{}, err
	}

	return Result{
		State:      StateIdle,
		Generation: e.trk.state,
		Elapsed:    time.Since(start),
	}, nil
}

// IssueTagged submits a tagged command: bits 6-7 of param become the
// issue bits, tag goes to the tag register, and completion latches the
// tagged status byte. Used for admin-style commands that bypass the
// read/write descriptor.
func (e *Engine) IssueTagged(ctx context.Context, param, tag byte) (Result, error) {
	if !e.mu.TryLock() {
		return Result{}, ErrEngineBusy
	}
	defer e.mu.Unlock()

	start := time.Now()

	e.rf.Write8(RegIssue, extractIssueBits(param))
	e.rf.Write8(RegTag, tag)

	if err := e.completeCommand(ctx, StatusTagged); err != nil {
		return Result{State: Classify(e.rf)}, err
	}
	if err := e.fault(); err != nil {
		return Result{}, err
	}

	return Result{
		State:      StateIdle,
		Generation: e.trk.state,
		Elapsed:    time.Since(start),
	}, nil
}

// Status classifies the engine's current status bits.
func (e *Engine) Status() EngineState {
	return Classify(e.rf)
}

// Generation returns the 3-bit command-state counter.
func (e *Engine) Generation() uint8 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.trk.state
}

// Slot returns the active slot index.
func (e *Engine) Slot() uint8 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.trk.slot
}

// SelectSlot latches a slot's register window address for indexed
// access. The primary issue path always hands the engine back to slot 0
// on completion; multi-slot addressing is an extension point.
func (e *Engine) SelectSlot(slot uint8) (uint16, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.trk.selectSlot(slot)
}

// SlotWindow returns the latched slot window address from the last
// SelectSlot call.
func (e *Engine) SlotWindow() uint16 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.trk.windowAddr()
}

// OpCounterOK reports whether the last submission armed its expected
// step count.
func (e *Engine) OpCounterOK() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.trk.opCounterOK()
}

// ConfigureEngine walks the engine enable chain: strobe the DMA
// handshake, then set bits 1, 2 and 3 of the engine config register one
// read-modify-write at a time, the order the hardware expects.
func (e *Engine) ConfigureEngine() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rf.Write8(RegDMAControl, 0x02)

	for _, bit := range []byte{0x02, 0x04, 0x08} {
		v := e.rf.Read8(RegEngineCfg)
		v = (v &^ bit) | bit
		e.rf.Write8(RegEngineCfg, v)
	}
}

// SetTransferMode clears the transfer config bits and writes the mode
// select field (bits 4-6).
func (e *Engine) SetTransferMode(param byte) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.rf.Read8(RegTransferCfg)
	e.rf.Write8(RegTransferCfg, v&0xF8)
	e.rf.Write8(RegModeSelect, (param<<4)&0x70)
}

// PrimeDMAWindow stages the DMA transfer window the engine hands off to:
// zero address low, 0x50 address high, then the 0x04/0x02 mode sequence.
func (e *Engine) PrimeDMAWindow() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rf.Write8(RegDMAAddrLo, 0x00)
	e.rf.Write8(RegDMAAddrHi, 0x50)
	e.rf.Write8(RegDMAMode, 0x04)
	e.rf.Write8(RegDMAMode, 0x02)
}

// ClearDMAStatus clears the DMA transfer status bits and the strobe.
func (e *Engine) ClearDMAStatus() {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.rf.Read8(RegDMAStatus)
	e.rf.Write8(RegDMAStatus, v&0xF8)
	e.rf.Write8(RegDMAAck, 0)
}

// EnableCompletionInterrupt sets bit 4 of the interrupt control
// register so the dispatch layer sees command completions.
func (e *Engine) EnableCompletionInterrupt() {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.rf.Read8(RegIntControl)
	v = (v &^ 0x10) | 0x10
	e.rf.Write8(RegIntControl, v)
}

// fault surfaces a latched register transport failure, if the backend
// has one.
func (e *Engine) fault() error {
	f, ok := e.rf.(regfile.Faulter)
	if !ok {
		return nil
	}
	if err := f.Fault(); err != nil {
		return fmt.Errorf("cmdengine: register transport: %w", err)
	}
	return nil
}
