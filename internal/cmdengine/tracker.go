// internal/cmdengine/tracker.go
package cmdengine

import "fmt"

// SlotAddress computes the register window address for a command slot:
// 32-byte stride from SlotWindowBase, slots 0-7.
func SlotAddress(slot uint8) (uint16, error) {
	if slot >= NumSlots {
		return 0, fmt.Errorf("cmdengine: slot %d out of range (want 0-%d)", slot, NumSlots-1)
	}
	return SlotWindowBase + uint16(slot)*SlotWindowStride, nil
}

// tracker holds the rolling command-state counter and the active slot.
// Both are 3-bit values. The state counter is a pipeline generation,
// not a slot identity: it advances once per completed command.
type tracker struct {
	state     uint8
	slot      uint8
	opCounter byte

	// Split slot window address, kept for indexed register access.
	addrHi byte
	addrLo byte
}

// selectSlot computes and latches the slot's window address.
func (t *tracker) selectSlot(slot uint8) (uint16, error) {
	addr, err := SlotAddress(slot)
	if err != nil {
		return 0, err
	}
	t.slot = slot
	t.addrHi = byte(addr >> 8)
	t.addrLo = byte(addr)
	return addr, nil
}

// windowAddr reassembles the latched slot window address.
func (t *tracker) windowAddr() uint16 {
	return uint16(t.addrHi)<<8 | uint16(t.addrLo)
}

// advance records a completed command: bump the 3-bit state counter and
// hand the engine back to slot 0.
func (t *tracker) advance() {
	t.state = (t.state + 1) & 0x07
	t.slot = 0
}

// armOpCounter stamps the per-submission step count.
func (t *tracker) armOpCounter() {
	t.opCounter = OpCounterTarget
}

// opCounterOK reports whether the slot completed its expected steps.
func (t *tracker) opCounterOK() bool {
	return t.opCounter^OpCounterTarget == 0
}
