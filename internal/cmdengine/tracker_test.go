// internal/cmdengine/tracker_test.go
package cmdengine

import "testing"

func TestSlotAddress(t *testing.T) {
	for slot := uint8(0); slot < NumSlots; slot++ {
		addr, err := SlotAddress(slot)
		if err != nil {
			t.Fatalf("slot %d: unexpected error: %v", slot, err)
		}
		want := uint16(0xE442) + uint16(slot)*32
		if addr != want {
			t.Fatalf("slot %d: addr = 0x%04X, want 0x%04X", slot, addr, want)
		}
	}

	// Full window range for valid slots.
	lo, _ := SlotAddress(0)
	hi, _ := SlotAddress(7)
	if lo != 0xE442 || hi != 0xE522 {
		t.Fatalf("window = [0x%04X, 0x%04X], want [0xE442, 0xE522]", lo, hi)
	}
}

func TestSlotAddress_OutOfRange(t *testing.T) {
	if _, err := SlotAddress(8); err == nil {
		t.Fatalf("slot 8: expected error, got nil")
	}
}

func TestTracker_AdvanceWrapsAt8(t *testing.T) {
	var trk tracker

	for i := 1; i <= 7; i++ {
		trk.advance()
		if trk.state != uint8(i) {
			t.Fatalf("after %d advances: state = %d", i, trk.state)
		}
	}

	trk.advance()
	if trk.state != 0 {
		t.Fatalf("wraparound: state = %d, want 0", trk.state)
	}
}

func TestTracker_AdvanceResetsSlot(t *testing.T) {
	var trk tracker
	if _, err := trk.selectSlot(5); err != nil {
		t.Fatalf("selectSlot: %v", err)
	}

	trk.advance()
	if trk.slot != 0 {
		t.Fatalf("slot = %d after advance, want 0", trk.slot)
	}
}

func TestTracker_SlotWindowSplit(t *testing.T) {
	var trk tracker
	addr, err := trk.selectSlot(3)
	if err != nil {
		t.Fatalf("selectSlot: %v", err)
	}
	if addr != 0xE4A2 {
		t.Fatalf("slot 3 addr = 0x%04X, want 0xE4A2", addr)
	}
	if trk.windowAddr() != addr {
		t.Fatalf("windowAddr = 0x%04X, want 0x%04X", trk.windowAddr(), addr)
	}
	if trk.addrHi != 0xE4 || trk.addrLo != 0xA2 {
		t.Fatalf("split = %02X:%02X, want E4:A2", trk.addrHi, trk.addrLo)
	}
}

func TestTracker_OpCounter(t *testing.T) {
	var trk tracker
	if trk.opCounterOK() {
		t.Fatalf("unarmed counter reported OK")
	}
	trk.armOpCounter()
	if !trk.opCounterOK() {
		t.Fatalf("armed counter not OK")
	}
}
