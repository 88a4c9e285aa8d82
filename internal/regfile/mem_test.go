// internal/regfile/mem_test.go
package regfile

import "testing"

func TestMem_ReadWrite(t *testing.T) {
	m := NewMem(0xE400, 0x40)

	m.Write8(0xE422, 0x32)
	if got := m.Read8(0xE422); got != 0x32 {
		t.Fatalf("read back 0x%02X, want 0x32", got)
	}
}

func TestMem_OpenBusOutsideWindow(t *testing.T) {
	m := NewMem(0xE400, 0x40)

	if got := m.Read8(0x0100); got != 0xFF {
		t.Fatalf("below window: read 0x%02X, want 0xFF", got)
	}
	if got := m.Read8(0xE440); got != 0xFF {
		t.Fatalf("above window: read 0x%02X, want 0xFF", got)
	}

	m.Write8(0xE440, 0x55) // dropped
	if got := m.Read8(0xE440); got != 0xFF {
		t.Fatalf("out-of-window write stored: 0x%02X", got)
	}
}

func TestMem_WriteHook(t *testing.T) {
	m := NewMem(0xE400, 0x40)

	var gotAddr uint16
	var gotVal byte
	m.SetWriteHook(func(addr uint16, v byte) {
		gotAddr, gotVal = addr, v
	})

	m.Write8(0xE420, 0x80)
	if gotAddr != 0xE420 || gotVal != 0x80 {
		t.Fatalf("hook saw addr=0x%04X val=0x%02X", gotAddr, gotVal)
	}

	// Poke bypasses the hook.
	gotAddr, gotVal = 0, 0
	m.Poke(0xE420, 0x40)
	if gotAddr != 0 {
		t.Fatalf("hook fired on Poke")
	}
}

func TestMem_ReadHook(t *testing.T) {
	m := NewMem(0xE400, 0x40)
	m.Write8(0xE402, 0x00)

	m.SetReadHook(func(addr uint16, stored byte) (byte, bool) {
		if addr == 0xE402 {
			return stored | 0x02, true
		}
		return 0, false
	})

	if got := m.Read8(0xE402); got != 0x02 {
		t.Fatalf("hooked read 0x%02X, want 0x02", got)
	}
	if got := m.Peek(0xE402); got != 0x00 {
		t.Fatalf("Peek saw hook: 0x%02X", got)
	}
}
