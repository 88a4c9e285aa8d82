// internal/emulator/model_test.go
package emulator

import (
	"testing"

	"github.com/asmbridge/cmdengine/internal/cmdengine"
)

func TestModel_TriggerAssertsBusy(t *testing.T) {
	m := New(WithBusyReads(3))

	if m.Read8(cmdengine.RegStatusA)&cmdengine.StatusABusy != 0 {
		t.Fatalf("busy before trigger")
	}

	m.Write8(cmdengine.RegTrigger, 0x80)

	for i := 0; i < 3; i++ {
		if m.Read8(cmdengine.RegStatusA)&cmdengine.StatusABusy == 0 {
			t.Fatalf("read %d: busy bit clear too early", i)
		}
	}
	if m.Read8(cmdengine.RegStatusA)&cmdengine.StatusABusy != 0 {
		t.Fatalf("busy bit stuck after window")
	}

	if m.LastTrigger() != 0x80 || m.Triggers() != 1 {
		t.Fatalf("trigger bookkeeping: last=0x%02X count=%d", m.LastTrigger(), m.Triggers())
	}
}

func TestModel_PulseSelfClears(t *testing.T) {
	m := New(WithPulseReads(2))

	v := m.Read8(cmdengine.RegBusyB)
	m.Write8(cmdengine.RegBusyB, v|cmdengine.BusyBTrigger)

	for i := 0; i < 2; i++ {
		if m.Read8(cmdengine.RegBusyB)&cmdengine.BusyBTrigger == 0 {
			t.Fatalf("read %d: pulse cleared too early", i)
		}
	}
	if m.Read8(cmdengine.RegBusyB)&cmdengine.BusyBTrigger != 0 {
		t.Fatalf("pulse did not self-clear")
	}
}

func TestModel_StuckBusyNeverIdles(t *testing.T) {
	m := New(WithStuckBusy())
	m.Write8(cmdengine.RegTrigger, 0x40)

	for i := 0; i < 100; i++ {
		if m.Read8(cmdengine.RegStatusA)&cmdengine.StatusABusy == 0 {
			t.Fatalf("stuck-busy model went idle")
		}
	}
}

func TestModel_ErrorLatchedAfterBusy(t *testing.T) {
	m := New(WithBusyReads(1), WithErrorLatched())
	m.Write8(cmdengine.RegTrigger, 0x40)

	m.Read8(cmdengine.RegStatusA) // consume the busy window

	got := m.Read8(cmdengine.RegStatusA)
	if got&cmdengine.StatusAErrorLatch == 0 {
		t.Fatalf("error latch clear: status = 0x%02X", got)
	}
	if got&cmdengine.StatusABusy != 0 {
		t.Fatalf("busy still set: status = 0x%02X", got)
	}
}

func TestModel_PlainRegistersStore(t *testing.T) {
	m := New()

	m.Write8(cmdengine.RegLBA1, 0xAB)
	if got := m.Read8(cmdengine.RegLBA1); got != 0xAB {
		t.Fatalf("read back 0x%02X, want 0xAB", got)
	}
	if got := m.Register(cmdengine.RegLBA1); got != 0xAB {
		t.Fatalf("backdoor read 0x%02X, want 0xAB", got)
	}
}
