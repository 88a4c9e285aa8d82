// internal/cmdengine/request.go
package cmdengine

import "fmt"

// Mode selects the trigger encoding for a read/write command.
// Mode 1 triggers with 0x40, modes 2 and 3 with 0x80; the hardware
// meaning behind the two encodings is not documented.
type Mode uint8

const (
	Mode1 Mode = 1
	Mode2 Mode = 2
	Mode3 Mode = 3
)

// Request carries one command's parameters. The caller owns it; the
// engine reads it during submission and keeps nothing afterwards.
type Request struct {
	LBA  uint32
	Mode Mode

	// Status is echoed to the control register at completion to latch
	// the next state for hardware. Zero means StatusReadWrite.
	Status byte

	// Param0/Param1 are opaque command parameter bytes, staged for
	// command variants that consume them.
	Param0 byte
	Param1 byte
}

// Validate rejects parameters the hardware encoding does not cover.
func (r Request) Validate() error {
	switch r.Mode {
	case Mode1, Mode2, Mode3:
		return nil
	default:
		return fmt.Errorf("cmdengine: mode %d out of range (want 1-3)", r.Mode)
	}
}

// status returns the effective status byte.
func (r Request) status() byte {
	if r.Status == 0 {
		return StatusReadWrite
	}
	return r.Status
}

// lbaByte returns byte i of the LBA, 0 = low.
func (r Request) lbaByte(i uint) byte {
	return byte(r.LBA >> (8 * i))
}

// trigger returns the trigger register value for the request's mode.
func (r Request) trigger() byte {
	if r.Mode == Mode2 || r.Mode == Mode3 {
		return TriggerMode23
	}
	return TriggerMode1
}
