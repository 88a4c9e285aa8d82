// internal/cmdengine/registers.go
package cmdengine

// Command engine register block (XDATA 0xE400-0xE43F).
// Addresses are absolute chip addresses; the slot windows that follow the
// block start at 0xE442.
const (
	RegStatusA     uint16 = 0xE402 // bit1 busy, bit2 error latch, bit3 pending
	RegControl     uint16 = 0xE403 // latched next status, written from the request status byte
	RegTransferCfg uint16 = 0xE405 // bits 0-2 transfer configuration
	RegEngineCfg   uint16 = 0xE40B // bits 1-3 engine enable chain
	RegBusyB       uint16 = 0xE41C // bit0 trigger/in-progress flag
	RegTrigger     uint16 = 0xE420 // write 0x40 or 0x80 to start execution
	RegModeSelect  uint16 = 0xE421 // bits 4-6 transfer mode select
	RegOpcode      uint16 = 0xE422 // command opcode/parameter byte
	RegCmdStatus   uint16 = 0xE423 // command status byte
	RegIssue       uint16 = 0xE424 // issue bits, low 2 bits meaningful
	RegTag         uint16 = 0xE425 // command tag, bit4 = valid flag
	RegLBA0        uint16 = 0xE426 // packed LBA byte, see descriptor layout
	RegLBA1        uint16 = 0xE427
	RegLBA2        uint16 = 0xE428
)

// Collaborator registers the engine handshakes with. The blocks behind
// them (interrupt dispatch, DMA engine) are driven elsewhere.
const (
	RegIntControl uint16 = 0xC801 // bit4 completion interrupt enable

	RegDMAStatus  uint16 = 0xCC88 // bits 0-2 transfer status
	RegDMAControl uint16 = 0xCC89 // handshake strobe, 0x01/0x02
	RegDMAAck     uint16 = 0xCC8A // cleared with the status bits
	RegDMAMode    uint16 = 0xCC99 // staging sequence 0x04 then 0x02
	RegDMAAddrLo  uint16 = 0xCC9A
	RegDMAAddrHi  uint16 = 0xCC9B
)

// Status bit masks.
const (
	StatusABusy       byte = 0x02 // engine executing
	StatusAErrorLatch byte = 0x04 // latched error, folded into busy
	StatusAPending    byte = 0x08 // latched pending, folded into busy
	BusyBTrigger      byte = 0x01 // trigger pulse, hardware self-clears
)

// Fixed descriptor bytes for read/write commands.
const (
	OpcodeReadWrite byte = 0x32
	StatusReadWrite byte = 0x90
	IssueReadWrite  byte = 0x01
	TagReadWrite    byte = 0x04
	TagValid        byte = 0x10 // set by read-modify-write after the tag is staged

	// Trigger encodings per mode. The functional difference between the
	// two values is undocumented; only the mode mapping is known.
	TriggerMode1  byte = 0x40
	TriggerMode23 byte = 0x80

	// StatusTagged is the request status used by the tagged issue path.
	StatusTagged byte = 0x06
)

// Slot window geometry: 8 windows of 32 bytes each after the register
// block, one per in-flight command slot.
const (
	SlotWindowBase   uint16 = 0xE442
	SlotWindowStride uint16 = 0x20
	NumSlots               = 8
)

// OpCounterTarget is the per-submission step count the engine is expected
// to complete; the tracker checks a slot against it.
const OpCounterTarget byte = 0x05
