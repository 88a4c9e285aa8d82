// internal/regfile/mem.go
package regfile

// WriteHook observes a committed register write.
type WriteHook func(addr uint16, v byte)

// ReadHook may replace the value a register read returns.
// ok=false means "use the stored value".
type ReadHook func(addr uint16, stored byte) (v byte, ok bool)

// Mem is a flat in-memory register block. It backs the engine emulator
// and tests. Accesses outside the window behave like an open bus:
// reads return 0xFF, writes are dropped.
type Mem struct {
	base    uint16
	cells   []byte
	onWrite WriteHook
	onRead  ReadHook
}

// NewMem creates a zeroed register block covering [base, base+size).
func NewMem(base uint16, size int) *Mem {
	return &Mem{
		base:  base,
		cells: make([]byte, size),
	}
}

func (m *Mem) Read8(addr uint16) byte {
	i, ok := m.index(addr)
	if !ok {
		return 0xFF
	}
	if m.onRead != nil {
		if v, hit := m.onRead(addr, m.cells[i]); hit {
			return v
		}
	}
	return m.cells[i]
}

func (m *Mem) Write8(addr uint16, v byte) {
	i, ok := m.index(addr)
	if !ok {
		return
	}
	m.cells[i] = v
	if m.onWrite != nil {
		m.onWrite(addr, v)
	}
}

// Peek reads a cell without invoking hooks. Emulator backdoor.
func (m *Mem) Peek(addr uint16) byte {
	i, ok := m.index(addr)
	if !ok {
		return 0xFF
	}
	return m.cells[i]
}

// Poke writes a cell without invoking hooks. Emulator backdoor.
func (m *Mem) Poke(addr uint16, v byte) {
	if i, ok := m.index(addr); ok {
		m.cells[i] = v
	}
}

// SetWriteHook installs fn to run after every in-window write.
func (m *Mem) SetWriteHook(fn WriteHook) { m.onWrite = fn }

// SetReadHook installs fn to run on every in-window read.
func (m *Mem) SetReadHook(fn ReadHook) { m.onRead = fn }

func (m *Mem) index(addr uint16) (int, bool) {
	if addr < m.base {
		return 0, false
	}
	i := int(addr - m.base)
	if i >= len(m.cells) {
		return 0, false
	}
	return i, true
}
