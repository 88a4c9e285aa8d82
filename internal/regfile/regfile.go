// internal/regfile/regfile.go
package regfile

// RegisterFile is byte-wide access to a hardware register block.
// Each call is one bus transaction: no caching, no batching, and a read
// may observe state the hardware changed on its own.
//
// Accesses never fail. Backends whose transport can fail (mmap, bench
// link) latch the failure and surface it through Fault().
type RegisterFile interface {
	Read8(addr uint16) byte
	Write8(addr uint16, v byte)
}

// Faulter is implemented by backends that can lose their transport.
type Faulter interface {
	Fault() error
}
