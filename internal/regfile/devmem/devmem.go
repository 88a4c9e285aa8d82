// internal/regfile/devmem/devmem.go
package devmem

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// File maps the command engine register window through /dev/mem.
// Register addresses are chip XDATA addresses; physBase is where the
// window starts in host physical memory.
type File struct {
	fd    int
	mem   []byte
	shift int
	size  int
	fault error
}

// Config is minimal mapping config.
type Config struct {
	Path     string // defaults to /dev/mem
	PhysBase int64  // physical address of XDATA offset 0
	Window   int    // mapped bytes; defaults to the full 64 KiB space
}

// Open maps the register window read/write.
func Open(cfg Config) (*File, error) {
	if cfg.Path == "" {
		cfg.Path = "/dev/mem"
	}
	if cfg.Window <= 0 {
		cfg.Window = 0x10000
	}
	if cfg.PhysBase < 0 {
		return nil, errors.New("devmem: negative physical base")
	}

	fd, err := unix.Open(cfg.Path, unix.O_RDWR|unix.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("devmem: open %s: %w", cfg.Path, err)
	}

	// mmap offsets must be page aligned.
	page := int64(unix.Getpagesize())
	off := cfg.PhysBase &^ (page - 1)
	shift := int(cfg.PhysBase - off)

	mem, err := unix.Mmap(fd, off, shift+cfg.Window,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("devmem: mmap %s base=0x%x len=0x%x: %w",
			cfg.Path, off, shift+cfg.Window, err)
	}

	return &File{fd: fd, mem: mem, shift: shift, size: cfg.Window}, nil
}

func (f *File) Read8(addr uint16) byte {
	if int(addr) >= f.size {
		return 0xFF
	}
	return f.mem[f.shift+int(addr)]
}

func (f *File) Write8(addr uint16, v byte) {
	if int(addr) >= f.size {
		return
	}
	f.mem[f.shift+int(addr)] = v
}

// Fault reports a latched transport failure. The mapping itself cannot
// fail after Open, so this is always nil; it satisfies regfile.Faulter
// so callers can treat all backends alike.
func (f *File) Fault() error { return f.fault }

// Close unmaps the window and closes the file descriptor.
func (f *File) Close() error {
	if f == nil || f.mem == nil {
		return nil
	}
	err := unix.Munmap(f.mem)
	f.mem = nil
	if cerr := unix.Close(f.fd); err == nil {
		err = cerr
	}
	return err
}
