// internal/regfile/devmem/devmem_test.go
package devmem

import "testing"

func TestOpen_MissingDevice(t *testing.T) {
	if _, err := Open(Config{Path: "/nonexistent/mem"}); err == nil {
		t.Fatalf("expected open error, got nil")
	}
}

func TestOpen_NegativeBase(t *testing.T) {
	if _, err := Open(Config{PhysBase: -1, Path: "/dev/null"}); err == nil {
		t.Fatalf("expected base error, got nil")
	}
}

func TestClose_NilSafe(t *testing.T) {
	var f *File
	if err := f.Close(); err != nil {
		t.Fatalf("nil Close: %v", err)
	}
}
