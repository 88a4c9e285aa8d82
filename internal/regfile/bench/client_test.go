// internal/regfile/bench/client_test.go
package bench

import "testing"

func TestNew_RequiresEndpoint(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected endpoint error, got nil")
	}
}

func TestClose_NilSafe(t *testing.T) {
	var c *Client
	if err := c.Close(); err != nil {
		t.Fatalf("nil Close: %v", err)
	}
}
