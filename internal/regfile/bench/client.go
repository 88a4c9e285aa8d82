// internal/regfile/bench/client.go
package bench

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	gomodbus "github.com/goburrow/modbus"
)

// Client implements regfile.RegisterFile against a bench rig that exposes
// the chip's register block over Modbus: one holding register per byte
// register, same addressing. This is how the register window is reached
// when the firmware under test sits on a lab fixture instead of the local
// bus.
//
// The register-file contract has no error returns, so transport failures
// are latched: a failed read returns 0xFF (open bus), a failed write is
// dropped, and Fault() reports the first failure.
type Client struct {
	cli     gomodbus.Client
	handler io.Closer
	fault   error
}

// Config is minimal transport config.
type Config struct {
	// Endpoint is host:port for Modbus TCP, or rtu:<device-path> for a
	// serial fixture (115200 8N1).
	Endpoint string
	UnitID   uint8
	Timeout  time.Duration
}

// New creates a connected bench client.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("bench client: endpoint required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Second
	}

	if dev, ok := strings.CutPrefix(cfg.Endpoint, "rtu:"); ok {
		h := gomodbus.NewRTUClientHandler(dev)
		h.BaudRate = 115200
		h.DataBits = 8
		h.Parity = "N"
		h.StopBits = 1
		h.SlaveId = cfg.UnitID
		h.Timeout = cfg.Timeout
		if err := h.Connect(); err != nil {
			return nil, fmt.Errorf("bench client: connect %s: %w", cfg.Endpoint, err)
		}
		return &Client{cli: gomodbus.NewClient(h), handler: h}, nil
	}

	h := gomodbus.NewTCPClientHandler(cfg.Endpoint)
	h.SlaveId = cfg.UnitID
	h.Timeout = cfg.Timeout
	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("bench client: connect %s: %w", cfg.Endpoint, err)
	}
	return &Client{cli: gomodbus.NewClient(h), handler: h}, nil
}

func (c *Client) Read8(addr uint16) byte {
	if c.fault != nil {
		return 0xFF
	}
	res, err := c.cli.ReadHoldingRegisters(addr, 1)
	if err != nil {
		c.fault = fmt.Errorf("bench read addr=0x%04X: %w", addr, err)
		return 0xFF
	}
	if len(res) < 2 {
		c.fault = fmt.Errorf("bench read addr=0x%04X: short response (%d bytes)", addr, len(res))
		return 0xFF
	}
	// Registers are big-endian; the byte register sits in the low half.
	return res[1]
}

func (c *Client) Write8(addr uint16, v byte) {
	if c.fault != nil {
		return
	}
	if _, err := c.cli.WriteSingleRegister(addr, uint16(v)); err != nil {
		c.fault = fmt.Errorf("bench write addr=0x%04X val=0x%02X: %w", addr, v, err)
	}
}

// Fault reports the first latched transport failure, if any.
func (c *Client) Fault() error { return c.fault }

// Close closes the underlying Modbus handler.
func (c *Client) Close() error {
	if c == nil || c.handler == nil {
		return nil
	}
	return c.handler.Close()
}
