// internal/cmdengine/errors.go
package cmdengine

import (
	"errors"
	"fmt"
	"time"
)

// ErrEngineBusy means a command is already in flight. The register block
// supports one outstanding command through this API; the caller retries
// after the current command completes.
var ErrEngineBusy = errors.New("cmdengine: command already in flight")

// TimeoutError reports a poll loop that exhausted its wait budget (or
// its context) without the hardware reaching the expected state.
type TimeoutError struct {
	Op     string
	State  EngineState // last state observed before giving up
	Waited time.Duration
	Cause  error // non-nil when the context expired first
}

func (e *TimeoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cmdengine: %s: %v (last state %s)", e.Op, e.Cause, e.State)
	}
	return fmt.Sprintf("cmdengine: %s: no response after %s (last state %s)", e.Op, e.Waited, e.State)
}

func (e *TimeoutError) Unwrap() error { return e.Cause }

// Timeout satisfies the net.Error-style timeout probe.
func (e *TimeoutError) Timeout() bool { return true }
