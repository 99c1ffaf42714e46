package campaign

import "sync"

// guard serializes mutating entry points and rejects reentrant calls.
//
// acquire leaves the mutex held; operations release the mutex around
// outbound external calls via interact, and a call re-entering a mutating
// entry point during that window finds entered set and is rejected. The
// inbound value hook deliberately bypasses the entered check (it is the
// one legal reentry, gated by sender identity instead).
type guard struct {
	mu      sync.Mutex
	entered bool
}

func (g *guard) acquire() error {
	g.mu.Lock()
	if g.entered {
		g.mu.Unlock()
		return ErrReentrantCall
	}
	g.entered = true
	return nil
}

func (g *guard) release() {
	g.entered = false
	g.mu.Unlock()
}

// interact runs an outbound external call with the mutex released so the
// callee may legally re-enter the inbound hooks. The reentrancy flag stays
// set for the duration.
func (c *Campaign) interact(fn func() error) error {
	c.guard.mu.Unlock()
	err := fn()
	c.guard.mu.Lock()
	return err
}

// requireOperator rejects calls from anyone but the configured operator.
func (c *Campaign) requireOperator(call Call) error {
	if call.Caller != c.cfg.Operator {
		return ErrNotOperator
	}
	return nil
}

// requireNoValue rejects value attached to a non-payable operation.
func (c *Campaign) requireNoValue(call Call) error {
	if call.Value != 0 {
		return ErrUnexpectedValue
	}
	return nil
}
