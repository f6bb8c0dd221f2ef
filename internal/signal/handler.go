// Package signal turns SIGINT and SIGTERM into context cancellation so that
// rcli commands stop before their next read or write.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages (to avoid circular dependencies)
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
)

// InterruptedExitCode is the exit status used after an interrupt (128 + SIGINT).
const InterruptedExitCode = 130

// Handler cancels its context when SIGINT or SIGTERM is received.
type Handler struct {
	ctx         context.Context //nolint:containedctx // intentional: handler manages context lifecycle
	cancel      context.CancelFunc
	sigChan     chan os.Signal
	done        chan struct{}
	interrupted atomic.Bool
	stopOnce    sync.Once
}

// NewHandler creates a signal handler derived from parent.
//
// Usage:
//
//	h := signal.NewHandler(context.Background())
//	err := run(h.Context())
//	h.Stop()
//	if h.Interrupted() { ... }
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancel(parent)
	h := &Handler{
		ctx:    ctx,
		cancel: cancel,
		// Buffer of 1 ensures signal.Notify doesn't drop the signal.
		sigChan: make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}

	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go h.wait()

	return h
}

// Context returns the context canceled on interrupt or Stop.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Interrupted reports whether a signal was received.
func (h *Handler) Interrupted() bool {
	return h.interrupted.Load()
}

// Stop stops listening for signals and cancels the context. It is safe to
// call more than once.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
		h.cancel()
	})
}

// wait handles the first signal. Later signals get the default behavior
// once Stop has run.
func (h *Handler) wait() {
	select {
	case <-h.sigChan:
		h.interrupted.Store(true)
		h.cancel()
	case <-h.done:
	case <-h.ctx.Done():
	}
}
