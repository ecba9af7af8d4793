// Package safego runs background work without letting a panic take the
// program down.
package safego

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/andyrewlee/enterexit/internal/logging"
)

// PanicHandler receives panic details from recovered goroutines.
type PanicHandler func(name string, recovered any, stack []byte)

var (
	panicHandlerMu sync.RWMutex
	panicHandler   PanicHandler
)

// SetPanicHandler registers a global handler for recovered panics.
func SetPanicHandler(handler PanicHandler) {
	panicHandlerMu.Lock()
	panicHandler = handler
	panicHandlerMu.Unlock()
}

func report(name string, r any) {
	stack := debug.Stack()
	logging.Error("panic in %s: %v\n%s", name, r, stack)
	panicHandlerMu.RLock()
	handler := panicHandler
	panicHandlerMu.RUnlock()
	if handler != nil {
		func() {
			defer func() { _ = recover() }()
			handler(name, r, stack)
		}()
	}
}

func label(name string) string {
	if name == "" {
		return "goroutine"
	}
	return name
}

// Run executes fn and converts panics into logged errors.
// Runtime-fatal errors (e.g. concurrent map writes) are not recoverable.
func Run(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			report(label(name), r)
		}
	}()
	fn()
}

// Go runs fn in a new goroutine with panic recovery.
func Go(name string, fn func()) {
	go Run(name, fn)
}

// GoLoop runs a context-bound loop such as a watcher's Run in a new
// goroutine. Errors other than cancellation are logged.
func GoLoop(ctx context.Context, name string, fn func(context.Context) error) {
	Go(name, func() {
		err := fn(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.WithError(err, fmt.Sprintf("%s stopped", label(name)))
		}
	})
}
