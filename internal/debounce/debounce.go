// Package debounce projects a rapidly changing value onto a trailing value
// that only moves once the input has been stable for a fixed delay.
package debounce

import (
	"sync"
	"time"

	"github.com/bnema/cognisupport/internal/ports"
)

// Value is a debounced projection of a source value. Each Set supersedes
// the pending timer, so at most one timer is armed at any instant. When the
// timer fires and the stable source differs from the current output, the
// output advances and onSettle is called with it.
//
// onSettle runs on the clock's goroutine. It must not call Stop.
type Value[T comparable] struct {
	clock    ports.Clock
	delay    time.Duration
	onSettle func(T)

	// settling is held for the whole of a settle, including onSettle, so
	// Stop can wait out a callback that is already running.
	settling sync.Mutex

	mu         sync.Mutex
	source     T
	output     T
	generation uint64
	timer      ports.Timer
	stopped    bool
}

func New[T comparable](clock ports.Clock, delay time.Duration, initial T, onSettle func(T)) *Value[T] {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Value[T]{
		clock:    clock,
		delay:    delay,
		onSettle: onSettle,
		source:   initial,
		output:   initial,
	}
}

// Set records a new source value and restarts the settle window. Setting
// the value the source already holds is a no-op.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.stopped || value == v.source {
		return
	}

	v.source = value
	v.generation++
	generation := v.generation

	if v.timer != nil {
		v.timer.Stop()
	}
	v.timer = v.clock.AfterFunc(v.delay, func() {
		v.settle(generation)
	})
}

func (v *Value[T]) Output() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.output
}

func (v *Value[T]) Pending() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.timer != nil
}

// Reset moves source and output to value at once, discarding any pending
// settle. onSettle is not called.
func (v *Value[T]) Reset(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.generation++
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	v.source = value
	v.output = value
}

// Stop cancels the pending timer. Once Stop returns, onSettle is never
// called again.
func (v *Value[T]) Stop() {
	v.mu.Lock()
	v.stopped = true
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	v.mu.Unlock()

	v.settling.Lock()
	//nolint:staticcheck // empty critical section waits for an in-flight settle
	v.settling.Unlock()
}

func (v *Value[T]) settle(generation uint64) {
	v.settling.Lock()
	defer v.settling.Unlock()

	v.mu.Lock()
	if v.stopped || generation != v.generation {
		v.mu.Unlock()
		return
	}

	v.timer = nil
	if v.source == v.output {
		v.mu.Unlock()
		return
	}

	v.output = v.source
	value := v.output
	v.mu.Unlock()

	if v.onSettle != nil {
		v.onSettle(value)
	}
}
