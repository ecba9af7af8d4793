package enterexit

import (
	"sync"

	"github.com/andyrewlee/enterexit/internal/logging"
)

// SourceConfig is handed to a SourceFactory when an Observer is built.
type SourceConfig struct {
	// Root names the reference region. Empty means the source's default
	// viewport-like region.
	Root string
	// Margin grows the reference region on every side before overlap is
	// tested. Negative values shrink it.
	Margin float64
}

// Source delivers notifications for registered targets. Deliveries for a
// given target must not run concurrently with each other.
type Source interface {
	Observe(target string, deliver func(Notification))
	Unobserve(target string)
}

// SourceFactory builds the Source an Observer registers targets with.
type SourceFactory func(SourceConfig) Source

// Options configure a watch session.
type Options struct {
	Root     string
	Touching bool
}

// Option mutates Options.
type Option func(*Options)

// WithRoot sets the reference region. Empty selects the default region.
func WithRoot(root string) Option {
	return func(o *Options) { o.Root = root }
}

// WithTouching makes an edge-adjacent target count as overlapping.
func WithTouching(touching bool) Option {
	return func(o *Options) { o.Touching = touching }
}

// Margin is the region margin implied by the touching option: zero lets a
// zero-gap neighbour overlap, minus one unit requires real overlap.
func (o Options) Margin() float64 {
	if o.Touching {
		return 0
	}
	return -1
}

// SourceConfig derives the source configuration for these options.
func (o Options) SourceConfig() SourceConfig {
	return SourceConfig{Root: o.Root, Margin: o.Margin()}
}

type watch struct {
	tracker *Tracker
	cancel  func()
}

// Observer watches targets on one Source and emits enter/exit events.
type Observer struct {
	mu      sync.Mutex
	opts    Options
	source  Source
	watches map[string]*watch
}

// New creates the observer's Source through factory.
func New(factory SourceFactory, opts ...Option) *Observer {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return &Observer{
		opts:    o,
		source:  factory(o.SourceConfig()),
		watches: make(map[string]*watch),
	}
}

// Options returns the options the observer was built with.
func (ob *Observer) Options() Options { return ob.opts }

// Watch starts tracking target and returns a cancel function. Cancel is
// idempotent and may run on any goroutine; a notification delivered after
// it returns never reaches the listener. Watching a target twice replaces
// the earlier watch.
func (ob *Observer) Watch(target string, listener Listener) (cancel func()) {
	ob.mu.Lock()
	prev := ob.watches[target]
	ob.mu.Unlock()
	if prev != nil {
		prev.cancel()
	}

	tracker := NewTracker(target)
	w := &watch{tracker: tracker}
	var once sync.Once
	w.cancel = func() {
		once.Do(func() {
			ob.mu.Lock()
			if ob.watches[target] == w {
				delete(ob.watches, target)
			}
			ob.mu.Unlock()
			tracker.Cancel()
			ob.source.Unobserve(target)
			logging.Debug("enterexit: unwatched %s", target)
		})
	}

	ob.mu.Lock()
	ob.watches[target] = w
	ob.mu.Unlock()

	logging.Debug("enterexit: watching %s (root=%q touching=%v)", target, ob.opts.Root, ob.opts.Touching)
	ob.source.Observe(target, func(n Notification) {
		ev, ok := tracker.OnNotification(n)
		if !ok {
			return
		}
		if listener != nil {
			listener(ev, n)
		}
	})
	return w.cancel
}

// Watching returns the number of active watches.
func (ob *Observer) Watching() int {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	return len(ob.watches)
}

// Tracker returns the tracker of an active watch, for inspection.
func (ob *Observer) Tracker(target string) (*Tracker, bool) {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	w, ok := ob.watches[target]
	if !ok {
		return nil, false
	}
	return w.tracker, true
}

// Close cancels every active watch.
func (ob *Observer) Close() {
	ob.mu.Lock()
	pending := make([]*watch, 0, len(ob.watches))
	for _, w := range ob.watches {
		pending = append(pending, w)
	}
	ob.mu.Unlock()
	for _, w := range pending {
		w.cancel()
	}
}
