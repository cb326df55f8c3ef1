package core

import (
	"sync"

	"go.uber.org/zap"
)

// handlerEntry is one registered callback for a message type.
type handlerEntry struct {
	fn              func(Frame)
	removeAfterCall bool
}

// awaiter is a single pending correlated request, tested against every
// decoded Frame by the dispatcher before it falls through to the handler
// table. Keeping this table ordered (oldest request first) and consulting
// it from the single goroutine that reads the decode channel gives replies
// a well-defined order without re-injecting unmatched frames anywhere.
type awaiter struct {
	types     map[uint32]bool
	hasUntil  bool
	untilType uint32
	out       chan Frame
	done      chan error
}

func (a *awaiter) matches(f Frame) bool {
	return a.types[f.TypeID] || (a.hasUntil && f.TypeID == a.untilType)
}

func (a *awaiter) isTerminal(f Frame) bool {
	return !a.hasUntil || f.TypeID == a.untilType
}

// dispatcher owns the handler table and pending-awaiter table for one
// connection and is the sole consumer of decoded frames, serializing all
// delivery decisions through a single goroutine.
type dispatcher struct {
	logger *zap.SugaredLogger

	incoming chan Frame
	closed   chan struct{}

	mu       sync.Mutex
	handlers map[uint32][]handlerEntry
	pending  []*awaiter
}

func newDispatcher(logger *zap.SugaredLogger) *dispatcher {
	return &dispatcher{
		logger:   logger,
		incoming: make(chan Frame, 64),
		closed:   make(chan struct{}),
		handlers: make(map[uint32][]handlerEntry),
	}
}

// run is the single consumer loop. It exits when incoming is closed by the
// connection's read loop or when stop() is called.
func (d *dispatcher) run() {
	for {
		select {
		case f, ok := <-d.incoming:
			if !ok {
				d.failAllPending(ErrConnectionClosed)
				return
			}
			d.deliver(f)
		case <-d.closed:
			d.failAllPending(ErrConnectionClosed)
			return
		}
	}
}

func (d *dispatcher) stop() {
	select {
	case <-d.closed:
	default:
		close(d.closed)
	}
}

func (d *dispatcher) deliver(f Frame) {
	d.mu.Lock()
	var matched *awaiter
	idx := -1
	for i, a := range d.pending {
		if a.matches(f) {
			matched = a
			idx = i
			break
		}
	}
	var entries []handlerEntry
	if hs, ok := d.handlers[f.TypeID]; ok {
		entries = append(entries, hs...)
	}
	d.mu.Unlock()

	if matched != nil {
		select {
		case matched.out <- f:
		default:
			d.logger.Warnw("dispatcher: awaiter channel full, dropping frame", "type", f.TypeID)
		}
		if matched.isTerminal(f) {
			// Only close out here; do not also signal done. A reader
			// draining buffered frames from out via select could
			// otherwise see done become ready and return before it has
			// read every frame still sitting in out's buffer. done is
			// reserved for failAllPending's abnormal-teardown signal.
			close(matched.out)
			d.mu.Lock()
			d.pending = append(d.pending[:idx], d.pending[idx+1:]...)
			d.mu.Unlock()
		}
	}

	if len(entries) == 0 {
		return
	}
	for _, e := range entries {
		e.fn(f)
	}
	if hasRemovable(entries) {
		d.mu.Lock()
		d.handlers[f.TypeID] = pruneRemovable(d.handlers[f.TypeID])
		d.mu.Unlock()
	}
}

func hasRemovable(entries []handlerEntry) bool {
	for _, e := range entries {
		if e.removeAfterCall {
			return true
		}
	}
	return false
}

func pruneRemovable(entries []handlerEntry) []handlerEntry {
	kept := entries[:0:0]
	for _, e := range entries {
		if !e.removeAfterCall {
			kept = append(kept, e)
		}
	}
	return kept
}

func (d *dispatcher) addHandler(typeID uint32, fn func(Frame), removeAfterCall bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[typeID] = append(d.handlers[typeID], handlerEntry{fn: fn, removeAfterCall: removeAfterCall})
}

// register adds a pending awaiter and returns it. hasUntil false means
// "resolve and remove on the first frame whose type is in types"; true
// means keep collecting matching frames into out until a frame of
// untilType arrives.
func (d *dispatcher) register(types map[uint32]bool, hasUntil bool, untilType uint32) *awaiter {
	a := &awaiter{
		types:     types,
		hasUntil:  hasUntil,
		untilType: untilType,
		out:       make(chan Frame, 16),
		done:      make(chan error, 1),
	}
	d.mu.Lock()
	d.pending = append(d.pending, a)
	d.mu.Unlock()
	return a
}

func (d *dispatcher) unregister(a *awaiter) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, p := range d.pending {
		if p == a {
			d.pending = append(d.pending[:i], d.pending[i+1:]...)
			return
		}
	}
}

func (d *dispatcher) failAllPending(err error) {
	d.mu.Lock()
	pending := d.pending
	d.pending = nil
	d.mu.Unlock()

	for _, a := range pending {
		select {
		case a.done <- err:
		default:
		}
		close(a.out)
	}
}
