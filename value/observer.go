package value

import "sync"

// Op identifies a lifecycle event.
type Op uint8

const (
	OpCreate Op = iota
	OpRelease
	OpArrayCreate
	OpArrayFree
)

// Event describes one value or array lifecycle transition.
type Event struct {
	Op   Op
	Kind Kind
}

// Observer receives lifecycle events. The trace package provides a
// counting implementation; most programs register nothing.
type Observer interface {
	OnValueEvent(Event)
}

var (
	obsMu    sync.RWMutex
	observer Observer
)

// SetObserver installs o as the lifecycle observer, replacing any
// previous one. Pass nil to remove it.
func SetObserver(o Observer) {
	obsMu.Lock()
	observer = o
	obsMu.Unlock()
}

func notify(op Op, k Kind) {
	obsMu.RLock()
	o := observer
	obsMu.RUnlock()
	if o != nil {
		o.OnValueEvent(Event{Op: op, Kind: k})
	}
}
