package trace

import (
	"sync"

	"go.uber.org/zap"

	"github.com/dyntext/dyntext/value"
)

// Stats is a snapshot of lifecycle counters.
type Stats struct {
	Creates      map[value.Kind]int64
	Releases     map[value.Kind]int64
	ArrayCreates int64
	ArrayFrees   int64
}

// Recorder counts value and array lifecycle events. Install it while
// developing to find values that are created but never released.
type Recorder struct {
	mu           sync.Mutex
	creates      map[value.Kind]int64
	releases     map[value.Kind]int64
	arrayCreates int64
	arrayFrees   int64
}

// NewRecorder creates an empty recorder. Call Install to start counting.
func NewRecorder() *Recorder {
	return &Recorder{
		creates:  make(map[value.Kind]int64),
		releases: make(map[value.Kind]int64),
	}
}

// Install registers the recorder as the value package's observer.
func (r *Recorder) Install() {
	value.SetObserver(r)
}

// Uninstall removes the recorder.
func (r *Recorder) Uninstall() {
	value.SetObserver(nil)
}

// OnValueEvent implements value.Observer.
func (r *Recorder) OnValueEvent(ev value.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch ev.Op {
	case value.OpCreate:
		r.creates[ev.Kind]++
	case value.OpRelease:
		r.releases[ev.Kind]++
	case value.OpArrayCreate:
		r.arrayCreates++
	case value.OpArrayFree:
		r.arrayFrees++
	}
}

// Stats returns a copy of the counters.
func (r *Recorder) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := Stats{
		Creates:      make(map[value.Kind]int64, len(r.creates)),
		Releases:     make(map[value.Kind]int64, len(r.releases)),
		ArrayCreates: r.arrayCreates,
		ArrayFrees:   r.arrayFrees,
	}
	for k, n := range r.creates {
		s.Creates[k] = n
	}
	for k, n := range r.releases {
		s.Releases[k] = n
	}
	return s
}

// Leaks returns the per-kind count of values created but not yet
// released. Kinds with no outstanding values are omitted.
func (r *Recorder) Leaks() map[value.Kind]int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	leaks := make(map[value.Kind]int64)
	for k, n := range r.creates {
		if out := n - r.releases[k]; out != 0 {
			leaks[k] = out
		}
	}
	return leaks
}

// OutstandingArrays returns the number of arrays created but not freed.
func (r *Recorder) OutstandingArrays() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.arrayCreates - r.arrayFrees
}

// Report logs a summary of the counters.
func (r *Recorder) Report() {
	s := r.Stats()
	fields := []zap.Field{
		zap.Int64("arrays_created", s.ArrayCreates),
		zap.Int64("arrays_freed", s.ArrayFrees),
	}
	for k, n := range s.Creates {
		fields = append(fields,
			zap.Int64(k.String()+"_created", n),
			zap.Int64(k.String()+"_released", s.Releases[k]))
	}
	Logger().Info("value lifecycle summary", fields...)

	if leaks := r.Leaks(); len(leaks) > 0 {
		for k, n := range leaks {
			Logger().Warn("unreleased values", zap.String("kind", k.String()), zap.Int64("count", n))
		}
	}
}
