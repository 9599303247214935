package errors

import "sync"

// MaxMessageLen bounds the message stored in the last-error record.
// Longer messages are truncated on set.
const MaxMessageLen = 256

// Record is a snapshot of the last-error channel. Code 0 means no
// failure has been recorded since the last reset.
type Record struct {
	Message string
	Code    int
}

var (
	lastMu sync.Mutex
	last   Record
)

// SetLast overwrites the process-wide last-error record. The record is
// shared by every component, so writes are serialized; a torn read
// between a failing operation and a concurrent Last call would report
// a mismatched code/message pair.
func SetLast(err error) {
	if err == nil {
		return
	}
	msg := err.Error()
	if len(msg) > MaxMessageLen {
		msg = msg[:MaxMessageLen]
	}

	lastMu.Lock()
	last = Record{Code: CodeOf(err), Message: msg}
	lastMu.Unlock()
}

// Last returns a copy of the last-error record. The copy stays valid
// after subsequent failures overwrite the channel.
func Last() Record {
	lastMu.Lock()
	defer lastMu.Unlock()
	return last
}

// ClearLast resets the record to the no-error state.
func ClearLast() {
	lastMu.Lock()
	last = Record{}
	lastMu.Unlock()
}
