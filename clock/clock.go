package clock

import "time"

// Seconds returns the current wall-clock time as fractional seconds
// since the Unix epoch.
func Seconds() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

// Stopwatch measures elapsed time on the monotonic clock, so it is
// immune to wall-clock adjustments between readings.
type Stopwatch struct {
	start time.Time
}

// Start begins a new measurement.
func Start() *Stopwatch {
	return &Stopwatch{start: time.Now()}
}

// Elapsed returns the seconds since Start (or the last Restart).
func (s *Stopwatch) Elapsed() float64 {
	return time.Since(s.start).Seconds()
}

// Restart resets the measurement to now.
func (s *Stopwatch) Restart() {
	s.start = time.Now()
}
