// Package clock provides the wall-clock and monotonic time readers used
// for simple elapsed-time measurement.
package clock
