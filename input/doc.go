// Package input reads console lines and converts them into dynamic
// values. Classification happens at read time: numeric input becomes an
// Int or Float, everything else a Str. Ownership of the returned value
// passes to the caller.
package input
