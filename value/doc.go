// Package value implements the dynamic value model: a tagged union over
// int, float, string, array and null, plus the growable Array of such
// values.
//
// # Ownership
//
// A Value of kind String or Array exclusively owns its payload. Passing
// such a Value transfers ownership: whoever consumes it calls Release
// exactly once. Release sets the kind to Null, which makes a second
// Release a guaranteed no-op rather than a double free:
//
//	v := value.Str("hello")
//	v.Release() // payload freed, v is now Null
//	v.Release() // no-op
//
// Arrays own their elements the same way. Array.Remove hands the element
// back to the caller; Array.Free releases everything still inside.
//
// # Growth
//
// Arrays grow by 1.5x with a floor of 4 slots, for Append and Insert
// alike. Growth past the configurable ceiling (SetMaxCapacity) fails
// with an allocation error and leaves the array unmodified except for
// its sticky error flag; the value being stored stays with the caller.
//
// # Classification
//
// FromLiteral classifies numeric text at construction time: integral
// literals become Int, anything with a fractional part or exponent
// becomes Float.
package value
