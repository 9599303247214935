// Package template implements the placeholder substitution engine shared
// by the console printer and the string formatter.
//
// Templates mix literal text with placeholder tokens. A bare {} consumes
// the next value in auto-increment order; {N} addresses position N of the
// supplied sequence directly, independent of the cursor:
//
//	template.RenderString("{1} {0}", []value.Value{value.Int(10), value.Int(20)})
//	// "20 10"
//
// The engine takes an explicit ordered sequence rather than variadic
// arguments, which makes indexed placeholders a plain bounds-checked
// lookup. Values are consumed: every element of the sequence is released
// before RenderString returns, including values a failed render never
// reached. Output grows incrementally, so no per-placeholder size bound
// is assumed.
package template
