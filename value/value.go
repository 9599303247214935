package value

import (
	"strconv"

	"github.com/dyntext/dyntext/errors"
)

// Kind discriminates the payload a Value carries
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
	KindArray
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	}
	return "unknown"
}

// Value is a tagged, single-owner dynamic datum. The String and Array
// kinds exclusively own their payload; passing such a Value hands
// ownership to the receiver, and the receiver releases it exactly once.
// The zero Value is Null.
type Value struct {
	arr  *Array
	str  string
	i    int64
	f    float64
	kind Kind
	err  bool
}

// Int creates an integer Value.
func Int(i int64) Value {
	notify(OpCreate, KindInt)
	return Value{kind: KindInt, i: i}
}

// Float creates a floating-point Value.
func Float(f float64) Value {
	notify(OpCreate, KindFloat)
	return Value{kind: KindFloat, f: f}
}

// Str creates a string Value. The Value owns s.
func Str(s string) Value {
	notify(OpCreate, KindString)
	return Value{kind: KindString, str: s}
}

// Arr creates an array Value, taking ownership of a. Releasing the
// Value frees a and everything it holds. A nil array yields an
// error-flagged Null.
func Arr(a *Array) Value {
	if a == nil {
		e := errors.NilHandle(errors.PhaseValue, "array")
		errors.SetLast(e)
		return Value{err: true}
	}
	notify(OpCreate, KindArray)
	return Value{kind: KindArray, arr: a}
}

// Null creates a Null Value. Null carries no payload and needs no release.
func Null() Value {
	return Value{}
}

// FromLiteral classifies a numeric literal at construction time:
// an integral literal (including 0x/0o/0b forms) yields an Int, any
// floating representation (fractional part or exponent) yields a
// Float. ok is false when s is not numeric; the caller decides what a
// non-numeric literal becomes.
func FromLiteral(s string) (v Value, ok bool) {
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return Int(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f), true
	}
	return Value{}, false
}

// Kind returns the value's current kind.
func (v Value) Kind() Kind { return v.kind }

// Err reports whether the value carries an error flag.
func (v Value) Err() bool { return v.err }

// WithError returns a copy of v with the error flag set.
func (v Value) WithError() Value {
	v.err = true
	return v
}

// AsInt returns the integer payload. Valid only for KindInt.
func (v Value) AsInt() int64 { return v.i }

// AsFloat returns the float payload. Valid only for KindFloat.
func (v Value) AsFloat() float64 { return v.f }

// AsStr returns the string payload. Valid only for KindString.
func (v Value) AsStr() string { return v.str }

// AsArray returns the owned array. Valid only for KindArray; the
// Value retains ownership.
func (v Value) AsArray() *Array { return v.arr }

// Release frees the value's owned payload and sets the kind to Null.
// Array payloads are freed recursively. A second Release is a no-op:
// the kind is already Null, so the payload cannot be freed twice.
func (v *Value) Release() {
	if v == nil || v.kind == KindNull {
		return
	}
	released := v.kind
	switch v.kind {
	case KindString:
		v.str = ""
	case KindArray:
		v.arr.Free()
		v.arr = nil
	}
	v.kind = KindNull
	notify(OpRelease, released)
}
