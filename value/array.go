package value

import (
	"github.com/dyntext/dyntext/errors"
)

// growthFloor is the smallest capacity any growth lands on.
const growthFloor = 4

// DefaultMaxCapacity is the default growth ceiling for arrays.
const DefaultMaxCapacity = 1 << 24

// maxCapacity is the growth ceiling standing in for allocator
// exhaustion: growth past it fails with an allocation error, which
// keeps the out-of-memory paths real on a garbage-collected runtime.
var maxCapacity = DefaultMaxCapacity

// SetMaxCapacity changes the array growth ceiling and returns the
// previous one. Not synchronized; callers coordinate like they do for
// the arrays themselves.
func SetMaxCapacity(n int) int {
	prev := maxCapacity
	maxCapacity = n
	return prev
}

// Array is an ordered, resizable sequence of Values. The array
// exclusively owns every element's payload; Free releases them all.
// A failed mutation sets a sticky error flag that turns later
// mutations into no-ops until the caller inspects the failure.
type Array struct {
	data  []Value
	err   bool
	freed bool
}

// NewArray creates an array with room for initialCap elements.
// Capacity 0 is legal and allocates nothing. On failure the returned
// array is usable only for inspection: its error flag is set and it
// has no storage.
func NewArray(initialCap int) (*Array, error) {
	if initialCap < 0 {
		e := errors.InvalidArgument(errors.PhaseArray, "negative initial capacity")
		errors.SetLast(e)
		return &Array{err: true, freed: true}, e
	}
	if initialCap > maxCapacity {
		e := errors.AllocationFailed(errors.PhaseArray, initialCap)
		errors.SetLast(e)
		return &Array{err: true, freed: true}, e
	}
	a := &Array{}
	if initialCap > 0 {
		a.data = make([]Value, 0, initialCap)
	}
	notify(OpArrayCreate, KindArray)
	return a, nil
}

// Len returns the logical element count.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.data)
}

// Cap returns the allocated slot count. Len() <= Cap() always holds.
func (a *Array) Cap() int {
	if a == nil {
		return 0
	}
	return cap(a.data)
}

// Err reports whether a previous mutation failed.
func (a *Array) Err() bool {
	return a != nil && a.err
}

// grow reallocates to at least need slots: 1.5x the current capacity,
// floor 4. Both Append and Insert share this policy.
func (a *Array) grow(need int) error {
	newCap := cap(a.data) + cap(a.data)/2
	if newCap < growthFloor {
		newCap = growthFloor
	}
	if newCap < need {
		newCap = need
	}
	if newCap > maxCapacity {
		return errors.AllocationFailed(errors.PhaseArray, newCap)
	}
	next := make([]Value, len(a.data), newCap)
	copy(next, a.data)
	a.data = next
	a.freed = false // storage is live again if the array was freed and reused
	return nil
}

// Append stores v after the last element, growing if needed. On any
// failure v is NOT consumed: the caller still owns it and remains
// responsible for its release. Growth failure leaves the array
// unmodified except for the error flag.
func (a *Array) Append(v Value) error {
	if a == nil {
		e := errors.NilHandle(errors.PhaseArray, "array")
		errors.SetLast(e)
		return e
	}
	if a.err {
		return errors.InvalidArgument(errors.PhaseArray, "array carries a previous error")
	}
	if len(a.data) == cap(a.data) {
		if err := a.grow(len(a.data) + 1); err != nil {
			a.err = true
			errors.SetLast(err)
			return err
		}
	}
	a.data = append(a.data, v)
	return nil
}

// Insert places v at index, shifting later elements one slot right.
// index may equal Len() (append position). The same growth and
// ownership rules as Append apply: on failure v stays with the caller.
func (a *Array) Insert(index int, v Value) error {
	if a == nil {
		e := errors.NilHandle(errors.PhaseArray, "array")
		errors.SetLast(e)
		return e
	}
	if a.err {
		return errors.InvalidArgument(errors.PhaseArray, "array carries a previous error")
	}
	if index < 0 || index > len(a.data) {
		e := errors.OutOfBounds(errors.PhaseArray, index, len(a.data))
		errors.SetLast(e)
		return e
	}
	if len(a.data) == cap(a.data) {
		if err := a.grow(len(a.data) + 1); err != nil {
			a.err = true
			errors.SetLast(err)
			return err
		}
	}
	a.data = append(a.data, Value{})
	copy(a.data[index+1:], a.data[index:])
	a.data[index] = v
	return nil
}

// Remove takes the element at index out of the array and returns it.
// Ownership transfers to the caller, who becomes responsible for its
// eventual release; the array will not release it again. Later
// elements shift one slot left.
func (a *Array) Remove(index int) (Value, error) {
	if a == nil {
		e := errors.NilHandle(errors.PhaseArray, "array")
		errors.SetLast(e)
		return Value{err: true}, e
	}
	if a.err {
		return Value{err: true}, errors.InvalidArgument(errors.PhaseArray, "array carries a previous error")
	}
	if index < 0 || index >= len(a.data) {
		e := errors.OutOfBounds(errors.PhaseArray, index, len(a.data))
		errors.SetLast(e)
		return Value{err: true}, e
	}
	out := a.data[index]
	copy(a.data[index:], a.data[index+1:])
	a.data[len(a.data)-1] = Value{} // vacate: the slot no longer owns the payload
	a.data = a.data[:len(a.data)-1]
	return out, nil
}

// Get returns a read-only view of the element at index. Ownership
// does not transfer; the caller must not release the returned Value.
func (a *Array) Get(index int) (Value, error) {
	if a == nil {
		e := errors.NilHandle(errors.PhaseArray, "array")
		errors.SetLast(e)
		return Value{err: true}, e
	}
	if index < 0 || index >= len(a.data) {
		e := errors.OutOfBounds(errors.PhaseArray, index, len(a.data))
		errors.SetLast(e)
		return Value{err: true}, e
	}
	return a.data[index], nil
}

// Free releases every element, then the backing storage. Calling Free
// on an already-freed array is a no-op.
func (a *Array) Free() {
	if a == nil || a.freed {
		return
	}
	for i := range a.data {
		a.data[i].Release()
	}
	a.data = nil
	a.freed = true
	notify(OpArrayFree, KindArray)
}
