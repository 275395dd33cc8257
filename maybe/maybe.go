/*
Package maybe holds optional values.

Clients use a Maybe wherever a parameter may be absent without a natural zero
value standing in for "absent", e.g. an early-resolution offset of 0 is a valid
offset and must be distinguishable from "no offset".

Values are inspected either with Get or with a matcher:

	var d time.Duration
	switch m := offset.Match(); m {
	case m.Just(&d):
		…
	case m.Nothing():
		…
	}
*/
package maybe

// Maybe is a value of type T which may be absent.
type Maybe[T any] interface {
	Match() Matcher[T]
	Get() (T, bool)
	IsJust() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value of type T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// FromPointer is Nothing for a nil pointer, Just(*p) otherwise.
// Optional fields of decoded scene scripts are pointers.
func FromPointer[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

// Of treats a nil Maybe as Nothing.
func Of[T any](m Maybe[T]) Maybe[T] {
	if m == nil {
		return Nothing[T]()
	}
	return m
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

// AndThen chains a computation which itself may fail to produce a value.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements, see package doc.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
