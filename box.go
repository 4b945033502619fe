package boxarena

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is the panic cause for any use of a pool after Close.
	ErrClosed = errors.New("boxarena: use after Close()")
	// ErrReleased is the panic cause for using or releasing a box that does
	// not hold a live value.
	ErrReleased = errors.New("boxarena: box is not live")
	// ErrNilBox is the panic cause for passing a nil box to a pool.
	ErrNilBox = errors.New("boxarena: nil box")
)

// Dropper is implemented by values that need teardown when their box is
// released. Drop is called on the value in place, exactly once per release.
type Dropper interface {
	Drop()
}

// Box is an exclusively owned slot holding one value of type T.
//
// A box is either live (handed to a caller, holding a value) or free (owned
// by a pool, holding the zero value). Releasing a box flips it to free, so a
// stale handle panics on use instead of observing a recycled value.
type Box[T any] struct {
	value T
	live  bool
}

// NewBox allocates a live box without going through a pool. It is the
// unpooled equivalent of Pool.Acquire and may later be released into any
// Pool[T].
func NewBox[T any](v T) *Box[T] {
	return &Box[T]{value: v, live: true}
}

// Value returns the address of the stored value. The address is stable until
// the box is released.
func (b *Box[T]) Value() *T {
	b.panicIfReleased()
	return &b.value
}

// Get returns a copy of the stored value.
func (b *Box[T]) Get() T {
	b.panicIfReleased()
	return b.value
}

// Set replaces the stored value.
func (b *Box[T]) Set(v T) {
	b.panicIfReleased()
	b.value = v
}

// Live reports whether the box currently holds a value.
func (b *Box[T]) Live() bool {
	return b != nil && b.live
}

func (b *Box[T]) panicIfReleased() {
	if b == nil {
		panic(ErrNilBox)
	}
	if !b.live {
		panic(fmt.Errorf("%w: use after Release()", ErrReleased))
	}
}
