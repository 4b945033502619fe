package boxarena

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
)

// Pool keeps empty boxes of T and fills them on Acquire instead of
// allocating. Not goroutine-safe; use SafePool or ShardedPool for
// concurrent access.
type Pool[T any] struct {
	name    string
	free    freeList[T]
	slab    slab[T]
	drop    func(*T)
	maxFree int
	order   Order
	log     *slog.Logger
	closed  bool

	acquires uint64
	reuses   uint64
	allocs   uint64
	releases uint64
	discards uint64
}

// New creates an empty pool. No box is allocated until the first Acquire.
func New[T any](opts ...Option) *Pool[T] {
	c := newConfig(opts)
	if c.name == "" {
		c.name = defaultName[T]()
	}

	p := &Pool[T]{
		name:    c.name,
		free:    newFreeList[T](c.order, 0),
		slab:    newSlab[T](c.chunkSize),
		maxFree: c.maxFree,
		order:   c.order,
		log:     c.logger,
	}
	p.drop = dropHook[T](c)
	return p
}

// NewWithCapacity creates a pool holding n empty boxes, allocated together.
func NewWithCapacity[T any](n int, opts ...Option) *Pool[T] {
	p := New[T](opts...)
	p.Resize(n)
	return p
}

func defaultName[T any]() string {
	return strings.TrimPrefix(fmt.Sprintf("%T", (*T)(nil)), "*")
}

func dropHook[T any](c config) func(*T) {
	if c.drop != nil {
		fn, ok := c.drop.(func(*T))
		if !ok {
			panic(fmt.Sprintf("boxarena: pool %s: WithDrop hook %T does not match element type %T", c.name, c.drop, (*T)(nil)))
		}
		return fn
	}
	if _, ok := any((*T)(nil)).(Dropper); ok {
		return func(v *T) { any(v).(Dropper).Drop() }
	}
	// Pointer and interface elements carry their own method sets; converting
	// them to any does not allocate.
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Interface:
		return func(v *T) {
			if d, ok := any(*v).(Dropper); ok && !isNil(d) {
				d.Drop()
			}
		}
	}
	return nil
}

// Acquire stores v in a recycled box, or in a freshly allocated one if the
// pool is empty, and hands the box to the caller.
func (p *Pool[T]) Acquire(v T) *Box[T] {
	p.panicIfClosed()

	b, ok := p.free.pop()
	if ok {
		p.reuses++
	} else {
		b = p.slab.alloc()
		p.allocs++
	}
	b.value = v
	b.live = true
	p.acquires++
	return b
}

// TryAcquire is like Acquire but only reuses free boxes. It returns false
// without allocating if the pool is empty.
func (p *Pool[T]) TryAcquire(v T) (*Box[T], bool) {
	p.panicIfClosed()

	b, ok := p.free.pop()
	if !ok {
		return nil, false
	}
	b.value = v
	b.live = true
	p.reuses++
	p.acquires++
	return b, true
}

// Release tears down the value held by b and keeps its storage for reuse.
// The caller must not use b afterwards. Releasing a box twice panics.
// After Close the box is still torn down but its storage is discarded.
func (p *Pool[T]) Release(b *Box[T]) {
	p.panicIfNotLive(b)

	if p.drop != nil {
		p.drop(&b.value)
	}
	p.recycle(b)
}

// Unbox moves the value out of b without tearing it down and keeps the
// storage for reuse.
func (p *Pool[T]) Unbox(b *Box[T]) T {
	p.panicIfNotLive(b)

	v := b.value
	p.recycle(b)
	return v
}

func (p *Pool[T]) recycle(b *Box[T]) {
	var zero T
	b.value = zero
	b.live = false
	p.releases++

	if p.full() {
		p.discards++
		p.debug("discarding released box", slog.Int("max_free", p.maxFree), slog.Bool("closed", p.closed))
		return
	}
	p.free.push(b)
}

// full reports whether a released box would be discarded.
func (p *Pool[T]) full() bool {
	return p.closed || (p.maxFree > 0 && p.free.len() >= p.maxFree)
}

// Len returns the number of free boxes held by the pool.
func (p *Pool[T]) Len() int {
	if p.closed {
		return 0
	}
	return p.free.len()
}

// Resize sets the number of free boxes to exactly n, allocating the missing
// boxes in a single chunk or dropping the surplus. n is capped by the
// pool's MaxFree limit.
func (p *Pool[T]) Resize(n int) {
	p.panicIfClosed()
	if n < 0 {
		n = 0
	}
	if p.maxFree > 0 && n > p.maxFree {
		n = p.maxFree
	}

	from := p.free.len()
	have := from
	for have > n {
		p.free.pop()
		have--
	}
	if have < n {
		chunk := p.slab.allocN(n - have)
		for i := range chunk {
			p.free.push(&chunk[i])
		}
		p.allocs += uint64(len(chunk))
	}
	p.debug("resized pool", slog.Int("from", from), slog.Int("to", n))
}

// Trim drops free boxes until at most n remain.
func (p *Pool[T]) Trim(n int) {
	if p.Len() > n {
		p.Resize(n)
	}
}

// Close drops every free box and makes the pool unusable.
// Any subsequent Acquire, TryAcquire or Resize will panic. Boxes handed out
// before Close may still be passed to Release or Unbox; they are torn down
// as usual and then discarded.
func (p *Pool[T]) Close() {
	if p.closed {
		return
	}
	dropped := p.free.len()
	p.free.reset()
	p.slab.reset()
	p.closed = true
	p.debug("closed pool", slog.Int("dropped", dropped))
}

// Order returns the reuse order of free boxes.
func (p *Pool[T]) Order() Order {
	return p.order
}

// Name returns the name given with WithName, or the element type.
func (p *Pool[T]) Name() string {
	return p.name
}

func (p *Pool[T]) panicIfClosed() {
	if p.closed {
		panic(fmt.Errorf("pool %s: %w", p.name, ErrClosed))
	}
}

func (p *Pool[T]) panicIfNotLive(b *Box[T]) {
	if b == nil {
		panic(fmt.Errorf("pool %s: %w", p.name, ErrNilBox))
	}
	if !b.live {
		panic(fmt.Errorf("pool %s: double Release() detected: %w", p.name, ErrReleased))
	}
}

func (p *Pool[T]) debug(msg string, attrs ...slog.Attr) {
	ctx := context.Background()
	if !p.log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs = append(attrs, slog.String("pool", p.name), slog.Int("free", p.free.len()))
	p.log.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

func isNil(d Dropper) bool {
	rv := reflect.ValueOf(d)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
