package boxarena

import "sync"

// SafePool is a mutex-protected wrapper around Pool for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
type SafePool[T any] struct {
	mu sync.Mutex
	p  *Pool[T]
}

// NewSafePool creates a new thread-safe pool. Options are those of New.
func NewSafePool[T any](opts ...Option) *SafePool[T] {
	return &SafePool[T]{p: New[T](opts...)}
}

// NewSafePoolWithCapacity creates a thread-safe pool holding n free boxes.
func NewSafePoolWithCapacity[T any](n int, opts ...Option) *SafePool[T] {
	return &SafePool[T]{p: NewWithCapacity[T](n, opts...)}
}

// Acquire thread-safely stores v in a recycled or fresh box.
func (s *SafePool[T]) Acquire(v T) *Box[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Acquire(v)
}

// TryAcquire thread-safely stores v in a recycled box, if any.
func (s *SafePool[T]) TryAcquire(v T) (*Box[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.TryAcquire(v)
}

// Release thread-safely tears down the value of b and keeps its storage.
// The teardown hook runs while the pool lock is held.
func (s *SafePool[T]) Release(b *Box[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Release(b)
}

// Unbox thread-safely moves the value out of b and keeps its storage.
func (s *SafePool[T]) Unbox(b *Box[T]) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Unbox(b)
}

// Resize thread-safely sets the number of free boxes to n.
func (s *SafePool[T]) Resize(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Resize(n)
}

// Trim thread-safely drops free boxes until at most n remain.
func (s *SafePool[T]) Trim(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Trim(n)
}

// Close thread-safely drops all free boxes and makes the pool unusable.
func (s *SafePool[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Close()
}
