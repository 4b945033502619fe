package boxarena

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// shard is one lock-protected pool, padded so neighbouring shard locks do
// not share a cache line.
type shard[T any] struct {
	mu sync.Mutex
	p  *Pool[T]
	_  cpu.CacheLinePad
}

// ShardedPool spreads boxes over several independently locked pools to cut
// lock contention between goroutines. Free boxes are interchangeable, so a
// box may be released into a different shard than the one it came from.
type ShardedPool[T any] struct {
	shards []shard[T]
	next   atomic.Uint32
}

// NewShardedPool creates a pool with n shards. If n <= 0, GOMAXPROCS shards
// are used. Options apply to every shard; a WithMaxFree limit is per shard,
// and Release only discards once no uncontended shard has room.
func NewShardedPool[T any](n int, opts ...Option) *ShardedPool[T] {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	c := newConfig(opts)
	if c.name == "" {
		c.name = defaultName[T]()
	}
	s := &ShardedPool[T]{shards: make([]shard[T], n)}
	for i := range s.shards {
		shardOpts := append(opts[:len(opts):len(opts)], WithName(fmt.Sprintf("%s/%d", c.name, i)))
		s.shards[i].p = New[T](shardOpts...)
	}
	return s
}

// Shards returns the number of shards.
func (s *ShardedPool[T]) Shards() int {
	return len(s.shards)
}

func (s *ShardedPool[T]) pick() int {
	return int(s.next.Add(1) % uint32(len(s.shards)))
}

// Acquire stores v in a free box from any uncontended shard, allocating a
// fresh box on the starting shard only if none has one.
func (s *ShardedPool[T]) Acquire(v T) *Box[T] {
	start := s.pick()
	if b, ok := s.steal(start, v); ok {
		return b
	}
	sh := &s.shards[start]
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.p.Acquire(v)
}

// TryAcquire stores v in a free box from any uncontended shard. It returns
// false without allocating if none is available.
func (s *ShardedPool[T]) TryAcquire(v T) (*Box[T], bool) {
	return s.steal(s.pick(), v)
}

// steal walks the shards from start, skipping those whose lock is held.
func (s *ShardedPool[T]) steal(start int, v T) (*Box[T], bool) {
	n := len(s.shards)
	for i := 0; i < n; i++ {
		if b, ok := s.shards[(start+i)%n].tryAcquire(v); ok {
			return b, true
		}
	}
	return nil, false
}

func (sh *shard[T]) tryAcquire(v T) (*Box[T], bool) {
	if !sh.mu.TryLock() {
		return nil, false
	}
	defer sh.mu.Unlock()
	return sh.p.TryAcquire(v)
}

// Release tears down the value of b and keeps its storage in the first
// uncontended shard with room, so a full shard only discards the box when
// no other shard can take it.
func (s *ShardedPool[T]) Release(b *Box[T]) {
	s.put(func(p *Pool[T]) { p.Release(b) })
}

// Unbox moves the value out of b and keeps its storage like Release.
func (s *ShardedPool[T]) Unbox(b *Box[T]) T {
	var v T
	s.put(func(p *Pool[T]) { v = p.Unbox(b) })
	return v
}

// put runs fn on the first uncontended shard below its MaxFree limit,
// falling back to the starting shard.
func (s *ShardedPool[T]) put(fn func(p *Pool[T])) {
	start := s.pick()
	n := len(s.shards)
	for i := 0; i < n; i++ {
		if s.shards[(start+i)%n].tryPut(fn) {
			return
		}
	}
	sh := &s.shards[start]
	sh.mu.Lock()
	defer sh.mu.Unlock()
	fn(sh.p)
}

func (sh *shard[T]) tryPut(fn func(p *Pool[T])) bool {
	if !sh.mu.TryLock() {
		return false
	}
	defer sh.mu.Unlock()
	if sh.p.full() {
		return false
	}
	fn(sh.p)
	return true
}

// Resize spreads n free boxes evenly over the shards.
func (s *ShardedPool[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	per, extra := n/len(s.shards), n%len(s.shards)
	for i := range s.shards {
		want := per
		if i < extra {
			want++
		}
		sh := &s.shards[i]
		sh.mu.Lock()
		sh.p.Resize(want)
		sh.mu.Unlock()
	}
}

// Trim drops free boxes until at most n remain, spread evenly over the
// shards like Resize.
func (s *ShardedPool[T]) Trim(n int) {
	if n < 0 {
		n = 0
	}
	per, extra := n/len(s.shards), n%len(s.shards)
	for i := range s.shards {
		want := per
		if i < extra {
			want++
		}
		sh := &s.shards[i]
		sh.mu.Lock()
		sh.p.Trim(want)
		sh.mu.Unlock()
	}
}

// Len returns the total number of free boxes over all shards.
func (s *ShardedPool[T]) Len() int {
	total := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		total += sh.p.Len()
		sh.mu.Unlock()
	}
	return total
}

// Metrics returns statistics summed over all shards.
func (s *ShardedPool[T]) Metrics() PoolMetrics {
	var m PoolMetrics
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		sm := sh.p.Metrics()
		sh.mu.Unlock()
		m = m.add(sm)
		m.ChunkSize = sm.ChunkSize
		if sm.MaxFree > 0 {
			m.MaxFree += sm.MaxFree
		}
	}
	return m
}

// Close closes every shard.
func (s *ShardedPool[T]) Close() {
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		sh.p.Close()
		sh.mu.Unlock()
	}
}
