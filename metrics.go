package boxarena

// PoolMetrics contains statistical information about a pool.
type PoolMetrics struct {
	Acquires  uint64 // Boxes handed out by Acquire or TryAcquire
	Reuses    uint64 // Acquires served from a free box
	Allocs    uint64 // Boxes created by the allocator
	Chunks    uint64 // Allocator calls
	Releases  uint64 // Boxes returned by Release or Unbox
	Discards  uint64 // Released boxes not kept because the pool was full
	Free      int    // Free boxes currently held
	Spare     int    // Unused boxes left in the current chunk
	ChunkSize int    // Boxes per allocator call
	MaxFree   int    // Free box limit, 0 if unbounded
}

// HitRate returns the ratio of reused boxes to all acquires (0.0 to 1.0).
// Returns 0.0 if nothing was acquired yet.
func (m PoolMetrics) HitRate() float64 {
	if m.Acquires == 0 {
		return 0
	}
	return float64(m.Reuses) / float64(m.Acquires)
}

// InUse returns the number of boxes acquired and not yet released.
func (m PoolMetrics) InUse() uint64 {
	if m.Releases > m.Acquires {
		// NewBox values released into a pool were never acquired from it.
		return 0
	}
	return m.Acquires - m.Releases
}

func (m PoolMetrics) add(o PoolMetrics) PoolMetrics {
	m.Acquires += o.Acquires
	m.Reuses += o.Reuses
	m.Allocs += o.Allocs
	m.Chunks += o.Chunks
	m.Releases += o.Releases
	m.Discards += o.Discards
	m.Free += o.Free
	m.Spare += o.Spare
	return m
}

// Allocs returns the number of boxes created by the allocator.
func (p *Pool[T]) Allocs() uint64 {
	return p.allocs
}

// Chunks returns the number of allocator calls made by the pool.
func (p *Pool[T]) Chunks() uint64 {
	return p.slab.chunks
}

// ChunkSize returns the number of boxes created per allocator call.
func (p *Pool[T]) ChunkSize() int {
	return p.slab.chunkSize
}

// MaxFree returns the free box limit, or 0 if the pool is unbounded.
func (p *Pool[T]) MaxFree() int {
	return p.maxFree
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool[T]) Metrics() PoolMetrics {
	spare := 0
	if !p.closed {
		spare = p.slab.spare()
	}
	return PoolMetrics{
		Acquires:  p.acquires,
		Reuses:    p.reuses,
		Allocs:    p.allocs,
		Chunks:    p.slab.chunks,
		Releases:  p.releases,
		Discards:  p.discards,
		Free:      p.Len(),
		Spare:     spare,
		ChunkSize: p.ChunkSize(),
		MaxFree:   p.maxFree,
	}
}

// Thread-safe metrics for SafePool

// Len thread-safely returns the number of free boxes.
func (s *SafePool[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Len()
}

// Allocs thread-safely returns the number of boxes created by the allocator.
func (s *SafePool[T]) Allocs() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Allocs()
}

// Metrics thread-safely returns a snapshot of pool statistics.
func (s *SafePool[T]) Metrics() PoolMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Metrics()
}
