package boxarena

import (
	"testing"
)

func TestPoolMetrics(t *testing.T) {
	p := New[int](WithChunkSize(2))

	// Test initial state
	m := p.Metrics()
	if m != (PoolMetrics{ChunkSize: 2}) {
		t.Errorf("initial Metrics = %+v", m)
	}
	if m.HitRate() != 0 {
		t.Errorf("initial HitRate = %f, want 0", m.HitRate())
	}

	a := p.Acquire(1)
	b := p.Acquire(2)
	p.Release(a)
	c := p.Acquire(3)
	p.Release(b)

	m = p.Metrics()
	if m.Acquires != 3 {
		t.Errorf("Acquires = %d, want 3", m.Acquires)
	}
	if m.Reuses != 1 {
		t.Errorf("Reuses = %d, want 1", m.Reuses)
	}
	if m.Allocs != 2 {
		t.Errorf("Allocs = %d, want 2", m.Allocs)
	}
	if m.Chunks != 1 {
		t.Errorf("Chunks = %d, want 1", m.Chunks)
	}
	if m.Releases != 2 {
		t.Errorf("Releases = %d, want 2", m.Releases)
	}
	if m.Free != 1 {
		t.Errorf("Free = %d, want 1", m.Free)
	}
	if m.InUse() != 1 {
		t.Errorf("InUse = %d, want 1", m.InUse())
	}

	hitRate := m.HitRate()
	if hitRate <= 0.33 || hitRate >= 0.34 {
		t.Errorf("HitRate = %f, want 1/3", hitRate)
	}

	p.Release(c)
	if p.Metrics().InUse() != 0 {
		t.Errorf("InUse after releasing everything = %d, want 0", p.Metrics().InUse())
	}
}

func TestPoolMetricsAfterClose(t *testing.T) {
	p := New[int](WithChunkSize(4))
	p.Release(p.Acquire(1))

	p.Close()

	m := p.Metrics()
	if m.Free != 0 {
		t.Errorf("Free after Close = %d, want 0", m.Free)
	}
	if m.Spare != 0 {
		t.Errorf("Spare after Close = %d, want 0", m.Spare)
	}
	// Counters survive Close.
	if m.Acquires != 1 || m.Releases != 1 {
		t.Errorf("counters after Close = %+v", m)
	}
}

func TestPoolMetricsInUseWithForeignBoxes(t *testing.T) {
	p := New[int]()
	p.Release(NewBox(1))
	if got := p.Metrics().InUse(); got != 0 {
		t.Errorf("InUse = %d, want 0", got)
	}
}

func TestPoolMetricsAdd(t *testing.T) {
	a := PoolMetrics{Acquires: 1, Reuses: 1, Allocs: 2, Chunks: 1, Releases: 1, Discards: 1, Free: 3, Spare: 1}
	b := PoolMetrics{Acquires: 2, Reuses: 0, Allocs: 1, Chunks: 1, Releases: 2, Discards: 0, Free: 1, Spare: 0}

	sum := a.add(b)
	want := PoolMetrics{Acquires: 3, Reuses: 1, Allocs: 3, Chunks: 2, Releases: 3, Discards: 1, Free: 4, Spare: 1}
	if sum != want {
		t.Errorf("add = %+v, want %+v", sum, want)
	}
}

func TestSafePoolMetrics(t *testing.T) {
	s := NewSafePool[int]()
	s.Release(s.Acquire(1))

	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
	if s.Allocs() != 1 {
		t.Errorf("Allocs = %d, want 1", s.Allocs())
	}
	m := s.Metrics()
	if m.Acquires != 1 || m.Releases != 1 || m.Free != 1 {
		t.Errorf("Metrics = %+v", m)
	}
}
