package boxarena

// slab hands out fresh boxes from chunks. Each chunk is one allocator call;
// boxes are carved from it sequentially until it is exhausted.
type slab[T any] struct {
	chunk     []Box[T] // current backing chunk
	offset    int      // next unused box within chunk
	chunkSize int
	chunks    uint64 // allocator calls made so far
}

func newSlab[T any](chunkSize int) slab[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return slab[T]{chunkSize: chunkSize}
}

// alloc returns one fresh, not-live box.
func (s *slab[T]) alloc() *Box[T] {
	// Fast path: carve from the current chunk
	if s.offset < len(s.chunk) {
		b := &s.chunk[s.offset]
		s.offset++
		return b
	}

	if s.chunkSize == 1 {
		s.chunks++
		return new(Box[T])
	}

	s.grow(s.chunkSize)
	b := &s.chunk[0]
	s.offset = 1
	return b
}

// allocN returns n fresh boxes backed by a single new chunk. The current
// chunk is left untouched so its spare boxes still serve alloc.
func (s *slab[T]) allocN(n int) []Box[T] {
	if n <= 0 {
		return nil
	}
	s.chunks++
	return make([]Box[T], n)
}

// spare reports how many boxes the current chunk can still hand out.
func (s *slab[T]) spare() int {
	return len(s.chunk) - s.offset
}

// grow replaces the current chunk with a new one of n boxes.
func (s *slab[T]) grow(n int) {
	s.chunks++
	s.chunk = make([]Box[T], n)
	s.offset = 0
}

// reset drops the current chunk. Boxes already handed out stay valid; the
// collector reclaims the chunk once none of them is reachable.
func (s *slab[T]) reset() {
	s.chunk = nil
	s.offset = 0
}
