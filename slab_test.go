package boxarena

import "testing"

func TestNewSlab(t *testing.T) {
	tests := []struct {
		name      string
		chunkSize int
		expected  int
	}{
		{"default chunk size", 0, DefaultChunkSize},
		{"negative chunk size", -1, DefaultChunkSize},
		{"custom chunk size", 16, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSlab[int](tt.chunkSize)
			if s.chunkSize != tt.expected {
				t.Errorf("newSlab(%d) chunk size = %d, want %d", tt.chunkSize, s.chunkSize, tt.expected)
			}
			if s.chunks != 0 {
				t.Errorf("newSlab(%d) chunks = %d, want 0", tt.chunkSize, s.chunks)
			}
		})
	}
}

func TestSlabAllocSingle(t *testing.T) {
	s := newSlab[int](1)
	a := s.alloc()
	b := s.alloc()
	if a == b {
		t.Error("alloc returned the same box twice")
	}
	if s.chunks != 2 {
		t.Errorf("chunks = %d, want 2", s.chunks)
	}
	if a.live || b.live {
		t.Error("fresh boxes must not be live")
	}
}

func TestSlabAllocChunked(t *testing.T) {
	s := newSlab[int](3)
	seen := make(map[*Box[int]]bool)
	for i := 0; i < 7; i++ {
		b := s.alloc()
		if seen[b] {
			t.Fatalf("alloc %d returned a box handed out before", i)
		}
		seen[b] = true
	}
	if s.chunks != 3 {
		t.Errorf("chunks = %d, want 3", s.chunks)
	}
	if s.spare() != 2 {
		t.Errorf("spare = %d, want 2", s.spare())
	}
}

func TestSlabAllocN(t *testing.T) {
	s := newSlab[int](4)
	s.alloc()

	if got := s.allocN(0); got != nil {
		t.Errorf("allocN(0) = %v, want nil", got)
	}
	chunk := s.allocN(5)
	if len(chunk) != 5 {
		t.Errorf("allocN(5) length = %d, want 5", len(chunk))
	}
	if s.chunks != 2 {
		t.Errorf("chunks = %d, want 2", s.chunks)
	}
	// The carving chunk is untouched by allocN.
	if s.spare() != 3 {
		t.Errorf("spare = %d, want 3", s.spare())
	}
}

func TestSlabReset(t *testing.T) {
	s := newSlab[int](4)
	b := s.alloc()
	b.value = 9

	s.reset()
	if s.spare() != 0 {
		t.Errorf("spare after reset = %d, want 0", s.spare())
	}
	if b.value != 9 {
		t.Error("reset must not touch boxes already handed out")
	}
}

func BenchmarkSlabAlloc(b *testing.B) {
	b.Run("chunk-1", func(b *testing.B) {
		s := newSlab[[64]byte](1)
		for i := 0; i < b.N; i++ {
			s.alloc()
		}
	})

	b.Run("chunk-64", func(b *testing.B) {
		s := newSlab[[64]byte](64)
		for i := 0; i < b.N; i++ {
			s.alloc()
		}
	})
}
