package boxarena

import "github.com/eapache/queue"

// freeList holds empty boxes waiting for reuse.
type freeList[T any] interface {
	push(b *Box[T])
	pop() (*Box[T], bool)
	len() int
	reset()
}

func newFreeList[T any](o Order, capHint int) freeList[T] {
	if o == FIFO {
		return &fifoList[T]{q: queue.New()}
	}
	if capHint < 0 {
		capHint = 0
	}
	return &stackList[T]{items: make([]*Box[T], 0, capHint)}
}

// stackList reuses the most recently released box first.
type stackList[T any] struct {
	items []*Box[T]
}

func (s *stackList[T]) push(b *Box[T]) {
	s.items = append(s.items, b)
}

func (s *stackList[T]) pop() (*Box[T], bool) {
	n := len(s.items)
	if n == 0 {
		return nil, false
	}
	b := s.items[n-1]
	s.items[n-1] = nil
	s.items = s.items[:n-1]
	return b, true
}

func (s *stackList[T]) len() int {
	return len(s.items)
}

func (s *stackList[T]) reset() {
	clear(s.items)
	s.items = nil
}

// fifoList reuses the least recently released box first.
type fifoList[T any] struct {
	q *queue.Queue
}

func (f *fifoList[T]) push(b *Box[T]) {
	f.q.Add(b)
}

func (f *fifoList[T]) pop() (*Box[T], bool) {
	if f.q.Length() == 0 {
		return nil, false
	}
	return f.q.Remove().(*Box[T]), true
}

func (f *fifoList[T]) len() int {
	return f.q.Length()
}

func (f *fifoList[T]) reset() {
	f.q = queue.New()
}
