package ringbuffer

// RingBuffer is a fixed capacity buffer that overwrites its oldest item once full.
// It is not safe for concurrent use.
type RingBuffer[T any] struct {
	buf  []T
	head int
	size int
}

// New creates a RingBuffer with the given capacity.
// A default capacity of 1 is used if the given value is zero.
func New[T any](capacity uint) *RingBuffer[T] {
	return &RingBuffer[T]{
		buf: make([]T, max(1, capacity)),
	}
}

// Size returns the number of elements currently in the buffer.
func (r *RingBuffer[T]) Size() int {
	return r.size
}

// Put appends item, evicting the oldest one if the buffer is full.
// It returns true if an item was evicted.
func (r *RingBuffer[T]) Put(item T) bool {
	tail := (r.head + r.size) % len(r.buf)
	r.buf[tail] = item
	if r.size == len(r.buf) {
		r.head = (r.head + 1) % len(r.buf)
		return true
	}

	r.size++
	return false
}

// NewestFirst returns a copy of the buffered items ordered from newest to oldest.
func (r *RingBuffer[T]) NewestFirst() []T {
	items := make([]T, 0, r.size)
	for i := r.size - 1; i >= 0; i-- {
		items = append(items, r.buf[(r.head+i)%len(r.buf)])
	}

	return items
}
