package ringbuffer

import "errors"

var (
	// ErrEmptyBuffer is returned when an element is requested from an empty buffer.
	ErrEmptyBuffer = errors.New("ringbuffer: buffer is empty")
	// ErrInvalidSize is returned by New when the requested size is not positive.
	ErrInvalidSize = errors.New("ringbuffer: size must be positive")
)

// Cleanable is an interface for types that require explicit cleanup
// when they are overwritten in the RingBuffer.
type Cleanable interface {
	// Cleanup performs any necessary resource release.
	Cleanup()
}

// RingBuffer is a generic fixed-size circular buffer with FIFO semantics.
// When the buffer is full, Add overwrites the oldest item.
// Not thread safe.
type RingBuffer[T any] struct {
	data []T
	// head is the index where the next item will be added.
	head int
	// tail is the index of the next item to be retrieved.
	tail int
	// count is the number of live items, 0 <= count <= len(data).
	count int
}

// New creates a new RingBuffer holding at most size items. The storage is
// allocated once and never grows.
func New[T any](size int) (*RingBuffer[T], error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return &RingBuffer[T]{
		data: make([]T, size),
	}, nil
}

// MustNew is like New but panics if size is not positive.
func MustNew[T any](size int) *RingBuffer[T] {
	rb, err := New[T](size)
	if err != nil {
		panic(err)
	}
	return rb
}

// Add stores an item in the buffer. If the buffer is full the oldest item is
// overwritten and lost; Cleanup is called on it first if it implements Cleanable.
func (rb *RingBuffer[T]) Add(item T) {
	if rb.count == len(rb.data) {
		// head == tail here: the write slot holds the oldest item.
		if cleanable, ok := any(rb.data[rb.head]).(Cleanable); ok {
			cleanable.Cleanup()
		}
		rb.tail = rb.next(rb.tail)
	} else {
		rb.count++
	}
	rb.data[rb.head] = item
	rb.head = rb.next(rb.head)
}

// Pop removes and returns the oldest item. If the buffer is empty it returns
// the zero value and ErrEmptyBuffer, leaving the buffer unchanged.
func (rb *RingBuffer[T]) Pop() (T, error) {
	item, ok := rb.TryPop()
	if !ok {
		return item, ErrEmptyBuffer
	}
	return item, nil
}

// TryPop removes and returns the oldest item and true.
// If the buffer is empty, it returns the zero value for the type and false.
func (rb *RingBuffer[T]) TryPop() (T, bool) {
	var zero T
	if rb.count == 0 {
		return zero, false
	}
	item := rb.data[rb.tail]
	rb.data[rb.tail] = zero
	rb.tail = rb.next(rb.tail)
	rb.count--
	return item, true
}

// Peek returns the oldest item without removing it.
func (rb *RingBuffer[T]) Peek() (T, error) {
	if rb.count == 0 {
		var zero T
		return zero, ErrEmptyBuffer
	}
	return rb.data[rb.tail], nil
}

// Items returns a copy of the items currently in the buffer, ordered from
// oldest to newest. The buffer is not modified.
func (rb *RingBuffer[T]) Items() []T {
	items := make([]T, rb.count)
	if rb.count == 0 {
		return items
	}
	if rb.tail < rb.head {
		copy(items, rb.data[rb.tail:rb.head])
	} else { // Wrapped, or full with head == tail
		copied := copy(items, rb.data[rb.tail:])
		copy(items[copied:], rb.data[:rb.head])
	}
	return items
}

// Len returns the number of items in the buffer.
func (rb *RingBuffer[T]) Len() int {
	return rb.count
}

// Cap returns the fixed capacity of the buffer.
func (rb *RingBuffer[T]) Cap() int {
	return len(rb.data)
}

// IsEmpty reports whether the buffer holds no items.
func (rb *RingBuffer[T]) IsEmpty() bool {
	return rb.count == 0
}

// IsFull reports whether the next Add will overwrite the oldest item.
func (rb *RingBuffer[T]) IsFull() bool {
	return rb.count == len(rb.data)
}

func (rb *RingBuffer[T]) next(i int) int {
	return (i + 1) % len(rb.data)
}
