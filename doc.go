/*
Package ringbuffer provides a generic, fixed-size circular buffer.

The RingBuffer holds at most a fixed number of items of any type. Its storage is
allocated once by New and never grows. When the buffer reaches its capacity, new
items overwrite the oldest ones. Items are retrieved in first-in-first-out order.

Usage:

Create a new ring buffer of a specific type and size:

	rb, err := ringbuffer.New[string](10)
	if err != nil {
		return err // size was not positive
	}

Add items. Add never fails; on a full buffer the oldest item is dropped:

	rb.Add("hello")
	rb.Add("world")

Retrieve items, oldest first. Pop returns ErrEmptyBuffer when there is
nothing to retrieve, and the buffer is left unchanged:

	item, err := rb.Pop() // "hello"
	if errors.Is(err, ringbuffer.ErrEmptyBuffer) {
		// Nothing buffered yet.
	}

Non-Destructive and Comma-Ok Operations:

TryPop is the comma-ok form of Pop. Peek returns the oldest item without
removing it, and Items returns a copy of the buffered items ordered from
oldest to newest.

	if item, ok := rb.TryPop(); ok {
		fmt.Printf("Got item: %v\n", item)
	}

Automatic Cleanup:

Types that require cleanup (e.g., to release file handles or network connections)
can implement the `Cleanable` interface. The `Cleanup()` method will be called
automatically when an item is overwritten by Add. Popped items are handed to the
caller and are not cleaned up.

Concurrency:

A RingBuffer is not safe for concurrent use. Callers sharing one across
goroutines must guard it with their own lock.
*/
package ringbuffer
