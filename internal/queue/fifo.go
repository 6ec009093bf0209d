package queue

type node[T any] struct {
	value T
	next  *node[T]
}

// FIFO is a singly linked first-in-first-out list. The zero value is an
// empty list ready for use. It performs no locking of its own; the owner
// serialises access.
type FIFO[T any] struct {
	head *node[T]
	tail *node[T]
	len  int
}

// PushBack appends value at the tail.
func (f *FIFO[T]) PushBack(value T) {
	n := &node[T]{value: value}
	if f.len == 0 {
		f.head = n
		f.tail = n
	} else {
		f.tail.next = n
		f.tail = n
	}
	f.len++
}

// PopFront removes and returns the head value.
func (f *FIFO[T]) PopFront() (zero T, _ bool) {
	if f.len == 0 {
		return zero, false
	}

	current := f.head
	f.head = current.next
	if f.head == nil {
		f.tail = nil
	}
	f.len--

	current.next = nil

	return current.value, true
}

// Len returns the number of values in the list.
func (f *FIFO[T]) Len() int {
	return f.len
}

// Append splices the entire contents of other onto the tail of f in constant
// time and leaves other empty. Relative order inside other is preserved.
func (f *FIFO[T]) Append(other *FIFO[T]) {
	if other.len == 0 {
		return
	}

	if f.len == 0 {
		f.head = other.head
		f.tail = other.tail
		f.len = other.len
	} else {
		f.tail.next = other.head
		f.tail = other.tail
		f.len += other.len
	}

	other.head = nil
	other.tail = nil
	other.len = 0
}
