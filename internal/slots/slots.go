// Package slots provides a growable FIFO of recycled handles implemented using a circular buffer.
package slots

const (
	// defaultInitialCapacity defines the number of handles which can be held before the buffer must grow.
	defaultInitialCapacity = 4

	// growthFactor is the factor by which the buffer capacity increases when we have to grow it.
	growthFactor = 2
)

// mod returns numerator % denominator where the result is always non-negative.
func mod(numerator, denominator int) int {
	m := numerator % denominator
	if m < 0 {
		m += denominator
	}

	return m
}

// Slots is a FIFO of handles, handles pushed first are popped first.
//
// NOTE: The zero value is ready to use, the buffer is allocated lazily on the first push.
type Slots[H any] struct {
	// head points to the first handle in the buffer.
	head int

	// tail points to the next free position at the end of the buffer.
	tail int

	items []H
}

// New creates a Slots with room for the given number of handles before it needs to grow.
func New[H any](capacity int) *Slots[H] {
	if capacity < 1 {
		capacity = defaultInitialCapacity
	}

	// head == tail means empty, so one position is always unused and we need capacity+1 positions.
	return &Slots[H]{items: make([]H, capacity+1)}
}

// Len returns the number of handles currently held.
func (s *Slots[H]) Len() int {
	if s.head > s.tail {
		return len(s.items) - s.head + s.tail
	}

	return s.tail - s.head
}

// Cap returns the number of handles which can be held before the buffer grows.
func (s *Slots[H]) Cap() int {
	if len(s.items) == 0 {
		return 0
	}

	return len(s.items) - 1
}

// Push adds h to the back of the FIFO, growing the buffer if it is full.
func (s *Slots[H]) Push(h H) {
	s.growIfRequired()

	s.items[s.tail] = h
	s.tail = mod(s.tail+1, len(s.items))
}

// Pop removes and returns the handle at the front of the FIFO, returning the default value and false if it is empty.
func (s *Slots[H]) Pop() (H, bool) {
	if s.head == s.tail {
		return *new(H), false
	}

	h := s.items[s.head]
	s.head = mod(s.head+1, len(s.items))

	return h, true
}

// Reset removes every handle whilst retaining the allocated buffer.
func (s *Slots[H]) Reset() {
	s.head, s.tail = 0, 0
}

// growIfRequired copies the held handles, in order, into a buffer grown by growthFactor when the current one is full.
func (s *Slots[H]) growIfRequired() {
	if len(s.items) == 0 {
		s.items = make([]H, defaultInitialCapacity+1)
		return
	}

	if s.Len() < s.Cap() {
		return
	}

	var (
		length = s.Len()
		items  = make([]H, length*growthFactor+1)
	)

	for i := 0; i < length; i++ {
		items[i] = s.items[mod(s.head+i, len(s.items))]
	}

	s.items, s.head, s.tail = items, 0, length
}
