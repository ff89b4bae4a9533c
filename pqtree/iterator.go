package pqtree

import "errors"

// ErrQueueModified is returned by 'Iterator.Err' when the queue was mutated whilst the iterator still had entries to
// visit.
var ErrQueueModified = errors.New("queue modified during iteration")

// Iterator visits the entries of a queue in priority order without removing them; entries with equal priorities are
// visited in the order they were enqueued.
//
// An iterator is invalidated by any mutation of its queue, at which point it reports that it is exhausted and 'Err'
// returns 'ErrQueueModified'. Any number of iterators may be open on the same queue.
type Iterator[T any] struct {
	queue   *Queue[T]
	current handle
	version uint64
	err     error
}

// Begin returns an iterator positioned at the entry with the lowest priority.
func (q *Queue[T]) Begin() *Iterator[T] {
	it := &Iterator[T]{queue: q}
	it.Reset()

	return it
}

// Reset repositions the iterator at the entry with the lowest priority, clearing any previous error.
func (it *Iterator[T]) Reset() {
	it.current, it.version, it.err = nilHandle, it.queue.version, nil

	if it.queue.root != nilHandle {
		it.current = it.queue.leftmost(it.queue.root)
	}
}

// Next returns the current entry and advances the iterator. The bool return value is false once every entry has
// been returned, in which case the item should not be used in any way.
//
// NOTE: Next returns true for the last entry, use 'More' after calling 'Next' to determine whether the returned entry
// was the last one.
func (it *Iterator[T]) Next() (Item[T], bool) {
	if !it.More() {
		return Item[T]{}, false
	}

	item := it.queue.arena.at(it.current).item
	it.current = it.queue.successor(it.current)

	return item, true
}

// More returns a boolean indicating whether a subsequent call to 'Next' will return an entry.
func (it *Iterator[T]) More() bool {
	if it.current == nilHandle {
		return false
	}

	if it.version != it.queue.version {
		it.current, it.err = nilHandle, ErrQueueModified
		return false
	}

	return true
}

// Err returns the error, if any, which caused the iterator to stop early.
func (it *Iterator[T]) Err() error {
	return it.err
}

// successor returns the entry which follows h in priority order, or nilHandle if h is the last entry.
func (q *Queue[T]) successor(h handle) handle {
	n := q.arena.at(h)

	// Duplicates are visited before moving on to the next priority.
	if n.chain != nilHandle {
		return n.chain
	}

	// The chain isn't part of the tree, continue from the position of its anchor.
	if n.duplicate {
		h = n.parent
		n = q.arena.at(h)
	}

	if n.right != nilHandle {
		return q.leftmost(n.right)
	}

	// Walk up until we arrive at a parent from its left subtree, that parent is next.
	for n.parent != nilHandle && q.arena.at(n.parent).left != h {
		h = n.parent
		n = q.arena.at(h)
	}

	return n.parent
}
