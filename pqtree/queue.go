// Package pqtree exposes a generic min-priority queue implemented using an unbalanced binary search tree.
//
// Each distinct priority occupies exactly one node of the tree; further entries with the same priority are appended to
// a chain anchored at that node meaning entries with equal priorities are dequeued in the order they were enqueued.
//
// NOTE: The tree is never rebalanced, enqueuing priorities in sorted order degrades it to a list with linear depth.
// Equality is structural (see 'EqualFunc') so rebalancing would change which queues compare equal.
package pqtree

import (
	"fmt"
	"strings"

	"github.com/couchbase/tools-pqtree/log"
)

// Queue is a min-priority queue which accepts a generic payload with an integer priority.
//
// NOTE: A Queue is not safe for concurrent use, callers needing access from multiple goroutines must provide their own
// synchronization.
type Queue[T any] struct {
	arena arena[T]
	root  handle
	size  int

	// version is incremented by every mutation, iterators use it to detect that they've been invalidated.
	version uint64
}

// NewQueue creates a new empty priority queue.
func NewQueue[T any]() *Queue[T] {
	return NewQueueWithCapacity[T](0)
}

// NewQueueWithCapacity creates a new empty priority queue with storage preallocated for the given number of entries.
//
// NOTE: The capacity has the same behavior as a slices capacity meaning the queue may grow beyond it, the capacity is
// there for performance optimizations.
func NewQueueWithCapacity[T any](capacity int) *Queue[T] {
	return &Queue[T]{arena: newArena[T](capacity), root: nilHandle}
}

// Len returns the number of entries in the queue, including those with duplicate priorities.
func (q *Queue[T]) Len() int {
	return q.size
}

// Enqueue adds the payload to the queue with the given priority. Where there's already an entry with the same priority,
// the payload is placed after every existing entry with that priority.
func (q *Queue[T]) Enqueue(payload T, priority int) {
	h := q.arena.alloc(Item[T]{Payload: payload, Priority: priority})

	q.size++
	q.version++

	if q.root == nilHandle {
		q.root = h
		return
	}

	var (
		current = q.root
		prev    = nilHandle
	)

	for current != nilHandle {
		n := q.arena.at(current)

		switch {
		case priority < n.item.Priority:
			prev, current = current, n.left
		case priority > n.item.Priority:
			prev, current = current, n.right
		default:
			q.appendDuplicate(current, h)
			return
		}
	}

	parent := q.arena.at(prev)
	if parent.item.Priority < priority {
		parent.right = h
	} else {
		parent.left = h
	}

	q.arena.at(h).parent = prev
}

// appendDuplicate links the node to the end of the chain anchored at the given node.
func (q *Queue[T]) appendDuplicate(anchor, h handle) {
	last := anchor
	for q.arena.at(last).chain != nilHandle {
		last = q.arena.at(last).chain
	}

	q.arena.at(last).chain = h

	n := q.arena.at(h)
	n.parent = anchor
	n.duplicate = true
}

// Dequeue removes and returns the payload with the lowest priority, returning the default value and false if the
// queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	item, ok := q.DequeueItem()
	return item.Payload, ok
}

// DequeueItem behaves like 'Dequeue' but also returns the priority of the removed payload.
func (q *Queue[T]) DequeueItem() (Item[T], bool) {
	if q.root == nilHandle {
		return Item[T]{}, false
	}

	var (
		h    = q.leftmost(q.root)
		item = q.arena.at(h).item
	)

	if q.arena.at(h).chain != nilHandle {
		q.promote(h)
	} else {
		q.unlink(h)
	}

	q.arena.release(h)

	q.size--
	q.version++

	return item, true
}

// Peek returns the payload with the lowest priority without removing it, returning the default value and false if the
// queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	item, ok := q.PeekItem()
	return item.Payload, ok
}

// PeekItem behaves like 'Peek' but also returns the priority of the payload.
func (q *Queue[T]) PeekItem() (Item[T], bool) {
	if q.root == nilHandle {
		return Item[T]{}, false
	}

	return q.arena.at(q.leftmost(q.root)).item, true
}

// Drain removes all items from the queue, in priority order, running the given function on each item. In the event of
// an error, dequeuing stops early, and returns the error.
func (q *Queue[T]) Drain(fn func(item Item[T]) error) error {
	for {
		item, ok := q.DequeueItem()
		if !ok {
			return nil
		}

		if err := fn(item); err != nil {
			return err
		}
	}
}

// Clear removes every entry from the queue.
func (q *Queue[T]) Clear() {
	if q.size > 0 {
		log.Tracef("(PQ) Clearing queue with %d entries", q.size)
	}

	q.arena.reset()

	q.root = nilHandle
	q.size = 0
	q.version++
}

// Assign replaces the contents of the queue with a deep copy of other. The copy is built by enqueuing every entry of
// other in pre-order (node, its duplicates, left subtree, right subtree) which reproduces the same tree, meaning the
// queues compare equal afterwards but share no state.
//
// NOTE: Assigning a queue to itself is a no-op.
func (q *Queue[T]) Assign(other *Queue[T]) {
	if q == other {
		return
	}

	q.Clear()

	if other.root == nilHandle {
		return
	}

	log.Tracef("(PQ) Copying queue with %d entries", other.size)

	stack := []handle{other.root}

	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := other.arena.at(h)

		for c := h; c != nilHandle; c = other.arena.at(c).chain {
			item := other.arena.at(c).item
			q.Enqueue(item.Payload, item.Priority)
		}

		if n.right != nilHandle {
			stack = append(stack, n.right)
		}

		if n.left != nilHandle {
			stack = append(stack, n.left)
		}
	}
}

// Clone returns a deep copy of the queue, see 'Assign'.
func (q *Queue[T]) Clone() *Queue[T] {
	clone := NewQueueWithCapacity[T](q.size)
	clone.Assign(q)

	return clone
}

// EqualFunc returns a boolean indicating whether the queues have the same structure, using eq to compare payloads.
//
// NOTE: Equality is structural, the trees must have the same shape with the same priority and payload in every
// position and identical duplicate chains. Queues holding the same entries but built in a different order may therefore
// be unequal.
func (q *Queue[T]) EqualFunc(other *Queue[T], eq func(a, b T) bool) bool {
	if q == other {
		return true
	}

	if q.size != other.size {
		return false
	}

	stack := []handlePair{{a: q.root, b: other.root}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.a == nilHandle || p.b == nilHandle {
			if p.a != p.b {
				return false
			}

			continue
		}

		// Walk both duplicate chains in lockstep, starting with the structural nodes themselves.
		a, b := p.a, p.b
		for a != nilHandle && b != nilHandle {
			na, nb := q.arena.at(a), other.arena.at(b)
			if na.item.Priority != nb.item.Priority || !eq(na.item.Payload, nb.item.Payload) {
				return false
			}

			a, b = na.chain, nb.chain
		}

		if a != b {
			return false
		}

		na, nb := q.arena.at(p.a), other.arena.at(p.b)
		stack = append(stack, handlePair{a: na.right, b: nb.right}, handlePair{a: na.left, b: nb.left})
	}

	return true
}

// handlePair is a pair of corresponding nodes from two queues being compared.
type handlePair struct {
	a, b handle
}

// Equal returns a boolean indicating whether the given queues are structurally equal, see 'Queue.EqualFunc'.
func Equal[T comparable](a, b *Queue[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// String returns every entry, in priority order, one per line formatted as "<priority> value: <payload>".
func (q *Queue[T]) String() string {
	var (
		builder strings.Builder
		it      = q.Begin()
	)

	for {
		item, ok := it.Next()
		if !ok {
			break
		}

		fmt.Fprintf(&builder, "%d value: %v\n", item.Priority, item.Payload)
	}

	return builder.String()
}

// leftmost returns the node with the lowest priority in the subtree rooted at h.
func (q *Queue[T]) leftmost(h handle) handle {
	for q.arena.at(h).left != nilHandle {
		h = q.arena.at(h).left
	}

	return h
}

// promote moves the first duplicate of the given chain anchor into the anchor's position in the tree.
func (q *Queue[T]) promote(h handle) {
	var (
		old  = q.arena.at(h)
		next = old.chain
		n    = q.arena.at(next)
	)

	n.duplicate = false
	n.parent, n.left, n.right = old.parent, old.left, old.right

	q.replaceChild(n.parent, h, next)

	if n.left != nilHandle {
		q.arena.at(n.left).parent = next
	}

	if n.right != nilHandle {
		q.arena.at(n.right).parent = next
	}

	for c := n.chain; c != nilHandle; c = q.arena.at(c).chain {
		q.arena.at(c).parent = next
	}
}

// unlink removes a node without a left child from the tree by replacing it with its right subtree.
func (q *Queue[T]) unlink(h handle) {
	var (
		n     = q.arena.at(h)
		right = n.right
	)

	q.replaceChild(n.parent, h, right)

	if right != nilHandle {
		q.arena.at(right).parent = n.parent
	}
}

// replaceChild points whichever slot of parent references old at replacement, updating the root if parent is absent.
func (q *Queue[T]) replaceChild(parent, old, replacement handle) {
	if parent == nilHandle {
		q.root = replacement
		return
	}

	p := q.arena.at(parent)
	if p.left == old {
		p.left = replacement
	} else {
		p.right = replacement
	}
}
