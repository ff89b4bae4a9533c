package pqtree

// Node is a read-only view of a single entry in the tree of a queue; it's exposed for testing the shape of the tree.
//
// NOTE: A node is invalidated by any mutation of the queue.
type Node[T any] struct {
	queue *Queue[T]
	h     handle
}

// Root returns the root of the tree, the bool return value is false when the queue is empty.
func (q *Queue[T]) Root() (Node[T], bool) {
	return q.view(q.root)
}

func (q *Queue[T]) view(h handle) (Node[T], bool) {
	if h == nilHandle {
		return Node[T]{}, false
	}

	return Node[T]{queue: q, h: h}, true
}

// Priority returns the priority of the entry.
func (n Node[T]) Priority() int {
	return n.queue.arena.at(n.h).item.Priority
}

// Payload returns the payload of the entry.
func (n Node[T]) Payload() T {
	return n.queue.arena.at(n.h).item.Payload
}

// Duplicate returns a boolean indicating whether the entry is a member of a duplicate chain rather than part of the
// tree itself.
func (n Node[T]) Duplicate() bool {
	return n.queue.arena.at(n.h).duplicate
}

// Left returns the left child.
func (n Node[T]) Left() (Node[T], bool) {
	return n.queue.view(n.queue.arena.at(n.h).left)
}

// Right returns the right child.
func (n Node[T]) Right() (Node[T], bool) {
	return n.queue.view(n.queue.arena.at(n.h).right)
}

// Chain returns the next entry with the same priority.
func (n Node[T]) Chain() (Node[T], bool) {
	return n.queue.view(n.queue.arena.at(n.h).chain)
}

// Parent returns the parent in the tree or, for duplicates, the structural node which anchors the chain.
func (n Node[T]) Parent() (Node[T], bool) {
	return n.queue.view(n.queue.arena.at(n.h).parent)
}
