package pqtree

import "github.com/couchbase/tools-pqtree/internal/slots"

// handle is the index of a node in the arena.
type handle int32

// nilHandle marks an absent relation.
const nilHandle handle = -1

// node is a single queue entry. Structural nodes form the BST; duplicate nodes hang off the chain of the structural
// node with the same priority and are never referenced by 'left' or 'right'.
type node[T any] struct {
	item Item[T]

	// duplicate is set for chain members, the chain anchor itself is a structural node.
	duplicate bool

	// parent is the BST parent for structural nodes, and the chain anchor for duplicates.
	parent handle

	left, right handle

	// chain is the next entry with the same priority, in insertion order.
	chain handle
}

// arena owns every node of a queue. Released slots are recycled in the order they were released.
type arena[T any] struct {
	nodes []node[T]
	free  slots.Slots[handle]
}

// newArena creates an arena with room for the given number of nodes before it has to grow.
func newArena[T any](capacity int) arena[T] {
	return arena[T]{nodes: make([]node[T], 0, capacity)}
}

// alloc returns the handle of a new unlinked node holding the given item.
//
// NOTE: Pointers returned by 'at' are invalidated by 'alloc' as the backing slice may be reallocated.
func (a *arena[T]) alloc(item Item[T]) handle {
	n := node[T]{item: item, parent: nilHandle, left: nilHandle, right: nilHandle, chain: nilHandle}

	if h, ok := a.free.Pop(); ok {
		a.nodes[h] = n
		return h
	}

	a.nodes = append(a.nodes, n)

	return handle(len(a.nodes) - 1)
}

// release returns the node to the arena, dropping the payload so it may be garbage collected.
func (a *arena[T]) release(h handle) {
	a.nodes[h] = node[T]{parent: nilHandle, left: nilHandle, right: nilHandle, chain: nilHandle}
	a.free.Push(h)
}

// at returns the node with the given handle.
func (a *arena[T]) at(h handle) *node[T] {
	return &a.nodes[h]
}

// live returns the number of nodes currently allocated.
func (a *arena[T]) live() int {
	return len(a.nodes) - a.free.Len()
}

// reset releases every node at once, retaining the allocated storage.
func (a *arena[T]) reset() {
	var zero node[T]

	for i := range a.nodes {
		a.nodes[i] = zero
	}

	a.nodes = a.nodes[:0]
	a.free.Reset()
}
