package list

import (
	"github.com/Aran404/containers/containers/arena"
)

// next is the owning link; prev is kept in the weak back link so neighbours never own each other.
const next = arena.Left

type direction uint8

const (
	forward direction = iota
	backward
)

// List is a doubly linked list of nodes with shared ownership.
// head and tail each hold a reference to their node.
// A List is not safe for concurrent use.
type List[T comparable] struct {
	arena *arena.Arena[T]
	head  arena.Ref
	tail  arena.Ref
	size  int

	// degraded is set once AddNode has appended a chain without fixing prev/tail
	degraded bool
}

// Node is a handle to a list node. A handle is a shared owner: the node stays
// alive until both the list drops it and the handle is released.
type Node[T comparable] struct {
	arena    *arena.Arena[T]
	ref      arena.Ref
	released bool
}

// Iter is a lazy, single-pass walk over a list that yields live node handles.
// It holds a reference to the node it yields next.
type Iter[T comparable] struct {
	arena   *arena.Arena[T]
	pending arena.Ref
	dir     direction
}
