package tree

import (
	"github.com/Aran404/containers/containers/arena"
	"golang.org/x/exp/constraints"
)

const (
	left  = arena.Left
	right = arena.Right
)

// Tree is a binary tree of nodes with shared ownership.
// Insert, FindNode and Min rely on the BST ordering (left < node <= right).
// Methods suffixed with BT treat the structure as an unordered binary tree.
// A Tree is not safe for concurrent use.
type Tree[T constraints.Ordered] struct {
	arena *arena.Arena[T]
	root  arena.Ref
}

// Node is a handle to a tree node. A handle is a shared owner: the node stays
// alive until both the tree drops it and the handle is released.
type Node[T constraints.Ordered] struct {
	arena    *arena.Arena[T]
	ref      arena.Ref
	released bool
}

// step records that the cursor descended from ref into its side child.
type step struct {
	ref  arena.Ref
	side arena.Side
}

// Cursor walks a tree in order without recursion.
// The tree must not be modified while a cursor is open.
type Cursor[T constraints.Ordered] struct {
	tree    *Tree[T]
	path    []step
	current arena.Ref
}
