package tree

import (
	"github.com/Aran404/containers/containers/arena"
	"golang.org/x/exp/constraints"
)

// NewCursor returns a cursor positioned on the smallest node.
func NewCursor[T constraints.Ordered](tree *Tree[T]) *Cursor[T] {
	c := &Cursor[T]{
		tree: tree,
	}
	c.First()
	return c
}

func (c *Cursor[T]) reset() {
	c.path = c.path[:0]
	c.current = c.tree.root
}

// descend moves to the extreme node of the current subtree on side.
func (c *Cursor[T]) descend(side arena.Side) {
	a := c.tree.arena
	for !c.current.IsNil() {
		next := a.Child(c.current, side)
		if next.IsNil() {
			return
		}
		c.path = append(c.path, step{ref: c.current, side: side})
		c.current = next
	}
}

// First moves the cursor to the left most node. Returns false for an empty tree.
func (c *Cursor[T]) First() bool {
	c.reset()
	c.descend(left)
	return c.Valid()
}

// Last moves the cursor to the right most node. Returns false for an empty tree.
func (c *Cursor[T]) Last() bool {
	c.reset()
	c.descend(right)
	return c.Valid()
}

// Next advances the cursor to the in-order successor. Returns False for stop iteration.
func (c *Cursor[T]) Next() bool {
	return c.advance(right, left)
}

// Prev moves the cursor to the in-order predecessor. Returns False for stop iteration.
func (c *Cursor[T]) Prev() bool {
	return c.advance(left, right)
}

// advance steps once into the forward subtree and then to its extreme on the back side.
// Without a forward subtree it backtracks to the first ancestor entered from the back side.
func (c *Cursor[T]) advance(forward, back arena.Side) bool {
	if c.current.IsNil() {
		return false
	}

	a := c.tree.arena
	if next := a.Child(c.current, forward); !next.IsNil() {
		c.path = append(c.path, step{ref: c.current, side: forward})
		c.current = next
		c.descend(back)
		return true
	}

	// Backtrack
	for len(c.path) > 0 {
		top := c.path[len(c.path)-1]
		c.path = c.path[:len(c.path)-1]
		if top.side == back {
			c.current = top.ref
			return true
		}
	}

	c.current = arena.Nil
	return false // end of iteration
}

// SeekTo moves the cursor to the smallest node whose value is not less than value.
// Relies on the BST ordering. Returns false if every value is less.
func (c *Cursor[T]) SeekTo(value T) bool {
	c.reset()
	a := c.tree.arena

	var (
		found     = arena.Nil
		foundPath []step
	)
	for !c.current.IsNil() {
		if a.Value(c.current) < value {
			next := a.Child(c.current, right)
			c.path = append(c.path, step{ref: c.current, side: right})
			c.current = next
			continue
		}

		found = c.current
		foundPath = append(foundPath[:0], c.path...)
		next := a.Child(c.current, left)
		c.path = append(c.path, step{ref: c.current, side: left})
		c.current = next
	}

	c.current = found
	c.path = append(c.path[:0], foundPath...)
	return c.Valid()
}

// Valid returns true while the cursor is positioned on a node.
func (c *Cursor[T]) Valid() bool {
	return c.tree != nil && !c.current.IsNil()
}

// Current retrieves the value under the cursor.
func (c *Cursor[T]) Current() (value T, ok bool) {
	if !c.Valid() {
		return value, false
	}
	return c.tree.arena.Value(c.current), true
}

// Node returns a handle to the node under the cursor, or nil.
func (c *Cursor[T]) Node() *Node[T] {
	if !c.Valid() {
		return nil
	}
	return newHandle(c.tree.arena, c.current)
}

// Close closes the cursor.
func (c *Cursor[T]) Close() {
	// Delete all references
	c.tree = nil
	c.path = nil
	c.current = arena.Nil
}
