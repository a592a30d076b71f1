package list

import (
	"github.com/Aran404/containers/containers/arena"
	"github.com/Aran404/containers/containers/errs"
)

func newHandle[T comparable](a *arena.Arena[T], r arena.Ref) *Node[T] {
	if r.IsNil() {
		return nil
	}
	a.Retain(r)
	return &Node[T]{arena: a, ref: r}
}

func (n *Node[T]) deref() arena.Ref {
	if n.released {
		panic("containers: use of a released list node")
	}
	return n.ref
}

// Value returns the node's value.
func (n *Node[T]) Value() T {
	return n.arena.Value(n.deref())
}

// SetValue overwrites the node's value in place.
func (n *Node[T]) SetValue(v T) {
	n.arena.SetValue(n.deref(), v)
}

// Next returns a handle to the following node, or nil.
func (n *Node[T]) Next() *Node[T] {
	return newHandle(n.arena, n.arena.Child(n.deref(), next))
}

// Prev returns a handle to the preceding node, or nil.
func (n *Node[T]) Prev() *Node[T] {
	return newHandle(n.arena, n.arena.Back(n.deref()))
}

// SetNext links node after n without touching prev, for building chains handed to AddNode.
// A nil node clears the link.
func (n *Node[T]) SetNext(node *Node[T]) error {
	if n.released {
		return errs.Invalid(errs.ErrReleased)
	}
	if node == nil {
		n.arena.SetChild(n.ref, next, arena.Nil)
		return nil
	}

	switch {
	case node.released:
		return errs.Invalid(errs.ErrReleased)
	case node.arena != n.arena:
		return errs.Invalid(errs.ErrForeignNode)
	case n.arena.Reaches(node.ref, n.ref):
		return errs.Invalid(errs.ErrCyclicLink)
	}

	n.arena.SetChild(n.ref, next, node.ref)
	return nil
}

// Release drops the handle's ownership. Releasing twice is a no-op.
func (n *Node[T]) Release() {
	if n == nil || n.released {
		return
	}
	n.released = true
	n.arena.Release(n.ref)
}

// Released returns true once Release has been called.
func (n *Node[T]) Released() bool {
	return n.released
}
