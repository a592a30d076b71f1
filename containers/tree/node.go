package tree

import (
	"github.com/Aran404/containers/containers/arena"
	"github.com/Aran404/containers/containers/errs"
	"golang.org/x/exp/constraints"
)

func newHandle[T constraints.Ordered](a *arena.Arena[T], r arena.Ref) *Node[T] {
	if r.IsNil() {
		return nil
	}
	a.Retain(r)
	return &Node[T]{arena: a, ref: r}
}

func (n *Node[T]) deref() arena.Ref {
	if n.released {
		panic("containers: use of a released tree node")
	}
	return n.ref
}

// Value returns the node's value.
func (n *Node[T]) Value() T {
	return n.arena.Value(n.deref())
}

// SetValue overwrites the node's value. The tree is not reordered.
func (n *Node[T]) SetValue(v T) {
	n.arena.SetValue(n.deref(), v)
}

// Left returns a handle to the left child, or nil.
func (n *Node[T]) Left() *Node[T] {
	return newHandle(n.arena, n.arena.Child(n.deref(), left))
}

// Right returns a handle to the right child, or nil.
func (n *Node[T]) Right() *Node[T] {
	return newHandle(n.arena, n.arena.Child(n.deref(), right))
}

// SetLeft replaces the left child. A nil child clears the link.
func (n *Node[T]) SetLeft(child *Node[T]) error {
	return n.setChild(left, child)
}

// SetRight replaces the right child. A nil child clears the link.
func (n *Node[T]) SetRight(child *Node[T]) error {
	return n.setChild(right, child)
}

func (n *Node[T]) setChild(side arena.Side, child *Node[T]) error {
	if n.released {
		return errs.Invalid(errs.ErrReleased)
	}
	if child == nil {
		n.arena.SetChild(n.ref, side, arena.Nil)
		return nil
	}

	switch {
	case child.released:
		return errs.Invalid(errs.ErrReleased)
	case child.arena != n.arena:
		return errs.Invalid(errs.ErrForeignNode)
	case n.arena.Reaches(child.ref, n.ref):
		n.arena.Log().Debug("refused link that closes an ownership cycle")
		return errs.Invalid(errs.ErrCyclicLink)
	}

	n.arena.SetChild(n.ref, side, child.ref)
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
