// Package tree implements a binary search tree that doubles as a plain binary tree.
//
// Insertion keeps the BST ordering with ties going right. No rebalancing is ever done,
// so inserting sorted input yields a tree whose height equals its size.
package tree

import (
	"fmt"
	"strings"

	"github.com/Aran404/containers/containers/arena"
	"github.com/Aran404/containers/containers/errs"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// New creates an empty tree.
func New[T constraints.Ordered](opts ...arena.Option) *Tree[T] {
	return &Tree[T]{arena: arena.New[T]("tree", opts...)}
}

// NewFrom creates an empty tree sharing other's nodes, so handles found in either
// tree can be linked into the other.
func NewFrom[T constraints.Ordered](other *Tree[T]) *Tree[T] {
	return &Tree[T]{arena: other.arena}
}

// NewNode allocates a detached node owned by the returned handle.
// Detached nodes can be linked with SetLeft/SetRight and attached with BuildFrom.
func (t *Tree[T]) NewNode(value T) *Node[T] {
	return &Node[T]{arena: t.arena, ref: t.arena.Alloc(value)}
}

// handle returns a new shared owner of r, or nil for the absent link.
func (t *Tree[T]) handle(r arena.Ref) *Node[T] {
	return newHandle(t.arena, r)
}

// Root returns a handle to the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	return t.handle(t.root)
}

// IsEmpty returns true if the tree has no root.
func (t *Tree[T]) IsEmpty() bool {
	return t.root.IsNil()
}

// Insert adds value as a new leaf. Values less than a node go left, all others go right.
func (t *Tree[T]) Insert(value T) {
	node := t.arena.Alloc(value)
	if t.root.IsNil() {
		// The allocation reference becomes the tree's reference
		t.root = node
		return
	}

	current := t.root
	for {
		side := right
		if value < t.arena.Value(current) {
			side = left
		}

		next := t.arena.Child(current, side)
		if next.IsNil() {
			t.arena.SetChild(current, side, node)
			t.arena.Release(node)
			return
		}
		current = next
	}
}

// BuildFrom attaches a pre-built node and its subtree as the root. Only valid on an empty tree.
// The node may come from another tree, e.g. a handle returned by FindNode: the subtree is then
// shared, and the tree joins the other tree's arena.
func (t *Tree[T]) BuildFrom(node *Node[T]) error {
	if !t.root.IsNil() {
		t.arena.Log().Debug("refused BuildFrom on a tree with a root")
		return errs.Invalid(errs.ErrNonEmptyRoot)
	}
	switch {
	case node == nil:
		return errs.Invalid(errs.ErrNilNode)
	case node.released:
		return errs.Invalid(errs.ErrReleased)
	}

	// An empty tree owns nothing in its arena, so switching is safe
	t.arena = node.arena
	t.arena.Retain(node.ref)
	t.root = node.ref
	return nil
}

// InOrderTraversal returns every value, left subtree first, then the node, then the right subtree.
// The result is sorted only if the BST ordering holds.
func (t *Tree[T]) InOrderTraversal() []T {
	values := make([]T, 0)
	c := NewCursor(t)
	defer c.Close()

	for ok := c.Valid(); ok; ok = c.Next() {
		v, _ := c.Current()
		values = append(values, v)
	}
	return values
}

// Len returns the number of nodes reachable from the root.
func (t *Tree[T]) Len() int {
	return t.count(t.root)
}

func (t *Tree[T]) count(r arena.Ref) int {
	if r.IsNil() {
		return 0
	}
	return 1 + t.count(t.arena.Child(r, left)) + t.count(t.arena.Child(r, right))
}

// Height returns 0 for an empty tree, 1 for a single node.
func (t *Tree[T]) Height() int {
	return height(t.arena, t.root)
}

// HeightFrom returns the height of the subtree rooted at node.
func (t *Tree[T]) HeightFrom(node *Node[T]) int {
	if node == nil {
		return 0
	}
	return height(node.arena, node.deref())
}

func height[T constraints.Ordered](a *arena.Arena[T], r arena.Ref) int {
	if r.IsNil() {
		return 0
	}
	lh := height(a, a.Child(r, left))
	rh := height(a, a.Child(r, right))
	return max(lh, rh) + 1
}

// Min follows left links from the root. Returns false for an empty tree.
func (t *Tree[T]) Min() (T, bool) {
	return leftmost(t.arena, t.root)
}

// MinFrom follows left links from node.
func (t *Tree[T]) MinFrom(node *Node[T]) (T, bool) {
	if node == nil {
		var zero T
		return zero, false
	}
	return leftmost(node.arena, node.deref())
}

func leftmost[T constraints.Ordered](a *arena.Arena[T], r arena.Ref) (v T, ok bool) {
	if r.IsNil() {
		return v, false
	}
	for {
		l := a.Child(r, left)
		if l.IsNil() {
			return a.Value(r), true
		}
		r = l
	}
}

// FindNode descends by comparison and returns the first node on the search path
// holding value, or nil.
func (t *Tree[T]) FindNode(value T) *Node[T] {
	return t.handle(t.find(value))
}

func (t *Tree[T]) find(value T) arena.Ref {
	current := t.root
	for !current.IsNil() {
		v := t.arena.Value(current)
		if value == v {
			return current
		}
		if value < v {
			current = t.arena.Child(current, left)
		} else {
			current = t.arena.Child(current, right)
		}
	}
	return arena.Nil
}

// FindNodeBT searches the whole tree ignoring the ordering. The left subtree wins over the right.
func (t *Tree[T]) FindNodeBT(value T) *Node[T] {
	return t.handle(t.findBT(value, t.root))
}

func (t *Tree[T]) findBT(value T, r arena.Ref) arena.Ref {
	if r.IsNil() {
		return arena.Nil
	}
	if t.arena.Value(r) == value {
		return r
	}

	if found := t.findBT(value, t.arena.Child(r, left)); !found.IsNil() {
		return found
	}
	return t.findBT(value, t.arena.Child(r, right))
}

// ContainsNodeBT reports whether any node holds value, ignoring the ordering.
func (t *Tree[T]) ContainsNodeBT(value T) bool {
	return !t.findBT(value, t.root).IsNil()
}

// IsSubtree reports whether other appears in t with the same shape and values.
//
// The anchor is located with FindNode, so only the first node holding other's root value
// on the BST search path is compared. With duplicate values a matching subtree rooted at a
// different node with the same value is not found.
func (t *Tree[T]) IsSubtree(other *Tree[T]) bool {
	if t.root.IsNil() || other == nil || other.root.IsNil() {
		return false
	}

	anchor := t.find(other.arena.Value(other.root))
	if anchor.IsNil() {
		return false
	}
	return equal(t.arena, anchor, other.arena, other.root)
}

func equal[T constraints.Ordered](a *arena.Arena[T], x arena.Ref, b *arena.Arena[T], y arena.Ref) bool {
	if x.IsNil() && y.IsNil() {
		return true
	}
	if x.IsNil() != y.IsNil() {
		return false
	}
	if a.Value(x) != b.Value(y) {
		return false
	}

	return equal(a, a.Child(x, left), b, b.Child(y, left)) &&
		equal(a, a.Child(x, right), b, b.Child(y, right))
}

// Stats returns the usage of the tree's node arena, which may be shared with other trees.
func (t *Tree[T]) Stats() arena.Stats {
	return t.arena.Stats()
}

// Close drops the tree's reference to its root. Nodes still held by handles stay alive.
func (t *Tree[T]) Close() {
	if !t.root.IsNil() {
		t.arena.Release(t.root)
		t.root = arena.Nil
	}
}

// String renders the in-order sequence, e.g. [2, 3, 4, 5, 6].
func (t *Tree[T]) String() string {
	values := lo.Map(t.InOrderTraversal(), func(v T, _ int) string {
		return fmt.Sprint(v)
	})
	return "[" + strings.Join(values, ", ") + "]"
}
