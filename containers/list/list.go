// Package list implements a doubly linked list with an optional singly linked append mode.
package list

import (
	"fmt"
	"strings"

	"github.com/Aran404/containers/containers/arena"
	"github.com/Aran404/containers/containers/errs"
	"github.com/samber/lo"
)

// New creates an empty list.
func New[T comparable](opts ...arena.Option) *List[T] {
	return &List[T]{arena: arena.New[T]("list", opts...)}
}

// From creates a list holding values in order.
func From[T comparable](values []T, opts ...arena.Option) *List[T] {
	l := New[T](opts...)
	for _, v := range values {
		l.Add(v)
	}
	return l
}

// Add appends value after the tail.
func (l *List[T]) Add(value T) {
	node := l.arena.Alloc(value)
	l.size++

	if l.head.IsNil() {
		// The allocation reference becomes head's, tail takes its own
		l.head = node
		l.arena.Retain(node)
		l.tail = node
		return
	}

	l.arena.SetChild(l.tail, next, node)
	l.arena.SetBack(node, l.tail)
	l.arena.Release(l.tail)
	l.tail = node
}

// Remove unlinks the first node holding value. Later duplicates are untouched.
// Returns false if no node matched.
func (l *List[T]) Remove(value T) bool {
	prev := arena.Nil
	// Nodes past the tail were hung there by AddNode and are not part of the size
	counted := true
	for cur := l.head; !cur.IsNil(); cur = l.arena.Child(cur, next) {
		if l.arena.Value(cur) == value {
			l.unlink(cur, prev, counted)
			return true
		}
		if cur == l.tail {
			counted = false
		}
		prev = cur
	}
	return false
}

// unlink detaches node from its neighbours. prev is the node's predecessor on the
// forward path, Nil for the head. counted is false for nodes past the tail.
func (l *List[T]) unlink(node, prev arena.Ref, counted bool) {
	a := l.arena
	// Hold node while its owners are rewritten
	a.Retain(node)
	defer a.Release(node)

	succ := a.Child(node, next)
	switch {
	case prev.IsNil() && succ.IsNil():
		// Only element
		a.Release(l.head)
		a.Release(l.tail)
		l.head = arena.Nil
		l.tail = arena.Nil

	case prev.IsNil():
		// First element
		a.Retain(succ)
		a.Release(l.head)
		l.head = succ
		a.SetBack(succ, arena.Nil)
		if l.tail == node {
			// Only reachable once AddNode hung a chain after a single-element list
			a.Retain(succ)
			a.Release(l.tail)
			l.tail = succ
			// succ now ends the counted range
			l.size++
		}

	default:
		if l.tail == node {
			a.Retain(prev)
			a.Release(l.tail)
			l.tail = prev
		}
		a.SetChild(prev, next, succ)
		if !succ.IsNil() {
			a.SetBack(succ, prev)
		}
	}

	a.SetBack(node, arena.Nil)
	if counted {
		l.size--
	}
}

// AddNode hangs chain after the current tail, the way a singly linked list would.
// Neither the chain's prev links nor the list's tail and size are updated, so backward
// iteration and tail-relative operations are unreliable afterwards.
// A nil chain detaches whatever hangs after the tail.
func (l *List[T]) AddNode(chain *Node[T]) error {
	if l.tail.IsNil() {
		l.arena.Log().Debug("refused AddNode on an empty list")
		return errs.Invalid(errs.ErrEmptyList)
	}

	link := arena.Nil
	if chain != nil {
		switch {
		case chain.released:
			return errs.Invalid(errs.ErrReleased)
		case chain.arena != l.arena:
			return errs.Invalid(errs.ErrForeignNode)
		case l.arena.Reaches(chain.ref, l.tail):
			l.arena.Log().Debug("refused AddNode that closes an ownership cycle")
			return errs.Invalid(errs.ErrCyclicLink)
		}
		link = chain.ref
	}

	l.arena.SetChild(l.tail, next, link)
	if !l.degraded {
		l.arena.Log().WithField("size", l.size).Warn("list appended in singly linked mode, prev and tail are no longer maintained")
	}
	l.degraded = true
	return nil
}

// Degraded returns true once AddNode has been used on the list.
func (l *List[T]) Degraded() bool {
	return l.degraded
}

// NewNode allocates a detached node owned by the returned handle.
func (l *List[T]) NewNode(value T) *Node[T] {
	return &Node[T]{arena: l.arena, ref: l.arena.Alloc(value)}
}

// NewChain allocates detached nodes linked by next only and returns a handle to the first.
// Returns nil for no values.
func (l *List[T]) NewChain(values ...T) *Node[T] {
	chain := arena.Nil
	for i := len(values) - 1; i >= 0; i-- {
		node := l.arena.Alloc(values[i])
		if !chain.IsNil() {
			l.arena.SetChild(node, next, chain)
			l.arena.Release(chain)
		}
		chain = node
	}

	if chain.IsNil() {
		return nil
	}
	return &Node[T]{arena: l.arena, ref: chain}
}

// Head returns a handle to the first node, or nil.
func (l *List[T]) Head() *Node[T] {
	return newHandle(l.arena, l.head)
}

// Tail returns a handle to the last node, or nil.
func (l *List[T]) Tail() *Node[T] {
	return newHandle(l.arena, l.tail)
}

// IntoIter walks from head following next.
func (l *List[T]) IntoIter() *Iter[T] {
	return newIter(l.arena, l.head, forward)
}

// IntoRevIter walks from tail following prev.
func (l *List[T]) IntoRevIter() *Iter[T] {
	return newIter(l.arena, l.tail, backward)
}

// Size returns the number of nodes from head through tail. Nodes hung after the tail
// by AddNode are not counted, and removing them leaves the size unchanged.
func (l *List[T]) Size() int {
	return l.size
}

// IsEmpty returns true if the list has no head.
func (l *List[T]) IsEmpty() bool {
	return l.head.IsNil()
}

// Values returns the values from head to the end of the next chain.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for cur := l.head; !cur.IsNil(); cur = l.arena.Child(cur, next) {
		values = append(values, l.arena.Value(cur))
	}
	return values
}

// Stats returns the usage of the list's node arena.
func (l *List[T]) Stats() arena.Stats {
	return l.arena.Stats()
}

// Close drops the list's references to head and tail. Nodes still held by handles stay alive.
func (l *List[T]) Close() {
	if !l.head.IsNil() {
		l.arena.Release(l.head)
	}
	if !l.tail.IsNil() {
		l.arena.Release(l.tail)
	}
	l.head = arena.Nil
	l.tail = arena.Nil
	l.size = 0
	l.degraded = false
}

// String renders the values from head onwards, e.g. [1, 2, 3].
func (l *List[T]) String() string {
	values := lo.Map(l.Values(), func(v T, _ int) string {
		return fmt.Sprint(v)
	})
	return "[" + strings.Join(values, ", ") + "]"
}
