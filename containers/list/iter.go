package list

import (
	"github.com/Aran404/containers/containers/arena"
)

func newIter[T comparable](a *arena.Arena[T], start arena.Ref, dir direction) *Iter[T] {
	if !start.IsNil() {
		a.Retain(start)
	}
	return &Iter[T]{arena: a, pending: start, dir: dir}
}

// Next returns a handle to the next node, or nil once the iterator is exhausted.
// The caller owns the returned handle.
func (it *Iter[T]) Next() *Node[T] {
	if it.pending.IsNil() {
		return nil
	}

	current := it.pending
	var following arena.Ref
	if it.dir == forward {
		following = it.arena.Child(current, next)
	} else {
		following = it.arena.Back(current)
	}
	if !following.IsNil() {
		it.arena.Retain(following)
	}
	it.pending = following

	// The iterator's reference moves to the handle
	return &Node[T]{arena: it.arena, ref: current}
}

// Close releases the node the iterator would yield next.
func (it *Iter[T]) Close() {
	if !it.pending.IsNil() {
		it.arena.Release(it.pending)
		it.pending = arena.Nil
	}
}
