// Package arena implements the shared-ownership node primitive used by the containers.
//
// Nodes live in a slice of slots and are addressed by generation-checked Refs instead of
// pointers. Each slot has two owning links, one weak back link and a reference count.
// Owning links and handles held by callers count as references; back links do not, so a
// doubly linked structure never forms an ownership cycle. A slot is freed as soon as its
// last reference is released, and freed slots are recycled through a free list.
package arena

import (
	"unsafe"

	"github.com/sirupsen/logrus"
)

// FreeList holds the ids of freed slots for reuse.
type FreeList struct {
	freelist []uint32
}

// NewFreeList creates a new free list.
// size is the initial capacity of the returned free list.
func NewFreeList(size int) *FreeList {
	return &FreeList{freelist: make([]uint32, 0, size)}
}

// take returns a recycled id, or 0 if the list is empty.
func (f *FreeList) take() uint32 {
	index := len(f.freelist) - 1
	if index < 0 {
		return 0
	}
	id := f.freelist[index]
	f.freelist = f.freelist[:index]
	return id
}

func (f *FreeList) put(id uint32) {
	f.freelist = append(f.freelist, id)
}

// Len returns the number of recycled ids waiting for reuse.
func (f *FreeList) Len() int {
	return len(f.freelist)
}

// New creates an empty arena. container names the owner in log lines.
func New[T any](container string, opts ...Option) *Arena[T] {
	if len(opts) == 0 {
		opts = WithDefaultOptions()
	}

	o := &options{cfg: DefaultConfig, logger: DefaultLogger}
	for _, opt := range opts {
		opt(o)
	}

	cfg := *o.cfg
	cfg.InsertDefaults()

	a := &Arena[T]{
		ID:       idNode.Generate(),
		slots:    make([]slot[T], 0, *cfg.InitialCapacity),
		freelist: NewFreeList(*cfg.InitialCapacity),
		cfg:      &cfg,
	}
	a.log = o.logger.WithFields(logrus.Fields{
		"arena":     a.ID.String(),
		"container": container,
	})
	return a
}

// Log returns the arena's logger.
func (a *Arena[T]) Log() *logrus.Entry {
	return a.log
}

// IsNil reports whether r is the absent link.
func (r Ref) IsNil() bool {
	return r.id == 0
}

func (a *Arena[T]) slotSize() Memory {
	var s slot[T]
	return Memory(unsafe.Sizeof(s))
}

// Alloc creates a slot holding v. The caller owns the single reference of the new slot.
func (a *Arena[T]) Alloc(v T) Ref {
	id := a.freelist.take()
	if id == 0 {
		if len(a.slots) == cap(a.slots) {
			a.log.WithField("capacity", cap(a.slots)).Debug("growing arena")
		}
		a.slots = append(a.slots, slot[T]{})
		id = uint32(len(a.slots))
	}

	s := &a.slots[id-1]
	s.value = v
	s.refs = 1
	s.live = true
	s.gen++

	a.live++
	a.AllocatedMemory += a.slotSize()
	return Ref{id: id, gen: s.gen}
}

// Valid reports whether r addresses a live slot.
func (a *Arena[T]) Valid(r Ref) bool {
	if r.id == 0 || int(r.id) > len(a.slots) {
		return false
	}
	s := &a.slots[r.id-1]
	return s.live && s.gen == r.gen
}

func (a *Arena[T]) slot(r Ref) *slot[T] {
	if !a.Valid(r) {
		panic("containers: access through a nil or stale node reference")
	}
	return &a.slots[r.id-1]
}

// Value returns the value stored at r.
func (a *Arena[T]) Value(r Ref) T {
	return a.slot(r).value
}

// SetValue overwrites the value stored at r.
func (a *Arena[T]) SetValue(r Ref, v T) {
	a.slot(r).value = v
}

// Child returns the owning link of r on side.
func (a *Arena[T]) Child(r Ref, side Side) Ref {
	return a.slot(r).children[side]
}

// SetChild points the owning link of r on side at child.
// The new child is retained before the old one is released, so re-linking the same child is safe.
func (a *Arena[T]) SetChild(r Ref, side Side, child Ref) {
	s := a.slot(r)
	old := s.children[side]
	if old == child {
		return
	}
	if !child.IsNil() {
		a.Retain(child)
	}
	s.children[side] = child
	if !old.IsNil() {
		a.Release(old)
	}
}

// Back returns the weak link of r, or Nil if its target has been freed.
func (a *Arena[T]) Back(r Ref) Ref {
	back := a.slot(r).back
	if !a.Valid(back) {
		return Nil
	}
	return back
}

// SetBack points the weak link of r at back without taking a reference.
func (a *Arena[T]) SetBack(r Ref, back Ref) {
	a.slot(r).back = back
}

// Refs returns the number of outstanding references to r.
func (a *Arena[T]) Refs(r Ref) int32 {
	return a.slot(r).refs
}

// Retain adds a reference to r.
func (a *Arena[T]) Retain(r Ref) {
	a.slot(r).refs++
}

// Release drops a reference to r. Slots whose count reaches zero are freed
// together with every slot only they kept alive.
func (a *Arena[T]) Release(r Ref) {
	stack := []Ref{r}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s := a.slot(cur)
		s.refs--
		if s.refs > 0 {
			continue
		}

		for i, child := range s.children {
			if !child.IsNil() {
				stack = append(stack, child)
			}
			s.children[i] = Nil
		}
		a.free(cur.id, s)
	}
}

func (a *Arena[T]) free(id uint32, s *slot[T]) {
	s.back = Nil
	s.live = false
	s.refs = 0
	if *a.cfg.ZeroOnFree {
		var zero T
		s.value = zero
	}

	a.live--
	a.ReleasedMemory += a.slotSize()
	a.freelist.put(id)
	a.log.WithField("slot", id).Debug("freed node")
}

// Reaches reports whether to can be reached from `from` by following owning links.
// A link from `to` to `from` would close an ownership cycle exactly when this is true.
func (a *Arena[T]) Reaches(from, to Ref) bool {
	if from.IsNil() || to.IsNil() {
		return false
	}

	seen := make(map[Ref]struct{})
	stack := []Ref{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == to {
			return true
		}
		if _, ok := seen[cur]; ok {
			continue
		}
		seen[cur] = struct{}{}

		for _, child := range a.slot(cur).children {
			if !child.IsNil() {
				stack = append(stack, child)
			}
		}
	}
	return false
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int {
	return a.live
}

// Stats returns a snapshot of the arena usage.
func (a *Arena[T]) Stats() Stats {
	return Stats{
		Live:      a.live,
		Free:      a.freelist.Len(),
		Capacity:  cap(a.slots),
		Footprint: Memory(cap(a.slots)) * a.slotSize(),
	}
}
