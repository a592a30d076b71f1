package list

import (
	"testing"

	"github.com/Aran404/containers/containers/arena"
	"github.com/Aran404/containers/containers/errs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList(values ...int) *List[int] {
	return From(values, arena.WithSilentLogger())
}

// assertEnds checks the head and tail values and that both ends are terminated.
func assertEnds(t *testing.T, l *List[int], head, tail int) {
	t.Helper()

	h := l.Head()
	require.NotNil(t, h)
	defer h.Release()
	assert.Equal(t, head, h.Value(), "Unexpected head")
	assert.Nil(t, h.Prev(), "Head must have no prev")

	tl := l.Tail()
	require.NotNil(t, tl)
	defer tl.Release()
	assert.Equal(t, tail, tl.Value(), "Unexpected tail")
	assert.Nil(t, tl.Next(), "Tail must have no next")
}

func TestNew(t *testing.T) {
	l := New[int]()
	require.NotNil(t, l, "Expected a valid List instance")
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Size())
	assert.Nil(t, l.Head())
	assert.Nil(t, l.Tail())
	assert.Equal(t, "[]", l.String())
}

func TestList_Add(t *testing.T) {
	l := newTestList()
	l.Add(1)
	l.Add(2)
	l.Add(3)

	assert.Equal(t, 3, l.Size())
	assert.Equal(t, "[1, 2, 3]", l.String())
	assertEnds(t, l, 1, 3)
}

func TestList_AddSingle(t *testing.T) {
	l := newTestList(7)

	assert.Equal(t, 1, l.Size())
	assertEnds(t, l, 7, 7)
}

func TestList_RemoveHead(t *testing.T) {
	l := newTestList(1, 2, 3)

	assert.True(t, l.Remove(1))
	assert.Equal(t, "[2, 3]", l.String())
	assert.Equal(t, 2, l.Size())
	assertEnds(t, l, 2, 3)
}

func TestList_RemoveTail(t *testing.T) {
	l := newTestList(1, 2, 3)

	assert.True(t, l.Remove(3))
	assert.Equal(t, "[1, 2]", l.String())
	assert.Equal(t, 2, l.Size())
	assertEnds(t, l, 1, 2)
}

func TestList_RemoveMiddle(t *testing.T) {
	l := newTestList(1, 2, 3)

	assert.True(t, l.Remove(2))
	assert.Equal(t, "[1, 3]", l.String())
	assert.Equal(t, 2, l.Size())
	assertEnds(t, l, 1, 3)

	it := l.IntoRevIter()
	defer it.Close()
	var values []int
	for n := it.Next(); n != nil; n = it.Next() {
		values = append(values, n.Value())
		n.Release()
	}
	assert.Equal(t, []int{3, 1}, values, "prev links must skip the removed node")
}

func TestList_RemoveOnly(t *testing.T) {
	l := newTestList(1)

	assert.True(t, l.Remove(1))
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Size())
	assert.Nil(t, l.Head())
	assert.Nil(t, l.Tail())
	assert.Equal(t, 0, l.Stats().Live, "Unlinked node should be freed")

	l.Add(4)
	assertEnds(t, l, 4, 4)
}

func TestList_RemoveFirstMatchOnly(t *testing.T) {
	l := newTestList(1, 2, 1, 2)

	assert.True(t, l.Remove(2))
	assert.Equal(t, "[1, 1, 2]", l.String())
	assert.Equal(t, 3, l.Size())
}

func TestList_RemoveMissing(t *testing.T) {
	l := newTestList(1, 2, 3)

	assert.False(t, l.Remove(9))
	assert.Equal(t, "[1, 2, 3]", l.String())
	assert.Equal(t, 3, l.Size())

	empty := newTestList()
	assert.False(t, empty.Remove(1))
	assert.Equal(t, 0, empty.Size())
}

func TestList_RemoveAll(t *testing.T) {
	l := newTestList(1, 2, 3, 4, 5)
	for _, v := range []int{3, 1, 5, 2, 4} {
		require.True(t, l.Remove(v))
	}

	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Stats().Live)
}

func TestList_IntoIter(t *testing.T) {
	l := newTestList(1, 2, 3)

	it := l.IntoIter()
	for _, want := range []int{1, 2, 3} {
		n := it.Next()
		require.NotNil(t, n)
		assert.Equal(t, want, n.Value())
		n.Release()
	}
	assert.Nil(t, it.Next())
	assert.Nil(t, it.Next(), "Exhausted iterator stays exhausted")

	// Restartable per call
	again := l.IntoIter()
	defer again.Close()
	first := again.Next()
	require.NotNil(t, first)
	defer first.Release()
	assert.Equal(t, 1, first.Value())
}

func TestList_IntoRevIter(t *testing.T) {
	l := newTestList(1, 2, 3)

	it := l.IntoRevIter()
	for _, want := range []int{3, 2, 1} {
		n := it.Next()
		require.NotNil(t, n)
		assert.Equal(t, want, n.Value())
		n.Release()
	}
	assert.Nil(t, it.Next())

	empty := newTestList().IntoRevIter()
	assert.Nil(t, empty.Next())
}

func TestList_IterYieldsLiveHandles(t *testing.T) {
	l := newTestList(1, 2, 3)

	it := l.IntoIter()
	defer it.Close()
	for n := it.Next(); n != nil; n = it.Next() {
		n.SetValue(n.Value() * 10)
		n.Release()
	}
	assert.Equal(t, "[10, 20, 30]", l.String())
}

func TestList_HandleOutlivesRemove(t *testing.T) {
	l := newTestList(1, 2, 3)

	head := l.Head()
	require.NotNil(t, head)
	two := head.Next()
	require.NotNil(t, two)
	head.Release()

	require.True(t, l.Remove(2))
	assert.Equal(t, 2, two.Value(), "Handle keeps the unlinked node alive")
	assert.Nil(t, two.Prev())
	assert.Equal(t, 3, l.Stats().Live)

	two.Release()
	assert.Equal(t, 2, l.Stats().Live)
	assert.Equal(t, "[1, 3]", l.String())
}

func TestList_AddNode(t *testing.T) {
	l := newTestList(1, 2)

	chain := l.NewChain(3, 4)
	require.NotNil(t, chain)
	require.NoError(t, l.AddNode(chain))
	chain.Release()

	assert.True(t, l.Degraded())
	assert.Equal(t, "[1, 2, 3, 4]", l.String())
	assert.Equal(t, 2, l.Size(), "Size is not maintained by AddNode")

	tail := l.Tail()
	require.NotNil(t, tail)
	defer tail.Release()
	assert.Equal(t, 2, tail.Value(), "Tail is not moved by AddNode")

	three := tail.Next()
	require.NotNil(t, three)
	defer three.Release()
	assert.Nil(t, three.Prev(), "Attached nodes have no prev")
}

func TestList_AddNodeEmpty(t *testing.T) {
	l := newTestList()
	node := l.NewNode(1)
	defer node.Release()

	err := l.AddNode(node)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrEmptyList))
	assert.EqualError(t, err, "invalid operation: empty list")
	assert.True(t, l.IsEmpty())
	assert.False(t, l.Degraded())
}

func TestList_AddNodeCycle(t *testing.T) {
	l := newTestList(1, 2, 3)

	head := l.Head()
	defer head.Release()
	assert.True(t, errors.Is(l.AddNode(head), errs.ErrCyclicLink))

	tail := l.Tail()
	defer tail.Release()
	assert.True(t, errors.Is(l.AddNode(tail), errs.ErrCyclicLink))
	assert.Equal(t, "[1, 2, 3]", l.String())
}

func TestList_AddNodeInvalid(t *testing.T) {
	l := newTestList(1)

	foreign := newTestList().NewNode(2)
	defer foreign.Release()
	assert.True(t, errors.Is(l.AddNode(foreign), errs.ErrForeignNode))

	released := l.NewNode(3)
	released.Release()
	assert.True(t, errors.Is(l.AddNode(released), errs.ErrReleased))

	require.NoError(t, l.AddNode(nil))
	assert.Equal(t, "[1]", l.String())
}

func TestList_RemoveAfterAddNode(t *testing.T) {
	l := newTestList(1, 2)
	chain := l.NewChain(3, 4)
	require.NoError(t, l.AddNode(chain))
	chain.Release()

	require.True(t, l.Remove(3))
	assert.Equal(t, "[1, 2, 4]", l.String())
}

func TestList_RemoveChainKeepsSize(t *testing.T) {
	l := newTestList(1)
	chain := l.NewChain(2, 3)
	require.NoError(t, l.AddNode(chain))
	chain.Release()

	require.True(t, l.Remove(2))
	require.True(t, l.Remove(3))
	assert.Equal(t, "[1]", l.String())
	assert.Equal(t, 1, l.Size(), "Chain nodes were never counted")
	assert.False(t, l.IsEmpty())

	require.True(t, l.Remove(1))
	assert.Equal(t, 0, l.Size())
	assert.True(t, l.IsEmpty())
}

func TestList_RemoveHeadBeforeChain(t *testing.T) {
	l := newTestList(1)
	chain := l.NewChain(2, 3)
	require.NoError(t, l.AddNode(chain))
	chain.Release()

	require.True(t, l.Remove(1))
	assert.Equal(t, "[2, 3]", l.String())
	assert.Equal(t, 1, l.Size(), "The first chain node becomes the tail")

	tail := l.Tail()
	require.NotNil(t, tail)
	assert.Equal(t, 2, tail.Value())
	tail.Release()

	require.True(t, l.Remove(3))
	assert.Equal(t, 1, l.Size())
	require.True(t, l.Remove(2))
	assert.Equal(t, 0, l.Size())
	assert.True(t, l.IsEmpty())
}

func TestList_SetNext(t *testing.T) {
	l := newTestList(0)
	a := l.NewNode(1)
	b := l.NewNode(2)
	defer a.Release()
	defer b.Release()

	require.NoError(t, a.SetNext(b))
	assert.True(t, errors.Is(b.SetNext(a), errs.ErrCyclicLink))
	assert.True(t, errors.Is(a.SetNext(a), errs.ErrCyclicLink))

	require.NoError(t, l.AddNode(a))
	assert.Equal(t, "[0, 1, 2]", l.String())

	require.NoError(t, a.SetNext(nil))
	assert.Equal(t, "[0, 1]", l.String())
}

func TestList_NewChainEmpty(t *testing.T) {
	l := newTestList()
	assert.Nil(t, l.NewChain())
}

func TestList_Close(t *testing.T) {
	l := newTestList(1, 2, 3)
	tail := l.Tail()

	l.Close()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Size())
	assert.Equal(t, 1, l.Stats().Live, "Only the held tail survives")
	assert.Equal(t, 3, tail.Value())

	tail.Release()
	assert.Equal(t, 0, l.Stats().Live)
}

func TestFrom(t *testing.T) {
	l := From([]string{"a", "b"}, arena.WithSilentLogger())
	assert.Equal(t, "[a, b]", l.String())
	assert.Equal(t, []string{"a", "b"}, l.Values())
}
