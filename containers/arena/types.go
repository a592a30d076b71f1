package arena

import (
	"github.com/bwmarrin/snowflake"
	"github.com/sirupsen/logrus"
)

func init() {
	snowflake.Epoch = 1732926762493 // Sat Nov 30 2024 00:32:42 GMT+0000

	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}

	idNode = node
}

const (
	DEFAULT_INITIAL_CAPACITY = 16
)

// Side selects one of the two owning links of a slot.
type Side uint8

const (
	Left Side = iota
	Right
)

var (
	idNode *snowflake.Node

	DefaultInitialCapacity = DEFAULT_INITIAL_CAPACITY
	DefaultZeroOnFree      = true

	DefaultConfig *Config = &Config{
		InitialCapacity: &DefaultInitialCapacity,
		ZeroOnFree:      &DefaultZeroOnFree,
	}

	DefaultLogger = newDefaultLogger()
)

// Ref addresses a slot in an Arena. The zero value is the nil ref.
// A ref goes stale once its slot is freed; stale refs are detected by generation.
type Ref struct {
	id  uint32
	gen uint32
}

// Nil is the absent link.
var Nil Ref

type slot[T any] struct {
	value    T
	children [2]Ref
	// back is weak, it never keeps the target alive
	back Ref
	refs int32
	gen  uint32
	live bool
}

// Arena owns every node of one container.
// Nodes are reference counted: owning links and outstanding handles each hold one reference.
// An Arena is not safe for concurrent use.
type Arena[T any] struct {
	ID snowflake.ID

	slots    []slot[T]
	freelist *FreeList
	live     int
	cfg      *Config
	log      *logrus.Entry

	// Memory Logs
	AllocatedMemory Memory
	ReleasedMemory  Memory
}

type Config struct {
	// InitialCapacity is the number of slots reserved up front
	InitialCapacity *int
	// ZeroOnFree clears the value of a freed slot so the GC can collect what it references
	ZeroOnFree *bool
}

// Stats is a snapshot of arena usage.
type Stats struct {
	Live      int
	Free      int
	Capacity  int
	Footprint Memory
}
