package oset

import "fmt"

const (
	// MinDegree is the smallest admissible branching parameter. Degree 2
	// yields a 2-3-4 tree, the narrowest shape that still is a B-tree.
	MinDegree = 2
	// DefaultFreeListSize is the capacity of the per-tree node free list.
	DefaultFreeListSize = 32
)

// LessFunc determines how to order items of type T. It must implement a
// strict weak ordering: if !less(a, b) && !less(b, a), the tree treats a and
// b as the same logical slot, and an insert of one replaces the other.
type LessFunc[T any] func(a, b T) bool

// Ordered is the set of types for which the '<' operator works.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// Less returns a LessFunc that uses the '<' operator for types supporting it.
func Less[T Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

// Config configures an ordered-set tree.
type Config[T any] struct {
	// Degree is the branching parameter D. Nodes hold between D-1 and 2D-1
	// items (the root may hold fewer). Must be at least MinDegree.
	Degree int
	// Less orders the items. Required.
	Less LessFunc[T]
	// FreeList recycles node allocations. Optional; a private free list of
	// DefaultFreeListSize is created when absent. Trees may share one.
	FreeList *FreeList[T]
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.FreeList == nil {
		cfg.FreeList = NewFreeList[T](DefaultFreeListSize)
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.Degree < MinDegree {
		return fmt.Errorf("%w: degree %d out of range (min %d)", ErrInvalidConfig, cfg.Degree, MinDegree)
	}
	if cfg.Less == nil {
		return fmt.Errorf("%w: less function is required", ErrInvalidConfig)
	}
	return nil
}

// maxItems is the item capacity of a node for this configuration.
func (cfg Config[T]) maxItems() int {
	return 2*cfg.Degree - 1
}

// minItems is the occupancy floor for non-root nodes.
func (cfg Config[T]) minItems() int {
	return cfg.Degree - 1
}
