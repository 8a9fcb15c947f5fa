package oset

import "iter"

// Visitor is the callback of the Ascend* family. Returning false stops the
// iteration immediately; the stop signal propagates through every level of
// the traversal without visiting further items.
type Visitor[T any] func(item T) bool

// boundary is a predicate over items used to delimit a traversal. The ascend
// protocol requires monotonicity: once a lower boundary holds for an item it
// must hold for all subsequent items, and once an upper boundary fails it
// must fail for all subsequent items.
type boundary[T any] func(item T) bool

// iterate walks the subtree in ascending order between two boundaries.
//
// Items failing the lower boundary are skipped together with their left
// subtrees (those hold only smaller values). The first failing upper
// boundary terminates the walk before visiting the failing item. Reports
// false when the walk was stopped, by either boundary or visitor.
func (n *node[T]) iterate(from, to boundary[T], visit Visitor[T]) bool {
	for i := 0; i < len(n.items); i++ {
		if !from(n.items[i]) {
			continue
		}
		if len(n.children) > 0 {
			if !n.children[i].iterate(from, to, visit) {
				return false
			}
		}
		if !to(n.items[i]) {
			return false
		}
		if !visit(n.items[i]) {
			return false
		}
	}
	if len(n.children) > 0 {
		return n.children[len(n.children)-1].iterate(from, to, visit)
	}
	return true
}

func unbounded[T any](T) bool { return true }

// Ascend calls visit for every item in the tree in ascending order, until
// visit returns false.
func (t *Tree[T]) Ascend(visit Visitor[T]) {
	if t == nil || t.root == nil || visit == nil {
		return
	}
	t.root.iterate(unbounded[T], unbounded[T], visit)
}

// AscendRange calls visit for every item in the half-open range [lo, hi) in
// ascending order, until visit returns false.
func (t *Tree[T]) AscendRange(lo, hi T, visit Visitor[T]) {
	if t == nil || t.root == nil || visit == nil {
		return
	}
	t.root.iterate(
		func(item T) bool { return !t.less(item, lo) },
		func(item T) bool { return t.less(item, hi) },
		visit,
	)
}

// AscendLessThan calls visit for every item less than hi in ascending order,
// until visit returns false.
func (t *Tree[T]) AscendLessThan(hi T, visit Visitor[T]) {
	if t == nil || t.root == nil || visit == nil {
		return
	}
	t.root.iterate(
		unbounded[T],
		func(item T) bool { return t.less(item, hi) },
		visit,
	)
}

// AscendGreaterOrEqual calls visit for every item greater than or equal to
// lo in ascending order, until visit returns false.
func (t *Tree[T]) AscendGreaterOrEqual(lo T, visit Visitor[T]) {
	if t == nil || t.root == nil || visit == nil {
		return
	}
	t.root.iterate(
		func(item T) bool { return !t.less(item, lo) },
		unbounded[T],
		visit,
	)
}

// All returns an iterator over all items in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.Ascend(func(item T) bool {
			return yield(item)
		})
	}
}

// Range returns an iterator over the items in the half-open range [lo, hi)
// in ascending order.
func (t *Tree[T]) Range(lo, hi T) iter.Seq[T] {
	return func(yield func(T) bool) {
		t.AscendRange(lo, hi, func(item T) bool {
			return yield(item)
		})
	}
}
