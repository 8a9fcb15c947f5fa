package oset

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and meant for tests and debugging; it
// walks the whole tree. Validated are node occupancy bounds, the item/child
// size correspondence, uniform leaf depth, ascending item order within and
// across nodes, and the running length counter.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariantViolated)
	}
	if t.root == nil {
		if t.length != 0 {
			return fmt.Errorf("%w: empty tree must have length 0, has %d", ErrInvariantViolated, t.length)
		}
		return nil
	}
	if len(t.root.items) == 0 {
		return fmt.Errorf("%w: non-nil root must hold at least one item", ErrInvariantViolated)
	}
	items, _, err := t.checkNode(t.root, true, nil, nil)
	if err != nil {
		return err
	}
	if items != t.length {
		return fmt.Errorf("%w: length mismatch (counted %d, recorded %d)", ErrInvariantViolated, items, t.length)
	}
	return nil
}

// checkNode recursively validates the subtree under n. lo and hi are the
// exclusive key bounds inherited from parent separators; nil means
// unbounded on that side.
func (t *Tree[T]) checkNode(n *node[T], isRoot bool, lo, hi *T) (items int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvariantViolated)
	}
	if n.t != t {
		return 0, 0, fmt.Errorf("%w: node owned by foreign tree", ErrInvariantViolated)
	}
	if len(n.items) > t.cfg.maxItems() {
		return 0, 0, fmt.Errorf("%w: node holds %d items, max is %d",
			ErrInvariantViolated, len(n.items), t.cfg.maxItems())
	}
	if !isRoot && len(n.items) < t.cfg.minItems() {
		return 0, 0, fmt.Errorf("%w: node holds %d items, min is %d",
			ErrInvariantViolated, len(n.items), t.cfg.minItems())
	}
	for i := 0; i < len(n.items); i++ {
		if i > 0 && !t.less(n.items[i-1], n.items[i]) {
			return 0, 0, fmt.Errorf("%w: items not in strictly ascending order at index %d",
				ErrInvariantViolated, i)
		}
		if lo != nil && !t.less(*lo, n.items[i]) {
			return 0, 0, fmt.Errorf("%w: item at index %d violates lower separator bound",
				ErrInvariantViolated, i)
		}
		if hi != nil && !t.less(n.items[i], *hi) {
			return 0, 0, fmt.Errorf("%w: item at index %d violates upper separator bound",
				ErrInvariantViolated, i)
		}
	}
	if len(n.children) == 0 {
		return len(n.items), 1, nil
	}
	if len(n.children) != len(n.items)+1 {
		return 0, 0, fmt.Errorf("%w: internal node has %d children for %d items",
			ErrInvariantViolated, len(n.children), len(n.items))
	}
	totalItems := len(n.items)
	childHeight := 0
	for i, child := range n.children {
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.items[i-1]
		}
		if i < len(n.items) {
			chi = &n.items[i]
		}
		cItems, cHeight, cErr := t.checkNode(child, false, clo, chi)
		if cErr != nil {
			return 0, 0, cErr
		}
		totalItems += cItems
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvariantViolated)
		}
	}
	return totalItems, childHeight + 1, nil
}
