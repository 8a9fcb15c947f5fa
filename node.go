package oset

// node is an internal node in a tree.
//
// It must at all times maintain the invariant that either
//   - len(children) == 0 (leaf), or
//   - len(children) == len(items) + 1 (internal).
//
// Nodes are exclusively owned by their parent (or by the tree, for the
// root); the structure is a strict tree. The backlink t carries the tree
// configuration (ordering, capacities, free list) down the recursion.
type node[T any] struct {
	items    sequence[T]
	children sequence[*node[T]]
	t        *Tree[T]
}

// split splits the node at item index i. The receiver shrinks to items [0,i)
// and, if internal, children [0,i]; a new right sibling takes everything
// after i. The item at i is returned for promotion into the parent.
func (n *node[T]) split(i int) (T, *node[T]) {
	item := n.items[i]
	next := n.t.newNode()
	next.items = append(next.items, n.items[i+1:]...)
	n.items.truncate(i)
	if len(n.children) > 0 {
		next.children = append(next.children, n.children[i+1:]...)
		n.children.truncate(i + 1)
	}
	return item, next
}

// maybeSplitChild splits child i if it is full, inserting the promoted item
// and the new sibling into the receiver. Reports whether a split occurred.
func (n *node[T]) maybeSplitChild(i, maxItems int) bool {
	if len(n.children[i].items) < maxItems {
		return false
	}
	first := n.children[i]
	item, second := first.split(maxItems / 2)
	n.items.insertAt(i, item)
	n.children.insertAt(i+1, second)
	return true
}

// insert inserts an item into the subtree rooted at this node, making sure
// no node in the subtree exceeds maxItems items. When an equal item is
// replaced, it is returned together with replaced=true.
//
// This is the classic top-down insert: full children are split before the
// recursion descends, so no split ever propagates back up.
func (n *node[T]) insert(item T, maxItems int) (prev T, replaced bool) {
	i, found := n.items.find(item, n.t.less)
	if found {
		prev = n.items[i]
		n.items[i] = item
		return prev, true
	}
	if len(n.children) == 0 {
		n.items.insertAt(i, item)
		return prev, false
	}
	if n.maybeSplitChild(i, maxItems) {
		// The split promoted an item into slot i; re-orient against it.
		inTree := n.items[i]
		switch {
		case n.t.less(item, inTree):
			// item belongs to the left half, i is unchanged
		case n.t.less(inTree, item):
			i++ // item belongs to the new right sibling
		default:
			prev = n.items[i]
			n.items[i] = item
			return prev, true
		}
	}
	return n.children[i].insert(item, maxItems)
}

// get finds the given key in the subtree and returns it.
func (n *node[T]) get(key T) (item T, ok bool) {
	i, found := n.items.find(key, n.t.less)
	if found {
		return n.items[i], true
	}
	if len(n.children) > 0 {
		return n.children[i].get(key)
	}
	return item, false
}

// minItem returns the first item in the subtree rooted at n.
func minItem[T any](n *node[T]) (item T, ok bool) {
	if n == nil {
		return item, false
	}
	for len(n.children) > 0 {
		n = n.children[0]
	}
	if len(n.items) == 0 {
		return item, false
	}
	return n.items[0], true
}

// maxItem returns the last item in the subtree rooted at n.
func maxItem[T any](n *node[T]) (item T, ok bool) {
	if n == nil {
		return item, false
	}
	for len(n.children) > 0 {
		n = n.children[len(n.children)-1]
	}
	if len(n.items) == 0 {
		return item, false
	}
	return n.items[len(n.items)-1], true
}

// removeMode selects what node.remove removes.
type removeMode int

const (
	removeItem removeMode = iota // remove the given item
	removeMin                    // remove the smallest item in the subtree
	removeMax                    // remove the largest item in the subtree
)

// remove removes an item from the subtree rooted at this node.
//
// The invariant on entry is that the receiver holds more than minItems items
// (or is the root), so removing from it cannot underflow. Before recursing,
// the target child is grown to surplus occupancy if necessary.
func (n *node[T]) remove(item T, minItems int, mode removeMode) (out T, ok bool) {
	var i int
	var found bool
	switch mode {
	case removeMax:
		if len(n.children) == 0 {
			return n.items.pop(), true
		}
		i = len(n.items)
	case removeMin:
		if len(n.children) == 0 {
			return n.items.removeAt(0), true
		}
		i = 0
	case removeItem:
		i, found = n.items.find(item, n.t.less)
		if len(n.children) == 0 {
			if found {
				return n.items.removeAt(i), true
			}
			return out, false
		}
	default:
		assert(false, "node.remove: invalid mode")
	}
	// The node is internal here.
	if len(n.children[i].items) <= minItems {
		return n.growChildAndRemove(i, item, minItems, mode)
	}
	child := n.children[i]
	if found {
		// The match sits at our own slot i. Replace it with its in-order
		// predecessor, pulled from the left child via removeMax. The child is
		// known to have surplus, so the recursion cannot underflow it.
		out = n.items[i]
		var zero T
		n.items[i], _ = child.remove(zero, minItems, removeMax)
		return out, true
	}
	return child.remove(item, minItems, mode)
}

// growChildAndRemove grows child i so that an item can be removed from it
// while keeping it at minItems, then retries remove on the receiver.
//
// The priority order is load-bearing for the resulting tree shape (not for
// ordering): steal from the left sibling, else steal from the right sibling,
// else merge with the right neighbor, shifting i left first when i is the
// last child. After the repair the retry is guaranteed to descend into a
// child with surplus occupancy.
func (n *node[T]) growChildAndRemove(i int, item T, minItems int, mode removeMode) (T, bool) {
	if i > 0 && len(n.children[i-1].items) > minItems {
		// Steal from left sibling: its last item rotates up into the
		// separator slot, the old separator drops down as our first item.
		child := n.children[i]
		stealFrom := n.children[i-1]
		stolenItem := stealFrom.items.pop()
		child.items.insertAt(0, n.items[i-1])
		n.items[i-1] = stolenItem
		if len(stealFrom.children) > 0 {
			child.children.insertAt(0, stealFrom.children.pop())
		}
	} else if i < len(n.items) && len(n.children[i+1].items) > minItems {
		// Steal from right sibling, mirror image of the rotation above.
		child := n.children[i]
		stealFrom := n.children[i+1]
		stolenItem := stealFrom.items.removeAt(0)
		child.items = append(child.items, n.items[i])
		n.items[i] = stolenItem
		if len(stealFrom.children) > 0 {
			child.children = append(child.children, stealFrom.children.removeAt(0))
		}
	} else {
		if i >= len(n.items) {
			i--
		}
		// Merge child i with its right neighbor, pulling the separator down.
		child := n.children[i]
		mergeItem := n.items.removeAt(i)
		mergeChild := n.children.removeAt(i + 1)
		child.items = append(child.items, mergeItem)
		child.items = append(child.items, mergeChild.items...)
		child.children = append(child.children, mergeChild.children...)
		n.t.freeNode(mergeChild)
	}
	return n.remove(item, minItems, mode)
}

// reset recycles the subtree rooted at n into the tree's free list, walking
// children first. It returns false as soon as the free list fills up, since
// nothing further can be reclaimed then.
func (n *node[T]) reset() bool {
	for _, child := range n.children {
		if !child.reset() {
			return false
		}
	}
	return n.t.freeNode(n)
}
