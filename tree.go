package oset

// Tree is a mutable, ordered B-tree container of items of type T.
//
// Tree stores at most one item per key: inserting an item that compares
// equal to a stored one replaces it. The zero Tree is not usable; trees are
// created through New or NewOrdered with a validated configuration.
//
// Write operations are not safe for concurrent use by multiple goroutines.
type Tree[T any] struct {
	cfg    Config[T]
	less   LessFunc[T]
	root   *node[T]
	length int
}

// New creates an empty tree with validated configuration.
//
// New(Config{Degree: 2, ...}) creates a 2-3-4 tree (each node contains 1-3
// items and 2-4 children).
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[T]{cfg: cfg, less: cfg.Less}, nil
}

// NewOrdered creates an empty tree for item types ordered by '<'.
func NewOrdered[T Ordered](degree int) (*Tree[T], error) {
	return New(Config[T]{Degree: degree, Less: Less[T]()})
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Len returns the number of items currently in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[T]) IsEmpty() bool {
	return t.Len() == 0
}

// Has reports whether an item equal to key is in the tree.
func (t *Tree[T]) Has(key T) bool {
	_, ok := t.Get(key)
	return ok
}

// Get looks up the item equal to key, descending by binary search at each
// level. It returns (zero value, false) when no such item is stored.
func (t *Tree[T]) Get(key T) (item T, ok bool) {
	if t == nil || t.root == nil {
		return item, false
	}
	return t.root.get(key)
}

// Min returns the smallest item in the tree, or (zero value, false) for an
// empty tree.
func (t *Tree[T]) Min() (T, bool) {
	return minItem(t.root)
}

// Max returns the largest item in the tree, or (zero value, false) for an
// empty tree.
func (t *Tree[T]) Max() (T, bool) {
	return maxItem(t.root)
}

// ReplaceOrInsert adds the given item to the tree. If an item in the tree
// already equals the given one, it is replaced and returned together with
// replaced=true; otherwise the zero value and replaced=false are returned.
//
// A nil item (for nil-able item types) is rejected with ErrNilItem; it never
// silently becomes a no-op.
func (t *Tree[T]) ReplaceOrInsert(item T) (prev T, replaced bool, err error) {
	if isNilItem(item) {
		return prev, false, ErrNilItem
	}
	if t.root == nil {
		t.root = t.newNode()
		t.root.items = append(t.root.items, item)
		t.length++
		return prev, false, nil
	}
	if len(t.root.items) >= t.cfg.maxItems() {
		// Preemptive root split: the tree grows in height here and only here.
		promoted, second := t.root.split(t.cfg.maxItems() / 2)
		oldroot := t.root
		t.root = t.newNode()
		t.root.items = append(t.root.items, promoted)
		t.root.children = append(t.root.children, oldroot, second)
	}
	prev, replaced = t.root.insert(item, t.cfg.maxItems())
	if !replaced {
		t.length++
	}
	return prev, replaced, nil
}

// Delete removes the item equal to key from the tree and returns it.
// If no such item exists, it returns (zero value, false).
func (t *Tree[T]) Delete(key T) (T, bool) {
	return t.deleteItem(key, removeItem)
}

// DeleteMin removes the smallest item in the tree and returns it.
// If the tree is empty, it returns (zero value, false).
func (t *Tree[T]) DeleteMin() (T, bool) {
	var zero T
	return t.deleteItem(zero, removeMin)
}

// DeleteMax removes the largest item in the tree and returns it.
// If the tree is empty, it returns (zero value, false).
func (t *Tree[T]) DeleteMax() (T, bool) {
	var zero T
	return t.deleteItem(zero, removeMax)
}

func (t *Tree[T]) deleteItem(item T, mode removeMode) (out T, ok bool) {
	if t == nil || t.root == nil || len(t.root.items) == 0 {
		return out, false
	}
	out, ok = t.root.remove(item, t.cfg.minItems(), mode)
	if len(t.root.items) == 0 && len(t.root.children) > 0 {
		// Root collapse: the tree shrinks in height here and only here.
		oldroot := t.root
		t.root = t.root.children[0]
		oldroot.children.truncate(0)
		t.freeNode(oldroot)
	}
	if ok {
		t.length--
	}
	if t.length == 0 && t.root != nil {
		assert(len(t.root.items) == 0 && len(t.root.children) == 0,
			"deleteItem: drained tree must end in an empty leaf root")
		t.freeNode(t.root)
		t.root = nil
	}
	return out, ok
}

// Clear removes all items from the tree.
//
// When reclaim is true, the tree's nodes are walked into its free list until
// the list is full; otherwise the root is dropped and the subtree left to
// regular garbage collection. Clearing with reclaim is much cheaper than
// deleting all elements one by one and lets a subsequent build reuse the
// node allocations.
func (t *Tree[T]) Clear(reclaim bool) {
	if t.root != nil && reclaim {
		t.root.reset()
	}
	t.root, t.length = nil, 0
}

func (t *Tree[T]) newNode() (n *node[T]) {
	n = t.cfg.FreeList.newNode()
	n.t = t
	return n
}

// freeNode clears n and hands it to the free list. Reports whether the list
// kept it.
func (t *Tree[T]) freeNode(n *node[T]) bool {
	n.items.truncate(0)
	n.children.truncate(0)
	n.t = nil
	return t.cfg.FreeList.freeNode(n)
}
