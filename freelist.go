package oset

import "sync"

// FreeList recycles tree nodes. By default each tree owns a private free
// list, but multiple trees can share one by passing it in their Config.
//
// The free list itself is guarded by a mutex, so sharing it across trees is
// safe even when the trees are mutated from different goroutines (the trees
// themselves still require external serialization).
type FreeList[T any] struct {
	mu       sync.Mutex
	freelist []*node[T]
}

// NewFreeList creates a free list holding at most size recycled nodes.
func NewFreeList[T any](size int) *FreeList[T] {
	return &FreeList[T]{freelist: make([]*node[T], 0, size)}
}

func (f *FreeList[T]) newNode() (n *node[T]) {
	f.mu.Lock()
	index := len(f.freelist) - 1
	if index < 0 {
		f.mu.Unlock()
		return new(node[T])
	}
	n = f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	f.mu.Unlock()
	return n
}

// freeNode adds n to the list unless it is full. Reports whether n was kept.
func (f *FreeList[T]) freeNode(n *node[T]) (out bool) {
	f.mu.Lock()
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		out = true
	}
	f.mu.Unlock()
	return out
}
