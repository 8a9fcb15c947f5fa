/*
Package oset implements a mutable, ordered in-memory container, shaped as a
B-tree of configurable degree.

The container keys items by a total order and offers logarithmic-time
insertion with replace, deletion (by key, minimum or maximum), membership
lookup, and ascending in-order traversal with early termination. A B-tree
has a flatter structure than an equivalent binary search tree, which yields
shorter search paths and better memory locality for node-sized item runs.

Within the tree, each node holds a sorted slice of items and a (possibly
empty) slice of children. Insertion splits full nodes preemptively on the way
down, so every recursion step descends into a node with room to spare.
Deletion repairs occupancy with a steal/merge cascade before recursing.

Trees are not safe for concurrent mutation; clients sharing a tree across
goroutines have to serialize access externally. Mutating a tree while an
iteration over it is in progress is not supported.

Typical usage for types ordered by '<':

	tree, err := oset.NewOrdered[int](3)
	...
	prev, replaced, err := tree.ReplaceOrInsert(7)
	tree.Ascend(func(item int) bool {
		// visit items in ascending order
		return true
	})

For item types without a natural order, clients provide a less function via
Config.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package oset

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
