package oset

import "sort"

// sequence is the per-node ordered storage primitive. It backs both the item
// slice and the child slice of a node; the two must be mutated in lockstep to
// keep the node-level size correspondence intact (see node.go).
type sequence[T any] []T

// insertAt inserts a value at index, pushing all subsequent values forward.
func (s *sequence[T]) insertAt(index int, value T) {
	assert(index >= 0 && index <= len(*s), "sequence.insertAt index out of range")
	var zero T
	*s = append(*s, zero)
	if index < len(*s) {
		copy((*s)[index+1:], (*s)[index:])
	}
	(*s)[index] = value
}

// removeAt removes the value at index, pulling all subsequent values back.
func (s *sequence[T]) removeAt(index int) T {
	assert(index >= 0 && index < len(*s), "sequence.removeAt index out of range")
	value := (*s)[index]
	copy((*s)[index:], (*s)[index+1:])
	var zero T
	(*s)[len(*s)-1] = zero
	*s = (*s)[:len(*s)-1]
	return value
}

// pop removes and returns the last value.
func (s *sequence[T]) pop() (out T) {
	index := len(*s) - 1
	assert(index >= 0, "sequence.pop on empty sequence")
	out = (*s)[index]
	var zero T
	(*s)[index] = zero
	*s = (*s)[:index]
	return out
}

// truncate shortens the sequence to its first index values, zeroing the tail
// so dropped values do not pin heap objects.
func (s *sequence[T]) truncate(index int) {
	assert(index >= 0 && index <= len(*s), "sequence.truncate index out of range")
	var toClear sequence[T]
	*s, toClear = (*s)[:index], (*s)[index:]
	var zero T
	for i := 0; i < len(toClear); i++ {
		toClear[i] = zero
	}
}

// find returns the index where item should be inserted into this sequence.
// found is true if an equal item already sits at the returned index;
// otherwise the index is the first position whose value is greater.
func (s sequence[T]) find(item T, less LessFunc[T]) (index int, found bool) {
	i := sort.Search(len(s), func(i int) bool {
		return less(item, s[i])
	})
	if i > 0 && !less(s[i-1], item) {
		return i - 1, true
	}
	return i, false
}
