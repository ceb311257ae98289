package setops

import "github.com/denismitr/setops/bag"

// freqIndex is a per-element cardinality lookup over two collections.
// It is built once per operation and read-only afterwards.
type freqIndex[T comparable] struct {
	left  *bag.HashBag[T]
	right *bag.HashBag[T]
}

func newFreqIndex[T comparable](a, b []T) *freqIndex[T] {
	return &freqIndex[T]{
		left:  bag.FromSlice(a),
		right: bag.FromSlice(b),
	}
}

func (f *freqIndex[T]) freqLeft(item T) int {
	return f.left.Count(item)
}

func (f *freqIndex[T]) freqRight(item T) int {
	return f.right.Count(item)
}

func (f *freqIndex[T]) min(item T) int {
	l, r := f.left.Count(item), f.right.Count(item)
	if l < r {
		return l
	}
	return r
}

func (f *freqIndex[T]) max(item T) int {
	l, r := f.left.Count(item), f.right.Count(item)
	if l > r {
		return l
	}
	return r
}

// Cardinality counts the occurrences of item in coll.
func Cardinality[T comparable](item T, coll []T) int {
	n := 0
	for _, v := range coll {
		if v == item {
			n++
		}
	}
	return n
}

// CardinalityMap maps each distinct element of coll to its number
// of occurrences.
func CardinalityMap[T comparable](coll []T) map[T]int {
	m := make(map[T]int, len(coll))
	for _, v := range coll {
		m[v]++
	}
	return m
}
