package setops

import (
	"github.com/denismitr/setops/bag"
	"github.com/denismitr/setops/set"
)

// ContainsAll reports whether every distinct element of coll2 occurs at
// least once in coll1. Cardinality of coll2 is irrelevant:
// ContainsAll([1], [1,1]) is true. Runs in O(n+m): coll1 is scanned by a
// single forward cursor, with every scanned element remembered, so the
// scan never restarts.
func ContainsAll[T comparable](coll1, coll2 []T) bool {
	if len(coll2) == 0 {
		return true
	}

	seen := set.NewHashSet[T]()
	cursor := 0
	for _, next := range coll2 {
		if seen.Has(next) {
			continue
		}

		found := false
		for cursor < len(coll1) {
			item := coll1[cursor]
			cursor++
			seen.Insert(item)
			if item == next {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

// ContainsAny reports whether the two collections share at least one
// element. The smaller input is indexed, the larger one scanned.
func ContainsAny[T comparable](coll1, coll2 []T) bool {
	smaller, larger := coll1, coll2
	if len(coll2) < len(coll1) {
		smaller, larger = coll2, coll1
	}

	index := set.NewHashSet[T]()
	index.InsertSlice(smaller)

	for _, item := range larger {
		if index.Has(item) {
			return true
		}
	}

	return false
}

// IsSubCollection reports whether a is a sub-collection of b: the
// cardinality of every element of a is at most its cardinality in b.
func IsSubCollection[T comparable](a, b []T) bool {
	idx := newFreqIndex(a, b)
	for _, item := range a {
		if idx.freqLeft(item) > idx.freqRight(item) {
			return false
		}
	}
	return true
}

// IsProperSubCollection additionally requires b to be strictly larger
// than a. It relies on the slice lengths being the true total
// cardinalities.
func IsProperSubCollection[T comparable](a, b []T) bool {
	return len(a) < len(b) && IsSubCollection(a, b)
}

// IsEqualCollection reports whether a and b are identical as multisets:
// every element has the same cardinality in both, regardless of order.
func IsEqualCollection[T comparable](a, b []T) bool {
	return bag.FromSlice(a).Equal(bag.FromSlice(b))
}
