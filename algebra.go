package setops

import (
	"github.com/pkg/errors"

	"github.com/denismitr/setops/bag"
	"github.com/denismitr/setops/set"
)

// Predicate filters collection elements
type Predicate[T any] func(item T) bool

// setOpIndex couples a frequency index with the distinct elements of
// both inputs, kept in first-encounter order so that one run always
// produces the same result ordering.
type setOpIndex[T comparable] struct {
	*freqIndex[T]
	distinct *set.OrderedSet[T]
	out      []T
}

func newSetOpIndex[T comparable](a, b []T) *setOpIndex[T] {
	distinct := set.NewOrderedSet[T]()
	distinct.InsertSlice(a)
	distinct.InsertSlice(b)

	return &setOpIndex[T]{
		freqIndex: newFreqIndex(a, b),
		distinct:  distinct,
		// the result holds at least one occurrence per distinct element
		out: make([]T, 0, distinct.Len()),
	}
}

func (idx *setOpIndex[T]) emit(item T, count int) {
	for i := 0; i < count; i++ {
		idx.out = append(idx.out, item)
	}
}

// Union returns the multiset union of a and b: each element occurs
// max(count in a, count in b) times. Result order is unspecified
// beyond being deterministic within a run.
func Union[T comparable](a, b []T) []T {
	idx := newSetOpIndex(a, b)
	idx.distinct.ForEach(func(item T) {
		idx.emit(item, idx.max(item))
	})
	return idx.out
}

// Intersection returns the multiset intersection of a and b: each
// element occurs min(count in a, count in b) times.
func Intersection[T comparable](a, b []T) []T {
	idx := newSetOpIndex(a, b)
	idx.distinct.ForEach(func(item T) {
		idx.emit(item, idx.min(item))
	})
	return idx.out
}

// Disjunction returns the symmetric difference of a and b: each element
// occurs |count in a - count in b| times.
func Disjunction[T comparable](a, b []T) []T {
	idx := newSetOpIndex(a, b)
	idx.distinct.ForEach(func(item T) {
		idx.emit(item, idx.max(item)-idx.min(item))
	})
	return idx.out
}

// Subtract returns a minus b: each occurrence of an element in a
// survives unless matched by a yet-unmatched occurrence in b. Unlike
// Union/Intersection/Disjunction the result preserves a's own order
// and duplicates.
func Subtract[T comparable](a, b []T) []T {
	result, _ := SubtractMatching(a, b, func(T) bool { return true })
	return result
}

// SubtractMatching subtracts only those elements of b that satisfy p;
// elements of b rejected by p do not cancel anything in a. The
// predicate must be pure.
func SubtractMatching[T comparable](a, b []T, p Predicate[T]) ([]T, error) {
	if p == nil {
		return nil, errors.WithStack(ErrNilPredicate)
	}

	removals := bag.NewHashBag[T]()
	for _, item := range b {
		if p(item) {
			removals.Add(item)
		}
	}

	result := make([]T, 0, len(a))
	for _, item := range a {
		if !removals.Remove(item, 1) {
			result = append(result, item)
		}
	}

	return result, nil
}
