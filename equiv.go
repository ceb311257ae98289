package setops

import (
	"github.com/pkg/errors"

	"github.com/denismitr/setops/equator"
)

// equivSet is a membership set keyed by an Equator instead of the
// element type's own equality: elements hash into buckets and an
// equate scan resolves collisions within a bucket.
type equivSet[T any] struct {
	eq      *equator.Equator[T]
	buckets map[uint64][]T
}

func newEquivSet[T any](eq *equator.Equator[T]) *equivSet[T] {
	return &equivSet[T]{
		eq:      eq,
		buckets: make(map[uint64][]T),
	}
}

func (s *equivSet[T]) insert(item T) {
	h := s.eq.Hash(item)
	for _, existing := range s.buckets[h] {
		if s.eq.Equate(existing, item) {
			return
		}
	}
	s.buckets[h] = append(s.buckets[h], item)
}

func (s *equivSet[T]) has(item T) bool {
	for _, existing := range s.buckets[s.eq.Hash(item)] {
		if s.eq.Equate(existing, item) {
			return true
		}
	}
	return false
}

// classIndex assigns every equivalence class a small int key, letting
// equator-based operations delegate to the default-equality algorithms
// over the keys. Representatives are never exposed to the caller.
type classIndex[T any] struct {
	eq      *equator.Equator[T]
	buckets map[uint64][]classEntry[T]
	next    int
}

type classEntry[T any] struct {
	repr T
	id   int
}

func newClassIndex[T any](eq *equator.Equator[T]) *classIndex[T] {
	return &classIndex[T]{
		eq:      eq,
		buckets: make(map[uint64][]classEntry[T]),
	}
}

func (ci *classIndex[T]) keyFor(item T) int {
	h := ci.eq.Hash(item)
	for _, entry := range ci.buckets[h] {
		if ci.eq.Equate(entry.repr, item) {
			return entry.id
		}
	}

	id := ci.next
	ci.next++
	ci.buckets[h] = append(ci.buckets[h], classEntry[T]{repr: item, id: id})
	return id
}

// IsEqualCollectionBy reports whether a and b are identical as
// multisets under the given equator. Total cardinalities must match
// before any per-element matching is attempted.
func IsEqualCollectionBy[T any](a, b []T, eq *equator.Equator[T]) (bool, error) {
	if eq == nil {
		return false, errors.WithStack(ErrNilEquator)
	}

	if len(a) != len(b) {
		return false, nil
	}

	ci := newClassIndex(eq)

	keysA := make([]int, len(a))
	for i, item := range a {
		keysA[i] = ci.keyFor(item)
	}

	keysB := make([]int, len(b))
	for i, item := range b {
		keysB[i] = ci.keyFor(item)
	}

	return IsEqualCollection(keysA, keysB), nil
}

// RemoveAll keeps every element of collection that no element of
// remove equates to. Survivors keep collection's order and duplicate
// count: this is a per-element filter, not a multiset subtraction, so
// how often an equal element occurs in remove is irrelevant.
func RemoveAll[T any](collection, remove []T, eq *equator.Equator[T]) ([]T, error) {
	if eq == nil {
		return nil, errors.WithStack(ErrNilEquator)
	}

	removeSet := newEquivSet(eq)
	for _, item := range remove {
		removeSet.insert(item)
	}

	result := make([]T, 0, len(collection))
	for _, item := range collection {
		if !removeSet.has(item) {
			result = append(result, item)
		}
	}

	return result, nil
}

// RetainAll keeps every element of collection that some element of
// retain equates to, preserving collection's order and duplicates.
func RetainAll[T any](collection, retain []T, eq *equator.Equator[T]) ([]T, error) {
	if eq == nil {
		return nil, errors.WithStack(ErrNilEquator)
	}

	retainSet := newEquivSet(eq)
	for _, item := range retain {
		retainSet.insert(item)
	}

	result := make([]T, 0, len(collection))
	for _, item := range collection {
		if retainSet.has(item) {
			result = append(result, item)
		}
	}

	return result, nil
}
