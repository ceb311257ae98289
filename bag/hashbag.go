package bag

// HashBag - is an unordered multiset backed by a map from element to count
type HashBag[T comparable] struct {
	m    map[T]int
	size int
}

var _ Bag[int] = (*HashBag[int])(nil)

func NewHashBag[T comparable]() *HashBag[T] {
	return &HashBag[T]{
		m: make(map[T]int),
	}
}

// FromSlice builds a HashBag containing every item of the slice
// with its multiplicity.
func FromSlice[T comparable](items []T) *HashBag[T] {
	b := &HashBag[T]{
		m: make(map[T]int, len(items)),
	}

	for _, item := range items {
		b.m[item]++
	}
	b.size = len(items)

	return b
}

func (b *HashBag[T]) Add(item T) {
	b.m[item]++
	b.size++
}

// AddCount adds count occurrences of item. Zero or negative counts
// leave the bag untouched.
func (b *HashBag[T]) AddCount(item T, count int) {
	if count <= 0 {
		return
	}

	b.m[item] += count
	b.size += count
}

// Remove removes up to count occurrences of item and reports whether
// the bag changed. When the last occurrence goes, the element is
// deleted so that a zero count is never stored.
func (b *HashBag[T]) Remove(item T, count int) (changed bool) {
	if count <= 0 {
		return false
	}

	current, found := b.m[item]
	if !found {
		return false
	}

	if current <= count {
		delete(b.m, item)
		b.size -= current
	} else {
		b.m[item] = current - count
		b.size -= count
	}

	return true
}

// Count returns the multiplicity of item, 0 if absent.
func (b *HashBag[T]) Count(item T) int {
	return b.m[item]
}

// Distinct returns every element exactly once, in map iteration order.
func (b *HashBag[T]) Distinct() []T {
	items := make([]T, 0, len(b.m))
	for item := range b.m {
		items = append(items, item)
	}
	return items
}

// Len is the number of distinct elements.
func (b *HashBag[T]) Len() int {
	return len(b.m)
}

// Size is the total cardinality, counting duplicates.
func (b *HashBag[T]) Size() int {
	return b.size
}

// Equal reports whether both bags hold the same distinct elements
// with the same counts, regardless of internal ordering.
func (b *HashBag[T]) Equal(other *HashBag[T]) bool {
	if len(b.m) != len(other.m) {
		return false
	}

	for item, count := range b.m {
		if other.m[item] != count {
			return false
		}
	}

	return true
}
