package bag

// Bag is a multiset: every distinct element carries a count. An element
// with count 0 is absent, never stored.
type Bag[T comparable] interface {
	Add(item T)
	AddCount(item T, count int)
	Remove(item T, count int) (changed bool)
	Count(item T) int
	Distinct() []T
	Len() int
	Size() int
}
