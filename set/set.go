package set

type Set[T comparable] interface {
	Insert(item T) (modified bool)
	InsertSlice(items []T) (modified bool)
	Remove(item T) bool
	Has(item T) bool
	Items() []T
	Len() int
}
