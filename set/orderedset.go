package set

import (
	"github.com/denismitr/dll"
)

// OrderedSet - is a set that iterates in insertion order
type OrderedSet[T comparable] struct {
	m    map[T]*dll.Element[T]
	list *dll.DoublyLinkedList[T]
}

var _ Set[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{
		m:    make(map[T]*dll.Element[T]),
		list: dll.New[T](),
	}
}

func (s *OrderedSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		newEl := dll.NewElement(item)
		s.m[item] = newEl
		s.list.PushTail(newEl)
		modified = true
	}

	return modified
}

func (s *OrderedSet[T]) InsertSlice(items []T) (modified bool) {
	for _, item := range items {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) Remove(item T) bool {
	if el, found := s.m[item]; found {
		delete(s.m, item)
		s.list.Remove(el)
		return true
	}

	return false
}

func (s *OrderedSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

// Items returns the set elements in insertion order.
func (s *OrderedSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	curr := s.list.Head()
	for curr != nil {
		items = append(items, curr.Value())
		curr = curr.Next()
	}
	return items
}

// ForEach visits the set elements in insertion order.
func (s *OrderedSet[T]) ForEach(f func(item T)) {
	curr := s.list.Head()
	for curr != nil {
		f(curr.Value())
		curr = curr.Next()
	}
}

func (s *OrderedSet[T]) Len() int {
	return len(s.m)
}
