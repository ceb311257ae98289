package set_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/denismitr/setops/set"
)

func TestOrderedSet_Insert(t *testing.T) {
	t.Run("items keep insertion order", func(t *testing.T) {
		s := set.NewOrderedSet[string]()
		s.Insert("foo")
		s.Insert("bar")
		s.Insert("baz")
		s.Insert("bar")

		assert.Equal(t, []string{"foo", "bar", "baz"}, s.Items())
		assert.Equal(t, 3, s.Len())
	})

	t.Run("reinsert does not move the item", func(t *testing.T) {
		s := set.NewOrderedSet[int]()
		s.InsertSlice([]int{1, 2, 3})
		s.Insert(1)

		assert.Equal(t, []int{1, 2, 3}, s.Items())
	})
}

func TestOrderedSet_Remove(t *testing.T) {
	t.Run("remove keeps the order of the rest", func(t *testing.T) {
		s := set.NewOrderedSet[string]()
		s.InsertSlice([]string{"foo", "bar", "baz"})

		assert.True(t, s.Remove("bar"))
		assert.Equal(t, []string{"foo", "baz"}, s.Items())
	})

	t.Run("remove missing item", func(t *testing.T) {
		s := set.NewOrderedSet[string]()
		s.Insert("foo")

		assert.False(t, s.Remove("bar"))
	})
}

func TestOrderedSet_ForEach(t *testing.T) {
	s := set.NewOrderedSet[int]()
	s.InsertSlice([]int{3, 1, 2, 3, 1})

	var visited []int
	s.ForEach(func(item int) {
		visited = append(visited, item)
	})

	assert.Equal(t, []int{3, 1, 2}, visited)
}
