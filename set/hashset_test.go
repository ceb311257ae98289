package set_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/denismitr/setops/set"
)

func TestHashSet_Insert(t *testing.T) {
	t.Run("insert reports whether the set was modified", func(t *testing.T) {
		s := set.NewHashSet[string]()

		assert.True(t, s.Insert("foo"))
		assert.False(t, s.Insert("foo"))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("insert slice deduplicates", func(t *testing.T) {
		s := set.NewHashSet[int]()

		assert.True(t, s.InsertSlice([]int{1, 2, 2, 3, 1}))
		assert.Equal(t, 3, s.Len())

		assert.False(t, s.InsertSlice([]int{1, 2, 3}))
	})
}

func TestHashSet_Remove(t *testing.T) {
	t.Run("remove existing item", func(t *testing.T) {
		s := set.NewHashSet[string]()
		s.InsertSlice([]string{"foo", "bar", "baz"})

		assert.True(t, s.Remove("bar"))
		assert.False(t, s.Has("bar"))

		items := s.Items()
		sort.Strings(items)
		assert.Equal(t, []string{"baz", "foo"}, items)
	})

	t.Run("remove missing item", func(t *testing.T) {
		s := set.NewHashSet[string]()
		s.Insert("foo")

		assert.False(t, s.Remove("bar"))
		assert.Equal(t, 1, s.Len())
	})
}
