package setops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/denismitr/setops"
)

func TestCardinality(t *testing.T) {
	assert.Equal(t, 3, setops.Cardinality("a", []string{"a", "b", "a", "c", "a"}))
	assert.Equal(t, 0, setops.Cardinality("x", []string{"a", "b"}))
	assert.Equal(t, 0, setops.Cardinality(1, nil))
}

func TestCardinalityMap(t *testing.T) {
	t.Run("counts every distinct element", func(t *testing.T) {
		m := setops.CardinalityMap([]int{1, 2, 1, 3, 1, 2})

		assert.Equal(t, map[int]int{1: 3, 2: 2, 3: 1}, m)
	})

	t.Run("empty collection", func(t *testing.T) {
		assert.Empty(t, setops.CardinalityMap[string](nil))
	})
}
