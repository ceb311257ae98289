package equator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/setops/equator"
)

func TestNew(t *testing.T) {
	t.Run("valid equate and hash functions", func(t *testing.T) {
		eq, err := equator.New(
			func(a, b int) bool { return a%10 == b%10 },
			func(v int) uint64 { return uint64(v % 10) },
		)
		require.NoError(t, err)

		assert.True(t, eq.Equate(12, 42))
		assert.False(t, eq.Equate(12, 43))
		assert.Equal(t, eq.Hash(12), eq.Hash(42))
	})

	t.Run("nil equate function", func(t *testing.T) {
		_, err := equator.New[int](nil, func(v int) uint64 { return 0 })
		require.Error(t, err)
		assert.ErrorIs(t, err, equator.ErrNilFunction)
	})

	t.Run("nil hash function", func(t *testing.T) {
		_, err := equator.New[int](func(a, b int) bool { return a == b }, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, equator.ErrNilFunction)
	})
}

func TestCaseInsensitive(t *testing.T) {
	eq := equator.CaseInsensitive()

	assert.True(t, eq.Equate("Foo", "fOO"))
	assert.False(t, eq.Equate("foo", "bar"))
	assert.Equal(t, eq.Hash("Foo"), eq.Hash("fOO"))
}
