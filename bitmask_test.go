package synco

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitMask(t *testing.T) {
	m := Zero()
	assert.Equal(t, 0, m.Len())

	m.Set(0)
	m.Set(5)
	m.Set(63)
	assert.True(t, m.Has(0))
	assert.True(t, m.Has(5))
	assert.True(t, m.Has(63))
	assert.False(t, m.Has(1))
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []ComponentID{0, 5, 63}, slices.Collect(m.Bits()))

	m.Unset(5)
	assert.False(t, m.Has(5))
	m.Unset(5)
	assert.Equal(t, 2, m.Len())

	assert.Equal(t, With(1)|With(2), With(1).Union(With(2)))
	assert.Equal(t, With(2), (With(1) | With(2)).Intersection(With(2)|With(3)))
}

func TestBitMaskBitsStopsEarly(t *testing.T) {
	m := With(1) | With(2) | With(3)
	var seen []ComponentID
	for id := range m.Bits() {
		seen = append(seen, id)
		if id == 2 {
			break
		}
	}
	assert.Equal(t, []ComponentID{1, 2}, seen)
}

func TestFilterMatches(t *testing.T) {
	assert.True(t, Everything().Matches(Zero()))
	assert.True(t, Everything().Matches(With(7)))

	req := Require(3)
	assert.True(t, req.Matches(With(3)))
	assert.True(t, req.Matches(With(3)|With(4)))
	assert.False(t, req.Matches(With(4)))

	ex := Exclude(3)
	assert.True(t, ex.Matches(Zero()))
	assert.True(t, ex.Matches(With(4)))
	assert.False(t, ex.Matches(With(3)|With(4)))
}

func TestCombineFilters(t *testing.T) {
	t.Run("requirements accumulate", func(t *testing.T) {
		f, ok := CombineFilters(Require(1), Require(2))
		require.True(t, ok)
		assert.Equal(t, Filter{Check: With(1) | With(2), Mask: With(1) | With(2)}, f)
		assert.True(t, f.Matches(With(1)|With(2)|With(9)))
		assert.False(t, f.Matches(With(1)))
	})

	t.Run("require and exclude different bits", func(t *testing.T) {
		f, ok := CombineFilters(Require(1), Exclude(2))
		require.True(t, ok)
		assert.True(t, f.Matches(With(1)))
		assert.False(t, f.Matches(With(1)|With(2)))
		assert.False(t, f.Matches(Zero()))
	})

	t.Run("everything is the identity", func(t *testing.T) {
		for _, g := range []Filter{Everything(), Require(4), Exclude(4)} {
			f, ok := CombineFilters(Everything(), g)
			require.True(t, ok)
			assert.Equal(t, g, f)
			f, ok = CombineFilters(g, Everything())
			require.True(t, ok)
			assert.Equal(t, g, f)
		}
	})

	t.Run("agreeing constraints are idempotent", func(t *testing.T) {
		f, ok := CombineFilters(Exclude(6), Exclude(6))
		require.True(t, ok)
		assert.Equal(t, Exclude(6), f)
		f, ok = CombineFilters(Require(6), Require(6))
		require.True(t, ok)
		assert.Equal(t, Require(6), f)
	})

	t.Run("contradiction", func(t *testing.T) {
		_, ok := CombineFilters(Require(1), Exclude(1))
		assert.False(t, ok)
		_, ok = CombineFilters(Exclude(1), Require(1))
		assert.False(t, ok)
	})
}
