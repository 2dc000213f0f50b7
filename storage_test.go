package synco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenseStorage(t *testing.T) {
	s := NewDenseStorage[Position]()
	s.Insert(3, Position{X: 1, Y: 2})
	s.Insert(0, Position{X: 5})
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(3))
	assert.False(t, s.Has(1))
	assert.Equal(t, Position{X: 1, Y: 2}, *s.Get(3))

	s.Get(3).X = 10
	assert.Equal(t, 10.0, s.Get(3).X)

	v := s.Remove(3)
	assert.Equal(t, Position{X: 10, Y: 2}, v)
	assert.False(t, s.Has(3))
	assert.Equal(t, 1, s.Len())

	s.Insert(3, Position{Y: 7})
	assert.Equal(t, Position{Y: 7}, *s.Get(3))
}

func TestDenseStorageGrowsPastCapacity(t *testing.T) {
	s := NewDenseStorage[Health]()
	for i := range uint32(1000) {
		s.Insert(i, Health{HP: int(i)})
	}
	for i := range uint32(1000) {
		require.Equal(t, int(i), s.Get(i).HP)
	}
}

func TestDenseStorageChecksPresence(t *testing.T) {
	s := NewDenseStorage[Position]()
	requirePanicsWith(t, ErrComponentNotPresent, func() { s.Get(0) })
	requirePanicsWith(t, ErrComponentNotPresent, func() { s.Remove(0) })
	s.Insert(0, Position{})
	requirePanicsWith(t, ErrComponentPresent, func() { s.Insert(0, Position{}) })
}

func TestSparseStorage(t *testing.T) {
	s := NewSparseStorage[Health]()
	s.Insert(1_000_000, Health{HP: 3})
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has(1_000_000))

	p := s.Get(1_000_000)
	for i := range uint32(64) {
		s.Insert(i, Health{})
	}
	p.HP = 9
	assert.Equal(t, 9, s.Get(1_000_000).HP, "boxed values keep their address")

	assert.Equal(t, Health{HP: 9}, s.Remove(1_000_000))
	assert.False(t, s.Has(1_000_000))

	requirePanicsWith(t, ErrComponentNotPresent, func() { s.Get(1_000_000) })
	requirePanicsWith(t, ErrComponentNotPresent, func() { s.Remove(1_000_000) })
	requirePanicsWith(t, ErrComponentPresent, func() { s.Insert(0, Health{}) })
}

func TestMarkerStorage(t *testing.T) {
	s := NewMarkerStorage[Frozen]()
	s.Insert(7, Frozen{})
	assert.Equal(t, Frozen{}, *s.Get(7))
	assert.Equal(t, Frozen{}, s.Remove(7))

	requirePanicsWith(t, ErrNotZeroSize, func() { NewMarkerStorage[Health]() })
}
