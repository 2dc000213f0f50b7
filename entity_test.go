package synco

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitiesCreate(t *testing.T) {
	r := NewEntities(4)
	for i := range 10 {
		e := r.Create()
		assert.Equal(t, Entity{Index: uint32(i)}, e)
		assert.True(t, r.Alive(e))
	}
	assert.Equal(t, 10, r.Len())
	assert.Equal(t, 10, r.Cap())
}

func TestEntitiesGenerationalRecycling(t *testing.T) {
	r := NewEntities(0)
	a := r.Create()
	require.True(t, r.Delete(a))
	assert.False(t, r.Alive(a))

	b := r.Create()
	assert.Equal(t, a.Index, b.Index)
	assert.Equal(t, a.Generation+1, b.Generation)
	assert.False(t, r.Alive(a))
	assert.True(t, r.Alive(b))
	assert.Equal(t, "Entity(0v1)", b.String())
}

func TestEntitiesRecyclesLastFreedFirst(t *testing.T) {
	r := NewEntities(0)
	es := []Entity{r.Create(), r.Create(), r.Create()}
	r.Delete(es[0])
	r.Delete(es[2])
	assert.Equal(t, uint32(2), r.Create().Index)
	assert.Equal(t, uint32(0), r.Create().Index)
	assert.Equal(t, uint32(3), r.Create().Index)
}

func TestEntitiesStaleDelete(t *testing.T) {
	r := NewEntities(0)
	a := r.Create()
	require.True(t, r.Delete(a))
	assert.False(t, r.Delete(a))
	assert.False(t, r.Delete(Entity{Index: 42}))
	b := r.Create()
	assert.False(t, r.Delete(a), "stale handle must not free the reused slot")
	assert.True(t, r.Alive(b))
	assert.Equal(t, 1, r.Len())
}

func TestEntitiesClearsMaskOnReuse(t *testing.T) {
	r := NewEntities(0)
	a := r.Create()
	r.entryMut(a).mask.Set(3)
	m, ok := r.Mask(a)
	require.True(t, ok)
	assert.True(t, m.Has(3))

	r.Delete(a)
	_, ok = r.Mask(a)
	assert.False(t, ok)

	b := r.Create()
	m, ok = r.Mask(b)
	require.True(t, ok)
	assert.Equal(t, Zero(), m)
}

func TestEntitiesSaturatedSlotRetires(t *testing.T) {
	r := NewEntities(0)
	a := r.Create()
	r.slots[a.Index].generation = math.MaxUint32
	a.Generation = math.MaxUint32
	require.True(t, r.Alive(a))

	require.True(t, r.Delete(a))
	b := r.Create()
	assert.NotEqual(t, a.Index, b.Index)
	assert.Equal(t, uint32(0), b.Generation)
	assert.False(t, r.Alive(a))
}

func TestEntitiesIteration(t *testing.T) {
	r := NewEntities(0)
	var withA []Entity
	for i := range 6 {
		e := r.Create()
		if i%2 == 0 {
			r.entryMut(e).mask.Set(1)
			withA = append(withA, e)
		}
	}
	r.Delete(withA[1])
	want := []Entity{withA[0], withA[2]}

	assert.Equal(t, want, slices.Collect(r.All(Require(1))))
	assert.Len(t, slices.Collect(r.All(Everything())), 5)
	assert.Len(t, slices.Collect(r.All(Exclude(1))), 3)

	it := r.Iter(Require(1))
	var got []Entity
	for it.Next() {
		got = append(got, it.Entity())
	}
	assert.Equal(t, want, got)
	assert.False(t, it.Next())

	it.Reset()
	require.True(t, it.Next())
	assert.Equal(t, want[0], it.Entity())
}
