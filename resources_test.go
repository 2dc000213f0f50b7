package synco

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	Tick int
}

type gravity struct {
	G float64
}

func TestResources(t *testing.T) {
	t.Run("Insert and Read", func(t *testing.T) {
		r := &Resources{}
		_, replaced := InsertResource(r, clock{Tick: 3})
		assert.False(t, replaced)
		assert.True(t, HasResource[clock](r))
		assert.False(t, HasResource[gravity](r))

		g := ReadResource[clock](r)
		assert.Equal(t, 3, g.Get().Tick)
		g.Release()
	})

	t.Run("Insert replaces", func(t *testing.T) {
		r := &Resources{}
		InsertResource(r, clock{Tick: 1})
		prev, replaced := InsertResource(r, clock{Tick: 2})
		assert.True(t, replaced)
		assert.Equal(t, clock{Tick: 1}, prev)
		assert.Equal(t, 1, r.Len())
		WithRead(r, func(c *clock) { assert.Equal(t, 2, c.Tick) })
	})

	t.Run("Remove", func(t *testing.T) {
		r := &Resources{}
		InsertResource(r, gravity{G: 9.8})
		v, ok := RemoveResource[gravity](r)
		assert.True(t, ok)
		assert.Equal(t, gravity{G: 9.8}, v)
		assert.False(t, HasResource[gravity](r))

		_, ok = RemoveResource[gravity](r)
		assert.False(t, ok)
	})

	t.Run("Insert after Remove reuses cell", func(t *testing.T) {
		r := &Resources{}
		InsertResource(r, clock{})
		InsertResource(r, gravity{})
		id := r.types[reflect.TypeFor[clock]()]
		RemoveResource[clock](r)
		InsertResource(r, clock{Tick: 5})
		assert.Equal(t, id, r.types[reflect.TypeFor[clock]()])
		assert.Len(t, r.cells, 2)
	})

	t.Run("Write mutates in place", func(t *testing.T) {
		r := &Resources{}
		InsertResource(r, clock{})
		WithWrite(r, func(c *clock) { c.Tick++ })
		WithWrite(r, func(c *clock) { c.Tick++ })
		WithRead(r, func(c *clock) { assert.Equal(t, 2, c.Tick) })
	})

	t.Run("Clear", func(t *testing.T) {
		r := &Resources{}
		InsertResource(r, clock{})
		InsertResource(r, gravity{})
		r.Clear()
		assert.Equal(t, 0, r.Len())
		assert.Empty(t, r.cells)
		assert.Empty(t, r.freeIds)
		assert.False(t, HasResource[clock](r))
	})

	t.Run("Clear keeps pinned values", func(t *testing.T) {
		r := &Resources{}
		InsertResource(r, clock{Tick: 4})
		InsertResource(r, gravity{})
		r.pin(reflect.TypeFor[clock]())
		g := ReadResource[clock](r)
		r.Clear()
		g.Release()
		assert.Equal(t, 1, r.Len())
		assert.False(t, HasResource[gravity](r))
		WithRead(r, func(c *clock) { assert.Equal(t, 4, c.Tick) })
		InsertResource(r, gravity{G: 1})
		assert.True(t, HasResource[gravity](r))
	})

	t.Run("Missing resource", func(t *testing.T) {
		r := &Resources{}
		requirePanicsWith(t, ErrMissingResource, func() { ReadResource[clock](r) })
		requirePanicsWith(t, ErrMissingResource, func() { WriteResource[clock](r) })
	})

	t.Run("Pointers preserved", func(t *testing.T) {
		r := &Resources{}
		InsertResource(r, clock{})
		a := ReadResource[clock](r)
		b := ReadResource[clock](r)
		assert.Same(t, a.Get(), b.Get())
		a.Release()
		b.Release()
	})
}

func TestResourceBorrowRules(t *testing.T) {
	t.Run("many readers", func(t *testing.T) {
		r := &Resources{}
		InsertResource(r, clock{})
		a := ReadResource[clock](r)
		b := ReadResource[clock](r)
		c := a.Clone()
		requirePanicsWith(t, ErrBorrowConflict, func() { WriteResource[clock](r) })
		a.Release()
		b.Release()
		requirePanicsWith(t, ErrBorrowConflict, func() { WriteResource[clock](r) })
		c.Release()
		WriteResource[clock](r).Release()
	})

	t.Run("one writer", func(t *testing.T) {
		r := &Resources{}
		InsertResource(r, clock{})
		w := WriteResource[clock](r)
		requirePanicsWith(t, ErrBorrowConflict, func() { ReadResource[clock](r) })
		requirePanicsWith(t, ErrBorrowConflict, func() { WriteResource[clock](r) })
		w.Release()
		ReadResource[clock](r).Release()
	})

	t.Run("types are independent", func(t *testing.T) {
		r := &Resources{}
		InsertResource(r, clock{})
		InsertResource(r, gravity{})
		w := WriteResource[clock](r)
		g := WriteResource[gravity](r)
		w.Release()
		g.Release()
	})

	t.Run("release is idempotent", func(t *testing.T) {
		r := &Resources{}
		InsertResource(r, clock{})
		a := ReadResource[clock](r)
		b := ReadResource[clock](r)
		a.Release()
		a.Release()
		requirePanicsWith(t, ErrBorrowConflict, func() { WriteResource[clock](r) })
		b.Release()

		w := WriteResource[clock](r)
		w.Release()
		w.Release()
		ReadResource[clock](r).Release()
	})

	t.Run("guard unusable after release", func(t *testing.T) {
		r := &Resources{}
		InsertResource(r, clock{})
		g := ReadResource[clock](r)
		g.Release()
		requirePanicsWith(t, ErrBorrowConflict, func() { g.Get() })
		requirePanicsWith(t, ErrBorrowConflict, func() { g.Clone() })
		w := WriteResource[clock](r)
		w.Release()
		requirePanicsWith(t, ErrBorrowConflict, func() { w.Get() })
	})

	t.Run("scoped access releases on panic", func(t *testing.T) {
		r := &Resources{}
		InsertResource(r, clock{})
		require.Panics(t, func() {
			WithWrite(r, func(*clock) { panic("boom") })
		})
		ReadResource[clock](r).Release()
	})

	t.Run("borrowed resources cannot be replaced", func(t *testing.T) {
		r := &Resources{}
		InsertResource(r, clock{})
		g := ReadResource[clock](r)
		requirePanicsWith(t, ErrBorrowConflict, func() { InsertResource(r, clock{Tick: 1}) })
		requirePanicsWith(t, ErrBorrowConflict, func() { RemoveResource[clock](r) })
		requirePanicsWith(t, ErrBorrowConflict, func() { r.Clear() })
		g.Release()
		InsertResource(r, clock{Tick: 1})
	})
}

func generateDistinctTypesAndRes(n int) ([]reflect.Type, []any) {
	types := make([]reflect.Type, n)
	res := make([]any, n)
	for i := 0; i < n; i++ {
		fields := []reflect.StructField{
			{Name: fmt.Sprintf("F%d", i), Type: reflect.TypeOf(0)},
		}
		types[i] = reflect.StructOf(fields)
		res[i] = reflect.New(types[i]).Interface()
	}
	return types, res
}
