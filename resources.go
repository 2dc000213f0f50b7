package synco

import (
	"reflect"

	"github.com/rotisserie/eris"
)

// Resources is a type-indexed table holding at most one value per type.
// Every value sits in a cell that enforces "many readers xor one writer" at
// the moment a guard is acquired. Component storages live here too, under the
// key Storage[T], next to any user-defined singleton such as a frame clock.
//
// Resources is not safe for concurrent use; the borrow rules describe
// overlapping guards within one goroutine.
type Resources struct {
	cells   []*cell
	types   map[reflect.Type]int
	freeIds []int
}

// cell is one resident value, boxed as *T, plus its borrow state. A pinned
// cell belongs to a World and cannot be replaced or removed.
type cell struct {
	value   any
	typ     reflect.Type
	readers int
	writing bool
	pinned  bool
}

func (c *cell) acquireRead() error {
	if c.writing {
		return eris.Wrapf(ErrBorrowConflict, "cannot read %s: borrowed for writing", c.typ)
	}
	c.readers++
	return nil
}

func (c *cell) acquireWrite() error {
	if err := c.checkWrite(); err != nil {
		return err
	}
	c.writing = true
	return nil
}

// checkWrite reports whether a write guard could be acquired now.
func (c *cell) checkWrite() error {
	if c.writing {
		return eris.Wrapf(ErrBorrowConflict, "cannot write %s: borrowed for writing", c.typ)
	}
	if c.readers > 0 {
		return eris.Wrapf(ErrBorrowConflict, "cannot write %s: %d readers outstanding", c.typ, c.readers)
	}
	return nil
}

func (c *cell) borrowed() bool { return c.writing || c.readers > 0 }

// lookup returns the cell for t, or nil.
func (r *Resources) lookup(t reflect.Type) *cell {
	id, ok := r.types[t]
	if !ok {
		return nil
	}
	return r.cells[id]
}

// insert stores v under t and returns the value it replaced. Freed ids are
// reused before the cell slice grows.
func (r *Resources) insert(t reflect.Type, v any) (any, bool) {
	if c := r.lookup(t); c != nil {
		if c.pinned {
			panic(eris.Wrapf(ErrPinnedResource, "cannot replace %s", t))
		}
		if c.borrowed() {
			panic(eris.Wrapf(ErrBorrowConflict, "cannot replace %s while it is borrowed", t))
		}
		prev := c.value
		c.value = v
		return prev, true
	}
	if r.types == nil {
		r.types = make(map[reflect.Type]int)
	}
	c := &cell{value: v, typ: t}
	var id int
	if n := len(r.freeIds); n > 0 {
		id = r.freeIds[n-1]
		r.freeIds = r.freeIds[:n-1]
		r.cells[id] = c
	} else {
		r.cells = append(r.cells, c)
		id = len(r.cells) - 1
	}
	r.types[t] = id
	return nil, false
}

// remove drops the cell for t and returns its value.
func (r *Resources) remove(t reflect.Type) (any, bool) {
	id, ok := r.types[t]
	if !ok {
		return nil, false
	}
	c := r.cells[id]
	if c.pinned {
		panic(eris.Wrapf(ErrPinnedResource, "cannot remove %s", t))
	}
	if c.borrowed() {
		panic(eris.Wrapf(ErrBorrowConflict, "cannot remove %s while it is borrowed", t))
	}
	delete(r.types, t)
	r.cells[id] = nil
	r.freeIds = append(r.freeIds, id)
	return c.value, true
}

// Len returns the number of resident values, storages included.
func (r *Resources) Len() int { return len(r.types) }

// pin marks the cell for t as owned by a World.
func (r *Resources) pin(t reflect.Type) {
	if c := r.lookup(t); c != nil {
		c.pinned = true
	}
}

// Clear drops every resident value except the ones a World owns: its entity
// registry and component storages stay. It panics with ErrBorrowConflict if
// any value it would drop is borrowed.
func (r *Resources) Clear() {
	for t, id := range r.types {
		if c := r.cells[id]; !c.pinned && c.borrowed() {
			panic(eris.Wrapf(ErrBorrowConflict, "cannot clear resources: %s is borrowed", t))
		}
	}
	for t, id := range r.types {
		if !r.cells[id].pinned {
			r.remove(t)
		}
	}
	if len(r.types) == 0 {
		clear(r.cells)
		r.cells = r.cells[:0]
		r.freeIds = r.freeIds[:0]
	}
}

// InsertResource stores v as the single resource of type T. If a value of
// that exact type was already present, it is replaced and returned.
// Replacing a value that is currently borrowed panics with ErrBorrowConflict,
// replacing one a World owns with ErrPinnedResource.
func InsertResource[T any](r *Resources, v T) (T, bool) {
	prev, ok := r.insert(reflect.TypeFor[T](), &v)
	if !ok {
		var zero T
		return zero, false
	}
	return *prev.(*T), true
}

// RemoveResource takes the resource of type T out of the table. The entity
// registry and component storages of a World cannot be removed; trying panics
// with ErrPinnedResource.
func RemoveResource[T any](r *Resources) (T, bool) {
	prev, ok := r.remove(reflect.TypeFor[T]())
	if !ok {
		var zero T
		return zero, false
	}
	return *prev.(*T), true
}

// HasResource reports whether a resource of type T is present.
func HasResource[T any](r *Resources) bool {
	return r.lookup(reflect.TypeFor[T]()) != nil
}

// ReadResource acquires shared access to the resource of type T. It panics
// with ErrMissingResource if there is none and with ErrBorrowConflict if the
// resource is borrowed for writing.
func ReadResource[T any](r *Resources) *ReadGuard[T] {
	g, err := tryReadResource[T](r)
	if err != nil {
		panic(err)
	}
	return g
}

// WriteResource acquires exclusive access to the resource of type T. It
// panics with ErrMissingResource if there is none and with ErrBorrowConflict
// if any other guard on it is outstanding.
func WriteResource[T any](r *Resources) *WriteGuard[T] {
	g, err := tryWriteResource[T](r)
	if err != nil {
		panic(err)
	}
	return g
}

// WithRead runs fn with shared access to the resource of type T and releases
// the guard however fn returns.
func WithRead[T any](r *Resources, fn func(*T)) {
	g := ReadResource[T](r)
	defer g.Release()
	fn(g.Get())
}

// WithWrite runs fn with exclusive access to the resource of type T and
// releases the guard however fn returns.
func WithWrite[T any](r *Resources, fn func(*T)) {
	g := WriteResource[T](r)
	defer g.Release()
	fn(g.Get())
}

func tryReadResource[T any](r *Resources) (*ReadGuard[T], error) {
	c := r.lookup(reflect.TypeFor[T]())
	if c == nil {
		return nil, eris.Wrapf(ErrMissingResource, "read %s", typeName[T]())
	}
	if err := c.acquireRead(); err != nil {
		return nil, err
	}
	return &ReadGuard[T]{cell: c, value: c.value.(*T)}, nil
}

func tryWriteResource[T any](r *Resources) (*WriteGuard[T], error) {
	c := r.lookup(reflect.TypeFor[T]())
	if c == nil {
		return nil, eris.Wrapf(ErrMissingResource, "write %s", typeName[T]())
	}
	if err := c.acquireWrite(); err != nil {
		return nil, err
	}
	return &WriteGuard[T]{cell: c, value: c.value.(*T)}, nil
}

// ReadGuard is shared access to one resource. Go cannot enforce read-only
// pointers, so not mutating through Get is the caller's side of the
// contract.
type ReadGuard[T any] struct {
	cell     *cell
	value    *T
	released bool
}

// Get returns the guarded value. It panics once the guard is released.
func (g *ReadGuard[T]) Get() *T {
	if g.released {
		panic(eris.Wrapf(ErrBorrowConflict, "read guard on %s used after release", g.cell.typ))
	}
	return g.value
}

// Clone acquires another shared guard on the same resource.
func (g *ReadGuard[T]) Clone() *ReadGuard[T] {
	if g.released {
		panic(eris.Wrapf(ErrBorrowConflict, "read guard on %s cloned after release", g.cell.typ))
	}
	g.cell.readers++
	return &ReadGuard[T]{cell: g.cell, value: g.value}
}

// Release gives the borrow back. Calling it more than once has no effect.
func (g *ReadGuard[T]) Release() {
	if g.released {
		return
	}
	g.released = true
	g.cell.readers--
}

// WriteGuard is exclusive access to one resource.
type WriteGuard[T any] struct {
	cell     *cell
	value    *T
	released bool
}

// Get returns the guarded value. It panics once the guard is released.
func (g *WriteGuard[T]) Get() *T {
	if g.released {
		panic(eris.Wrapf(ErrBorrowConflict, "write guard on %s used after release", g.cell.typ))
	}
	return g.value
}

// Release gives the borrow back. Calling it more than once has no effect.
func (g *WriteGuard[T]) Release() {
	if g.released {
		return
	}
	g.released = true
	g.cell.writing = false
}
