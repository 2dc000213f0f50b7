package synco

import (
	"github.com/rotisserie/eris"
)

// InsertComponent stores v as e's component of type T.
//
// If e already holds a T, the stored value is replaced and the previous one
// is returned with true. Otherwise the component bit is set and the zero
// value is returned with false.
//
// It panics with ErrEntityNotFound if e is not alive, with
// ErrUnregisteredComponent if T is not registered, and with
// ErrBorrowConflict if a Query or guard is holding the registry or T's
// storage.
func InsertComponent[T any](w *World, e Entity, v T) (T, bool) {
	id := mustComponentID[T](w)
	prev, replaced := insertComponent(w, id, e, v)
	Publish(w.events, ComponentInserted{Entity: e, Component: id, Replaced: replaced})
	return prev, replaced
}

func insertComponent[T any](w *World, id ComponentID, e Entity, v T) (prev T, replaced bool) {
	eg := WriteResource[Entities](w.resources)
	defer eg.Release()
	s := eg.Get().entryMut(e)
	if s == nil {
		panic(eris.Wrapf(ErrEntityNotFound, "insert %s into %s", typeName[T](), e))
	}
	sg := WriteResource[Storage[T]](w.resources)
	defer sg.Release()
	storage := *sg.Get()
	if s.mask.Has(id) {
		prev, replaced = storage.Remove(e.Index), true
	}
	storage.Insert(e.Index, v)
	s.mask.Set(id)
	return prev, replaced
}

// RemoveComponent takes e's component of type T out of the store, clearing
// its bit. It returns false if e did not hold a T.
//
// It panics with ErrEntityNotFound if e is not alive and with
// ErrUnregisteredComponent if T is not registered.
func RemoveComponent[T any](w *World, e Entity) (T, bool) {
	id := mustComponentID[T](w)
	v, ok := removeComponent[T](w, id, e)
	if ok {
		Publish(w.events, ComponentRemoved{Entity: e, Component: id})
	}
	return v, ok
}

func removeComponent[T any](w *World, id ComponentID, e Entity) (T, bool) {
	eg := WriteResource[Entities](w.resources)
	defer eg.Release()
	s := eg.Get().entryMut(e)
	if s == nil {
		panic(eris.Wrapf(ErrEntityNotFound, "remove %s from %s", typeName[T](), e))
	}
	if !s.mask.Has(id) {
		var zero T
		return zero, false
	}
	sg := WriteResource[Storage[T]](w.resources)
	defer sg.Release()
	v := (*sg.Get()).Remove(e.Index)
	s.mask.Unset(id)
	return v, true
}

// HasComponent reports whether e is alive and holds a T.
func HasComponent[T any](w *World, e Entity) bool {
	id := mustComponentID[T](w)
	g := w.Entities()
	defer g.Release()
	m, ok := g.Get().Mask(e)
	return ok && m.Has(id)
}

// GetComponent returns e's component of type T. It returns false if e is not
// alive or does not hold a T. The pointer is valid until the next structural
// change to the World.
func GetComponent[T any](w *World, e Entity) (*T, bool) {
	id := mustComponentID[T](w)
	eg := w.Entities()
	defer eg.Release()
	m, ok := eg.Get().Mask(e)
	if !ok || !m.Has(id) {
		return nil, false
	}
	sg := ReadResource[Storage[T]](w.resources)
	defer sg.Release()
	return (*sg.Get()).Get(e.Index), true
}
