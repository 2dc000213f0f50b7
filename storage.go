package synco

import (
	"unsafe"

	"github.com/bits-and-blooms/bitset"
	"github.com/rotisserie/eris"
)

// Storage is a per-component-type container indexed by entity slot index.
//
// The World only calls Get and Remove for indices whose bit is set in the
// owning entity's mask, and only calls Insert for indices whose bit is clear.
// The entity mask is the single source of truth for presence: a storage
// never decides on its own whether an entity holds a component. Backends may
// verify the contract and panic on violation; the built-in dense and sparse
// backends do.
//
// Any type with these three methods can be installed with
// RegisterComponentStorage.
type Storage[T any] interface {
	// Get returns the value at index. The pointer stays valid until the next
	// Insert or Remove on this storage.
	Get(index uint32) *T
	// Insert stores value at index, growing the storage as needed.
	Insert(index uint32, value T)
	// Remove takes the value out of index and returns it.
	Remove(index uint32) T
}

// DenseStorage keeps values in a slice addressed directly by entity index.
// It is the default backend: lookups are a single slice access, at the cost
// of one slot per entity index ever used.
type DenseStorage[T any] struct {
	items   []T
	present bitset.BitSet
	count   int
}

// NewDenseStorage creates an empty dense storage.
func NewDenseStorage[T any]() *DenseStorage[T] {
	return &DenseStorage[T]{}
}

// Get returns the value at index. It panics with ErrComponentNotPresent if
// nothing is stored there.
func (s *DenseStorage[T]) Get(index uint32) *T {
	if !s.present.Test(uint(index)) {
		panic(eris.Wrapf(ErrComponentNotPresent, "get %s at %d", typeName[T](), index))
	}
	return &s.items[index]
}

// Insert stores value at index, growing the slice as needed. It panics with
// ErrComponentPresent if index is occupied.
func (s *DenseStorage[T]) Insert(index uint32, value T) {
	if s.present.Test(uint(index)) {
		panic(eris.Wrapf(ErrComponentPresent, "insert %s at %d", typeName[T](), index))
	}
	s.items = growTo(s.items, int(index)+1)
	s.items[index] = value
	s.present.Set(uint(index))
	s.count++
}

// Remove takes the value out of index, leaving a zero value behind. It panics
// with ErrComponentNotPresent if nothing is stored there.
func (s *DenseStorage[T]) Remove(index uint32) T {
	if !s.present.Test(uint(index)) {
		panic(eris.Wrapf(ErrComponentNotPresent, "remove %s at %d", typeName[T](), index))
	}
	var zero T
	v := s.items[index]
	s.items[index] = zero
	s.present.Clear(uint(index))
	s.count--
	return v
}

// Has reports whether a value is stored at index.
func (s *DenseStorage[T]) Has(index uint32) bool {
	return s.present.Test(uint(index))
}

// Len returns the number of stored values.
func (s *DenseStorage[T]) Len() int { return s.count }

// MarkerStorage backs marker components that carry no data. Insert and
// Remove do nothing and Get always returns the same pointer, which is sound
// only because the type occupies no memory.
type MarkerStorage[T any] struct {
	zero T
}

// NewMarkerStorage creates a marker storage. It panics with ErrNotZeroSize
// if T occupies memory.
func NewMarkerStorage[T any]() *MarkerStorage[T] {
	var zero T
	if unsafe.Sizeof(zero) != 0 {
		panic(eris.Wrapf(ErrNotZeroSize, "%s is %d bytes", typeName[T](), unsafe.Sizeof(zero)))
	}
	return &MarkerStorage[T]{}
}

// Get returns the shared zero value.
func (s *MarkerStorage[T]) Get(uint32) *T { return &s.zero }

// Insert does nothing.
func (s *MarkerStorage[T]) Insert(uint32, T) {}

// Remove returns the zero value.
func (s *MarkerStorage[T]) Remove(uint32) T {
	var zero T
	return zero
}

// SparseStorage keeps values in a map keyed by entity index. It suits
// components that only a few entities hold, trading lookup cost for memory.
// Values are boxed, so pointers returned by Get survive other inserts.
type SparseStorage[T any] struct {
	items map[uint32]*T
}

// NewSparseStorage creates an empty sparse storage.
func NewSparseStorage[T any]() *SparseStorage[T] {
	return &SparseStorage[T]{items: make(map[uint32]*T)}
}

// Get returns the boxed value at index. It panics with ErrComponentNotPresent
// if nothing is stored there.
func (s *SparseStorage[T]) Get(index uint32) *T {
	v, ok := s.items[index]
	if !ok {
		panic(eris.Wrapf(ErrComponentNotPresent, "get %s at %d", typeName[T](), index))
	}
	return v
}

// Insert boxes value under index. It panics with ErrComponentPresent if index
// is occupied.
func (s *SparseStorage[T]) Insert(index uint32, value T) {
	if _, ok := s.items[index]; ok {
		panic(eris.Wrapf(ErrComponentPresent, "insert %s at %d", typeName[T](), index))
	}
	s.items[index] = &value
}

// Remove deletes index and returns its value. It panics with
// ErrComponentNotPresent if nothing is stored there.
func (s *SparseStorage[T]) Remove(index uint32) T {
	v, ok := s.items[index]
	if !ok {
		panic(eris.Wrapf(ErrComponentNotPresent, "remove %s at %d", typeName[T](), index))
	}
	delete(s.items, index)
	return *v
}

// Has reports whether a value is stored at index.
func (s *SparseStorage[T]) Has(index uint32) bool {
	_, ok := s.items[index]
	return ok
}

// Len returns the number of stored values.
func (s *SparseStorage[T]) Len() int { return len(s.items) }
