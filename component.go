package synco

import (
	"reflect"
	"unsafe"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// componentInfo holds the type-erased operations the World needs for a
// registered component when only its ID or reflect.Type is known.
type componentInfo struct {
	typ reflect.Type
	// storage is the resource key of the component's storage, Storage[T].
	storage reflect.Type
	// insert is InsertComponent for the concrete type; v must hold a T.
	insert func(w *World, e Entity, v any)
	// erase drops the value at index from the storage without touching any
	// mask.
	erase func(r *Resources, index uint32)
}

// componentRegistry assigns bits to component types, once and in
// registration order.
type componentRegistry struct {
	ids   map[reflect.Type]ComponentID
	infos [MaxComponentTypes]componentInfo
	next  int
}

// RegisterComponent registers T with the default backend and returns its
// bit. Zero-size types get a MarkerStorage, everything else a DenseStorage.
// Registering a type twice returns the bit it already has.
//
// It panics with ErrTooManyComponents once MaxComponentTypes types are
// registered.
func RegisterComponent[T any](w *World) ComponentID {
	if id, ok := ComponentIDOf[T](w); ok {
		return id
	}
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		return RegisterComponentStorage[T](w, NewMarkerStorage[T]())
	}
	return RegisterComponentStorage[T](w, NewDenseStorage[T]())
}

// RegisterComponentStorage registers T with the given storage backend, which
// is installed into the World's resources under the key Storage[T]. If T is
// already registered the existing bit is returned and s is discarded.
//
// Parameters:
//   - w: The World to register the component in.
//   - s: An empty storage for T.
//
// Returns:
//   - The bit assigned to T.
func RegisterComponentStorage[T any](w *World, s Storage[T]) ComponentID {
	t := reflect.TypeFor[T]()
	reg := &w.components
	if id, ok := reg.ids[t]; ok {
		return id
	}
	if reg.next >= MaxComponentTypes {
		panic(eris.Wrapf(ErrTooManyComponents, "cannot register %s: all %d bits are assigned", t, MaxComponentTypes))
	}
	id := ComponentID(reg.next)
	reg.next++
	reg.ids[t] = id
	reg.infos[id] = componentInfo{
		typ:     t,
		storage: reflect.TypeFor[Storage[T]](),
		insert: func(w *World, e Entity, v any) {
			InsertComponent(w, e, v.(T))
		},
		erase: func(r *Resources, index uint32) {
			g := WriteResource[Storage[T]](r)
			defer g.Release()
			(*g.Get()).Remove(index)
		},
	}
	InsertResource(w.resources, s)
	w.resources.pin(reg.infos[id].storage)
	w.log.Debug("component registered",
		zap.Stringer("type", t),
		zap.Uint8("bit", uint8(id)),
		zap.String("storage", reflect.TypeOf(s).String()),
	)
	return id
}

// ComponentIDOf returns the bit assigned to T, if T is registered.
func ComponentIDOf[T any](w *World) (ComponentID, bool) {
	id, ok := w.components.ids[reflect.TypeFor[T]()]
	return id, ok
}

// componentID is ComponentIDOf with an error for unregistered types.
func componentID[T any](w *World) (ComponentID, error) {
	id, ok := ComponentIDOf[T](w)
	if !ok {
		return 0, eris.Wrapf(ErrUnregisteredComponent, "%s", typeName[T]())
	}
	return id, nil
}

// mustComponentID is componentID for paths that fail fast.
func mustComponentID[T any](w *World) ComponentID {
	id, err := componentID[T](w)
	if err != nil {
		panic(err)
	}
	return id
}
