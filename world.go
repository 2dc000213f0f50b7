// Package synco is an in-process entity-component store.
//
// Components are plain Go values attached to lightweight Entity handles.
// Each registered component type owns one bit of a 64-bit mask and one
// Storage in the World's resource table. Queries are built from Patterns
// (Read, Write, Not, Identity and the TupleN combinators), fetch the storages
// they need once, and walk every entity whose mask satisfies the combined
// filter.
//
// Access to every storage and resource is checked at run time: any number of
// readers or exactly one writer per type. A Query keeps its guards until it
// is closed, and structural changes (creating or deleting entities, inserting
// or removing components) panic while any Query is open.
//
//go:generate go run ./cmd/generate
package synco

import (
	"math"
	"reflect"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// World is the store facade. It owns the entity registry, the component
// registry, the resource table and the event bus.
type World struct {
	resources  *Resources
	components componentRegistry
	events     *EventBus
	log        *zap.Logger
}

// NewWorld creates an empty World.
func NewWorld(opts ...Option) *World {
	cfg := worldConfig{
		logger:   zap.NewNop(),
		capacity: defaultEntityCapacity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	w := &World{
		resources: &Resources{},
		components: componentRegistry{
			ids: make(map[reflect.Type]ComponentID, 16),
		},
		events: &EventBus{},
		log:    cfg.logger,
	}
	InsertResource(w.resources, *NewEntities(cfg.capacity))
	w.resources.pin(reflect.TypeFor[Entities]())
	return w
}

// Resources returns the World's resource table. Component storages are
// resident there under Storage[T], next to user resources. The storages and
// the entity registry are owned by the World: removing or replacing them
// panics with ErrPinnedResource, and Resources.Clear leaves them in place.
func (w *World) Resources() *Resources {
	return w.resources
}

// Events returns the bus the World publishes lifecycle events to.
func (w *World) Events() *EventBus {
	return w.events
}

// Entities acquires shared access to the entity registry.
func (w *World) Entities() *ReadGuard[Entities] {
	return ReadResource[Entities](w.resources)
}

// Alive reports whether e currently resolves.
func (w *World) Alive(e Entity) bool {
	g := w.Entities()
	defer g.Release()
	return g.Get().Alive(e)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	g := w.Entities()
	defer g.Release()
	return g.Get().Len()
}

// Create allocates an entity with no components and returns a builder for
// attaching some.
func (w *World) Create() *EntityBuilder {
	g := WriteResource[Entities](w.resources)
	e := g.Get().Create()
	g.Release()
	Publish(w.events, EntityCreated{Entity: e})
	return &EntityBuilder{world: w, entity: e}
}

// Delete removes e and all of its component values. A stale or already
// deleted entity is ignored and Delete returns false.
func (w *World) Delete(e Entity) bool {
	if !w.delete(e) {
		return false
	}
	Publish(w.events, EntityDeleted{Entity: e})
	return true
}

func (w *World) delete(e Entity) bool {
	g := WriteResource[Entities](w.resources)
	defer g.Release()
	entities := g.Get()
	s := entities.entryMut(e)
	if s == nil {
		return false
	}
	// Every storage must be writable before the first value is erased.
	for id := range s.mask.Bits() {
		if err := w.resources.lookup(w.components.infos[id].storage).checkWrite(); err != nil {
			panic(eris.Wrapf(err, "delete %s", e))
		}
	}
	for id := range s.mask.Bits() {
		w.components.infos[id].erase(w.resources, e.Index)
	}
	if e.Generation == math.MaxUint32 {
		w.log.Debug("entity slot retired", zap.Uint32("index", e.Index))
	}
	return entities.Delete(e)
}

// EntityBuilder attaches components to a freshly created entity.
type EntityBuilder struct {
	world  *World
	entity Entity
}

// With inserts the component value v, whose type must be registered. It
// returns the builder for chaining.
func (b *EntityBuilder) With(v any) *EntityBuilder {
	t := reflect.TypeOf(v)
	id, ok := b.world.components.ids[t]
	if !ok {
		panic(eris.Wrapf(ErrUnregisteredComponent, "%v", t))
	}
	b.world.components.infos[id].insert(b.world, b.entity, v)
	return b
}

// Entity returns the entity being built.
func (b *EntityBuilder) Entity() Entity {
	return b.entity
}
