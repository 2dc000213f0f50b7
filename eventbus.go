package synco

import "reflect"

// EntityCreated is published after World.Create allocates an entity.
type EntityCreated struct {
	Entity Entity
}

// EntityDeleted is published after World.Delete frees a live entity.
type EntityDeleted struct {
	Entity Entity
}

// ComponentInserted is published after InsertComponent. Replaced is true
// when the entity already held a value of that component.
type ComponentInserted struct {
	Entity    Entity
	Component ComponentID
	Replaced  bool
}

// ComponentRemoved is published after RemoveComponent took a value out.
type ComponentRemoved struct {
	Entity    Entity
	Component ComponentID
}

// EventBus delivers typed events synchronously, in subscription order. The
// World publishes its lifecycle events here once the mutation is complete
// and every guard it took is released, so handlers may query or mutate the
// World.
type EventBus struct {
	eventTypeMap map[reflect.Type]int
	handlers     [][]any
}

// Subscribe registers handler for events of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	id := bus.getEventTypeID(reflect.TypeFor[T]())
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish calls every handler subscribed to T with event. Publishing a type
// nobody subscribed to costs a map lookup.
func Publish[T any](bus *EventBus, event T) {
	id, ok := bus.eventTypeMap[reflect.TypeFor[T]()]
	if !ok {
		return
	}
	for _, h := range bus.handlers[id] {
		h.(func(T))(event)
	}
}

// getEventTypeID retrieves or assigns an ID for the event type.
func (bus *EventBus) getEventTypeID(t reflect.Type) int {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]int)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	id := len(bus.handlers)
	bus.handlers = append(bus.handlers, make([]any, 0, 4))
	bus.eventTypeMap[t] = id
	return id
}
