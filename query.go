package synco

import (
	"iter"

	"github.com/rotisserie/eris"
)

// Query binds a Pattern to a World. It holds a read guard on the entity
// registry and every guard the pattern fetched until Close is called, so
// structural changes to the World panic while it is open.
//
// Example:
//
//	q := synco.NewQuery(w, synco.Tuple2(synco.Write[Position](), synco.Read[Velocity]()))
//	defer q.Close()
//	for _, row := range q.All() {
//	    pos, vel := row.Unpack()
//	    pos.X += vel.X
//	}
type Query[O any] struct {
	world    *World
	pattern  Pattern[O]
	entities *ReadGuard[Entities]
	state    fetcher[O]
	filter   Filter
	closed   bool
}

// NewQuery computes p's filter and fetches its guards. It panics with
// ErrUnregisteredComponent or ErrIncompatibleFilter when the pattern is
// malformed, and with ErrBorrowConflict when the storages it needs are
// borrowed incompatibly, including by the pattern itself.
func NewQuery[O any](w *World, p Pattern[O]) *Query[O] {
	q, err := TryQuery(w, p)
	if err != nil {
		panic(err)
	}
	return q
}

// TryQuery is NewQuery returning the error instead of panicking. Nothing
// stays borrowed when it fails.
func TryQuery[O any](w *World, p Pattern[O]) (*Query[O], error) {
	f, err := p.filter(w)
	if err != nil {
		return nil, eris.Wrapf(err, "query %s", p)
	}
	eg, err := tryReadResource[Entities](w.resources)
	if err != nil {
		return nil, eris.Wrapf(err, "query %s", p)
	}
	state, err := p.fetch(w)
	if err != nil {
		eg.Release()
		return nil, eris.Wrapf(err, "query %s", p)
	}
	return &Query[O]{
		world:    w,
		pattern:  p,
		entities: eg,
		state:    state,
		filter:   f,
	}, nil
}

// Filter returns the combined filter of the query's pattern.
func (q *Query[O]) Filter() Filter { return q.filter }

// Iter returns a cursor over the matching entities. Each call starts an
// independent traversal.
func (q *Query[O]) Iter() *QueryIter[O] {
	q.mustOpen()
	return &QueryIter[O]{query: q, entities: q.entities.Get().Iter(q.filter)}
}

// All yields every matching entity with the pattern's output for it. The
// sequence is lazy and may be ranged over any number of times, including
// nested inside another traversal of the same query.
func (q *Query[O]) All() iter.Seq2[Entity, O] {
	return func(yield func(Entity, O) bool) {
		q.mustOpen()
		for e := range q.entities.Get().All(q.filter) {
			if !yield(e, q.state.project(e)) {
				return
			}
		}
	}
}

// Get returns the pattern's output for a single entity. Because e did not
// come from the filtered traversal, it is checked first: a dead entity or one
// not matching the filter yields false.
func (q *Query[O]) Get(e Entity) (O, bool) {
	q.mustOpen()
	m, ok := q.entities.Get().Mask(e)
	if !ok || !m.Matches(q.filter) {
		var zero O
		return zero, false
	}
	return q.state.project(e), true
}

// Count returns the number of matching entities.
func (q *Query[O]) Count() int {
	q.mustOpen()
	n := 0
	for range q.entities.Get().All(q.filter) {
		n++
	}
	return n
}

// Entities returns the matching entities in slot order.
func (q *Query[O]) Entities() []Entity {
	q.mustOpen()
	var out []Entity
	for e := range q.entities.Get().All(q.filter) {
		out = append(out, e)
	}
	return out
}

// Clone fetches the same pattern again into a new Query. It succeeds for
// read-only patterns; a pattern containing Write panics with
// ErrBorrowConflict while q is open.
func (q *Query[O]) Clone() *Query[O] {
	q.mustOpen()
	return NewQuery(q.world, q.pattern)
}

// Close releases every guard the query holds. Calling it again has no
// effect.
func (q *Query[O]) Close() {
	if q.closed {
		return
	}
	q.closed = true
	q.state.release()
	q.entities.Release()
}

func (q *Query[O]) mustOpen() {
	if q.closed {
		panic(eris.Wrapf(ErrQueryClosed, "query %s", q.pattern))
	}
}

// QueryIter is a cursor over a Query's matching entities.
//
//	it := q.Iter()
//	for it.Next() {
//	    pos, vel := it.Get().Unpack()
//	    // ...
//	}
type QueryIter[O any] struct {
	query    *Query[O]
	entities *EntityIter
}

// Next advances to the next matching entity and reports whether there was
// one.
func (it *QueryIter[O]) Next() bool {
	it.query.mustOpen()
	return it.entities.Next()
}

// Get returns the pattern's output for the current entity. It is only
// meaningful after Next returned true.
func (it *QueryIter[O]) Get() O {
	it.query.mustOpen()
	return it.query.state.project(it.entities.Entity())
}

// Entity returns the current entity.
func (it *QueryIter[O]) Entity() Entity {
	it.query.mustOpen()
	return it.entities.Entity()
}

// Reset rewinds the cursor so the entities can be visited again.
func (it *QueryIter[O]) Reset() {
	it.entities.Reset()
}
