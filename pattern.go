package synco

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// Pattern describes one query term and the value it yields per matched
// entity. Patterns are built with Read, Write, Not, Identity and the TupleN
// combinators; the set is closed.
//
// A pattern knows three things about a World: the Filter it imposes, how to
// fetch (once, for the lifetime of a Query) the storage guards it needs, and
// how to project a matched entity onto its output using those guards.
type Pattern[O any] interface {
	fmt.Stringer
	filter(w *World) (Filter, error)
	fetch(w *World) (fetcher[O], error)
}

// term is the output-independent part of a Pattern.
type term interface {
	fmt.Stringer
	filter(w *World) (Filter, error)
}

type releaser interface {
	release()
}

// fetcher is a pattern's fetched state. project performs no presence check:
// it is only called for entities already known to satisfy the filter.
type fetcher[O any] interface {
	releaser
	project(e Entity) O
}

// Read matches entities holding a T and yields a pointer to it. The pointer
// must only be read; several Read patterns on T may be fetched at once.
func Read[T any]() Pattern[*T] { return readTerm[T]{} }

// Write matches entities holding a T and yields a pointer for mutating it.
// Fetching it requires exclusive access to T's storage.
func Write[T any]() Pattern[*T] { return writeTerm[T]{} }

// Not matches entities that do not hold a T. It yields nothing and fetches
// nothing.
func Not[T any]() Pattern[struct{}] { return notTerm[T]{} }

// Identity matches every entity and yields the entity itself.
func Identity() Pattern[Entity] { return identityTerm{} }

type readTerm[T any] struct{}

func (readTerm[T]) String() string { return "Read[" + typeName[T]() + "]" }

func (readTerm[T]) filter(w *World) (Filter, error) {
	id, err := componentID[T](w)
	if err != nil {
		return Filter{}, err
	}
	return Require(id), nil
}

func (readTerm[T]) fetch(w *World) (fetcher[*T], error) {
	g, err := tryReadResource[Storage[T]](w.resources)
	if err != nil {
		return nil, err
	}
	return &readFetch[T]{guard: g, storage: *g.Get()}, nil
}

type readFetch[T any] struct {
	guard   *ReadGuard[Storage[T]]
	storage Storage[T]
}

func (f *readFetch[T]) project(e Entity) *T { return f.storage.Get(e.Index) }

func (f *readFetch[T]) release() { f.guard.Release() }

type writeTerm[T any] struct{}

func (writeTerm[T]) String() string { return "Write[" + typeName[T]() + "]" }

func (writeTerm[T]) filter(w *World) (Filter, error) {
	id, err := componentID[T](w)
	if err != nil {
		return Filter{}, err
	}
	return Require(id), nil
}

func (writeTerm[T]) fetch(w *World) (fetcher[*T], error) {
	g, err := tryWriteResource[Storage[T]](w.resources)
	if err != nil {
		return nil, err
	}
	return &writeFetch[T]{guard: g, storage: *g.Get()}, nil
}

type writeFetch[T any] struct {
	guard   *WriteGuard[Storage[T]]
	storage Storage[T]
}

func (f *writeFetch[T]) project(e Entity) *T { return f.storage.Get(e.Index) }

func (f *writeFetch[T]) release() { f.guard.Release() }

type notTerm[T any] struct{}

func (notTerm[T]) String() string { return "Not[" + typeName[T]() + "]" }

func (notTerm[T]) filter(w *World) (Filter, error) {
	id, err := componentID[T](w)
	if err != nil {
		return Filter{}, err
	}
	return Exclude(id), nil
}

func (notTerm[T]) fetch(*World) (fetcher[struct{}], error) { return nothingFetch{}, nil }

type nothingFetch struct{}

func (nothingFetch) project(Entity) struct{} { return struct{}{} }

func (nothingFetch) release() {}

type identityTerm struct{}

func (identityTerm) String() string { return "Identity" }

func (identityTerm) filter(*World) (Filter, error) { return Everything(), nil }

func (identityTerm) fetch(*World) (fetcher[Entity], error) { return identityFetch{}, nil }

type identityFetch struct{}

func (identityFetch) project(e Entity) Entity { return e }

func (identityFetch) release() {}

// combineTerms folds the terms' filters left to right and reports the first
// term that contradicts the ones before it.
func combineTerms(w *World, terms ...term) (Filter, error) {
	f := Everything()
	for i, t := range terms {
		tf, err := t.filter(w)
		if err != nil {
			return Filter{}, eris.Wrapf(err, "term %d (%s)", i+1, t)
		}
		combined, ok := CombineFilters(f, tf)
		if !ok {
			return Filter{}, eris.Wrapf(ErrIncompatibleFilter, "term %d (%s) contradicts the terms before it", i+1, t)
		}
		f = combined
	}
	return f, nil
}

// fetchTerm fetches the i-th term of a tuple. On failure every fetcher in
// held is released, so a tuple never leaks a guard.
func fetchTerm[O any](w *World, p Pattern[O], i int, held *[]releaser) (fetcher[O], error) {
	f, err := p.fetch(w)
	if err != nil {
		for _, h := range *held {
			h.release()
		}
		*held = nil
		return nil, eris.Wrapf(err, "term %d (%s)", i, p)
	}
	*held = append(*held, f)
	return f, nil
}

func tupleString(terms ...fmt.Stringer) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
