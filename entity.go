package synco

import (
	"fmt"
	"iter"
	"math"

	"github.com/rotisserie/eris"
)

// Entity is a stable handle to one conceptual entity. It combines a slot
// index with the slot's generation at the time the handle was issued, so a
// handle kept after its entity was deleted never resolves to whatever later
// reuses the slot.
type Entity struct {
	// Index is the slot the entity occupies. Component storages are indexed
	// by it.
	Index uint32
	// Generation is incremented each time the slot is recycled.
	Generation uint32
}

func (e Entity) String() string {
	return fmt.Sprintf("Entity(%dv%d)", e.Index, e.Generation)
}

// slot is the registry's bookkeeping for one entity index.
type slot struct {
	mask       BitMask
	generation uint32
	filled     bool
}

// Entities is the generational slot allocator. It maps an Entity to its
// live status and current component mask. Inside a World it lives in the
// resource table, so queries hold a read guard on it and structural
// mutations take a write guard.
type Entities struct {
	slots []slot
	free  []uint32 // stack of unfilled, non-saturated slot indices
	live  int
}

// NewEntities returns a registry with room for capacity slots before it
// reallocates.
func NewEntities(capacity int) *Entities {
	return &Entities{
		slots: make([]slot, 0, capacity),
		free:  make([]uint32, 0, capacity/4),
	}
}

// Create allocates an entity. A previously freed slot is reused when one is
// available, with its generation bumped and its mask cleared; otherwise a new
// slot is appended at generation 0.
//
// It panics with ErrEntitySpaceExhausted once every 32-bit index is in use.
func (r *Entities) Create() Entity {
	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		s := &r.slots[idx]
		s.generation++
		s.filled = true
		s.mask = Zero()
		r.live++
		return Entity{Index: idx, Generation: s.generation}
	}
	if uint64(len(r.slots)) > math.MaxUint32 {
		panic(eris.Wrapf(ErrEntitySpaceExhausted, "registry holds %d slots", len(r.slots)))
	}
	idx := uint32(len(r.slots))
	r.slots = append(r.slots, slot{filled: true})
	r.live++
	return Entity{Index: idx}
}

// Delete frees the entity's slot. It returns false, and does nothing, when e
// is stale, already deleted or was never issued by this registry. The slot's
// mask is left as it is until the slot is reused.
func (r *Entities) Delete(e Entity) bool {
	s := r.entryMut(e)
	if s == nil {
		return false
	}
	s.filled = false
	r.live--
	// A saturated generation can never be bumped again, so the slot retires.
	if s.generation < math.MaxUint32 {
		r.free = append(r.free, e.Index)
	}
	return true
}

// Alive reports whether e currently resolves.
func (r *Entities) Alive(e Entity) bool {
	return r.entryMut(e) != nil
}

// Mask returns the component mask of a live entity.
func (r *Entities) Mask(e Entity) (BitMask, bool) {
	s := r.entryMut(e)
	if s == nil {
		return 0, false
	}
	return s.mask, true
}

// entryMut returns the slot of a live entity, or nil when e does not
// resolve.
func (r *Entities) entryMut(e Entity) *slot {
	if int(e.Index) >= len(r.slots) {
		return nil
	}
	s := &r.slots[e.Index]
	if !s.filled || s.generation != e.Generation {
		return nil
	}
	return s
}

// Len returns the number of live entities.
func (r *Entities) Len() int { return r.live }

// Cap returns the number of slots ever allocated, live or not.
func (r *Entities) Cap() int { return len(r.slots) }

// Iter returns a cursor over every live entity whose mask matches f.
func (r *Entities) Iter(f Filter) *EntityIter {
	return &EntityIter{entities: r, filter: f, next: 0}
}

// All yields every live entity whose mask matches f, in slot order. Each call
// starts a new traversal.
func (r *Entities) All(f Filter) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for i := range r.slots {
			s := &r.slots[i]
			if !s.filled || !s.mask.Matches(f) {
				continue
			}
			if !yield(Entity{Index: uint32(i), Generation: s.generation}) {
				return
			}
		}
	}
}

// EntityIter walks the registry's live slots that match a filter. It only
// reads slot metadata, so any number of iterators may be active at once.
type EntityIter struct {
	entities *Entities
	filter   Filter
	next     int
	cur      Entity
}

// Next advances to the next matching entity. It returns false when the
// traversal is complete.
func (it *EntityIter) Next() bool {
	slots := it.entities.slots
	for it.next < len(slots) {
		i := it.next
		it.next++
		s := &slots[i]
		if s.filled && s.mask.Matches(it.filter) {
			it.cur = Entity{Index: uint32(i), Generation: s.generation}
			return true
		}
	}
	return false
}

// Entity returns the current entity. It is only meaningful after Next
// returned true.
func (it *EntityIter) Entity() Entity { return it.cur }

// Reset rewinds the cursor to the first slot.
func (it *EntityIter) Reset() {
	it.next = 0
	it.cur = Entity{}
}
