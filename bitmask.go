package synco

import (
	"iter"
	"math/bits"
)

// MaxComponentTypes is the number of distinct component types a World can
// register. Every type owns one bit of a BitMask, so the limit is the mask
// width.
const MaxComponentTypes = 64

// ComponentID is the bit position assigned to a component type.
type ComponentID uint8

// BitMask is a set of component IDs. An entity's mask records which
// components it currently holds; a Filter uses two masks to express which
// components a query requires or forbids.
type BitMask uint64

// Zero returns the empty mask.
func Zero() BitMask { return 0 }

// With returns a mask with only the given bit set.
func With(id ComponentID) BitMask { return BitMask(1) << id }

// Union returns the bits set in either mask.
func (m BitMask) Union(other BitMask) BitMask { return m | other }

// Intersection returns the bits set in both masks.
func (m BitMask) Intersection(other BitMask) BitMask { return m & other }

// Set enables the bit for id.
func (m *BitMask) Set(id ComponentID) { *m |= With(id) }

// Unset disables the bit for id.
func (m *BitMask) Unset(id ComponentID) { *m &^= With(id) }

// Has reports whether the bit for id is set.
func (m BitMask) Has(id ComponentID) bool { return m&With(id) != 0 }

// Len returns the number of set bits.
func (m BitMask) Len() int { return bits.OnesCount64(uint64(m)) }

// Matches reports whether the mask satisfies f.
func (m BitMask) Matches(f Filter) bool { return m&f.Mask == f.Check }

// Bits yields the set bits in ascending order.
func (m BitMask) Bits() iter.Seq[ComponentID] {
	return func(yield func(ComponentID) bool) {
		for rest := uint64(m); rest != 0; rest &= rest - 1 {
			if !yield(ComponentID(bits.TrailingZeros64(rest))) {
				return
			}
		}
	}
}

// Filter is a query requirement: an entity mask matches when its bits under
// Mask equal the corresponding bits of Check. A bit in Mask and Check means
// "must be present"; a bit in Mask only means "must be absent"; a bit in
// neither is unconstrained.
type Filter struct {
	Check BitMask
	Mask  BitMask
}

// Everything returns the filter that matches every mask.
func Everything() Filter { return Filter{} }

// Require returns a filter demanding the presence of id.
func Require(id ComponentID) Filter {
	return Filter{Check: With(id), Mask: With(id)}
}

// Exclude returns a filter demanding the absence of id.
func Exclude(id ComponentID) Filter {
	return Filter{Mask: With(id)}
}

// Matches reports whether m satisfies the filter.
func (f Filter) Matches(m BitMask) bool { return m.Matches(f) }

// CombineFilters merges two filters into one that matches exactly the masks
// both of them match. It fails when the filters disagree about a bit they
// both constrain, e.g. one requires a component that the other forbids.
//
// Parameters:
//   - a, b: The filters to merge.
//
// Returns:
//   - The combined filter, and false if the two are contradictory.
func CombineFilters(a, b Filter) (Filter, bool) {
	check := a.Check.Union(b.Check)
	if check.Intersection(a.Mask) != a.Check || check.Intersection(b.Mask) != b.Check {
		return Filter{}, false
	}
	return Filter{Check: check, Mask: a.Mask.Union(b.Mask)}, true
}
