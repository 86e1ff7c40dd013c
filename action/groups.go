package action

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxGroups is the number of distinct group indices. Groups are bits in a
// fixed-width set; group 0 is reserved and implicitly joined by every
// action.
const MaxGroups = 64

// GroupSet is a bitset of group indices.
type GroupSet uint64

// Groups builds a set from individual group indices. Indices at or above
// MaxGroups are a contract violation.
func Groups(ids ...uint) GroupSet {
	var g GroupSet
	for _, id := range ids {
		g = g.With(id)
	}
	return g
}

// With returns the set extended by group id.
func (g GroupSet) With(id uint) GroupSet {
	if id >= MaxGroups {
		panic(fmt.Sprintf("action: group index %d out of range [0,%d)", id, MaxGroups))
	}
	return g | 1<<id
}

// Has is a predicate: is group id in the set?
func (g GroupSet) Has(id uint) bool {
	if id >= MaxGroups {
		panic(fmt.Sprintf("action: group index %d out of range [0,%d)", id, MaxGroups))
	}
	return g&(1<<id) != 0
}

// Union returns the set union of g and o.
func (g GroupSet) Union(o GroupSet) GroupSet {
	return g | o
}

// Overlaps is a predicate: do g and o share a group?
func (g GroupSet) Overlaps(o GroupSet) bool {
	return g&o != 0
}

// IsEmpty is a predicate: does the set contain no groups?
func (g GroupSet) IsEmpty() bool {
	return g == 0
}

// Count returns the number of groups in the set.
func (g GroupSet) Count() int {
	return bits.OnesCount64(uint64(g))
}

// Pretty Stringer for group sets.
func (g GroupSet) String() string {
	if g == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for id := uint(0); id < MaxGroups; id++ {
		if g&(1<<id) != 0 {
			if !first {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%d", id)
			first = false
		}
	}
	sb.WriteByte('}')
	return sb.String()
}
