package poker

import "sort"

// Profile is a hand's five rank values sorted descending. It is the sole
// basis for straight detection and tie-breaking.
//
// When a hand holds both an ace and a deuce, every ace counts low (1) before
// sorting, so A-2-3-4-5 orders as [5 4 3 2 1] and reads as a straight. The
// remap is idempotent: once no 14 remains there is nothing left to rewrite.
type Profile [HandSize]int

// aceLow is the remapped value of an ace in an ace-low hand.
const aceLow = 1

func newProfile(h Hand) Profile {
	var p Profile
	hasAce, hasDeuce := false, false
	for i, c := range h {
		p[i] = int(c.Rank)
		hasAce = hasAce || c.Rank == Ace
		hasDeuce = hasDeuce || c.Rank == Two
	}

	if hasAce && hasDeuce {
		for i, v := range p {
			if v == int(Ace) {
				p[i] = aceLow
			}
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(p[:])))
	return p
}

// Compare compares two profiles position by position from the highest rank
// down. It returns 1 if p is stronger, -1 if other is stronger, and 0 when
// all five positions match; the first differing position decides.
func (p Profile) Compare(other Profile) int {
	for i := range p {
		if p[i] > other[i] {
			return 1
		}
		if p[i] < other[i] {
			return -1
		}
	}
	return 0
}

// Ranks returns the profile values as a slice, strongest first
func (p Profile) Ranks() []int {
	return p[:]
}
