package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHand(t *testing.T, tokens ...string) Hand {
	t.Helper()
	hand, err := ParseHand(tokens)
	require.NoError(t, err)
	return hand
}

func TestClassifyCategories(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		cards       []string
		wantCat     Category
		wantProfile Profile
	}{
		{
			name:        "royal flush",
			cards:       []string{"10H", "JH", "QH", "KH", "AH"},
			wantCat:     RoyalFlush,
			wantProfile: Profile{14, 13, 12, 11, 10},
		},
		{
			name:        "straight flush",
			cards:       []string{"5S", "6S", "7S", "8S", "9S"},
			wantCat:     StraightFlush,
			wantProfile: Profile{9, 8, 7, 6, 5},
		},
		{
			name:        "ace-low straight flush",
			cards:       []string{"AD", "2D", "3D", "4D", "5D"},
			wantCat:     StraightFlush,
			wantProfile: Profile{5, 4, 3, 2, 1},
		},
		{
			name:        "four of a kind",
			cards:       []string{"9H", "9S", "9C", "9D", "KD"},
			wantCat:     FourOfAKind,
			wantProfile: Profile{13, 9, 9, 9, 9},
		},
		{
			name:        "full house",
			cards:       []string{"2S", "2D", "2C", "5H", "5D"},
			wantCat:     FullHouse,
			wantProfile: Profile{5, 5, 2, 2, 2},
		},
		{
			name:        "flush",
			cards:       []string{"2C", "6C", "9C", "JC", "KC"},
			wantCat:     Flush,
			wantProfile: Profile{13, 11, 9, 6, 2},
		},
		{
			name:        "straight",
			cards:       []string{"6H", "7S", "8D", "9C", "10H"},
			wantCat:     Straight,
			wantProfile: Profile{10, 9, 8, 7, 6},
		},
		{
			name:        "ace-high straight",
			cards:       []string{"10H", "JS", "QD", "KC", "AH"},
			wantCat:     Straight,
			wantProfile: Profile{14, 13, 12, 11, 10},
		},
		{
			name:        "ace-low straight",
			cards:       []string{"AH", "2S", "3D", "4C", "5H"},
			wantCat:     Straight,
			wantProfile: Profile{5, 4, 3, 2, 1},
		},
		{
			name:        "three of a kind",
			cards:       []string{"7H", "7S", "7D", "2C", "9H"},
			wantCat:     ThreeOfAKind,
			wantProfile: Profile{9, 7, 7, 7, 2},
		},
		{
			name:        "two pair",
			cards:       []string{"9H", "9S", "4D", "4C", "2H"},
			wantCat:     TwoPair,
			wantProfile: Profile{9, 9, 4, 4, 2},
		},
		{
			name:        "one pair",
			cards:       []string{"AH", "AS", "9D", "5C", "3H"},
			wantCat:     OnePair,
			wantProfile: Profile{14, 14, 9, 5, 3},
		},
		{
			name:        "high card",
			cards:       []string{"AH", "JS", "8D", "5C", "3H"},
			wantCat:     HighCard,
			wantProfile: Profile{14, 11, 8, 5, 3},
		},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cat, profile := Classify(mustHand(t, tc.cards...))
			assert.Equal(t, tc.wantCat, cat)
			assert.Equal(t, tc.wantProfile, profile)
		})
	}
}

func TestClassifyGapsAreNotStraights(t *testing.T) {
	t.Parallel()

	// Five distinct ranks spanning more than four
	cat, _ := Classify(mustHand(t, "2H", "3S", "4D", "5C", "7H"))
	assert.Equal(t, HighCard, cat)

	// Span of four but with a paired rank
	cat, _ = Classify(mustHand(t, "5H", "5S", "6D", "7C", "8H"))
	assert.Equal(t, OnePair, cat)

	// A-2-3-4 plus a six is not a straight either side of the ace remap
	cat, profile := Classify(mustHand(t, "AH", "2S", "3D", "4C", "6H"))
	assert.Equal(t, HighCard, cat)
	assert.Equal(t, Profile{6, 4, 3, 2, 1}, profile)
}

func TestClassifyRoyalRanksMixedSuits(t *testing.T) {
	t.Parallel()

	// Same ranks as a royal flush but off-suit: a plain straight, never a
	// flush or double report.
	cat, profile := Classify(mustHand(t, "10H", "JH", "QH", "KH", "AS"))
	assert.Equal(t, Straight, cat)
	assert.Equal(t, Profile{14, 13, 12, 11, 10}, profile)
}

func TestClassifyAceStaysHighWithoutDeuce(t *testing.T) {
	t.Parallel()

	// The ace-low remap only fires when a deuce is present.
	cat, profile := Classify(mustHand(t, "AH", "3S", "4D", "5C", "6H"))
	assert.Equal(t, HighCard, cat)
	assert.Equal(t, Profile{14, 6, 5, 4, 3}, profile)
}

func TestClassifyIsExclusive(t *testing.T) {
	t.Parallel()

	// A straight flush must not also report as flush or straight, and a full
	// house must not report its trips or pair. Spot-check the overlapping
	// shapes rather than every hand.
	tests := []struct {
		cards []string
		want  Category
	}{
		{[]string{"2H", "3H", "4H", "5H", "6H"}, StraightFlush},
		{[]string{"KH", "KS", "KD", "KC", "2H"}, FourOfAKind},
		{[]string{"QH", "QS", "QD", "9C", "9H"}, FullHouse},
		{[]string{"2D", "7D", "9D", "JD", "AD"}, Flush},
	}
	for _, tc := range tests {
		cat, _ := Classify(mustHand(t, tc.cards...))
		assert.Equal(t, tc.want, cat, "hand %v", tc.cards)
	}
}

func TestProfileCompare(t *testing.T) {
	t.Parallel()

	a := Profile{14, 14, 9, 5, 3}
	b := Profile{14, 14, 9, 5, 2}
	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))

	// First differing position decides regardless of later values.
	c := Profile{13, 12, 11, 10, 9}
	d := Profile{14, 2, 2, 2, 2}
	assert.Equal(t, -1, c.Compare(d))
}
