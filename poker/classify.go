package poker

// Category ranks the ten standard poker hands. Lower values are stronger, so
// categories compare directly and RoyalFlush beats everything.
type Category int

const (
	RoyalFlush Category = iota
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	OnePair
	HighCard
)

// String returns a human-readable category name
func (c Category) String() string {
	switch c {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case OnePair:
		return "One Pair"
	case HighCard:
		return "High Card"
	default:
		return "Unknown"
	}
}

// royalProfile is the only profile a royal flush can produce. An ace-low
// remap can never touch it since an ace and a deuce cannot co-occur here.
var royalProfile = Profile{14, 13, 12, 11, 10}

// Classify maps a five-card hand to its category and tie-break profile.
// Checks run strongest-first over the shared rank counts, so exactly one
// category ever matches.
func Classify(h Hand) (Category, Profile) {
	profile := newProfile(h)
	counts := h.rankCounts()
	suited := h.suited()
	straight := isStraight(profile)

	switch {
	case suited && profile == royalProfile:
		return RoyalFlush, profile
	case suited && straight:
		return StraightFlush, profile
	case hasCount(counts, 4):
		return FourOfAKind, profile
	case hasCount(counts, 3) && hasCount(counts, 2):
		return FullHouse, profile
	case suited:
		return Flush, profile
	case straight:
		return Straight, profile
	case hasCount(counts, 3):
		return ThreeOfAKind, profile
	case pairCount(counts) == 2:
		return TwoPair, profile
	case pairCount(counts) == 1:
		return OnePair, profile
	default:
		return HighCard, profile
	}
}

// isStraight reports whether the profile holds five distinct consecutive
// ranks. Strictly descending values spanning exactly four leave no room for
// gaps, which also rules out quad-plus-kicker shapes.
func isStraight(p Profile) bool {
	for i := 1; i < len(p); i++ {
		if p[i] >= p[i-1] {
			return false
		}
	}
	return p[0]-p[len(p)-1] == 4
}

// hasCount reports whether some rank occurs exactly n times
func hasCount(counts [int(Ace) + 1]uint8, n uint8) bool {
	for _, c := range counts {
		if c == n {
			return true
		}
	}
	return false
}

// pairCount returns how many distinct ranks occur exactly twice
func pairCount(counts [int(Ace) + 1]uint8) int {
	pairs := 0
	for _, c := range counts {
		if c == 2 {
			pairs++
		}
	}
	return pairs
}
