package poker

// Entry pairs a caller-assigned identifier with a player's hand. Identifiers
// must be unique within one Resolve call.
type Entry struct {
	ID   string
	Name string
	Hand Hand
}

// Result describes the winning entry of a showdown.
type Result struct {
	ID       string
	Name     string
	Category Category
	Profile  Profile
}

// Resolve classifies every entry, groups entries by category, and picks the
// winner from the strongest occupied category. Within that group ties fall
// to breakTie. The second return is false only when no entries were
// supplied; that is a normal outcome, not an error.
func Resolve(entries []Entry) (Result, bool) {
	if len(entries) == 0 {
		return Result{}, false
	}

	var byCategory [HighCard + 1][]Entry
	profiles := make(map[string]Profile, len(entries))
	for _, e := range entries {
		cat, profile := Classify(e.Hand)
		byCategory[cat] = append(byCategory[cat], e)
		profiles[e.ID] = profile
	}

	for cat := RoyalFlush; cat <= HighCard; cat++ {
		group := byCategory[cat]
		if len(group) == 0 {
			continue
		}

		winner := group[0]
		if len(group) > 1 {
			winner = breakTie(group, profiles)
		}

		return Result{
			ID:       winner.ID,
			Name:     winner.Name,
			Category: cat,
			Profile:  profiles[winner.ID],
		}, true
	}

	// Unreachable: every valid hand classifies into some category.
	return Result{}, false
}

// breakTie keeps a running best entry and challenges it with each remaining
// candidate, comparing profiles from the highest rank down and stopping at
// the first differing position. On identical profiles the earlier entry
// stands, so exact ties always resolve to the first-seen candidate rather
// than a split result.
func breakTie(group []Entry, profiles map[string]Profile) Entry {
	best := group[0]
	for _, e := range group[1:] {
		if profiles[e.ID].Compare(profiles[best.ID]) > 0 {
			best = e
		}
	}
	return best
}
