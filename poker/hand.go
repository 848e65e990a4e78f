package poker

import (
	"errors"
	"fmt"
	"strings"
)

// HandSize is the number of cards in an evaluated hand.
const HandSize = 5

// ErrHandSize is returned when a hand is built from the wrong number of cards.
var ErrHandSize = errors.New("hand must contain exactly five cards")

// Hand is one player's five cards. Construct hands through NewHand or
// ParseHand; the evaluator assumes every Hand it sees passed that validation.
type Hand [HandSize]Card

// NewHand builds a Hand from exactly five distinct cards.
func NewHand(cards ...Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, fmt.Errorf("%w: got %d", ErrHandSize, len(cards))
	}

	seen := make(map[Card]bool, HandSize)
	for i, c := range cards {
		if seen[c] {
			return h, fmt.Errorf("duplicate card %s in hand", c)
		}
		seen[c] = true
		h[i] = c
	}

	return h, nil
}

// ParseHand parses five card tokens into a Hand.
func ParseHand(tokens []string) (Hand, error) {
	if len(tokens) != HandSize {
		return Hand{}, fmt.Errorf("%w: got %d", ErrHandSize, len(tokens))
	}

	cards := make([]Card, 0, HandSize)
	for _, tok := range tokens {
		card, err := ParseCard(tok)
		if err != nil {
			return Hand{}, err
		}
		cards = append(cards, card)
	}

	return NewHand(cards...)
}

// String returns the hand as space-separated card tokens
func (h Hand) String() string {
	tokens := make([]string, HandSize)
	for i, c := range h {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}

// Cards returns the hand's cards as a slice
func (h Hand) Cards() []Card {
	return h[:]
}

// rankCounts returns per-rank occurrence counts indexed by rank value.
// Built once per classification and shared by every grouping predicate.
func (h Hand) rankCounts() [int(Ace) + 1]uint8 {
	var counts [int(Ace) + 1]uint8
	for _, c := range h {
		counts[c.Rank]++
	}
	return counts
}

// suited reports whether all five cards share one suit
func (h Hand) suited() bool {
	for _, c := range h[1:] {
		if c.Suit != h[0].Suit {
			return false
		}
	}
	return true
}
