package poker

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. Suits have no ordering; they matter only for
// flush detection and display.
type Suit int

const (
	Hearts Suit = iota
	Spades
	Clubs
	Diamonds
)

// String returns the one-letter suit code used in card notation
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Spades:
		return "S"
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	default:
		return "?"
	}
}

// Symbol returns the suit glyph for display
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// IsRed returns true for Hearts and Diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Values run 2 through 14 with aces high, so a
// Rank compares directly as an integer.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the rank token used in card notation
func (r Rank) String() string {
	switch r {
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return string(rune('0' + r))
		}
		return "?"
	}
}

// Card is an immutable rank/suit pair.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the card in notation form (e.g., "AS", "10H")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

var rankTokens = map[string]Rank{
	"2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven,
	"8": Eight, "9": Nine, "10": Ten, "T": Ten, "J": Jack, "Q": Queen,
	"K": King, "A": Ace,
}

var suitTokens = map[byte]Suit{
	'H': Hearts, 'S': Spades, 'C': Clubs, 'D': Diamonds,
}

// ParseCard parses a card token: a rank ("2"-"10", or "T", "J", "Q", "K",
// "A") followed by a suit letter (H, S, C, D). Matching is case-insensitive,
// so "10H", "th" and "As" are all valid.
func ParseCard(token string) (Card, error) {
	s := strings.ToUpper(strings.TrimSpace(token))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card %q: need a rank and a suit", token)
	}

	suit, ok := suitTokens[s[len(s)-1]]
	if !ok {
		return Card{}, fmt.Errorf("invalid card %q: unknown suit %q", token, s[len(s)-1:])
	}

	rank, ok := rankTokens[s[:len(s)-1]]
	if !ok {
		return Card{}, fmt.Errorf("invalid card %q: unknown rank %q", token, s[:len(s)-1])
	}

	return Card{Rank: rank, Suit: suit}, nil
}
