package poker

import (
	"errors"
	rand "math/rand/v2"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// ErrDeckExhausted is returned when fewer than five cards remain to deal.
var ErrDeckExhausted = errors.New("not enough cards left in deck")

// Deck represents a standard 52-card deck
type Deck struct {
	cards [DeckSize]Card
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}

	i := 0
	for _, suit := range []Suit{Hearts, Spades, Clubs, Diamonds} {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = Card{Rank: rank, Suit: suit}
			i++
		}
	}

	d.Shuffle()
	return d
}

// Shuffle shuffles the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck. The returned slice is a copy, so a later
// Shuffle or Reset never mutates cards a caller still holds.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// DealHand deals the next five cards as a Hand
func (d *Deck) DealHand() (Hand, error) {
	cards := d.Deal(HandSize)
	if cards == nil {
		return Hand{}, ErrDeckExhausted
	}
	return NewHand(cards...)
}

// Reset resets and reshuffles the deck
func (d *Deck) Reset() {
	d.Shuffle()
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
