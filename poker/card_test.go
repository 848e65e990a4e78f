package poker

import (
	"testing"
)

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{
			name:     "ace of spades",
			input:    "AS",
			wantCard: Card{Rank: Ace, Suit: Spades},
		},
		{
			name:     "two of hearts",
			input:    "2H",
			wantCard: Card{Rank: Two, Suit: Hearts},
		},
		{
			name:     "ten with two-digit notation",
			input:    "10D",
			wantCard: Card{Rank: Ten, Suit: Diamonds},
		},
		{
			name:     "ten with T notation",
			input:    "TC",
			wantCard: Card{Rank: Ten, Suit: Clubs},
		},
		{
			name:     "lowercase input",
			input:    "kd",
			wantCard: Card{Rank: King, Suit: Diamonds},
		},
		{
			name:     "surrounding whitespace",
			input:    " QS ",
			wantCard: Card{Rank: Queen, Suit: Spades},
		},
		{
			name:    "invalid rank",
			input:   "XS",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AX",
			wantErr: true,
		},
		{
			name:    "rank eleven does not exist",
			input:   "11H",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "rank only",
			input:   "A",
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseCard(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if !tc.wantErr && card != tc.wantCard {
				t.Errorf("ParseCard(%q) = %v, want %v", tc.input, card, tc.wantCard)
			}
		})
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()
	if got := NewCard(Ace, Spades).String(); got != "AS" {
		t.Errorf("Expected 'AS', got %s", got)
	}
	if got := NewCard(Ten, Hearts).String(); got != "10H" {
		t.Errorf("Expected '10H', got %s", got)
	}
	if got := NewCard(Two, Clubs).String(); got != "2C" {
		t.Errorf("Expected '2C', got %s", got)
	}
}

func TestAll52CardsRoundTrip(t *testing.T) {
	t.Parallel()
	cards := make(map[string]bool)

	for _, suit := range []Suit{Hearts, Spades, Clubs, Diamonds} {
		for rank := Two; rank <= Ace; rank++ {
			card := NewCard(rank, suit)
			str := card.String()

			// Check no duplicates
			if cards[str] {
				t.Errorf("Duplicate card: %s", str)
			}
			cards[str] = true

			// Test round-trip
			parsed, err := ParseCard(str)
			if err != nil {
				t.Errorf("Failed to parse %s: %v", str, err)
			}
			if parsed != card {
				t.Errorf("Round-trip failed for %s", str)
			}
		}
	}

	if len(cards) != DeckSize {
		t.Errorf("Expected 52 unique cards, got %d", len(cards))
	}
}

func TestParseHand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		tokens  []string
		wantErr bool
	}{
		{
			name:   "valid hand",
			tokens: []string{"10H", "JH", "QH", "KH", "AH"},
		},
		{
			name:    "too few cards",
			tokens:  []string{"10H", "JH", "QH", "KH"},
			wantErr: true,
		},
		{
			name:    "too many cards",
			tokens:  []string{"10H", "JH", "QH", "KH", "AH", "2S"},
			wantErr: true,
		},
		{
			name:    "duplicate card",
			tokens:  []string{"10H", "10H", "QH", "KH", "AH"},
			wantErr: true,
		},
		{
			name:    "same card in both notations",
			tokens:  []string{"TH", "10H", "QH", "KH", "AH"},
			wantErr: true,
		},
		{
			name:    "unparseable token",
			tokens:  []string{"10H", "JH", "QH", "KH", "ZZ"},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseHand(tc.tokens)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParseHand(%v) error = %v, wantErr %v", tc.tokens, err, tc.wantErr)
			}
		})
	}
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("10H")
	}
}

func BenchmarkClassify(b *testing.B) {
	hand, _ := ParseHand([]string{"9H", "9S", "4D", "4C", "2H"})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Classify(hand)
	}
}
