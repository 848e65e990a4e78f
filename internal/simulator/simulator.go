// Package simulator deals random showdowns through the resolver and tallies
// how often each hand category takes the pot.
package simulator

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/cardroom/showdown/internal/randutil"
	"github.com/cardroom/showdown/poker"
)

// Config holds configuration for running showdown simulations
type Config struct {
	Rounds  int
	Players int
	Seed    int64
	Logger  *log.Logger
}

// Statistics tracks outcomes across simulated rounds
type Statistics struct {
	Rounds         int
	WinsByCategory [poker.HighCard + 1]int
	WinsBySeat     []int

	// Contested counts rounds where two or more players landed in the
	// winning category and the profile tie-break had to decide.
	Contested int
}

// Validate performs consistency checks on the accumulated statistics
func (s *Statistics) Validate() error {
	categoryTotal := 0
	for _, wins := range s.WinsByCategory {
		categoryTotal += wins
	}
	if categoryTotal != s.Rounds {
		return fmt.Errorf("category wins (%d) do not sum to rounds (%d)", categoryTotal, s.Rounds)
	}

	seatTotal := 0
	for _, wins := range s.WinsBySeat {
		seatTotal += wins
	}
	if seatTotal != s.Rounds {
		return fmt.Errorf("seat wins (%d) do not sum to rounds (%d)", seatTotal, s.Rounds)
	}

	if s.Contested > s.Rounds {
		return fmt.Errorf("contested rounds (%d) exceed total rounds (%d)", s.Contested, s.Rounds)
	}

	return nil
}

// Simulator runs showdown simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run executes the simulation and returns results
func (s *Simulator) Run() (*Statistics, error) {
	if s.config.Players < 2 {
		return nil, fmt.Errorf("need at least 2 players, got %d", s.config.Players)
	}
	if s.config.Players*poker.HandSize > poker.DeckSize {
		return nil, fmt.Errorf("%d players need more than one deck", s.config.Players)
	}
	if s.config.Rounds < 1 {
		return nil, fmt.Errorf("need at least 1 round, got %d", s.config.Rounds)
	}

	stats := &Statistics{WinsBySeat: make([]int, s.config.Players)}

	for round := 0; round < s.config.Rounds; round++ {
		// Independent seed per round so any round can be replayed alone
		roundSeed := s.config.Seed + int64(round)
		deck := poker.NewDeck(randutil.New(roundSeed))

		entries := make([]poker.Entry, 0, s.config.Players)
		for seat := 0; seat < s.config.Players; seat++ {
			hand, err := deck.DealHand()
			if err != nil {
				return nil, fmt.Errorf("round %d seat %d: %w", round, seat, err)
			}
			entries = append(entries, poker.Entry{
				ID:   fmt.Sprintf("seat-%d", seat),
				Name: fmt.Sprintf("Seat %d", seat+1),
				Hand: hand,
			})
		}

		result, ok := poker.Resolve(entries)
		if !ok {
			return nil, fmt.Errorf("round %d: no winner from %d hands", round, len(entries))
		}

		winningSeat := 0
		contenders := 0
		for seat, e := range entries {
			cat, _ := poker.Classify(e.Hand)
			if cat == result.Category {
				contenders++
			}
			if e.ID == result.ID {
				winningSeat = seat
			}
		}

		stats.Rounds++
		stats.WinsByCategory[result.Category]++
		stats.WinsBySeat[winningSeat]++
		if contenders > 1 {
			stats.Contested++
		}

		if s.config.Logger != nil {
			s.config.Logger.Debug("Round resolved",
				"round", round,
				"seed", roundSeed,
				"winner", result.ID,
				"category", result.Category.String(),
				"contenders", contenders)
		}
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	return stats, nil
}
