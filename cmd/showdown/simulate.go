package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cardroom/showdown/internal/simulator"
	"github.com/cardroom/showdown/poker"
)

// SimulateCmd deals random showdowns and reports category statistics
type SimulateCmd struct {
	Rounds  int    `kong:"default='1000',help='Number of showdowns to simulate'"`
	Players int    `kong:"default='4',help='Players per showdown (2-10)'"`
	Seed    *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{})
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Info("Starting simulation", "rounds", c.Rounds, "players", c.Players, "seed", seed)

	sim := simulator.New(simulator.Config{
		Rounds:  c.Rounds,
		Players: c.Players,
		Seed:    seed,
		Logger:  logger,
	})

	stats, err := sim.Run()
	if err != nil {
		return err
	}

	fmt.Printf("Simulated %d showdowns with %d players\n\n", stats.Rounds, c.Players)
	fmt.Println("Winning category distribution:")
	for cat := poker.RoyalFlush; cat <= poker.HighCard; cat++ {
		wins := stats.WinsByCategory[cat]
		if wins == 0 {
			continue
		}
		fmt.Printf("  %-16s %6d  (%5.2f%%)\n",
			cat, wins, float64(wins)*100/float64(stats.Rounds))
	}

	fmt.Printf("\nTie-broken rounds: %d (%.2f%%)\n",
		stats.Contested, float64(stats.Contested)*100/float64(stats.Rounds))

	fmt.Println("\nWins by seat:")
	for seat, wins := range stats.WinsBySeat {
		fmt.Printf("  Seat %-2d %6d\n", seat+1, wins)
	}

	return nil
}
