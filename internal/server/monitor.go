package server

import (
	"context"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/cardroom/showdown/poker"
)

// Stats is a snapshot of the monitor's counters.
type Stats struct {
	Evaluations uint64
	Rejected    uint64
	NoWinner    uint64
	ByCategory  [poker.HighCard + 1]uint64
}

// Monitor accumulates evaluation counters and periodically logs a summary.
// The clock is injected so tests can drive the summary ticker.
type Monitor struct {
	logger   zerolog.Logger
	clock    quartz.Clock
	interval time.Duration

	mu    sync.Mutex
	stats Stats
}

// NewMonitor creates a monitor. A non-positive interval disables the
// periodic summary; counters still accumulate.
func NewMonitor(logger zerolog.Logger, clock quartz.Clock, interval time.Duration) *Monitor {
	return &Monitor{
		logger:   logger.With().Str("component", "monitor").Logger(),
		clock:    clock,
		interval: interval,
	}
}

// Start launches the summary ticker until ctx is cancelled. The ticker is
// registered before Start returns so mock clocks can advance immediately.
func (m *Monitor) Start(ctx context.Context) {
	if m.interval <= 0 {
		return
	}

	waiter := m.clock.TickerFunc(ctx, m.interval, func() error {
		m.logSummary()
		return nil
	})
	go func() { _ = waiter.Wait() }()
}

// RecordResult counts one resolved showdown by winning category.
func (m *Monitor) RecordResult(cat poker.Category) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.Evaluations++
	if cat >= poker.RoyalFlush && cat <= poker.HighCard {
		m.stats.ByCategory[cat]++
	}
}

// RecordRejected counts one rejected request.
func (m *Monitor) RecordRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.Rejected++
}

// RecordNoWinner counts one empty-player evaluation.
func (m *Monitor) RecordNoWinner() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.Evaluations++
	m.stats.NoWinner++
}

// Snapshot returns a copy of the current counters.
func (m *Monitor) Snapshot() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

func (m *Monitor) logSummary() {
	snap := m.Snapshot()

	event := m.logger.Info().
		Uint64("evaluations", snap.Evaluations).
		Uint64("rejected", snap.Rejected).
		Uint64("no_winner", snap.NoWinner)

	for cat := poker.RoyalFlush; cat <= poker.HighCard; cat++ {
		if snap.ByCategory[cat] > 0 {
			event = event.Uint64(cat.String(), snap.ByCategory[cat])
		}
	}

	event.Msg("Evaluation summary")
}
