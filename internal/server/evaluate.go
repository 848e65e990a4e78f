package server

import (
	"fmt"

	"github.com/cardroom/showdown/internal/protocol"
	"github.com/cardroom/showdown/poker"
)

// evaluate validates a request and resolves the winner. Validation is the
// server's job, not the core's: by the time poker.Resolve runs, every hand
// holds exactly five well-formed, physically distinct cards.
func (s *Server) evaluate(req *protocol.EvaluateRequest) (*protocol.EvaluateResponse, *protocol.Error) {
	entries, err := buildEntries(req.Players, s.cfg.MaxPlayers)
	if err != nil {
		s.monitor.RecordRejected()
		return nil, &protocol.Error{
			RequestID: req.RequestID,
			Code:      "invalid_request",
			Message:   err.Error(),
		}
	}

	result, ok := poker.Resolve(entries)
	if !ok {
		s.monitor.RecordNoWinner()
		return &protocol.EvaluateResponse{
			RequestID: req.RequestID,
			WinnerID:  nil,
		}, nil
	}

	s.monitor.RecordResult(result.Category)
	s.logger.Info().
		Str("request_id", req.RequestID).
		Int("players", len(entries)).
		Str("winner", result.ID).
		Stringer("category", result.Category).
		Msg("Showdown resolved")

	return &protocol.EvaluateResponse{
		RequestID:  req.RequestID,
		WinnerID:   &result.ID,
		WinnerName: result.Name,
		Category:   result.Category.String(),
		Profile:    result.Profile.Ranks(),
	}, nil
}

// buildEntries parses wire players into core entries, rejecting duplicate
// identifiers and duplicate physical cards across the whole request.
func buildEntries(players []protocol.Player, maxPlayers int) ([]poker.Entry, error) {
	if len(players) > maxPlayers {
		return nil, fmt.Errorf("too many players: %d exceeds limit of %d", len(players), maxPlayers)
	}

	entries := make([]poker.Entry, 0, len(players))
	seenIDs := make(map[string]bool, len(players))
	dealt := make(map[poker.Card]string, len(players)*poker.HandSize)

	for _, p := range players {
		if p.ID == "" {
			return nil, fmt.Errorf("player with empty id")
		}
		if seenIDs[p.ID] {
			return nil, fmt.Errorf("duplicate player id %q", p.ID)
		}
		seenIDs[p.ID] = true

		hand, err := poker.ParseHand(p.Cards)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", p.ID, err)
		}

		for _, card := range hand.Cards() {
			if holder, taken := dealt[card]; taken {
				return nil, fmt.Errorf("card %s dealt to both %q and %q", card, holder, p.ID)
			}
			dealt[card] = p.ID
		}

		entries = append(entries, poker.Entry{ID: p.ID, Name: p.Name, Hand: hand})
	}

	return entries, nil
}
