package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/cardroom/showdown/poker"
)

// EvalCmd evaluates hands supplied on the command line or from a file
type EvalCmd struct {
	Hands []string `kong:"arg,optional,help='Hand specs in NAME:CARDS form, e.g. \"Alice: 10H JH QH KH AH\"'"`
	File  string   `kong:"help='Read one hand spec per line from a file',type='existingfile'"`
	Debug bool     `kong:"help='Enable debug logging'"`
}

var (
	winnerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	categoryStyle  = lipgloss.NewStyle().Faint(true)
	redCardStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	blackCardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
)

func (c *EvalCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{})
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	specs := append([]string{}, c.Hands...)
	if c.File != "" {
		fileSpecs, err := readSpecFile(c.File)
		if err != nil {
			return err
		}
		specs = append(specs, fileSpecs...)
	}

	entries, err := parseSpecs(specs)
	if err != nil {
		return err
	}
	logger.Debug("Parsed hands", "players", len(entries))

	result, ok := poker.Resolve(entries)
	if !ok {
		fmt.Println("No winner: no hands supplied.")
		return nil
	}

	for _, e := range entries {
		cat, _ := poker.Classify(e.Hand)
		marker := "  "
		if e.ID == result.ID {
			marker = winnerStyle.Render("▸ ")
		}
		fmt.Printf("%s%-12s %s  %s\n",
			marker, e.Name, renderHand(e.Hand), categoryStyle.Render(cat.String()))
	}

	fmt.Printf("\n%s wins with %s\n",
		winnerStyle.Render(result.Name), result.Category)
	return nil
}

// readSpecFile reads hand specs from a file, one per line. Blank lines and
// lines starting with # are skipped.
func readSpecFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var specs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		specs = append(specs, line)
	}
	return specs, scanner.Err()
}

// parseSpecs converts NAME:CARDS specs into resolver entries, rejecting any
// card that appears in more than one hand.
func parseSpecs(specs []string) ([]poker.Entry, error) {
	entries := make([]poker.Entry, 0, len(specs))
	dealt := make(map[poker.Card]string)

	for i, spec := range specs {
		name, cards, found := strings.Cut(spec, ":")
		if !found {
			return nil, fmt.Errorf("invalid hand spec %q: expected NAME:CARDS", spec)
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid hand spec %q: empty name", spec)
		}

		hand, err := poker.ParseHand(strings.Fields(cards))
		if err != nil {
			return nil, fmt.Errorf("hand for %q: %w", name, err)
		}

		for _, card := range hand.Cards() {
			if holder, taken := dealt[card]; taken {
				return nil, fmt.Errorf("card %s dealt to both %q and %q", card, holder, name)
			}
			dealt[card] = name
		}

		entries = append(entries, poker.Entry{
			ID:   fmt.Sprintf("p%d", i+1),
			Name: name,
			Hand: hand,
		})
	}

	return entries, nil
}

// renderHand colors cards red or white by suit
func renderHand(h poker.Hand) string {
	tokens := make([]string, 0, poker.HandSize)
	for _, card := range h.Cards() {
		token := card.Rank.String() + card.Suit.Symbol()
		if card.IsRed() {
			tokens = append(tokens, redCardStyle.Render(token))
		} else {
			tokens = append(tokens, blackCardStyle.Render(token))
		}
	}
	return strings.Join(tokens, " ")
}
