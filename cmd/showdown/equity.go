package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/lox/showdown/internal/equity"
	"github.com/lox/showdown/internal/fileutil"
	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/poker"
)

// EquityCmd runs a Monte Carlo equity simulation. Flags left at zero fall
// back to the config file.
type EquityCmd struct {
	Hands         []string `arg:"" help:"Player hands, e.g. 'AcKd' 'QhJs'"`
	Board         string   `short:"b" help:"Known board cards (0-5), e.g. 'Td7s8h'"`
	Opponents     int      `short:"o" help:"Additional opponents with random hole cards"`
	Iterations    int      `short:"i" help:"Number of Monte Carlo iterations"`
	Workers       int      `short:"w" help:"Worker goroutines (0 for one per CPU)"`
	Seed          int64    `help:"RNG seed (0 for random)" env:"SHOWDOWN_SEED"`
	Possibilities bool     `short:"p" help:"Show hand category probabilities"`
	Output        string   `short:"O" type:"path" help:"Also write the results as JSON to this file"`
}

func (c *EquityCmd) Run(globals *Globals) error {
	cfg, logger, err := globals.setup()
	if err != nil {
		return err
	}

	hands, err := parseHands(c.Hands)
	if err != nil {
		return err
	}
	board, err := poker.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	iterations := cfg.Simulation.Iterations
	if c.Iterations > 0 {
		iterations = c.Iterations
	}
	workers := cfg.Simulation.Workers
	if c.Workers > 0 {
		workers = c.Workers
	}
	seed := cfg.Simulation.Seed
	if c.Seed != 0 {
		seed = c.Seed
	}
	seed = randutil.Seed(seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := equity.New(equity.Config{
		Hands:      hands,
		Opponents:  c.Opponents,
		Board:      board,
		Iterations: iterations,
		Workers:    workers,
		Seed:       seed,
		Logger:     logger,
	})
	result, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	renderEquity(os.Stdout, result, board, c.Possibilities)

	if c.Output != "" {
		if err := fileutil.WriteJSONAtomic(c.Output, newReport(result, board, seed), 0o644); err != nil {
			return err
		}
		logger.Info("wrote report", "path", c.Output)
	}
	return nil
}

// report is the JSON form of a simulation result.
type report struct {
	Board      string         `json:"board,omitempty"`
	Seed       int64          `json:"seed"`
	Iterations int            `json:"iterations"`
	ElapsedMs  int64          `json:"elapsed_ms"`
	Players    []playerReport `json:"players"`
}

type playerReport struct {
	Hand       string         `json:"hand"`
	Equity     float64        `json:"equity"`
	Wins       int            `json:"wins"`
	Ties       int            `json:"ties"`
	Categories map[string]int `json:"categories"`
}

func newReport(result *equity.Result, board []poker.Card, seed int64) report {
	r := report{
		Board:      joinCards(board),
		Seed:       seed,
		Iterations: result.Iterations,
		ElapsedMs:  result.Elapsed.Milliseconds(),
		Players:    make([]playerReport, len(result.Players)),
	}
	for i, p := range result.Players {
		hand := "random"
		if p.Hole != nil {
			hand = joinCards(p.Hole)
		}
		categories := make(map[string]int)
		for c, n := range p.Categories {
			if n > 0 {
				categories[poker.Category(c).String()] = n
			}
		}
		r.Players[i] = playerReport{
			Hand:       hand,
			Equity:     p.Equity,
			Wins:       p.Wins,
			Ties:       p.Ties,
			Categories: categories,
		}
	}
	return r
}

func joinCards(cards []poker.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}

func parseHands(handStrings []string) ([][]poker.Card, error) {
	hands := make([][]poker.Card, 0, len(handStrings))
	for i, handStr := range handStrings {
		hand, err := poker.ParseCards(strings.TrimSpace(handStr))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(hand) != 2 {
			return nil, fmt.Errorf("hand %d: must contain exactly 2 cards, got %d", i+1, len(hand))
		}
		hands = append(hands, hand)
	}
	return hands, nil
}

func renderEquity(w io.Writer, result *equity.Result, board []poker.Card, possibilities bool) {
	if len(board) > 0 {
		fmt.Fprintf(w, "%s %s\n", headerStyle.Render("Board:"), renderCards(board))
	}
	fmt.Fprintf(w, "%s %d iterations in %s\n\n", headerStyle.Render("Ran"), result.Iterations, result.Elapsed.Round(time.Millisecond))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Player\tHand\tEquity\tWin\tTie")
	for i, p := range result.Players {
		hand := "random"
		if p.Hole != nil {
			hand = renderCards(p.Hole)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1,
			handStyle.Render(hand),
			winStyle.Render(fmt.Sprintf("%.2f%%", 100*p.Equity)),
			percent(p.Wins, result.Iterations),
			tieStyle.Render(percent(p.Ties, result.Iterations)))
	}
	tw.Flush()

	if !possibilities {
		return
	}

	for i, p := range result.Players {
		fmt.Fprintf(w, "\n%s\n", headerStyle.Render(fmt.Sprintf("Player %d hand categories", i+1)))
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for c := poker.RoyalFlush; ; c-- {
			if p.Categories[c] > 0 {
				fmt.Fprintf(tw, "%s\t%s\n", categoryStyle.Render(c.String()), percent(p.Categories[c], result.Iterations))
			}
			if c == poker.HighCard {
				break
			}
		}
		tw.Flush()
	}
}

func percent(n, total int) string {
	return fmt.Sprintf("%.2f%%", 100*float64(n)/float64(total))
}
