// Package equity estimates showdown equity by dealing random run-outs from a
// deck and evaluating every player's best hand.
package equity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/poker"
)

// ErrInvalidInput is wrapped by every validation failure from Run.
var ErrInvalidInput = errors.New("invalid simulation input")

// maxWorkers caps the default worker count; returns diminish past it.
const maxWorkers = 8

// cancelCheckInterval is how many iterations a worker runs between context checks.
const cancelCheckInterval = 1024

// Config holds configuration for a simulation
type Config struct {
	Hands      [][]poker.Card // known hole cards, two per player
	Opponents  int            // extra players dealt random hole cards
	Board      []poker.Card   // 0-5 known board cards
	Iterations int
	Workers    int // 0 picks one per CPU, capped at 8
	Seed       int64
	Logger     *log.Logger
	Clock      quartz.Clock
}

// PlayerResult holds one player's tallies.
type PlayerResult struct {
	Hole       []poker.Card // nil for random opponents
	Wins       int          // outright wins
	Ties       int          // split pots
	Equity     float64      // pot share won, ties split evenly
	Categories [poker.NumCategories]int
}

// Result is the outcome of a simulation.
type Result struct {
	Players    []PlayerResult
	Iterations int
	Elapsed    time.Duration
}

// Simulator runs Monte Carlo equity simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Workers <= 0 {
		config.Workers = min(runtime.NumCPU(), maxWorkers)
	}
	return &Simulator{config: config}
}

type tally struct {
	wins       []int
	ties       []int
	share      []float64
	categories [][poker.NumCategories]int
}

func newTally(players int) *tally {
	return &tally{
		wins:       make([]int, players),
		ties:       make([]int, players),
		share:      make([]float64, players),
		categories: make([][poker.NumCategories]int, players),
	}
}

// Run deals Iterations run-outs split across the configured workers. Each
// worker owns its own deck seeded from the simulation seed, so a given seed
// and worker count always reproduce the same result.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	cfg := s.config
	if err := validate(cfg); err != nil {
		return nil, err
	}

	players := len(cfg.Hands) + cfg.Opponents
	workers := min(cfg.Workers, cfg.Iterations)
	perWorker := cfg.Iterations / workers
	remainder := cfg.Iterations % workers

	known := make([]poker.Card, 0, 2*len(cfg.Hands)+len(cfg.Board))
	for _, hole := range cfg.Hands {
		known = append(known, hole...)
	}
	known = append(known, cfg.Board...)

	cfg.Logger.Debug("starting simulation",
		"players", players,
		"iterations", cfg.Iterations,
		"workers", workers,
		"seed", cfg.Seed)

	start := cfg.Clock.Now()
	tallies := make([]*tally, workers)
	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		n := perWorker
		if w < remainder {
			n++
		}
		deck := poker.NewDeck(randutil.New(randutil.Derive(cfg.Seed, w)))

		g.Go(func() error {
			t, err := runWorker(gctx, cfg, deck, known, players, n)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			tallies[w] = t
			cfg.Logger.Debug("worker finished", "worker", w, "iterations", n)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}

	total := newTally(players)
	for _, t := range tallies {
		for p := 0; p < players; p++ {
			total.wins[p] += t.wins[p]
			total.ties[p] += t.ties[p]
			total.share[p] += t.share[p]
			for c := range t.categories[p] {
				total.categories[p][c] += t.categories[p][c]
			}
		}
	}

	result := &Result{
		Players:    make([]PlayerResult, players),
		Iterations: cfg.Iterations,
		Elapsed:    cfg.Clock.Since(start),
	}
	for p := range result.Players {
		pr := &result.Players[p]
		if p < len(cfg.Hands) {
			pr.Hole = append([]poker.Card(nil), cfg.Hands[p]...)
		}
		pr.Wins = total.wins[p]
		pr.Ties = total.ties[p]
		pr.Equity = total.share[p] / float64(cfg.Iterations)
		pr.Categories = total.categories[p]
	}

	cfg.Logger.Info("simulation complete",
		"iterations", cfg.Iterations,
		"elapsed", result.Elapsed)

	return result, nil
}

func runWorker(ctx context.Context, cfg Config, deck *poker.Deck, known []poker.Card, players, iterations int) (*tally, error) {
	t := newTally(players)
	strengths := make([]poker.HandStrength, players)
	holes := make([][]poker.Card, players)
	copy(holes, cfg.Hands)
	board := make([]poker.Card, 0, 5)
	missing := 5 - len(cfg.Board)

	for i := 0; i < iterations; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		deck.Reset()
		if err := deck.Take(known...); err != nil {
			return nil, err
		}
		deck.Shuffle()

		for p := len(cfg.Hands); p < players; p++ {
			hole, err := deck.Draw(2)
			if err != nil {
				return nil, err
			}
			holes[p] = hole
		}

		rest, err := deck.Draw(missing)
		if err != nil {
			return nil, err
		}
		board = append(board[:0], cfg.Board...)
		board = append(board, rest...)

		for p := range strengths {
			strengths[p] = poker.NewHand(holes[p], board).Best()
			t.categories[p][strengths[p].Category]++
		}

		winners := poker.Winners(strengths)
		split := 1 / float64(len(winners))
		for _, p := range winners {
			if len(winners) == 1 {
				t.wins[p]++
			} else {
				t.ties[p]++
			}
			t.share[p] += split
		}
	}

	return t, nil
}

func validate(cfg Config) error {
	players := len(cfg.Hands) + cfg.Opponents
	if cfg.Opponents < 0 {
		return fmt.Errorf("%w: negative opponent count %d", ErrInvalidInput, cfg.Opponents)
	}
	if players < 2 {
		return fmt.Errorf("%w: need at least 2 players, got %d", ErrInvalidInput, players)
	}
	if cfg.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidInput, cfg.Iterations)
	}
	if len(cfg.Board) > 5 {
		return fmt.Errorf("%w: board cannot have more than 5 cards, got %d", ErrInvalidInput, len(cfg.Board))
	}

	var seen poker.CardSet
	check := func(card poker.Card, where string) error {
		if !card.Valid() {
			return fmt.Errorf("%w: invalid card %v in %s", ErrInvalidInput, card, where)
		}
		if seen.Contains(card) {
			return fmt.Errorf("%w: duplicate card %s in %s", ErrInvalidInput, card, where)
		}
		seen.Add(card)
		return nil
	}

	for _, card := range cfg.Board {
		if err := check(card, "board"); err != nil {
			return err
		}
	}
	for i, hole := range cfg.Hands {
		if len(hole) != 2 {
			return fmt.Errorf("%w: hand %d must contain exactly 2 cards, got %d", ErrInvalidInput, i+1, len(hole))
		}
		for _, card := range hole {
			if err := check(card, fmt.Sprintf("hand %d", i+1)); err != nil {
				return err
			}
		}
	}

	needed := 2*players + 5
	if needed > poker.DeckSize {
		return fmt.Errorf("%w: %d players need %d cards, deck has %d", ErrInvalidInput, players, needed, poker.DeckSize)
	}

	return nil
}
