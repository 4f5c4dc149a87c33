package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/poker"
)

// DealCmd deals one hand to each player from a freshly shuffled deck
type DealCmd struct {
	Players int   `short:"n" default:"2" help:"Number of players"`
	Seed    int64 `help:"RNG seed (0 for random)" env:"SHOWDOWN_SEED"`
}

// dealtHand is one player's cards and result.
type dealtHand struct {
	Hole     []poker.Card
	Strength poker.HandStrength
}

func (c *DealCmd) Run(globals *Globals) error {
	_, logger, err := globals.setup()
	if err != nil {
		return err
	}

	seed := randutil.Seed(c.Seed)
	logger.Info("dealing", "players", c.Players, "seed", seed)

	deck := poker.NewDeck(randutil.New(seed))
	board, hands, err := deal(deck, c.Players)
	if errors.Is(err, poker.ErrDeckExhausted) {
		return fmt.Errorf("%d players is more than one deck can deal: %w", c.Players, err)
	}
	if err != nil {
		return err
	}

	renderDeal(os.Stdout, board, hands)
	return nil
}

// deal shuffles the deck, deals two hole cards per player then five board
// cards, and evaluates every hand.
func deal(deck *poker.Deck, players int) ([]poker.Card, []dealtHand, error) {
	if players < 1 {
		return nil, nil, fmt.Errorf("need at least 1 player, got %d", players)
	}

	deck.Shuffle()

	hands := make([]dealtHand, players)
	for i := range hands {
		hole, err := deck.Draw(2)
		if err != nil {
			return nil, nil, err
		}
		hands[i].Hole = hole
	}

	board, err := deck.Draw(5)
	if err != nil {
		return nil, nil, err
	}

	for i := range hands {
		hands[i].Strength = poker.NewHand(hands[i].Hole, board).Best()
	}
	return board, hands, nil
}

func renderDeal(w io.Writer, board []poker.Card, hands []dealtHand) {
	strengths := make([]poker.HandStrength, len(hands))
	for i, h := range hands {
		strengths[i] = h.Strength
	}
	winners := poker.Winners(strengths)
	won := make(map[int]bool, len(winners))
	for _, i := range winners {
		won[i] = true
	}

	fmt.Fprintf(w, "%s %s\n\n", headerStyle.Render("Board:"), renderCards(board))
	for i, h := range hands {
		line := fmt.Sprintf("Player %d  %s  %s", i+1, renderCards(h.Hole), categoryStyle.Render(h.Strength.String()))
		switch {
		case won[i] && len(winners) > 1:
			line += "  " + tieStyle.Render("split")
		case won[i]:
			line += "  " + winStyle.Render("wins")
		}
		fmt.Fprintln(w, line)
	}
}
