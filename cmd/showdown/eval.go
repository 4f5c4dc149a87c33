package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/showdown/poker"
)

// EvalCmd evaluates a single player's best hand
type EvalCmd struct {
	Hole  string `arg:"" help:"Hole cards, e.g. 'AhKh'"`
	Board string `arg:"" help:"Board cards, e.g. 'QhJhTh2c3d'"`
}

func (c *EvalCmd) Run(globals *Globals) error {
	_, logger, err := globals.setup()
	if err != nil {
		return err
	}

	hole, board, err := parseHoleAndBoard(c.Hole, c.Board)
	if err != nil {
		return err
	}

	strength := poker.NewHand(hole, board).Best()
	logger.Debug("evaluated hand", "hole", hole, "board", board, "category", strength.Category)

	renderEval(os.Stdout, hole, board, strength)
	return nil
}

func parseHoleAndBoard(holeStr, boardStr string) ([]poker.Card, []poker.Card, error) {
	hole, err := poker.ParseCards(holeStr)
	if err != nil {
		return nil, nil, fmt.Errorf("hole cards: %w", err)
	}
	if len(hole) != 2 {
		return nil, nil, fmt.Errorf("hole cards: must contain exactly 2 cards, got %d", len(hole))
	}

	board, err := poker.ParseCards(boardStr)
	if err != nil {
		return nil, nil, fmt.Errorf("board: %w", err)
	}
	if len(board) < 3 || len(board) > 5 {
		return nil, nil, fmt.Errorf("board: must contain 3 to 5 cards, got %d", len(board))
	}

	if err := checkDuplicates(append(append([]poker.Card(nil), hole...), board...)); err != nil {
		return nil, nil, err
	}
	return hole, board, nil
}

func checkDuplicates(cards []poker.Card) error {
	var seen poker.CardSet
	for _, card := range cards {
		if seen.Contains(card) {
			return fmt.Errorf("duplicate card found: %s", card)
		}
		seen.Add(card)
	}
	return nil
}

func renderEval(w io.Writer, hole, board []poker.Card, strength poker.HandStrength) {
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("Hole: "), renderCards(hole))
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("Board:"), renderCards(board))
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("Best: "), handStyle.Render(strength.String()))
}
