package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/showdown/internal/equity"
	"github.com/lox/showdown/internal/fileutil"
	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/poker"
)

func TestParseHands(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected int
		hasError bool
	}{
		{name: "Single hand", input: []string{"AcKh"}, expected: 1},
		{name: "Multiple hands", input: []string{"AcKh", "KdQs"}, expected: 2},
		{name: "Hand with spaces", input: []string{"Ac Kh"}, expected: 1},
		{name: "Invalid hand - too many cards", input: []string{"AcKhQd"}, hasError: true},
		{name: "Invalid hand - too few cards", input: []string{"Ac"}, hasError: true},
		{name: "Invalid card format", input: []string{"AcXy"}, hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hands, err := parseHands(tt.input)
			if tt.hasError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, hands, tt.expected)
		})
	}
}

func TestParseHoleAndBoard(t *testing.T) {
	hole, board, err := parseHoleAndBoard("AhKh", "QhJhTh")
	require.NoError(t, err)
	assert.Len(t, hole, 2)
	assert.Len(t, board, 3)

	_, _, err = parseHoleAndBoard("AhKh", "QhJh")
	assert.Error(t, err, "board too short")

	_, _, err = parseHoleAndBoard("AhKh", "QhJhTh9h8h7h")
	assert.Error(t, err, "board too long")

	_, _, err = parseHoleAndBoard("Ah", "QhJhTh")
	assert.Error(t, err, "one hole card")

	_, _, err = parseHoleAndBoard("AhKh", "AhJhTh")
	assert.ErrorContains(t, err, "duplicate card found: Ah")
}

func TestRenderEval(t *testing.T) {
	hole, board, err := parseHoleAndBoard("KhKc", "KdKs9h2h9c")
	require.NoError(t, err)

	var buf bytes.Buffer
	renderEval(&buf, hole, board, poker.NewHand(hole, board).Best())
	assert.Contains(t, buf.String(), "Four of a Kind: K, kicker 9")
}

func TestDealIsReproducible(t *testing.T) {
	boardA, handsA, err := deal(poker.NewDeck(randutil.New(7)), 4)
	require.NoError(t, err)
	boardB, handsB, err := deal(poker.NewDeck(randutil.New(7)), 4)
	require.NoError(t, err)

	assert.Equal(t, boardA, boardB)
	assert.Equal(t, handsA, handsB)
	require.Len(t, handsA, 4)

	var used poker.CardSet
	for _, c := range boardA {
		used.Add(c)
	}
	for _, h := range handsA {
		require.Len(t, h.Hole, 2)
		for _, c := range h.Hole {
			assert.False(t, used.Contains(c), "card %s dealt twice", c)
			used.Add(c)
		}
		assert.Equal(t, poker.NewHand(h.Hole, boardA).Best(), h.Strength)
	}

	var buf bytes.Buffer
	renderDeal(&buf, boardA, handsA)
	assert.Contains(t, buf.String(), "Player 4")
}

func TestDealTooManyPlayers(t *testing.T) {
	_, _, err := deal(poker.NewDeck(randutil.New(1)), 24)
	assert.ErrorIs(t, err, poker.ErrDeckExhausted)

	_, _, err = deal(poker.NewDeck(randutil.New(1)), 0)
	assert.Error(t, err)
}

func TestRenderDealSplit(t *testing.T) {
	board := poker.MustParseCards("AsKsQsJsTs")
	hands := []dealtHand{
		{Hole: poker.MustParseCards("2c3d"), Strength: poker.NewRoyalFlush()},
		{Hole: poker.MustParseCards("2h3h"), Strength: poker.NewRoyalFlush()},
	}

	var buf bytes.Buffer
	renderDeal(&buf, board, hands)
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("split")))
}

func TestRenderEquity(t *testing.T) {
	result := &equity.Result{
		Iterations: 100,
		Players: []equity.PlayerResult{
			{Hole: poker.MustParseCards("AhAd"), Wins: 80, Ties: 2, Equity: 0.81},
			{Wins: 18, Ties: 2, Equity: 0.19},
		},
	}
	result.Players[0].Categories[poker.OnePair] = 60

	var buf bytes.Buffer
	renderEquity(&buf, result, nil, true)
	out := buf.String()
	assert.Contains(t, out, "81.00%")
	assert.Contains(t, out, "random")
	assert.Contains(t, out, "One Pair")
	assert.Contains(t, out, "60.00%")
}

func TestReportJSON(t *testing.T) {
	result := &equity.Result{
		Iterations: 10,
		Elapsed:    1500 * time.Millisecond,
		Players: []equity.PlayerResult{
			{Hole: poker.MustParseCards("AhAd"), Wins: 7, Ties: 1, Equity: 0.75},
			{Wins: 2, Ties: 1, Equity: 0.25},
		},
	}
	result.Players[0].Categories[poker.OnePair] = 10

	path := filepath.Join(t.TempDir(), "equity.json")
	require.NoError(t, fileutil.WriteJSONAtomic(path, newReport(result, poker.MustParseCards("2c7d9h"), 42), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "2c7d9h", got.Board)
	assert.Equal(t, int64(42), got.Seed)
	assert.Equal(t, int64(1500), got.ElapsedMs)
	require.Len(t, got.Players, 2)
	assert.Equal(t, "AhAd", got.Players[0].Hand)
	assert.Equal(t, map[string]int{"One Pair": 10}, got.Players[0].Categories)
	assert.Equal(t, "random", got.Players[1].Hand)
	assert.Empty(t, got.Players[1].Categories)
}
