package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ladder holds one strength per category in ascending order, with payloads
// chosen so that weaker categories carry larger payloads.
var ladder = []HandStrength{
	NewHighCard(mask(Ace, King, Queen, Jack, Nine)),
	NewOnePair(Ace, mask(King, Queen, Jack)),
	NewTwoPair(Ace, King, Queen),
	NewThreeOfAKind(Ace, mask(King, Queen)),
	NewStraight(Ace),
	NewFlush(mask(Ace, King, Queen, Jack, Nine)),
	NewFullHouse(Ace, King),
	NewFourOfAKind(Ace, King),
	NewStraightFlush(King),
	NewRoyalFlush(),
}

func TestCategoryDominatesPayload(t *testing.T) {
	t.Parallel()
	weakest := []HandStrength{
		NewHighCard(mask(Seven, Five, Four, Three, Two)),
		NewOnePair(Two, mask(Five, Four, Three)),
		NewTwoPair(Three, Two, Four),
		NewThreeOfAKind(Two, mask(Four, Three)),
		NewStraight(Five),
		NewFlush(mask(Seven, Five, Four, Three, Two)),
		NewFullHouse(Two, Three),
		NewFourOfAKind(Two, Three),
		NewStraightFlush(Five),
		NewRoyalFlush(),
	}

	for i := range ladder {
		assert.Equal(t, Category(i), ladder[i].Category)
		for j := range weakest {
			want := cmpInt(i, j)
			if i == j {
				continue
			}
			assert.Equal(t, want, ladder[i].Compare(weakest[j]), "%s vs %s", ladder[i], weakest[j])
			assert.Equal(t, -want, weakest[j].Compare(ladder[i]), "%s vs %s", weakest[j], ladder[i])
		}
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func TestCompareIsTotal(t *testing.T) {
	t.Parallel()
	all := append([]HandStrength{}, ladder...)
	all = append(all,
		NewOnePair(Ace, mask(King, Queen, Ten)),
		NewTwoPair(Ace, King, Jack),
		NewFlush(mask(Ace, King, Queen, Jack, Eight)),
		NewFullHouse(King, Ace),
	)

	for _, a := range all {
		assert.Zero(t, a.Compare(a))
		for _, b := range all {
			ab, ba := a.Compare(b), b.Compare(a)
			assert.Equal(t, -ab, ba, "%s vs %s", a, b)
			assert.Equal(t, ab == 0, a == b, "%s vs %s", a, b)
			assert.Equal(t, ab < 0, a.Less(b))
		}
	}
}

func TestKickerMonotonicity(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		weaker, strong HandStrength
	}{
		{
			name:   "high card",
			weaker: NewHighCard(mask(Ace, King, Nine, Eight, Six)),
			strong: NewHighCard(mask(Ace, King, Nine, Eight, Seven)),
		},
		{
			name:   "pair kicker",
			weaker: NewOnePair(Ten, mask(Ace, Four, Three)),
			strong: NewOnePair(Ten, mask(Ace, Five, Two)),
		},
		{
			name:   "pair rank beats kickers",
			weaker: NewOnePair(Nine, mask(Ace, King, Queen)),
			strong: NewOnePair(Ten, mask(Four, Three, Two)),
		},
		{
			name:   "two pair kicker",
			weaker: NewTwoPair(Jack, Four, Nine),
			strong: NewTwoPair(Jack, Four, Ten),
		},
		{
			name:   "two pair lower pair",
			weaker: NewTwoPair(Jack, Four, Ace),
			strong: NewTwoPair(Jack, Five, Two),
		},
		{
			name:   "set kickers",
			weaker: NewThreeOfAKind(Six, mask(King, Two)),
			strong: NewThreeOfAKind(Six, mask(King, Three)),
		},
		{
			name:   "flush",
			weaker: NewFlush(0b0001_0001_1101_0010),
			strong: NewFlush(0b0001_0011_0001_0010),
		},
		{
			name:   "full house",
			weaker: NewFullHouse(Nine, Ace),
			strong: NewFullHouse(Ten, Two),
		},
		{
			name:   "quads kicker",
			weaker: NewFourOfAKind(Three, Queen),
			strong: NewFourOfAKind(Three, King),
		},
		{
			name:   "straight",
			weaker: NewStraight(Jack),
			strong: NewStraight(Queen),
		},
		{
			name:   "royal over king-high straight flush",
			weaker: NewStraightFlush(King),
			strong: NewRoyalFlush(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, 1, tc.strong.Compare(tc.weaker))
			assert.Equal(t, -1, tc.weaker.Compare(tc.strong))
			assert.True(t, tc.weaker.Less(tc.strong))
		})
	}
}

func TestWinners(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Winners(nil))

	assert.Equal(t, []int{2}, Winners([]HandStrength{
		NewOnePair(Ace, mask(King, Queen, Jack)),
		NewHighCard(mask(Ace, King, Queen, Jack, Nine)),
		NewTwoPair(Three, Two, Four),
	}))

	split := NewStraight(Ten)
	assert.Equal(t, []int{0, 2}, Winners([]HandStrength{
		split,
		NewStraight(Nine),
		split,
	}))

	assert.Equal(t, []int{1, 3}, Winners([]HandStrength{
		NewStraight(Nine),
		NewFlush(mask(King, Ten, Eight, Four, Two)),
		NewStraight(Ten),
		NewFlush(mask(King, Ten, Eight, Four, Two)),
	}))
}

func TestHandStrengthString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		strength HandStrength
		want     string
	}{
		{NewHighCard(mask(Ace, King, Eight, Six, Four)), "High Card: A K 8 6 4"},
		{NewOnePair(Nine, mask(Ace, King, Eight)), "One Pair: 9, kickers A K 8"},
		{NewTwoPair(King, Nine, Five), "Two Pair: K and 9, kicker 5"},
		{NewThreeOfAKind(Seven, mask(Ace, Jack)), "Three of a Kind: 7, kickers A J"},
		{NewStraight(Five), "Straight: 5 high"},
		{NewFlush(0b0001_0001_1101_0000), "Flush: K 9 8 7 5"},
		{NewFullHouse(King, Two), "Full House: K over 2"},
		{NewFourOfAKind(King, Nine), "Four of a Kind: K, kicker 9"},
		{NewStraightFlush(Nine), "Straight Flush: 9 high"},
		{NewRoyalFlush(), "Royal Flush"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.strength.String())
	}
	assert.Equal(t, []Rank{King, Nine, Eight, Seven, Five}, NewFlush(0b0001_0001_1101_0000).KickerRanks())
}
