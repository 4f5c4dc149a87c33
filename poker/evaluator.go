package poker

import (
	"math/bits"
)

const (
	// aceLow is the mirror bit for an Ace playing below the Two.
	aceLow uint16 = 1
	// straightWindow covers five adjacent rank bits.
	straightWindow uint16 = 0x1F
	// numStraights is the number of straight windows, wheel through Broadway.
	numStraights = 10
)

// Hand is a read-only view over the hole and board cards of one player. All
// derived tables are built once in NewHand; Best never mutates the Hand, so a
// Hand may be shared between goroutines.
type Hand struct {
	cards      []Card
	rankMask   uint16
	suitCounts [NumSuits]uint8
	rankCounts [NumRanks + 1]uint8 // indexed by rank score
}

// NewHand combines hole and board cards in one pass. Seven cards is the
// normal case; anything from five up classifies correctly. Duplicate cards
// are a caller error and are not detected.
func NewHand(hole, board []Card) *Hand {
	h := &Hand{cards: make([]Card, 0, len(hole)+len(board))}
	h.cards = append(h.cards, hole...)
	h.cards = append(h.cards, board...)

	for _, c := range h.cards {
		h.rankMask |= rankBit(c.Rank)
		h.suitCounts[c.Suit]++
		h.rankCounts[c.Rank]++
	}

	return h
}

// Cards returns a copy of the cards in the hand, hole cards first.
func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

// Best classifies the strongest five-card hand available.
func (h *Hand) Best() HandStrength {
	// Ranks are visited from Ace down so both lists come out highest first.
	var sets, pairs []Rank
	for score := int(Ace); score >= int(Two); score-- {
		rank := Rank(score)
		switch h.rankCounts[score] {
		case 4:
			kicker := highestRank(h.rankMask &^ rankBit(rank))
			return NewFourOfAKind(rank, kicker)
		case 3:
			sets = append(sets, rank)
		case 2:
			pairs = append(pairs, rank)
		}
	}

	if len(sets) >= 2 {
		return NewFullHouse(sets[0], sets[1])
	}
	if len(sets) == 1 && len(pairs) > 0 {
		return NewFullHouse(sets[0], pairs[0])
	}

	if strength, ok := h.flush(); ok {
		return strength
	}

	if high, ok := straightHigh(h.rankMask); ok {
		return NewStraight(high)
	}

	if len(sets) == 1 {
		return NewThreeOfAKind(sets[0], topN(h.rankMask&^rankBit(sets[0]), 2))
	}

	if len(pairs) >= 2 {
		rest := h.rankMask &^ rankBit(pairs[0]) &^ rankBit(pairs[1])
		return NewTwoPair(pairs[0], pairs[1], highestRank(rest))
	}

	if len(pairs) == 1 {
		return NewOnePair(pairs[0], topN(h.rankMask&^rankBit(pairs[0]), 3))
	}

	return NewHighCard(topN(h.rankMask, 5))
}

// flush looks for five or more cards of one suit and, if found, classifies
// them as a royal flush, straight flush or plain flush.
func (h *Hand) flush() (HandStrength, bool) {
	for _, suit := range Suits {
		if h.suitCounts[suit] < 5 {
			continue
		}

		var mask uint16
		for _, c := range h.cards {
			if c.Suit == suit {
				mask |= rankBit(c.Rank)
			}
		}

		if high, ok := straightHigh(mask); ok {
			if high == Ace {
				return NewRoyalFlush(), true
			}
			return NewStraightFlush(high), true
		}
		return NewFlush(topN(mask, 5)), true
	}
	return HandStrength{}, false
}

// rankBit returns the mask bit(s) for a rank. The Ace sets both bit 13 and
// the low mirror bit 0 so a single window scan finds the wheel.
func rankBit(r Rank) uint16 {
	bit := uint16(1) << r
	if r == Ace {
		bit |= aceLow
	}
	return bit
}

// straightHigh scans the ten five-bit windows from Broadway down and returns
// the top rank of the first complete one.
func straightHigh(mask uint16) (Rank, bool) {
	for i := numStraights - 1; i >= 0; i-- {
		window := straightWindow << i
		if mask&window == window {
			return RankFromScore(i + 4), true
		}
	}
	return 0, false
}

// topN keeps the n highest ranks of mask by clearing the lowest set bit until
// n remain. The Ace mirror bit is dropped first.
func topN(mask uint16, n int) uint16 {
	mask &^= aceLow
	for bits.OnesCount16(mask) > n {
		mask &= mask - 1
	}
	return mask
}

// highestRank returns the highest rank present in mask, ignoring the Ace
// mirror bit. An empty mask is an invariant violation and panics.
func highestRank(mask uint16) Rank {
	return RankFromScore(bits.Len16(mask&^aceLow) - 1)
}
