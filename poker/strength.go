package poker

import (
	"fmt"
	"strings"
)

// Category enumerates the hand categories ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// NumCategories is the number of hand categories.
const NumCategories = 10

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandStrength is the outcome of evaluating a hand. Which payload fields are
// set depends on the category:
//
//	HighCard       Kickers (top 5 ranks)
//	OnePair        Primary=pair, Kickers (top 3 remaining)
//	TwoPair        Primary=high pair, Secondary=low pair, Kicker
//	ThreeOfAKind   Primary=trips, Kickers (top 2 remaining)
//	Straight       Primary=high card
//	Flush          Kickers (top 5 flush ranks)
//	FullHouse      Primary=trips, Secondary=pair
//	FourOfAKind    Primary=quads, Kicker
//	StraightFlush  Primary=high card
//	RoyalFlush     none
//
// Unused fields are zero, so two strengths of the same category always agree
// on which fields are populated.
type HandStrength struct {
	Category  Category
	Primary   Rank
	Secondary Rank
	Kicker    Rank
	// Kickers is a rank-score bitmask (bit i set for score i, bit 0 never
	// set). Higher numeric values are stronger kicker sets.
	Kickers uint16
}

func NewHighCard(kickers uint16) HandStrength {
	return HandStrength{Category: HighCard, Kickers: kickers}
}

func NewOnePair(pair Rank, kickers uint16) HandStrength {
	return HandStrength{Category: OnePair, Primary: pair, Kickers: kickers}
}

func NewTwoPair(high, low, kicker Rank) HandStrength {
	return HandStrength{Category: TwoPair, Primary: high, Secondary: low, Kicker: kicker}
}

func NewThreeOfAKind(trips Rank, kickers uint16) HandStrength {
	return HandStrength{Category: ThreeOfAKind, Primary: trips, Kickers: kickers}
}

func NewStraight(high Rank) HandStrength {
	return HandStrength{Category: Straight, Primary: high}
}

func NewFlush(kickers uint16) HandStrength {
	return HandStrength{Category: Flush, Kickers: kickers}
}

func NewFullHouse(trips, pair Rank) HandStrength {
	return HandStrength{Category: FullHouse, Primary: trips, Secondary: pair}
}

func NewFourOfAKind(quads, kicker Rank) HandStrength {
	return HandStrength{Category: FourOfAKind, Primary: quads, Kicker: kicker}
}

func NewStraightFlush(high Rank) HandStrength {
	return HandStrength{Category: StraightFlush, Primary: high}
}

func NewRoyalFlush() HandStrength {
	return HandStrength{Category: RoyalFlush}
}

// Compare returns -1 if h is weaker than other, 0 if they are equal (a split)
// and 1 if h is stronger. Category decides first; within a category the
// payload is compared Primary, Secondary, Kicker, then the Kickers mask as an
// unsigned integer.
func (h HandStrength) Compare(other HandStrength) int {
	if c := cmpUint(uint16(h.Category), uint16(other.Category)); c != 0 {
		return c
	}
	if c := cmpUint(uint16(h.Primary), uint16(other.Primary)); c != 0 {
		return c
	}
	if c := cmpUint(uint16(h.Secondary), uint16(other.Secondary)); c != 0 {
		return c
	}
	if c := cmpUint(uint16(h.Kicker), uint16(other.Kicker)); c != 0 {
		return c
	}
	return cmpUint(h.Kickers, other.Kickers)
}

// Less reports whether h is strictly weaker than other.
func (h HandStrength) Less(other HandStrength) bool {
	return h.Compare(other) < 0
}

func cmpUint(a, b uint16) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// KickerRanks decodes the Kickers mask into ranks, highest first.
func (h HandStrength) KickerRanks() []Rank {
	return maskRanks(h.Kickers)
}

// String describes the hand, e.g. "Two Pair: K and 9, kicker 5".
func (h HandStrength) String() string {
	switch h.Category {
	case HighCard, Flush:
		return fmt.Sprintf("%s: %s", h.Category, joinRanks(h.KickerRanks()))
	case OnePair, ThreeOfAKind:
		return fmt.Sprintf("%s: %s, kickers %s", h.Category, h.Primary, joinRanks(h.KickerRanks()))
	case TwoPair:
		return fmt.Sprintf("%s: %s and %s, kicker %s", h.Category, h.Primary, h.Secondary, h.Kicker)
	case Straight, StraightFlush:
		return fmt.Sprintf("%s: %s high", h.Category, h.Primary)
	case FullHouse:
		return fmt.Sprintf("%s: %s over %s", h.Category, h.Primary, h.Secondary)
	case FourOfAKind:
		return fmt.Sprintf("%s: %s, kicker %s", h.Category, h.Primary, h.Kicker)
	default:
		return h.Category.String()
	}
}

// Winners returns the indices of every strength equal to the maximum. More
// than one index means the pot is split. An empty input yields nil.
func Winners(strengths []HandStrength) []int {
	if len(strengths) == 0 {
		return nil
	}

	best := strengths[0]
	winners := []int{0}
	for i := 1; i < len(strengths); i++ {
		switch strengths[i].Compare(best) {
		case 1:
			best = strengths[i]
			winners = winners[:0]
			winners = append(winners, i)
		case 0:
			winners = append(winners, i)
		}
	}
	return winners
}

func maskRanks(mask uint16) []Rank {
	var ranks []Rank
	for score := int(Ace); score >= int(Two); score-- {
		if mask&(1<<score) != 0 {
			ranks = append(ranks, RankFromScore(score))
		}
	}
	return ranks
}

func joinRanks(ranks []Rank) string {
	parts := make([]string, len(ranks))
	for i, r := range ranks {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}
