package poker

import "fmt"

// Suit is one of the four card suits. The order carries no ranking meaning;
// it only fixes iteration and deck construction order.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in a standard deck.
const NumSuits = 4

// Suits lists every suit in enumeration order.
var Suits = [NumSuits]Suit{Clubs, Diamonds, Hearts, Spades}

// String returns the single-letter notation of the suit.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Symbol returns the unicode symbol for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true for hearts and diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank is a card rank. Its numeric value is the rank score used in hand
// bitmasks: Two is 1 and Ace is 13.
type Rank uint8

const (
	Two Rank = iota + 1
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks.
const NumRanks = 13

// Ranks lists every rank from lowest to highest.
var Ranks = [NumRanks]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// RankFromScore maps a score in [1,13] back to its Rank. Any other score
// means a corrupted bitmask or table upstream and panics.
func RankFromScore(score int) Rank {
	if score < int(Two) || score > int(Ace) {
		panic(fmt.Sprintf("poker: no rank with score %d", score))
	}
	return Rank(score)
}

// Score returns the rank score (Two=1 ... Ace=13).
func (r Rank) Score() int {
	return int(r)
}

// String returns the single-character notation of the rank.
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card is an immutable playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the two-character notation of the card (e.g. "As").
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Pretty returns the card with its suit symbol (e.g. "A♠").
func (c Card) Pretty() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Compare orders cards by rank, then by suit. Suit order only makes sorting
// deterministic and has no bearing on hand strength.
func (c Card) Compare(other Card) int {
	switch {
	case c.Rank < other.Rank:
		return -1
	case c.Rank > other.Rank:
		return 1
	case c.Suit < other.Suit:
		return -1
	case c.Suit > other.Suit:
		return 1
	default:
		return 0
	}
}

// index returns a dense 0..51 index for the card.
func (c Card) index() int {
	return int(c.Rank-Two)*NumSuits + int(c.Suit)
}

// Valid reports whether both rank and suit are in range. The zero Card is
// not valid.
func (c Card) Valid() bool {
	return c.Rank >= Two && c.Rank <= Ace && c.Suit <= Spades
}
