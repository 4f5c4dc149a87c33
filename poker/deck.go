package poker

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lox/showdown/internal/randutil"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = NumRanks * NumSuits

// ErrDeckExhausted is returned when a draw asks for more cards than remain.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is a standard 52-card deck split into undealt and dealt cards. The
// top of the deck is the end of the undealt sequence.
//
// A Deck is not safe for concurrent use; give each goroutine its own.
type Deck struct {
	undealt []Card
	dealt   []Card
	rng     *rand.Rand
}

// NewDeck creates an unshuffled deck in canonical order (ranks ascending,
// suits in enumeration order within each rank). rng drives Shuffle; when nil
// a time-seeded generator is used.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = randutil.New(time.Now().UnixNano())
	}

	d := &Deck{
		undealt: make([]Card, 0, DeckSize),
		dealt:   make([]Card, 0, DeckSize),
		rng:     rng,
	}

	for _, rank := range Ranks {
		for _, suit := range Suits {
			d.undealt = append(d.undealt, NewCard(rank, suit))
		}
	}

	return d
}

// Shuffle permutes the undealt cards using Fisher-Yates. Dealt cards are left alone.
func (d *Deck) Shuffle() {
	for i := len(d.undealt) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.undealt[i], d.undealt[j] = d.undealt[j], d.undealt[i]
	}
}

// Draw removes n cards from the top of the deck and returns them in the order
// drawn. If fewer than n cards remain it returns ErrDeckExhausted and the deck
// is unchanged.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid draw count %d", n)
	}
	if n > len(d.undealt) {
		return nil, fmt.Errorf("%w: requested %d, %d remaining", ErrDeckExhausted, n, len(d.undealt))
	}

	cards := make([]Card, n)
	top := len(d.undealt) - 1
	for i := range cards {
		cards[i] = d.undealt[top-i]
	}
	d.undealt = d.undealt[:len(d.undealt)-n]
	d.dealt = append(d.dealt, cards...)

	return cards, nil
}

// Take moves the given cards from the undealt pile to the dealt pile,
// wherever they sit in the deck. It is used to pull cards that are already
// known (a player's hole cards, a partial board) out of play. Either every
// card is moved or, on error, none are.
func (d *Deck) Take(cards ...Card) error {
	var want CardSet
	for _, card := range cards {
		if !card.Valid() {
			return fmt.Errorf("invalid card %v", card)
		}
		if want.Contains(card) {
			return fmt.Errorf("duplicate card %s", card)
		}
		want.Add(card)
	}

	avail := NewCardSet(d.undealt)
	for _, card := range cards {
		if !avail.Contains(card) {
			return fmt.Errorf("card %s already dealt", card)
		}
	}

	kept := d.undealt[:0]
	for _, card := range d.undealt {
		if !want.Contains(card) {
			kept = append(kept, card)
		}
	}
	d.undealt = kept
	d.dealt = append(d.dealt, cards...)

	return nil
}

// Reset returns every dealt card to the deck. The deck is not reshuffled;
// call Shuffle before dealing again if a random order is needed.
func (d *Deck) Reset() {
	d.undealt = append(d.undealt, d.dealt...)
	d.dealt = d.dealt[:0]
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.undealt)
}

// Undealt returns a copy of the undealt cards, bottom first.
func (d *Deck) Undealt() []Card {
	return append([]Card(nil), d.undealt...)
}

// Dealt returns a copy of the dealt cards in the order they left the deck.
func (d *Deck) Dealt() []Card {
	return append([]Card(nil), d.dealt...)
}
