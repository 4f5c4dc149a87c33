package poker

// CardSet is a set of cards backed by a 52-bit bitset. Only Valid cards may
// be stored.
type CardSet uint64

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards []Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << card.index()
}

// Remove removes a card from the set
func (cs *CardSet) Remove(card Card) {
	*cs &^= 1 << card.index()
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<card.index()) != 0
}
