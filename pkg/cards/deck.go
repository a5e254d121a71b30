package cards

import (
	"math/rand"
	"time"
)

// Deck represents a full 54-card deck. A Deck is not safe for
// concurrent use.
type Deck struct {
	cards []Card
}

// NewDeck creates a new deck holding every card once, in index order
func NewDeck() *Deck {
	deck := &Deck{cards: make([]Card, 0, RegularCards+2)}

	for _, suit := range Suits() {
		for r := Three; r <= Two; r++ {
			deck.cards = append(deck.cards, Card{rank: r, suit: suit})
		}
	}
	deck.cards = append(deck.cards, JokerCard(), WonderCard())

	return deck
}

// Shuffle shuffles the deck with r, or with a time-seeded source when r is nil
func (d *Deck) Shuffle(r *rand.Rand) {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns up to n cards from the top of the deck
func (d *Deck) Draw(n int) []Card {
	if n < 0 {
		n = 0
	}
	if n > len(d.cards) {
		n = len(d.cards)
	}

	drawn := make([]Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn
}

// DrawOne removes and returns the top card, false when the deck is empty
func (d *Deck) DrawOne() (Card, bool) {
	drawn := d.Draw(1)
	if len(drawn) == 0 {
		return Card{}, false
	}
	return drawn[0], true
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, top first
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
