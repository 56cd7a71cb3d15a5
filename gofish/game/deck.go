package game

import (
	"math/rand"

	"github.com/ratel-online/gofish/gofish/card"
)

// Deck is the pond. Cards are dealt from the front.
type Deck struct {
	cards []card.Card
}

func NewDeck() *Deck {
	return &Deck{cards: card.New52()}
}

// NewDeckOf builds a deck holding exactly the given cards, in order.
func NewDeckOf(cards []card.Card) *Deck {
	deck := &Deck{cards: make([]card.Card, len(cards))}
	copy(deck.cards, cards)
	return deck
}

func (d *Deck) Shuffle(seed int64) {
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

// Deal removes the front card. The second result is false when the deck is empty.
func (d *Deck) Deal() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

func (d *Deck) Clear() {
	d.cards = nil
}

func (d *Deck) Count() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}
