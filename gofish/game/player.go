package game

import (
	"github.com/ratel-online/gofish/gofish/card"
)

// PlayerID identifies a player. It is opaque to the engine and compared by value.
type PlayerID string

type Player struct {
	id    PlayerID
	name  string
	hand  []card.Card
	books []Book
}

func NewPlayer(id PlayerID, name string) *Player {
	return &Player{
		id:   id,
		name: name,
		hand: make([]card.Card, 0, 8),
	}
}

func (p *Player) ID() PlayerID {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) AddToHand(cards ...card.Card) {
	p.hand = append(p.hand, cards...)
}

func (p *Player) Hand() []card.Card {
	hand := make([]card.Card, len(p.hand))
	copy(hand, p.hand)
	return hand
}

func (p *Player) HandCount() int {
	return len(p.hand)
}

func (p *Player) HandHasRank(rank card.Rank) bool {
	for _, c := range p.hand {
		if c.Rank == rank {
			return true
		}
	}
	return false
}

func (p *Player) RankCount(rank card.Rank) int {
	count := 0
	for _, c := range p.hand {
		if c.Rank == rank {
			count++
		}
	}
	return count
}

// RemoveCardsWithRank takes every card of the rank out of the hand and returns them.
func (p *Player) RemoveCardsWithRank(rank card.Rank) []card.Card {
	var removed []card.Card
	kept := p.hand[:0]
	for _, c := range p.hand {
		if c.Rank == rank {
			removed = append(removed, c)
			continue
		}
		kept = append(kept, c)
	}
	p.hand = kept
	return removed
}

// DetectAndExtractBooks moves every complete rank from the hand into a new
// book and returns the books formed by this call.
func (p *Player) DetectAndExtractBooks() []Book {
	var formed []Book
	for _, rank := range p.distinctRanks() {
		if p.RankCount(rank) < BookSize {
			continue
		}
		cards := p.RemoveCardsWithRank(rank)
		book := newBook(rank, cards[:BookSize])
		p.AddToHand(cards[BookSize:]...)
		p.books = append(p.books, book)
		formed = append(formed, book)
	}
	return formed
}

func (p *Player) distinctRanks() []card.Rank {
	seen := make(map[card.Rank]bool, len(p.hand))
	ranks := make([]card.Rank, 0, len(p.hand))
	for _, c := range p.hand {
		if !seen[c.Rank] {
			seen[c.Rank] = true
			ranks = append(ranks, c.Rank)
		}
	}
	return ranks
}

func (p *Player) Books() []Book {
	books := make([]Book, len(p.books))
	copy(books, p.books)
	return books
}

func (p *Player) BookCount() int {
	return len(p.books)
}

func (p *Player) TotalBookValue() int {
	total := 0
	for _, book := range p.books {
		total += book.Value()
	}
	return total
}
