package game

import (
	"fmt"

	"github.com/ratel-online/gofish/gofish/card"
)

// BookSize is the number of same-rank cards that form a book.
const BookSize = 4

type Book struct {
	rank  card.Rank
	cards [BookSize]card.Card
}

// newBook expects exactly BookSize cards of the given rank.
func newBook(rank card.Rank, cards []card.Card) Book {
	book := Book{rank: rank}
	copy(book.cards[:], cards)
	return book
}

func (b Book) Rank() card.Rank {
	return b.rank
}

func (b Book) Value() int {
	return b.rank.Value()
}

func (b Book) Cards() []card.Card {
	return b.cards[:]
}

func (b Book) String() string {
	return fmt.Sprintf("book of %s's", b.rank)
}
