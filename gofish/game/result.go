package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/gofish/gofish/card"
)

// Participant names a player taking part in a round.
type Participant struct {
	ID   PlayerID `json:"id"`
	Name string   `json:"name"`
}

func participantOf(p *Player) Participant {
	return Participant{ID: p.ID(), Name: p.Name()}
}

// RoundResult records the outcome of one PlayRound call. It is never
// modified after PlayRound returns it.
type RoundResult struct {
	asker        Participant
	opponent     Participant
	rank         card.Rank
	fished       bool
	gotRank      bool
	cardRevealed *card.Rank
	amount       string
	emptyPond    bool
	books        []Book
}

func (r *RoundResult) Asker() Participant {
	return r.asker
}

func (r *RoundResult) Opponent() Participant {
	return r.opponent
}

func (r *RoundResult) Rank() card.Rank {
	return r.rank
}

func (r *RoundResult) Fished() bool {
	return r.fished
}

func (r *RoundResult) GotRank() bool {
	return r.gotRank
}

// CardRevealed is the rank drawn from the pond when it missed the request.
// Only the asker may be shown it.
func (r *RoundResult) CardRevealed() (card.Rank, bool) {
	if r.cardRevealed == nil {
		return 0, false
	}
	return *r.cardRevealed, true
}

func (r *RoundResult) Amount() string {
	return r.amount
}

func (r *RoundResult) EmptyPond() bool {
	return r.emptyPond
}

func (r *RoundResult) BookMade() bool {
	return len(r.books) > 0
}

func (r *RoundResult) Books() []Book {
	books := make([]Book, len(r.books))
	copy(books, r.books)
	return books
}

// DisplayFor narrates the round from the viewer's seat.
func (r *RoundResult) DisplayFor(viewer PlayerID) string {
	buf := strings.Builder{}
	switch viewer {
	case r.asker.ID:
		buf.WriteString(fmt.Sprintf("You asked %s for %s's and ", r.opponent.Name, r.rank))
	case r.opponent.ID:
		buf.WriteString(fmt.Sprintf("%s asked you for %s's and ", r.asker.Name, r.rank))
	default:
		buf.WriteString(fmt.Sprintf("%s asked %s for %s's and ", r.asker.Name, r.opponent.Name, r.rank))
	}
	if r.fished {
		buf.WriteString("went fishing and ")
	}
	buf.WriteString(r.outcome(viewer == r.asker.ID))
	if r.BookMade() {
		buf.WriteString(", then created a book with them.")
	} else {
		buf.WriteString(".")
	}
	return buf.String()
}

func (r *RoundResult) outcome(reveal bool) string {
	if r.gotRank {
		return fmt.Sprintf("got %s of them", r.amount)
	}
	if r.emptyPond {
		return "got nothing! The pond is empty"
	}
	if rank, ok := r.CardRevealed(); ok && reveal {
		return fmt.Sprintf("got a %s", rank)
	}
	return "had no luck"
}

// amountWord spells small counts; anything from four up is "several".
func amountWord(count int) string {
	switch count {
	case 1:
		return "one"
	case 2:
		return "two"
	case 3:
		return "three"
	default:
		return "several"
	}
}
