package game

import (
	"github.com/google/uuid"
	"github.com/ratel-online/gofish/gofish/card"
)

type BookSummary struct {
	Count int `json:"count"`
	Value int `json:"value"`
}

type BookView struct {
	Rank  card.Rank `json:"rank"`
	Value int       `json:"value"`
}

// OpponentView is all a viewer may learn about another player.
type OpponentView struct {
	ID    PlayerID    `json:"id"`
	Name  string      `json:"name"`
	Books BookSummary `json:"books"`
}

// View is the game as one player is allowed to see it.
type View struct {
	GameID    uuid.UUID      `json:"gameId"`
	Player    Participant    `json:"player"`
	Started   bool           `json:"started"`
	Finished  bool           `json:"finished"`
	YourTurn  bool           `json:"yourTurn"`
	Turn      string         `json:"turn,omitempty"`
	PondCount int            `json:"pondCount"`
	Hand      []card.Card    `json:"hand"`
	Books     []BookView     `json:"books"`
	Summary   BookSummary    `json:"summary"`
	Opponents []OpponentView `json:"opponents"`
	LastRound string         `json:"lastRound,omitempty"`
	Winners   []string       `json:"winners,omitempty"`
}

func summarize(p *Player) BookSummary {
	return BookSummary{Count: p.BookCount(), Value: p.TotalBookValue()}
}

// View builds the viewer's subjective snapshot. Other players' hands are
// never part of it.
func (g *Game) View(viewer PlayerID) (View, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	self, ok := g.index[viewer]
	if !ok {
		return View{}, ErrorsPlayerNotFound
	}
	view := View{
		GameID:    g.id,
		Player:    participantOf(self),
		Started:   g.started,
		Finished:  g.winners != nil,
		PondCount: g.deck.Count(),
		Hand:      self.Hand(),
		Books:     make([]BookView, 0, self.BookCount()),
		Summary:   summarize(self),
		Opponents: make([]OpponentView, 0, len(g.players)-1),
	}
	for _, book := range self.books {
		view.Books = append(view.Books, BookView{Rank: book.Rank(), Value: book.Value()})
	}
	for _, player := range g.players {
		if player == self {
			continue
		}
		view.Opponents = append(view.Opponents, OpponentView{
			ID:    player.ID(),
			Name:  player.Name(),
			Books: summarize(player),
		})
	}
	if g.started && g.winners == nil {
		current := g.current()
		view.YourTurn = current == self
		view.Turn = current.Name()
	}
	if g.lastResult != nil {
		view.LastRound = g.lastResult.DisplayFor(viewer)
	}
	for _, winner := range g.winners {
		view.Winners = append(view.Winners, winner.Name())
	}
	return view, nil
}
