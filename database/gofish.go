package database

import (
	"strconv"
	"sync"
	"time"

	"github.com/ratel-online/gofish/config"
	"github.com/ratel-online/gofish/consts"
	"github.com/ratel-online/gofish/gofish/card"
	"github.com/ratel-online/gofish/gofish/game"
)

// Signals sent on a player's state channel.
const (
	GoFishTurn = 1
	GoFishOver = 2
)

// GoFish binds a match to a room. Each seated player's goroutine waits on
// its own channel in States until the match hands it the turn.
type GoFish struct {
	sync.Mutex

	Room    *Room              `json:"room"`
	Players []int64            `json:"players"`
	States  map[int64]chan int `json:"-"`
	Game    *game.Game         `json:"-"`

	left   map[int64]bool
	closed bool
}

func PlayerID(id int64) game.PlayerID {
	return game.PlayerID(strconv.FormatInt(id, 10))
}

func ParsePlayerID(id game.PlayerID) int64 {
	v, _ := strconv.ParseInt(string(id), 10, 64)
	return v
}

// NewGoFish seats the room's players in join order and deals.
func NewGoFish(room *Room) (*GoFish, error) {
	ids := RoomPlayers(room.ID)
	if len(ids) < config.Get().MinPlayers || len(ids) > room.MaxPlayers {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	opts := []game.Option{
		game.WithDealNumber(config.Get().DealNumber),
		game.WithSeed(time.Now().UnixNano()),
	}
	if room.EnableDontShuffle {
		opts = append(opts, game.WithoutShuffle())
	}
	engine := game.New(opts...)
	states := make(map[int64]chan int, len(ids))
	for _, id := range ids {
		player := getPlayer(id)
		if player == nil {
			return nil, consts.ErrorsGamePlayersInvalid
		}
		if _, err := engine.AddPlayer(PlayerID(id), player.Name); err != nil {
			return nil, err
		}
		states[id] = make(chan int, 1)
	}
	if err := engine.Start(); err != nil {
		return nil, err
	}
	return &GoFish{
		Room:    room,
		Players: ids,
		States:  states,
		Game:    engine,
		left:    map[int64]bool{},
	}, nil
}

// Current returns the id of the player whose turn it is, or 0 once the
// match is over.
func (g *GoFish) Current() int64 {
	p, ok := g.Game.CurrentPlayer()
	if !ok {
		return 0
	}
	return ParsePlayerID(p.ID)
}

func (g *GoFish) IsCurrent(playerID int64) bool {
	return g.Current() == playerID
}

// Prepare refills or skips the current player before they ask.
func (g *GoFish) Prepare(playerID int64) (game.Status, error) {
	g.Lock()
	defer g.Unlock()
	if !g.IsCurrent(playerID) {
		return game.StatusReady, consts.ErrorsNotYourTurn
	}
	return g.Game.DealToPlayerIfNecessary()
}

// Play asks opponent for rank on behalf of playerID. Requests from anyone
// but the current player are rejected without touching the match.
func (g *GoFish) Play(playerID, opponent int64, rank card.Rank) (*game.RoundResult, error) {
	g.Lock()
	defer g.Unlock()
	if !g.IsCurrent(playerID) {
		return nil, consts.ErrorsNotYourTurn
	}
	return g.Game.PlayRound(PlayerID(opponent), rank)
}

// AutoMove picks the first opponent in seat order and the first rank in hand.
func (g *GoFish) AutoMove(playerID int64) (int64, card.Rank, bool) {
	view, err := g.Game.View(PlayerID(playerID))
	if err != nil || len(view.Hand) == 0 || len(view.Opponents) == 0 {
		return 0, 0, false
	}
	return ParsePlayerID(view.Opponents[0].ID), view.Hand[0].Rank, true
}

// Label is the number an opponent is picked by, starting at 1 in seat order.
func (g *GoFish) Label(playerID, opponent int64) int {
	n := 0
	for _, id := range g.Players {
		if id == playerID {
			continue
		}
		n++
		if id == opponent {
			return n
		}
	}
	return 0
}

// Opponent resolves a label typed by playerID.
func (g *GoFish) Opponent(playerID int64, label int) (int64, bool) {
	for _, id := range g.Players {
		if id != playerID && g.Label(playerID, id) == label {
			return id, true
		}
	}
	return 0, false
}

func (g *GoFish) Leave(playerID int64) {
	g.Lock()
	defer g.Unlock()
	g.left[playerID] = true
}

// Active reports whether a human is still driving playerID's seat.
func (g *GoFish) Active(playerID int64) bool {
	g.Lock()
	defer g.Unlock()
	if g.left[playerID] {
		return false
	}
	p := getPlayer(playerID)
	return p != nil && p.online && p.RoomID == g.Room.ID
}

// NeedExit is true once no seat is driven by a connected player.
func (g *GoFish) NeedExit() bool {
	for _, id := range g.Players {
		if g.Active(id) {
			return false
		}
	}
	return true
}

// Signal wakes playerID's goroutine without blocking.
func (g *GoFish) Signal(playerID int64, state int) {
	g.Lock()
	defer g.Unlock()
	if g.closed {
		return
	}
	if ch, ok := g.States[playerID]; ok {
		select {
		case ch <- state:
		default:
		}
	}
}

func (g *GoFish) delete() {
	if g == nil {
		return
	}
	g.Lock()
	defer g.Unlock()
	if g.closed {
		return
	}
	g.closed = true
	for _, state := range g.States {
		close(state)
	}
}
