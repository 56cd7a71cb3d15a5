package game

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/gofish/gofish/card"
)

// DefaultDealNumber is how many cards each player gets at the start and on a refill.
const DefaultDealNumber = 5

type Option func(*Game)

// WithDeck replaces the fresh 52-card pond with the given cards, in order.
func WithDeck(cards []card.Card) Option {
	return func(g *Game) {
		g.deck = NewDeckOf(cards)
	}
}

func WithDealNumber(n int) Option {
	return func(g *Game) {
		g.dealNumber = n
	}
}

func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// WithoutShuffle keeps the pond in its initial order when the game starts.
func WithoutShuffle() Option {
	return func(g *Game) {
		g.shuffle = false
	}
}

// Game is one match. All methods are safe for concurrent use; mutating
// calls are serialized on a single lock held for the whole call.
type Game struct {
	mu sync.RWMutex

	id         uuid.UUID
	players    []*Player
	index      map[PlayerID]*Player
	turn       *Cycler
	deck       *Deck
	dealNumber int
	seed       int64
	shuffle    bool
	started    bool
	winners    []*Player
	lastResult *RoundResult
}

func New(opts ...Option) *Game {
	g := &Game{
		id:         uuid.New(),
		index:      map[PlayerID]*Player{},
		deck:       NewDeck(),
		dealNumber: DefaultDealNumber,
		seed:       time.Now().UnixNano(),
		shuffle:    true,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.dealNumber < 0 {
		g.dealNumber = DefaultDealNumber
	}
	return g
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

// AddPlayer seats a player before the start. The returned Player is for
// arranging a scripted hand before Start; it is not guarded by the game lock,
// so it must not be touched once the game runs.
func (g *Game) AddPlayer(id PlayerID, name string) (*Player, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.started {
		return nil, ErrorsGameAlreadyStarted
	}
	if _, ok := g.index[id]; ok {
		return nil, ErrorsPlayerExists
	}
	player := NewPlayer(id, name)
	g.players = append(g.players, player)
	g.index[id] = player
	return player, nil
}

func (g *Game) Start() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.started {
		return ErrorsGameAlreadyStarted
	}
	if len(g.players) < 2 {
		return ErrorsNotEnoughPlayers
	}
	if g.shuffle {
		g.deck.Shuffle(g.seed)
	}
	for i := 0; i < g.dealNumber; i++ {
		for _, player := range g.players {
			if c, ok := g.deck.Deal(); ok {
				player.AddToHand(c)
			}
		}
	}
	ids := make([]PlayerID, 0, len(g.players))
	for _, player := range g.players {
		ids = append(ids, player.ID())
	}
	g.turn = NewCycler(ids)
	g.started = true
	g.checkForWinners()
	return nil
}

type Status int

const (
	// StatusReady means the current player holds cards and may ask.
	StatusReady Status = iota
	StatusRefilled
	StatusSatOut
)

func (s Status) String() string {
	switch s {
	case StatusRefilled:
		return "Your hand was empty, but you received cards from the pond!"
	case StatusSatOut:
		return "Sorry. Your hand is empty and there are no cards in the pond. You will have to sit this one out."
	default:
		return ""
	}
}

// DealToPlayerIfNecessary refills an empty hand from the pond, or passes
// the turn when the pond is empty too. It is called before each round.
func (g *Game) DealToPlayerIfNecessary() (Status, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkPlayable(); err != nil {
		return StatusReady, err
	}
	current := g.current()
	if current.HandCount() > 0 {
		return StatusReady, nil
	}
	if g.deck.Empty() {
		g.turn.Next()
		return StatusSatOut, nil
	}
	n := g.dealNumber
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		c, ok := g.deck.Deal()
		if !ok {
			break
		}
		current.AddToHand(c)
	}
	return StatusRefilled, nil
}

// PlayRound has the current player ask the opponent for a rank.
func (g *Game) PlayRound(opponentID PlayerID, rank card.Rank) (*RoundResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkPlayable(); err != nil {
		return nil, err
	}
	if !rank.Valid() {
		return nil, ErrorsInvalidRank
	}
	current := g.current()
	opponent, ok := g.index[opponentID]
	if !ok || opponent == current {
		return nil, fmt.Errorf("%w: %s", ErrorsPlayerNotFound, opponentID)
	}

	result := g.transaction(current, opponent, rank)
	result.books = current.DetectAndExtractBooks()
	if !result.gotRank {
		g.turn.Next()
	}
	g.checkForWinners()
	g.lastResult = result
	return result, nil
}

func (g *Game) transaction(current, opponent *Player, rank card.Rank) *RoundResult {
	result := &RoundResult{
		asker:    participantOf(current),
		opponent: participantOf(opponent),
		rank:     rank,
		amount:   amountWord(1),
	}
	if opponent.HandHasRank(rank) {
		cards := opponent.RemoveCardsWithRank(rank)
		current.AddToHand(cards...)
		result.gotRank = true
		result.amount = amountWord(len(cards))
		return result
	}
	result.fished = true
	drawn, ok := g.deck.Deal()
	if !ok {
		result.emptyPond = true
		return result
	}
	current.AddToHand(drawn)
	if drawn.Rank == rank {
		result.gotRank = true
	} else {
		result.cardRevealed = &drawn.Rank
	}
	return result
}

func (g *Game) checkPlayable() error {
	if !g.started {
		return ErrorsGameNotStarted
	}
	if g.winners != nil {
		return ErrorsGameOver
	}
	return nil
}

func (g *Game) current() *Player {
	return g.index[g.turn.Current()]
}

func (g *Game) checkForWinners() {
	if !g.deck.Empty() {
		return
	}
	for _, player := range g.players {
		if player.HandCount() > 0 {
			return
		}
	}
	g.winners = determineWinners(g.players)
}

// determineWinners keeps the players with the most books, then among
// those the ones with the highest total book value.
func determineWinners(players []*Player) []*Player {
	maxBooks := 0
	for _, player := range players {
		if player.BookCount() > maxBooks {
			maxBooks = player.BookCount()
		}
	}
	maxValue := 0
	candidates := make([]*Player, 0, len(players))
	for _, player := range players {
		if player.BookCount() != maxBooks {
			continue
		}
		candidates = append(candidates, player)
		if player.TotalBookValue() > maxValue {
			maxValue = player.TotalBookValue()
		}
	}
	winners := make([]*Player, 0, len(candidates))
	for _, player := range candidates {
		if player.TotalBookValue() == maxValue {
			winners = append(winners, player)
		}
	}
	return winners
}

func (g *Game) DisplayWinners() (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.winners == nil {
		return "", ErrorsGameNotOver
	}
	first := g.winners[0]
	if len(g.winners) == 1 {
		return fmt.Sprintf("%s won the game with %d books totalling in %d", first.Name(), first.BookCount(), first.TotalBookValue()), nil
	}
	names := make([]string, 0, len(g.winners))
	for _, winner := range g.winners {
		names = append(names, winner.Name())
	}
	return fmt.Sprintf("%s tied with %d books totalling in %d", JoinNames(names), first.BookCount(), first.TotalBookValue()), nil
}

// JoinNames renders "A", "A and B" or "A, B and C".
func JoinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

func (g *Game) Started() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.started
}

func (g *Game) Finished() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.winners != nil
}

// CurrentPlayer returns whose turn it is; false before the game starts
// and once it is over.
func (g *Game) CurrentPlayer() (Participant, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.started || g.winners != nil {
		return Participant{}, false
	}
	return participantOf(g.current()), true
}

func (g *Game) Winners() []Participant {
	g.mu.RLock()
	defer g.mu.RUnlock()
	winners := make([]Participant, 0, len(g.winners))
	for _, winner := range g.winners {
		winners = append(winners, participantOf(winner))
	}
	return winners
}

// LastResult is the outcome of the most recent round, nil before the first one.
func (g *Game) LastResult() *RoundResult {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.lastResult
}

func (g *Game) PondCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.deck.Count()
}

// Players lists everyone in join order.
func (g *Game) Players() []Participant {
	g.mu.RLock()
	defer g.mu.RUnlock()
	players := make([]Participant, 0, len(g.players))
	for _, player := range g.players {
		players = append(players, participantOf(player))
	}
	return players
}

// Opponents lists everyone but the given player, in join order.
func (g *Game) Opponents(of PlayerID) []Participant {
	g.mu.RLock()
	defer g.mu.RUnlock()
	opponents := make([]Participant, 0, len(g.players))
	for _, player := range g.players {
		if player.ID() != of {
			opponents = append(opponents, participantOf(player))
		}
	}
	return opponents
}
