package card

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Rank int

const (
	_ Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = map[Rank]string{
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Ace:   "Ace",
}

var rankAliases = map[string]Rank{
	"j": Jack,
	"q": Queen,
	"k": King,
	"a": Ace,
}

// Ranks returns every rank from Two to Ace.
func Ranks() []Rank {
	return []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// ParseRank reads "4", "10", "J", "jack", "Ace" and so on.
func ParseRank(s string) (Rank, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if r, ok := rankAliases[s]; ok {
		return r, nil
	}
	for r, name := range rankNames {
		if strings.ToLower(name) == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("invalid rank '%s'", s)
}

func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Value is the rank's position in Ranks, starting at 1.
func (r Rank) Value() int {
	return int(r)
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

func (r Rank) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid rank %d", int(r))
	}
	return []byte(r.String()), nil
}

type Suit int

const (
	Spades Suit = iota
	Clubs
	Hearts
	Diamonds
)

var suitNames = [...]string{"Spades", "Clubs", "Hearts", "Diamonds"}

var (
	red   = color.New(color.FgHiRed).SprintFunc()
	black = color.New(color.FgHiWhite).SprintFunc()
)

func Suits() []Suit {
	return []Suit{Spades, Clubs, Hearts, Diamonds}
}

func (s Suit) String() string {
	if s < Spades || s > Diamonds {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

func (s Suit) MarshalText() ([]byte, error) {
	if s < Spades || s > Diamonds {
		return nil, fmt.Errorf("invalid suit %d", int(s))
	}
	return []byte(s.String()), nil
}

// Card is a playing card. Two cards are equal when rank and suit match.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// New52 returns a fresh, unshuffled deck ordered suit by suit.
func New52() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, New(rank, suit))
		}
	}
	return cards
}

func (c Card) Value() int {
	return c.Rank.Value()
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Paint renders the card for a terminal, hearts and diamonds in red.
func (c Card) Paint() string {
	if c.Suit == Hearts || c.Suit == Diamonds {
		return red(c.String())
	}
	return black(c.String())
}
