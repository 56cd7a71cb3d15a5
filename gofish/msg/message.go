package msg

import (
	"strings"

	"github.com/fatih/color"
	"github.com/ratel-online/gofish/gofish/card"
	"github.com/ratel-online/gofish/gofish/game"
)

var Message = MessageWriter{}

type MessageWriter struct{}

var (
	blue   = color.New(color.FgHiCyan).SprintFunc()
	yellow = color.New(color.FgHiYellow).SprintFunc()
)

func (m MessageWriter) Welcome() string {
	return Sprintfln("WELCOME TO %s %s!", blue("GO"), yellow("FISH"))
}

// Hand lists the cards in natural language.
func (m MessageWriter) Hand(cards []card.Card) string {
	if len(cards) == 0 {
		return Sprintln("You have no cards")
	}
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, "a "+c.Paint())
	}
	return Sprintfln("You have %s", game.JoinNames(names))
}

func (m MessageWriter) Opponents(opponents []game.Participant) string {
	names := make([]string, 0, len(opponents))
	for _, opponent := range opponents {
		names = append(names, opponent.Name)
	}
	return Sprintfln("Your opponents are %s", game.JoinNames(names))
}

func (m MessageWriter) Books(books []game.BookView) string {
	if len(books) == 0 {
		return Sprintln("You have no books yet")
	}
	ranks := make([]string, 0, len(books))
	for _, book := range books {
		ranks = append(ranks, book.Rank.String()+"'s")
	}
	return Sprintfln("Your books: %s", strings.Join(ranks, ", "))
}

func (m MessageWriter) GameStarting(playerName string) string {
	return Sprintfln("Game starting! %s goes first.", playerName)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return Sprintfln("It's %s's turn!", playerName)
}

func (m MessageWriter) SelectOpponent() string {
	return Sprintln("Who do you want to ask?")
}

func (m MessageWriter) SelectRank() string {
	return Sprintln("Which rank do you want? (2-10, J, Q, K, A)")
}

func (m MessageWriter) UnknownOpponent(input string) string {
	return Sprintfln("Do you see '%s' among your opponents? Try again: ", input)
}

func (m MessageWriter) RankNotInHand(input string) string {
	return Sprintfln("You have no %s's. You have chosen foolishly. Choose again: ", input)
}

func (m MessageWriter) PlayerRefilled(playerName string) string {
	return Sprintfln("%s's hand was empty, so they drew from the pond.", playerName)
}

func (m MessageWriter) PlayerSatOut(playerName string) string {
	return Sprintfln("%s has no cards and the pond is empty, so they sit this one out.", playerName)
}

func (m MessageWriter) PondCount(count int) string {
	return Sprintfln("Cards left in the pond: %d", count)
}
