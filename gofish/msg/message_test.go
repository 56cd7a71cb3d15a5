package msg_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/ratel-online/gofish/gofish/card"
	"github.com/ratel-online/gofish/gofish/game"
	"github.com/ratel-online/gofish/gofish/msg"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestHand(t *testing.T) {
	t.Run("lists_cards", func(t *testing.T) {
		require.Equal(t, "You have a 4 of Hearts, a 9 of Spades and a Jack of Clubs\n", msg.Message.Hand([]card.Card{
			card.New(card.Four, card.Hearts),
			card.New(card.Nine, card.Spades),
			card.New(card.Jack, card.Clubs),
		}))
	})

	t.Run("single_card", func(t *testing.T) {
		require.Equal(t, "You have a Ace of Diamonds\n", msg.Message.Hand([]card.Card{card.New(card.Ace, card.Diamonds)}))
	})

	t.Run("empty_hand", func(t *testing.T) {
		require.Equal(t, "You have no cards\n", msg.Message.Hand(nil))
	})
}

func TestOpponents(t *testing.T) {
	require.Equal(t, "Your opponents are Josh and Micah\n", msg.Message.Opponents([]game.Participant{
		{ID: "456", Name: "Josh"},
		{ID: "789", Name: "Micah"},
	}))
}

func TestBooks(t *testing.T) {
	require.Equal(t, "You have no books yet\n", msg.Message.Books(nil))
	require.Equal(t, "Your books: 4's, King's\n", msg.Message.Books([]game.BookView{
		{Rank: card.Four, Value: 3},
		{Rank: card.King, Value: 12},
	}))
}

func TestPondCount(t *testing.T) {
	require.Equal(t, "Cards left in the pond: 12\n", msg.Message.PondCount(12))
}
