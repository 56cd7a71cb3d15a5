package game_test

import (
	"testing"

	"github.com/ratel-online/gofish/gofish/card"
	"github.com/ratel-online/gofish/gofish/game"
	"github.com/stretchr/testify/require"
)

func TestDeal(t *testing.T) {
	t.Run("returns_all_52_cards_once", func(t *testing.T) {
		deck := game.NewDeck()
		deck.Shuffle(42)
		cards := make([]card.Card, 0, 52)
		for {
			c, ok := deck.Deal()
			if !ok {
				break
			}
			cards = append(cards, c)
		}
		require.ElementsMatch(t, card.New52(), cards)
		require.True(t, deck.Empty())
	})

	t.Run("deals_from_the_front", func(t *testing.T) {
		deck := game.NewDeckOf([]card.Card{
			card.New(card.Four, card.Spades),
			card.New(card.Two, card.Hearts),
		})
		c, ok := deck.Deal()
		require.True(t, ok)
		require.Equal(t, card.New(card.Four, card.Spades), c)
		require.Equal(t, 1, deck.Count())
	})

	t.Run("signals_empty_without_panicking", func(t *testing.T) {
		deck := game.NewDeckOf(nil)
		_, ok := deck.Deal()
		require.False(t, ok)
		require.Equal(t, 0, deck.Count())
	})
}

func TestShuffle(t *testing.T) {
	t.Run("same_seed_same_order", func(t *testing.T) {
		first := game.NewDeck()
		second := game.NewDeck()
		first.Shuffle(7)
		second.Shuffle(7)
		require.Equal(t, first.Cards(), second.Cards())
	})

	t.Run("keeps_every_card", func(t *testing.T) {
		deck := game.NewDeck()
		deck.Shuffle(99)
		require.Len(t, deck.Cards(), 52)
		require.ElementsMatch(t, card.New52(), deck.Cards())
		require.NotEqual(t, card.New52(), deck.Cards())
	})
}

func TestClear(t *testing.T) {
	deck := game.NewDeck()
	deck.Clear()
	require.True(t, deck.Empty())
	_, ok := deck.Deal()
	require.False(t, ok)
}
