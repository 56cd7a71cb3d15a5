package game_test

import (
	"testing"

	"github.com/ratel-online/gofish/gofish/card"
	"github.com/ratel-online/gofish/gofish/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourOf(rank card.Rank) []card.Card {
	cards := make([]card.Card, 0, game.BookSize)
	for _, suit := range card.Suits() {
		cards = append(cards, card.New(rank, suit))
	}
	return cards
}

func TestAddToHand(t *testing.T) {
	player := game.NewPlayer("123", "Dom")
	player.AddToHand(card.New(card.Four, card.Hearts))
	player.AddToHand(card.New(card.Ace, card.Spades), card.New(card.Two, card.Clubs))
	require.ElementsMatch(t, []card.Card{
		card.New(card.Four, card.Hearts),
		card.New(card.Ace, card.Spades),
		card.New(card.Two, card.Clubs),
	}, player.Hand())
	require.Equal(t, 3, player.HandCount())
}

func TestRankQueries(t *testing.T) {
	player := game.NewPlayer("123", "Dom")
	player.AddToHand(
		card.New(card.Four, card.Hearts),
		card.New(card.Four, card.Spades),
		card.New(card.King, card.Clubs),
	)
	assert.True(t, player.HandHasRank(card.Four))
	assert.False(t, player.HandHasRank(card.Five))
	assert.Equal(t, 2, player.RankCount(card.Four))
	assert.Equal(t, 1, player.RankCount(card.King))
	assert.Equal(t, 0, player.RankCount(card.Ace))
}

func TestRemoveCardsWithRank(t *testing.T) {
	t.Run("returns_and_removes_every_card_of_the_rank", func(t *testing.T) {
		player := game.NewPlayer("123", "Dom")
		player.AddToHand(
			card.New(card.Four, card.Hearts),
			card.New(card.Nine, card.Diamonds),
			card.New(card.Four, card.Spades),
		)
		removed := player.RemoveCardsWithRank(card.Four)
		require.ElementsMatch(t, []card.Card{
			card.New(card.Four, card.Hearts),
			card.New(card.Four, card.Spades),
		}, removed)
		require.Equal(t, []card.Card{card.New(card.Nine, card.Diamonds)}, player.Hand())
	})

	t.Run("does_nothing_if_rank_is_not_in_hand", func(t *testing.T) {
		player := game.NewPlayer("123", "Dom")
		player.AddToHand(card.New(card.Nine, card.Diamonds))
		require.Empty(t, player.RemoveCardsWithRank(card.Four))
		require.Equal(t, 1, player.HandCount())
	})
}

func TestDetectAndExtractBooks(t *testing.T) {
	t.Run("returns_nothing_without_four_of_a_kind", func(t *testing.T) {
		player := game.NewPlayer("123", "Dom")
		player.AddToHand(fourOf(card.Jack)[:3]...)
		require.Empty(t, player.DetectAndExtractBooks())
		require.Equal(t, 3, player.HandCount())
		require.Equal(t, 0, player.BookCount())
	})

	t.Run("moves_a_complete_rank_into_a_book", func(t *testing.T) {
		player := game.NewPlayer("123", "Dom")
		player.AddToHand(card.New(card.Two, card.Clubs))
		player.AddToHand(fourOf(card.Jack)...)

		books := player.DetectAndExtractBooks()
		require.Len(t, books, 1)
		require.Equal(t, card.Jack, books[0].Rank())
		require.Equal(t, 10, books[0].Value())
		require.ElementsMatch(t, fourOf(card.Jack), books[0].Cards())
		require.Equal(t, []card.Card{card.New(card.Two, card.Clubs)}, player.Hand())
		require.Equal(t, 1, player.BookCount())
		require.Equal(t, 10, player.TotalBookValue())
	})

	t.Run("forms_several_books_at_once", func(t *testing.T) {
		player := game.NewPlayer("123", "Dom")
		player.AddToHand(fourOf(card.Two)...)
		player.AddToHand(fourOf(card.Ace)...)

		books := player.DetectAndExtractBooks()
		require.Len(t, books, 2)
		require.Equal(t, 0, player.HandCount())
		require.Equal(t, 14, player.TotalBookValue())
	})

	t.Run("reports_only_new_books", func(t *testing.T) {
		player := game.NewPlayer("123", "Dom")
		player.AddToHand(fourOf(card.Two)...)
		require.Len(t, player.DetectAndExtractBooks(), 1)
		require.Empty(t, player.DetectAndExtractBooks())
		require.Len(t, player.Books(), 1)
	})
}
