package game_test

import (
	"testing"

	"github.com/ratel-online/gofish/gofish/card"
	"github.com/ratel-online/gofish/gofish/game"
	"github.com/stretchr/testify/require"
)

// newScriptedGame builds a game whose pond is exactly the given cards and
// which deals nothing on start, so tests can set hands by hand.
func newScriptedGame(t *testing.T, pond []card.Card, names ...string) (*game.Game, []*game.Player) {
	t.Helper()
	g := game.New(game.WithDeck(pond), game.WithDealNumber(0), game.WithoutShuffle())
	players := make([]*game.Player, 0, len(names))
	for _, name := range names {
		player, err := g.AddPlayer(game.PlayerID(name), name)
		require.NoError(t, err)
		players = append(players, player)
	}
	return g, players
}

func giveBooks(t *testing.T, player *game.Player, ranks ...card.Rank) {
	t.Helper()
	for _, rank := range ranks {
		player.AddToHand(fourOf(rank)...)
	}
	require.Len(t, player.DetectAndExtractBooks(), len(ranks))
}

func current(t *testing.T, g *game.Game) game.PlayerID {
	t.Helper()
	participant, ok := g.CurrentPlayer()
	require.True(t, ok)
	return participant.ID
}

func rankCount(t *testing.T, g *game.Game, id game.PlayerID, rank card.Rank) int {
	t.Helper()
	view, err := g.View(id)
	require.NoError(t, err)
	count := 0
	for _, c := range view.Hand {
		if c.Rank == rank {
			count++
		}
	}
	return count
}

// cardTotal counts every card in hands, books and the pond.
func cardTotal(t *testing.T, g *game.Game) int {
	t.Helper()
	total := g.PondCount()
	for _, participant := range g.Players() {
		view, err := g.View(participant.ID)
		require.NoError(t, err)
		total += len(view.Hand) + game.BookSize*len(view.Books)
	}
	return total
}
