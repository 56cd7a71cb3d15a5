package game

import (
	"testing"

	"github.com/ratel-online/core/model"
	"github.com/ratel-online/gofish/consts"
	"github.com/ratel-online/gofish/database"
	"github.com/ratel-online/gofish/gofish/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nextID int64 = 7000

// seatRoom starts an unshuffled match with the players seated in the given
// order. Nobody has a connection, so output to them is dropped.
func seatRoom(t *testing.T, names ...string) (*database.Room, *database.GoFish, []int64) {
	t.Helper()
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		nextID++
		database.Connected(nil, &model.AuthInfo{ID: nextID, Name: name})
		ids = append(ids, nextID)
	}
	room := database.CreateRoom(ids[0])
	for _, id := range ids {
		require.NoError(t, database.JoinRoom(room.ID, id))
	}
	require.NoError(t, database.SetRoomProps(room, consts.RoomPropsDotShuffle, "on"))
	match, err := database.NewGoFish(room)
	require.NoError(t, err)
	room.Game = match
	room.State = consts.RoomStateRunning
	return room, match, ids
}

func TestHandoffPlaysAbandonedSeats(t *testing.T) {
	room, match, ids := seatRoom(t, "Bob", "Carol", "Alice")
	bob, carol, alice := ids[0], ids[1], ids[2]
	match.Leave(bob)
	match.Leave(carol)

	handoff(room, match)

	require.False(t, match.Game.Finished())
	assert.Equal(t, alice, match.Current())
	assert.Equal(t, database.GoFishTurn, <-match.States[alice])
	assert.Equal(t, database.PlayerID(carol), match.Game.LastResult().Asker().ID)
	assert.Less(t, match.Game.PondCount(), 52-3*5)
	assert.Len(t, match.States[bob], 0)
	assert.Len(t, match.States[carol], 0)
}

func TestHandoffWaitsForTheActivePlayer(t *testing.T) {
	room, match, ids := seatRoom(t, "Alice", "Bob")
	pond := match.Game.PondCount()

	handoff(room, match)

	assert.Equal(t, ids[0], match.Current())
	assert.Equal(t, database.GoFishTurn, <-match.States[ids[0]])
	assert.Equal(t, pond, match.Game.PondCount())
	assert.Nil(t, match.Game.LastResult())
}

func TestHandoffStopsWithNobodyLeft(t *testing.T) {
	room, match, ids := seatRoom(t, "Alice", "Bob")
	match.Leave(ids[0])
	match.Leave(ids[1])
	pond := match.Game.PondCount()

	handoff(room, match)

	assert.Equal(t, pond, match.Game.PondCount())
	assert.Equal(t, ids[0], match.Current())
	assert.Len(t, match.States[ids[0]], 0)
}

func TestAutoPlayFinishesTheMatch(t *testing.T) {
	listener := event.NewDummyListener()
	event.GameOver.AddListener(listener)

	// Heads up with an empty pond every ask hits, so the automatic moves
	// always run the match out.
	room, match, ids := seatRoom(t, "Alice", "Bob")
	for _, id := range ids {
		match.Leave(id)
	}
	for step := 0; !match.Game.Finished(); step++ {
		require.Less(t, step, 10000, "match does not terminate")
		autoTurn(room, match, match.Current())
	}
	assert.Zero(t, match.Current())

	handoff(room, match)

	assert.Equal(t, consts.RoomStateWaiting, room.State)
	assert.Nil(t, room.Game)
	for _, id := range ids {
		assert.Equal(t, database.GoFishOver, <-match.States[id])
	}

	line, err := match.Game.DisplayWinners()
	require.NoError(t, err)
	overs := 0
	for _, payload := range listener.ReceivedPayloads() {
		over, ok := payload.(event.GameOverPayload)
		if !ok || over.RoomID != room.ID {
			continue
		}
		overs++
		assert.Equal(t, line, over.Line)
		assert.Equal(t, match.Game.Winners(), over.Winners)
	}
	assert.Equal(t, 1, overs)
}
