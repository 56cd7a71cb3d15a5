package service

import (
	"strings"

	"github.com/ratel-online/gofish/consts"
	"github.com/ratel-online/gofish/database"
)

// Queries start with '?' and are answered with a JSON object, so clients can
// read lobby and match state without scraping text.
const queryPrefix = "?"

type servlet func(player *database.Player) (interface{}, error)

var servlets = map[string]servlet{
	"rooms":   getRooms,
	"room":    getRoom,
	"players": getRoomPlayers,
	"game":    getGame,
}

type RoomInfo struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	State       string `json:"state"`
	Players     int    `json:"players"`
	MaxPlayers  int    `json:"maxPlayers"`
	Creator     int64  `json:"creator"`
	Password    bool   `json:"password"`
	Chat        bool   `json:"chat"`
	DontShuffle bool   `json:"dontShuffle"`
}

type PlayerInfo struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Score int64  `json:"score"`
	Owner bool   `json:"owner"`
}

func IsQuery(signal string) bool {
	return strings.HasPrefix(strings.TrimSpace(signal), queryPrefix)
}

// Handle answers a query typed by player.
func Handle(player *database.Player, signal string) error {
	data, err := query(player, signal)
	if err != nil {
		return player.WriteError(err)
	}
	return player.WriteObject(data)
}

func query(player *database.Player, signal string) (interface{}, error) {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(signal), queryPrefix))
	s, ok := servlets[name]
	if !ok {
		return nil, consts.ErrorsInputInvalid
	}
	return s(player)
}

func getRooms(_ *database.Player) (interface{}, error) {
	rooms := make([]RoomInfo, 0)
	for _, room := range database.GetRooms() {
		rooms = append(rooms, roomInfo(room))
	}
	return rooms, nil
}

func getRoom(player *database.Player) (interface{}, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return nil, consts.ErrorsRoomInvalid
	}
	return roomInfo(room), nil
}

func getRoomPlayers(player *database.Player) (interface{}, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return nil, consts.ErrorsRoomInvalid
	}
	players := make([]PlayerInfo, 0)
	for _, id := range database.RoomPlayers(room.ID) {
		if p := database.GetPlayer(id); p != nil {
			players = append(players, PlayerInfo{ID: p.ID, Name: p.Name, Score: p.Score, Owner: id == room.Creator})
		}
	}
	return players, nil
}

// getGame returns the caller's own view of the match. Opponents' hands are
// never part of it.
func getGame(player *database.Player) (interface{}, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return nil, consts.ErrorsRoomInvalid
	}
	match := room.Game
	if match == nil {
		return nil, consts.ErrorsRoomNotInPlay
	}
	return match.Game.View(database.PlayerID(player.ID))
}

func roomInfo(room *database.Room) RoomInfo {
	return RoomInfo{
		ID:          room.ID,
		Type:        consts.GameTypes[room.Type],
		State:       consts.RoomStates[room.State],
		Players:     room.Players,
		MaxPlayers:  room.MaxPlayers,
		Creator:     room.Creator,
		Password:    room.Password != "",
		Chat:        room.EnableChat,
		DontShuffle: room.EnableDontShuffle,
	}
}
