package state

import (
	"fmt"
	"strconv"

	"github.com/ratel-online/gofish/consts"
	"github.com/ratel-online/gofish/database"
	"github.com/ratel-online/gofish/render"
	"github.com/ratel-online/gofish/service"
)

type join struct{}

func (s *join) Next(player *database.Player) (consts.StateID, error) {
	rows := make([]render.RoomRow, 0)
	for _, room := range database.GetRooms() {
		rows = append(rows, render.RoomRow{
			ID:       room.ID,
			Type:     room.Type,
			Players:  room.Players,
			State:    room.State,
			Password: room.Password != "",
		})
	}
	err := player.WriteString(render.RoomList(rows))
	if err != nil {
		return 0, player.WriteError(err)
	}
	signal, err := player.AskForString()
	if err != nil {
		return 0, player.WriteError(err)
	}
	if isExit(signal) {
		return s.Exit(player), nil
	}
	if isLs(signal) {
		return consts.StateJoin, nil
	}
	if service.IsQuery(signal) {
		_ = service.Handle(player, signal)
		return consts.StateJoin, nil
	}
	roomId, err := strconv.ParseInt(signal, 10, 64)
	if err != nil {
		return 0, player.WriteError(consts.ErrorsRoomInvalid)
	}
	room := database.GetRoom(roomId)
	if room == nil {
		return 0, player.WriteError(consts.ErrorsRoomInvalid)
	}

	if pwd := room.Password; pwd != "" {
		err = verifyPassword(player, pwd)
		if err != nil {
			return 0, player.WriteError(err)
		}
	}
	err = database.JoinRoom(roomId, player.ID)
	if err != nil {
		return 0, player.WriteError(err)
	}
	database.Broadcast(roomId, fmt.Sprintf("%s joined room! room current has %d players\n", player.Name, room.Players))
	return consts.StateWaiting, nil
}

func (*join) Exit(player *database.Player) consts.StateID {
	return consts.StateHome
}

func verifyPassword(player *database.Player, pwd string) error {
	err := player.WriteString("Please input room password: \n")
	if err != nil {
		return err
	}
	password, err := player.AskForString()
	if err != nil {
		return err
	}
	if password != pwd {
		return consts.ErrorsRoomPassword
	}
	return nil
}
