package state

import (
	"fmt"
	"strings"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/gofish/config"
	"github.com/ratel-online/gofish/consts"
	"github.com/ratel-online/gofish/database"
	"github.com/ratel-online/gofish/gofish/msg"
	"github.com/ratel-online/gofish/render"
	"github.com/ratel-online/gofish/service"
)

type waiting struct{}

func (s *waiting) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, consts.ErrorsExist
	}
	access, err := waitingForStart(player, room)
	if err != nil {
		return 0, err
	}
	if access {
		return consts.StateGoFishGame, nil
	}
	return s.Exit(player), nil
}

func (*waiting) Exit(player *database.Player) consts.StateID {
	room := database.GetRoom(player.RoomID)
	if room != nil {
		isOwner := room.Creator == player.ID
		database.LeaveRoom(room.ID, player.ID)
		database.Broadcast(room.ID, fmt.Sprintf("%s exited room! room current has %d players\n", player.Name, room.Players))
		if isOwner {
			if newOwner := database.GetPlayer(room.Creator); newOwner != nil && newOwner.ID != player.ID {
				database.Broadcast(room.ID, fmt.Sprintf("%s become new owner\n", newOwner.Name))
			}
		}
	}
	return consts.StateHome
}

func waitingForStart(player *database.Player, room *database.Room) (bool, error) {
	player.StartTransaction()
	defer player.StopTransaction()
	for {
		signal, err := player.AskForStringWithoutTransaction(time.Second)
		if err != nil && err != consts.ErrorsTimeout {
			return false, err
		}
		if room.State == consts.RoomStateRunning {
			return true, nil
		}
		lower := strings.ToLower(signal)
		switch {
		case service.IsQuery(signal):
			_ = service.Handle(player, signal)
		case isLs(lower):
			viewRoomPlayers(room, player)
		case lower == "start" || lower == "s":
			if room.Creator != player.ID {
				_ = player.WriteString("Only the owner can start the game.\n")
				continue
			}
			if err := startGame(room); err != nil {
				_ = player.WriteError(err)
				continue
			}
			return true, nil
		case strings.HasPrefix(lower, "set ") && room.Creator == player.ID:
			tags := strings.Fields(signal)
			if len(tags) != 3 {
				_ = player.WriteError(consts.ErrorsRoomPropsInvalid)
				continue
			}
			if err := database.SetRoomProps(room, strings.ToLower(tags[1]), tags[2]); err != nil {
				_ = player.WriteError(err)
				continue
			}
			_ = player.WriteString(fmt.Sprintf("Set %s successful.\n", tags[1]))
		case len(signal) > 0:
			database.BroadcastChat(player, fmt.Sprintf("%s say: %s\n", player.Name, signal))
		}
	}
}

func startGame(room *database.Room) error {
	room.Lock()
	if room.State == consts.RoomStateRunning {
		room.Unlock()
		return consts.ErrorsJoinFailForRoomRunning
	}
	if room.Players < config.Get().MinPlayers {
		room.Unlock()
		return consts.ErrorsGamePlayersInvalid
	}
	match, err := database.NewGoFish(room)
	if err != nil {
		room.Unlock()
		return err
	}
	room.Game = match
	room.State = consts.RoomStateRunning
	room.Unlock()

	log.Infof("room %d game %s started with %d players\n", room.ID, match.Game.ID(), len(match.Players))
	if first, ok := match.Game.CurrentPlayer(); ok {
		database.Broadcast(room.ID, msg.Message.GameStarting(first.Name))
	}
	match.Signal(match.Current(), database.GoFishTurn)
	return nil
}

func viewRoomPlayers(room *database.Room, currPlayer *database.Player) {
	members := make([]render.Member, 0)
	for _, playerId := range database.RoomPlayers(room.ID) {
		if player := database.GetPlayer(playerId); player != nil {
			members = append(members, render.Member{
				Name:  player.Name,
				Score: player.Score,
				Owner: playerId == room.Creator,
			})
		}
	}
	pwd := room.Password
	if pwd != "" && room.Creator != currPlayer.ID {
		pwd = "********"
	}
	_ = currPlayer.WriteString(render.RoomInfo(room.ID, members, render.Settings{
		DontShuffle: room.EnableDontShuffle,
		Chat:        room.EnableChat,
		MaxPlayers:  room.MaxPlayers,
		Password:    pwd,
	}))
}
