package database

import (
	"strconv"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/gofish/config"
	"github.com/ratel-online/gofish/consts"
)

type Room struct {
	sync.Mutex

	ID                int64     `json:"id"`
	Type              int       `json:"type"`
	Game              *GoFish   `json:"-"`
	State             int       `json:"state"`
	Players           int       `json:"players"`
	Creator           int64     `json:"creator"`
	ActiveTime        time.Time `json:"activeTime"`
	MaxPlayers        int       `json:"maxPlayers"`
	Password          string    `json:"-"`
	EnableChat        bool      `json:"enableChat"`
	EnableDontShuffle bool      `json:"enableDontShuffle"`
}

// SetRoomProps applies a "set <key> <value>" command from the room owner.
func SetRoomProps(room *Room, key, value string) error {
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsJoinFailForRoomRunning
	}
	switch key {
	case consts.RoomPropsPassword:
		if value == "off" {
			value = ""
		}
		room.Password = value
	case consts.RoomPropsDotShuffle:
		room.EnableDontShuffle = value == "on"
	case consts.RoomPropsChat:
		room.EnableChat = value == "on"
	case consts.RoomPropsPlayerNum:
		n, err := strconv.Atoi(value)
		if err != nil || n < config.Get().MinPlayers || n > config.Get().MaxPlayers || n < room.Players {
			return consts.ErrorsRoomPropsInvalid
		}
		room.MaxPlayers = n
	default:
		return consts.ErrorsRoomPropsInvalid
	}
	room.ActiveTime = time.Now()
	return nil
}

// removePlayer works from the id alone, so a seat is freed even after the
// player has dropped out of the registry. The room lock must be held.
func (room *Room) removePlayer(playerID int64) {
	if room == nil {
		return
	}
	room.ActiveTime = time.Now()
	ids := getRoomPlayers(room.ID)
	kept := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id != playerID {
			kept = append(kept, id)
		}
	}
	if len(kept) < len(ids) {
		room.Players--
		if player := getPlayer(playerID); player != nil && player.RoomID == room.ID {
			player.RoomID = 0
		}
		roomPlayers.Set(room.ID, kept)
		if len(kept) > 0 && room.Creator == playerID {
			room.Creator = kept[0]
		}
	}
	if len(kept) == 0 {
		room.delete()
	}
}

// Cancel removes the room once nobody in it is online, or after a day idle.
// The room lock must be held.
func (room *Room) Cancel() {
	if room.ActiveTime.Add(24 * time.Hour).Before(time.Now()) {
		log.Infof("room %d is timeout 24 hours, removed.\n", room.ID)
		room.delete()
		return
	}
	for _, id := range getRoomPlayers(room.ID) {
		if p := getPlayer(id); p != nil && p.online {
			return
		}
	}
	log.Infof("room %d is not living, removed.\n", room.ID)
	room.delete()
}

func (room *Room) delete() {
	if room != nil {
		rooms.Del(room.ID)
		roomPlayers.Del(room.ID)
		room.Game.delete()
		room.Game = nil
	}
}
