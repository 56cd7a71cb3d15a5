package database

import (
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	modelx "github.com/ratel-online/core/model"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/gofish/config"
	"github.com/ratel-online/gofish/consts"
)

var roomIds int64 = 0
var players = hashmap.New()
var rooms = hashmap.New()
var roomPlayers = hashmap.New()

func init() {
	async.Async(func() {
		for {
			time.Sleep(1 * time.Minute)
			for _, room := range GetRooms() {
				room.Lock()
				room.Cancel()
				room.Unlock()
			}
		}
	})
}

func Connected(conn *network.Conn, info *modelx.AuthInfo) *Player {
	player := &Player{
		ID:    info.ID,
		Name:  strings.TrimSpace(info.Name),
		Score: info.Score,
	}
	player.Conn(conn)
	players.Set(info.ID, player)
	return player
}

func CreateRoom(creator int64) *Room {
	room := &Room{
		ID:         atomic.AddInt64(&roomIds, 1),
		Type:       consts.GameTypeGoFish,
		State:      consts.RoomStateWaiting,
		Creator:    creator,
		ActiveTime: time.Now(),
		MaxPlayers: config.Get().MaxPlayers,
		EnableChat: true,
	}
	rooms.Set(room.ID, room)
	roomPlayers.Set(room.ID, []int64{})
	log.Infof("room %d created by %d\n", room.ID, creator)
	return room
}

func GetRooms() []*Room {
	list := make([]*Room, 0)
	rooms.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Room))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

func GetRoom(roomId int64) *Room {
	return getRoom(roomId)
}

func getRoom(roomId int64) *Room {
	if v, ok := rooms.Get(roomId); ok {
		return v.(*Room)
	}
	return nil
}

func GetPlayer(playerId int64) *Player {
	return getPlayer(playerId)
}

func getPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

// RoomPlayers returns the room's player ids in join order.
func RoomPlayers(roomId int64) []int64 {
	ids := getRoomPlayers(roomId)
	out := make([]int64, len(ids))
	copy(out, ids)
	return out
}

func getRoomPlayers(roomId int64) []int64 {
	if v, ok := roomPlayers.Get(roomId); ok {
		return v.([]int64)
	}
	return nil
}

func JoinRoom(roomId, playerId int64) error {
	player := getPlayer(playerId)
	if player == nil {
		return consts.ErrorsExist
	}
	room := getRoom(roomId)
	if room == nil {
		return consts.ErrorsRoomInvalid
	}
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsJoinFailForRoomRunning
	}
	if room.Players >= room.MaxPlayers {
		return consts.ErrorsRoomPlayersIsFull
	}
	ids := getRoomPlayers(roomId)
	for _, id := range ids {
		if id == playerId {
			return nil
		}
	}
	roomPlayers.Set(roomId, append(ids, playerId))
	room.Players++
	room.ActiveTime = time.Now()
	player.RoomID = roomId
	return nil
}

func LeaveRoom(roomId, playerId int64) {
	room := getRoom(roomId)
	if room != nil {
		room.Lock()
		defer room.Unlock()
		room.removePlayer(playerId)
	}
}

func Broadcast(roomId int64, msg string, exclude ...int64) {
	room := getRoom(roomId)
	if room == nil {
		return
	}
	room.ActiveTime = time.Now()
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for _, playerId := range getRoomPlayers(roomId) {
		if player := getPlayer(playerId); player != nil && !excludeSet[playerId] {
			_ = player.WriteString(msg)
		}
	}
}

func BroadcastChat(player *Player, msg string, exclude ...int64) {
	room := getRoom(player.RoomID)
	if room == nil {
		return
	}
	if !room.EnableChat {
		_ = player.WriteError(consts.ErrorsChatUnopened)
		return
	}
	log.Infof("chat msg, player %s say: %s\n", player, strings.TrimSpace(msg))
	Broadcast(player.RoomID, msg, exclude...)
}
