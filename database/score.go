package database

import (
	"sync/atomic"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/gofish/gofish/event"
)

func init() {
	event.GameOver.AddListener(scoreKeeper{})
}

// scoreKeeper credits each winner of a match with one point, ties included.
type scoreKeeper struct{}

func (scoreKeeper) OnGameOver(payload event.GameOverPayload) {
	for _, winner := range payload.Winners {
		player := getPlayer(ParsePlayerID(winner.ID))
		if player == nil {
			continue
		}
		score := atomic.AddInt64(&player.Score, 1)
		log.Infof("player %s won in room %d, score %d\n", player, payload.RoomID, score)
	}
}
