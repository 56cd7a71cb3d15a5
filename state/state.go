package state

import (
	"errors"
	"strings"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/gofish/consts"
	"github.com/ratel-online/gofish/database"
	fish "github.com/ratel-online/gofish/gofish/game"
	"github.com/ratel-online/gofish/state/game"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateJoin, &join{})
	register(consts.StateCreate, &create{})
	register(consts.StateWaiting, &waiting{})
	register(consts.StateGoFishGame, &game.GoFish{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

type State interface {
	Next(player *database.Player) (consts.StateID, error)
	Exit(player *database.Player) consts.StateID
}

// Run drives a connected player through the lobby and matches until the
// connection goes away.
func Run(player *database.Player) {
	player.State(consts.StateWelcome)
	defer func() {
		if err := recover(); err != nil {
			log.Errorf("player %s state machine panic: %v\n", player, err)
		}
		log.Infof("player %s state machine break up.\n", player)
	}()
	for {
		state := states[player.GetState()]
		stateId, err := state.Next(player)
		if err != nil {
			exit, fatal := classify(err)
			if fatal {
				if !errors.Is(err, consts.ErrorsChanClosed) {
					log.Error(err)
				}
				state.Exit(player)
				return
			}
			if exit {
				stateId = state.Exit(player)
			}
		}
		if stateId > 0 {
			player.State(stateId)
		}
	}
}

// classify reports whether err leaves the current state and whether it ends
// the session. Engine errors are a rejected move: the player stays put.
func classify(err error) (exit bool, fatal bool) {
	if errors.Is(err, consts.ErrorsChanClosed) {
		return true, true
	}
	var e consts.Error
	if errors.As(err, &e) {
		return e.Exit, false
	}
	var engineErr fish.Error
	if errors.As(err, &engineErr) {
		return false, false
	}
	return true, true
}

func isExit(signal string) bool {
	signal = strings.ToLower(signal)
	return signal == "exit" || signal == "e"
}

func isLs(signal string) bool {
	signal = strings.ToLower(signal)
	return signal == "ls" || signal == "v"
}
