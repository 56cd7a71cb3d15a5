package consts

import (
	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateJoin
	StateCreate
	StateWaiting
	StateGoFishGame
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	RoomStateWaiting = 1
	RoomStateRunning = 2

	GameTypeGoFish = 1
)

// Room properties.
const (
	RoomPropsDotShuffle = "ds"
	RoomPropsPassword   = "pwd"
	RoomPropsPlayerNum  = "pn"
	RoomPropsChat       = "ct"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist                  = NewErr(1, true, "Exist. ")
	ErrorsChanClosed             = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout                = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid           = NewErr(1, false, "Input invalid. ")
	ErrorsChatUnopened           = NewErr(1, false, "Chat disabled. ")
	ErrorsAuthFail               = NewErr(1, true, "Auth fail. ")
	ErrorsRoomInvalid            = NewErr(1, true, "Room invalid. ")
	ErrorsRoomPlayersIsFull      = NewErr(1, false, "Room players is full. ")
	ErrorsRoomPassword           = NewErr(1, false, "Sorry! Password incorrect! ")
	ErrorsJoinFailForRoomRunning = NewErr(1, false, "Join fail, room is running. ")
	ErrorsGamePlayersInvalid     = NewErr(1, false, "Game players invalid. ")
	ErrorsRoomPropsInvalid       = NewErr(1, false, "Room props invalid. ")
	ErrorsNotYourTurn            = NewErr(2, false, "It is not your turn. ")
	ErrorsRoomNotInPlay          = NewErr(1, false, "Room is not in play. ")

	GameTypes = map[int]string{
		GameTypeGoFish: "GoFish",
	}
	RoomStates = map[int]string{
		RoomStateWaiting: "Waiting",
		RoomStateRunning: "Running",
	}
)
