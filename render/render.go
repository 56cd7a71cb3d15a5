package render

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
	"github.com/ratel-online/gofish/consts"
	"github.com/ratel-online/gofish/gofish/game"
	"github.com/ratel-online/gofish/gofish/msg"
)

var turn = color.New(color.FgHiYellow).SprintFunc()

func HomeOptions() string {
	buf := bytes.Buffer{}
	buf.WriteString("1.Join\n")
	buf.WriteString("2.New\n")
	return buf.String()
}

// RoomRow is one line of the lobby listing.
type RoomRow struct {
	ID       int64
	Type     int
	Players  int
	State    int
	Password bool
}

func RoomList(rooms []RoomRow) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-10s%-10s%-10s%-10s\n", "ID", "Type", "Players", "State"))
	for _, room := range rooms {
		pwdFlag := ""
		if room.Password {
			pwdFlag = "*"
		}
		buf.WriteString(fmt.Sprintf("%-10d%-10s%-10d%-10s\n", room.ID, pwdFlag+consts.GameTypes[room.Type], room.Players, consts.RoomStates[room.State]))
	}
	return buf.String()
}

// Member is a seated player as shown in the waiting room.
type Member struct {
	Name  string
	Score int64
	Owner bool
}

// Settings are the room props a member may see. Password is already masked
// for everyone but the owner.
type Settings struct {
	DontShuffle bool
	Chat        bool
	MaxPlayers  int
	Password    string
}

func RoomInfo(roomID int64, members []Member, settings Settings) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Room ID: %d\n", roomID))
	buf.WriteString(fmt.Sprintf("%-20s%-10s%-10s\n", "Name", "Score", "Title"))
	for _, member := range members {
		role := "player"
		if member.Owner {
			role = "owner"
		}
		buf.WriteString(fmt.Sprintf("%-20s%-10d%-10s\n", member.Name, member.Score, role))
	}
	pwd := settings.Password
	if pwd == "" {
		pwd = "off"
	}
	buf.WriteString("\nSettings:\n")
	buf.WriteString(fmt.Sprintf("%-5s%-5v%-5s%-5v\n", "ds:", onOff(settings.DontShuffle)+",", "ct:", onOff(settings.Chat)))
	buf.WriteString(fmt.Sprintf("%-5s%-5v%-5s%-5v\n", "pn:", fmt.Sprintf("%d,", settings.MaxPlayers), "pwd:", pwd))
	return buf.String()
}

// GameView renders a player's snapshot of the match. Opponents are numbered
// in seat order; the numbers are what the player types to pick one.
func GameView(view game.View) string {
	buf := bytes.Buffer{}
	buf.WriteString(msg.Message.PondCount(view.PondCount))
	buf.WriteString(fmt.Sprintf("%-4s%-20s%-8s%-8s\n", "No.", "Opponent", "Books", "Value"))
	for i, opponent := range view.Opponents {
		buf.WriteString(fmt.Sprintf("%-4d%-20s%-8d%-8d\n", i+1, opponent.Name, opponent.Books.Count, opponent.Books.Value))
	}
	buf.WriteString(msg.Message.Books(view.Books))
	buf.WriteString(msg.Message.Hand(view.Hand))
	if view.Turn != "" && !view.YourTurn {
		buf.WriteString(turn(fmt.Sprintf("Waiting for %s.", view.Turn)) + "\n")
	}
	return buf.String()
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
