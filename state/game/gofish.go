package game

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/gofish/config"
	"github.com/ratel-online/gofish/consts"
	"github.com/ratel-online/gofish/database"
	"github.com/ratel-online/gofish/gofish/card"
	"github.com/ratel-online/gofish/gofish/event"
	fish "github.com/ratel-online/gofish/gofish/game"
	"github.com/ratel-online/gofish/gofish/msg"
	"github.com/ratel-online/gofish/render"
	"github.com/ratel-online/gofish/service"
)

type GoFish struct{}

func init() {
	event.BookMade.AddListener(bookLogger{})
}

type bookLogger struct{}

func (bookLogger) OnBookMade(payload event.BookMadePayload) {
	log.Infof("room %d: %s made a book of %s's\n", payload.RoomID, payload.PlayerName, payload.Rank)
}

func (g *GoFish) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, player.WriteError(consts.ErrorsExist)
	}
	match := room.Game
	if match == nil {
		return consts.StateWaiting, nil
	}
	ch, ok := match.States[player.ID]
	if !ok {
		return consts.StateWaiting, nil
	}
	if view, err := match.Game.View(database.PlayerID(player.ID)); err == nil {
		_ = player.WriteString(msg.Message.Opponents(match.Game.Opponents(database.PlayerID(player.ID))) + render.GameView(view))
	}
	for {
		state, err := waitForTurn(player, match, ch)
		if err != nil {
			return 0, err
		}
		switch state {
		case database.GoFishTurn:
			if err := playTurn(player, room, match); err != nil {
				return 0, err
			}
			handoff(room, match)
			if match.Game.Finished() {
				return consts.StateWaiting, nil
			}
		case database.GoFishOver:
			return consts.StateWaiting, nil
		default:
			return 0, consts.ErrorsChanClosed
		}
	}
}

// Exit gives up the seat. The match keeps going and the seat is played
// automatically from now on.
func (g *GoFish) Exit(player *database.Player) consts.StateID {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return consts.StateHome
	}
	match := room.Game
	if match != nil {
		match.Leave(player.ID)
		database.Broadcast(room.ID, fmt.Sprintf("%s left the game, their seat plays on its own.\n", player.Name), player.ID)
	}
	database.LeaveRoom(room.ID, player.ID)
	if match != nil && match.IsCurrent(player.ID) {
		handoff(room, match)
	}
	return consts.StateHome
}

// waitForTurn blocks until the match signals this player. Input typed
// meanwhile is answered but never reaches the match.
func waitForTurn(player *database.Player, match *database.GoFish, ch chan int) (int, error) {
	player.StartTransaction()
	defer player.StopTransaction()
	for {
		select {
		case state, ok := <-ch:
			if !ok {
				return 0, consts.ErrorsExist
			}
			return state, nil
		default:
		}
		signal, err := player.AskForStringWithoutTransaction(time.Second)
		if err == consts.ErrorsTimeout {
			continue
		}
		if err != nil {
			return 0, err
		}
		switch {
		case service.IsQuery(signal):
			_ = service.Handle(player, signal)
		case isView(signal):
			showView(player, match)
		case len(signal) > 0:
			_ = player.WriteError(consts.ErrorsNotYourTurn)
		}
	}
}

func playTurn(player *database.Player, room *database.Room, match *database.GoFish) error {
	status, err := match.Prepare(player.ID)
	if err != nil {
		return nil
	}
	switch status {
	case fish.StatusSatOut:
		_ = player.WriteString(msg.Sprintln(status.String()))
		database.Broadcast(room.ID, msg.Message.PlayerSatOut(player.Name), player.ID)
		return nil
	case fish.StatusRefilled:
		_ = player.WriteString(msg.Sprintln(status.String()))
		database.Broadcast(room.ID, msg.Message.PlayerRefilled(player.Name), player.ID)
	}
	if match.Game.Finished() {
		return nil
	}
	database.Broadcast(room.ID, msg.Message.PlayerTurnStarted(player.Name), player.ID)
	_ = player.WriteString(msg.Message.HumanPlayerTurnStarted(player.Name))
	showView(player, match)

	opponent, rank, err := askForMove(player, match)
	if err == consts.ErrorsTimeout {
		var ok bool
		opponent, rank, ok = match.AutoMove(player.ID)
		if !ok {
			return nil
		}
		_ = player.WriteString(fmt.Sprintf("Timeout! Asking %s for %s's.\n", nameOf(match, opponent), rank))
	} else if err != nil {
		return err
	}
	result, err := match.Play(player.ID, opponent, rank)
	if err != nil {
		_ = player.WriteError(err)
		return nil
	}
	narrate(room, match, result)
	return nil
}

func askForMove(player *database.Player, match *database.GoFish) (int64, card.Rank, error) {
	timeout := config.Get().PlayTimeout
	var opponent int64
	_ = player.WriteString(msg.Message.SelectOpponent() + opponentOptions(player, match))
	for opponent == 0 {
		signal, err := player.AskForString(timeout)
		if err != nil {
			return 0, 0, err
		}
		if isView(signal) {
			showView(player, match)
			continue
		}
		label, err := strconv.Atoi(signal)
		if id, ok := match.Opponent(player.ID, label); err == nil && ok {
			opponent = id
			continue
		}
		if id, ok := opponentByName(player, match, signal); ok {
			opponent = id
			continue
		}
		_ = player.WriteString(msg.Message.UnknownOpponent(signal))
	}
	_ = player.WriteString(msg.Message.SelectRank())
	for {
		signal, err := player.AskForString(timeout)
		if err != nil {
			return 0, 0, err
		}
		if isView(signal) {
			showView(player, match)
			continue
		}
		rank, err := card.ParseRank(signal)
		if err != nil || !holdsRank(player, match, rank) {
			_ = player.WriteString(msg.Message.RankNotInHand(signal))
			continue
		}
		return opponent, rank, nil
	}
}

// handoff passes control to whoever holds the turn. Seats nobody drives
// any more are played automatically until a human is up or the match ends.
func handoff(room *database.Room, match *database.GoFish) {
	for {
		if match.Game.Finished() {
			finish(room, match)
			return
		}
		if match.NeedExit() {
			log.Infof("room %d has no players left in game %s\n", room.ID, match.Game.ID())
			return
		}
		current := match.Current()
		if match.Active(current) {
			match.Signal(current, database.GoFishTurn)
			return
		}
		autoTurn(room, match, current)
	}
}

func autoTurn(room *database.Room, match *database.GoFish, playerID int64) {
	status, err := match.Prepare(playerID)
	if err != nil {
		log.Error(err)
		return
	}
	name := nameOf(match, playerID)
	switch status {
	case fish.StatusSatOut:
		database.Broadcast(room.ID, msg.Message.PlayerSatOut(name))
		return
	case fish.StatusRefilled:
		database.Broadcast(room.ID, msg.Message.PlayerRefilled(name))
	}
	if match.Game.Finished() {
		return
	}
	opponent, rank, ok := match.AutoMove(playerID)
	if !ok {
		return
	}
	result, err := match.Play(playerID, opponent, rank)
	if err != nil {
		log.Error(err)
		return
	}
	narrate(room, match, result)
}

// narrate sends each seated player the round told from their side.
func narrate(room *database.Room, match *database.GoFish, result *fish.RoundResult) {
	for _, id := range match.Players {
		p := database.GetPlayer(id)
		if p == nil || p.RoomID != room.ID {
			continue
		}
		_ = p.WriteString(msg.Sprintln(result.DisplayFor(database.PlayerID(id))))
	}
	for _, book := range result.Books() {
		event.BookMade.Emit(event.BookMadePayload{
			RoomID:     room.ID,
			PlayerName: result.Asker().Name,
			Rank:       book.Rank(),
		})
	}
}

func finish(room *database.Room, match *database.GoFish) {
	line, err := match.Game.DisplayWinners()
	if err != nil {
		log.Error(err)
		return
	}
	database.Broadcast(room.ID, msg.Sprintln(line))
	log.Infof("room %d game %s over: %s\n", room.ID, match.Game.ID(), line)

	room.Lock()
	if room.Game == match {
		room.Game = nil
		room.State = consts.RoomStateWaiting
	}
	room.Unlock()
	event.GameOver.Emit(event.GameOverPayload{
		RoomID:  room.ID,
		Winners: match.Game.Winners(),
		Line:    line,
	})
	for _, id := range match.Players {
		match.Signal(id, database.GoFishOver)
	}
}

func showView(player *database.Player, match *database.GoFish) {
	view, err := match.Game.View(database.PlayerID(player.ID))
	if err != nil {
		_ = player.WriteError(err)
		return
	}
	_ = player.WriteString(render.GameView(view))
}

func opponentOptions(player *database.Player, match *database.GoFish) string {
	buf := strings.Builder{}
	for _, opponent := range match.Game.Opponents(database.PlayerID(player.ID)) {
		id := database.ParsePlayerID(opponent.ID)
		buf.WriteString(fmt.Sprintf("%d.%s\n", match.Label(player.ID, id), opponent.Name))
	}
	return buf.String()
}

func opponentByName(player *database.Player, match *database.GoFish, name string) (int64, bool) {
	for _, opponent := range match.Game.Opponents(database.PlayerID(player.ID)) {
		if strings.EqualFold(opponent.Name, strings.TrimSpace(name)) {
			return database.ParsePlayerID(opponent.ID), true
		}
	}
	return 0, false
}

func holdsRank(player *database.Player, match *database.GoFish, rank card.Rank) bool {
	view, err := match.Game.View(database.PlayerID(player.ID))
	if err != nil {
		return false
	}
	for _, c := range view.Hand {
		if c.Rank == rank {
			return true
		}
	}
	return false
}

func nameOf(match *database.GoFish, playerID int64) string {
	for _, p := range match.Game.Players() {
		if p.ID == database.PlayerID(playerID) {
			return p.Name
		}
	}
	return strconv.FormatInt(playerID, 10)
}

func isView(signal string) bool {
	signal = strings.ToLower(strings.TrimSpace(signal))
	return signal == "ls" || signal == "v"
}
