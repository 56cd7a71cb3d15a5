package state

import (
	"github.com/ratel-online/gofish/consts"
	"github.com/ratel-online/gofish/database"
	"github.com/ratel-online/gofish/render"
)

type home struct{}

func (*home) Next(player *database.Player) (consts.StateID, error) {
	err := player.WriteString(render.HomeOptions())
	if err != nil {
		return 0, player.WriteError(err)
	}
	selected, err := player.AskForInt()
	if err != nil {
		return 0, player.WriteError(err)
	}
	if selected == 1 {
		return consts.StateJoin, nil
	} else if selected == 2 {
		return consts.StateCreate, nil
	}
	return 0, player.WriteError(consts.ErrorsInputInvalid)
}

func (*home) Exit(player *database.Player) consts.StateID {
	return 0
}
