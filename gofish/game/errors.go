package game

type Error struct {
	Code int
	Msg  string
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, msg string) Error {
	return Error{Code: code, Msg: msg}
}

var (
	ErrorsGameAlreadyStarted = NewErr(1, "Game already started. ")
	ErrorsNotEnoughPlayers   = NewErr(2, "Not enough players, at least two are needed. ")
	ErrorsPlayerNotFound     = NewErr(3, "Player not found. ")
	ErrorsGameOver           = NewErr(4, "Game over. ")
	ErrorsGameNotStarted     = NewErr(5, "Game not started. ")
	ErrorsGameNotOver        = NewErr(6, "Game is not over yet. ")
	ErrorsPlayerExists       = NewErr(7, "Player already joined. ")
	ErrorsInvalidRank        = NewErr(8, "Invalid rank. ")
)
