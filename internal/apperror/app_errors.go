package apperror

import "errors"

var (
	ErrGameNotStarted     = errors.New("game is not started")
	ErrGameAlreadyStarted = errors.New("game has already started")
	ErrGameInProgress     = errors.New("game is still in progress")
	ErrGameFinished       = errors.New("game is already finished")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrCellNotSelectable  = errors.New("cell is not selectable")
	ErrInvalidPosition    = errors.New("invalid board position")
	ErrNoMoveAvailable    = errors.New("no move available")
	ErrSettingsLocked     = errors.New("settings cannot change while a game is in progress")
)
