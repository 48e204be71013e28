package session

import "ctchen222/Noughts-And-Crosses/internal/game"

const (
	instrStart             = "Press S to start the game."
	instrYourTurn          = "Press enter to place your token."
	instrComputersTurn     = "Computers turn."
	instrComputerFirst     = "The computer goes first. Please wait."
	instrPleaseWait        = "Computers turns. Please wait."
	instrTie               = "It's a tie."
	instrHumanWins         = "You win! Press N to start a new game."
	instrComputerWins      = "The computer wins!"
	instrOccupiedByYou     = "This cell is already occupied by you."
	instrOccupiedByOpp     = "This cell is already occupied by the computer."
	instrSomethingWrong    = "Oops, something went wrong."
	instrAlreadyStarted    = "The game has already started."
	instrGameOver          = "The game is over. Press N to start a new game."
	instrNewGame           = "New game. Press S to start."
	instrNewGameBlocked    = "Unable to start a new game until the current game is finished."
	instrNothingToRestart  = "No game to restart yet. Press S to start."
	instrDifficultyLocked  = "Unable to update the difficulty while the game has started."
	instrOpponentLocked    = "Unable to change the opponent while the game has started."
	instrOpponentNoMoveFmt = "Oh no, looks like %s has hit an error when trying to place a token"
	instrDifficultyFmt     = "Difficulty set to %s."
	instrOpponentFmt       = "You are now playing against %s."

	chatYourTurn = "Ok, your turn!"
)

// View is the read-only state handed to the render adapter.
type View struct {
	GameID       string
	Board        game.Board
	Instructions string
	Chat         string
	Difficulty   game.Difficulty
	Persona      game.Persona
	Started      bool
	Phase        game.Phase
	CurrentTurn  game.Owner
	Winner       game.Owner
}

func (s *Session) view() View {
	return View{
		GameID:       s.game.ID,
		Board:        s.game.Board,
		Instructions: s.instructions,
		Chat:         s.chat,
		Difficulty:   s.game.Difficulty,
		Persona:      s.game.Persona,
		Started:      s.game.Started,
		Phase:        s.game.Phase(),
		CurrentTurn:  s.game.CurrentTurn,
		Winner:       s.game.Winner,
	}
}

// publish replaces any unread view with the latest one.
func (s *Session) publish() {
	select {
	case <-s.views:
	default:
	}
	s.views <- s.view()
}
