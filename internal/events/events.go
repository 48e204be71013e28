// Package events defines the immutable messages exchanged between the input
// adapter, the opponent goroutine and the session loop.
package events

import "ctchen222/Noughts-And-Crosses/internal/game"

// Event is anything delivered on the session's inbound channel:
// either a Command from the input adapter or an Action from the opponent.
type Event interface {
	eventName() string
}

// Name returns a stable identifier used in logs and span attributes.
func Name(e Event) string {
	return e.eventName()
}

// Commands from the input adapter.
type (
	MoveUp         struct{}
	MoveDown       struct{}
	MoveLeft       struct{}
	MoveRight      struct{}
	Confirm        struct{}
	Quit           struct{}
	NewGame        struct{}
	StartGame      struct{}
	ToggleOpponent struct{}
	SetDifficulty  struct {
		Difficulty game.Difficulty
	}
)

func (MoveUp) eventName() string         { return "move_up" }
func (MoveDown) eventName() string       { return "move_down" }
func (MoveLeft) eventName() string       { return "move_left" }
func (MoveRight) eventName() string      { return "move_right" }
func (Confirm) eventName() string        { return "confirm" }
func (Quit) eventName() string           { return "quit" }
func (NewGame) eventName() string        { return "new_game" }
func (StartGame) eventName() string      { return "start_game" }
func (ToggleOpponent) eventName() string { return "toggle_opponent" }
func (SetDifficulty) eventName() string  { return "set_difficulty" }

// Actions emitted by the opponent.
type (
	Chat struct {
		Text string
	}
	// PlaceToken carries the opponent's chosen cell for the game identified by GameID.
	PlaceToken struct {
		GameID   string        `validate:"required"`
		Position game.Position
	}
	// PlaceTokenError reports that the opponent found no legal move.
	PlaceTokenError struct {
		GameID string
		Err    error
	}
)

func (Chat) eventName() string            { return "chat" }
func (PlaceToken) eventName() string      { return "place_token" }
func (PlaceTokenError) eventName() string { return "place_token_error" }

// Trigger is sent from the session to the opponent.
type Trigger interface {
	triggerName() string
}

// TriggerName returns a stable identifier used in logs and span attributes.
func TriggerName(t Trigger) string {
	return t.triggerName()
}

type (
	// ComputersTurn asks the opponent to move after a human placement.
	ComputersTurn struct {
		Snapshot game.Snapshot
	}
	// ComputersTurnFirst asks the opponent to open a freshly started game.
	ComputersTurnFirst struct {
		Snapshot game.Snapshot
	}
	// Winner tells the opponent it won.
	Winner struct {
		Persona game.Persona
	}
	// Loser tells the opponent it lost.
	Loser struct {
		Persona game.Persona
	}
	Draw struct {
		Persona game.Persona
	}
)

func (ComputersTurn) triggerName() string      { return "computers_turn" }
func (ComputersTurnFirst) triggerName() string { return "computers_turn_first" }
func (Winner) triggerName() string             { return "winner" }
func (Loser) triggerName() string              { return "loser" }
func (Draw) triggerName() string               { return "draw" }
