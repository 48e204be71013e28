package game

import (
	"ctchen222/Noughts-And-Crosses/internal/apperror"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Rand is the randomness source used for the first turn and opponent moves.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

type Difficulty uint8

const (
	Easy Difficulty = iota
	Hard
)

func (d Difficulty) String() string {
	if d == Easy {
		return "Easy"
	}
	return "Hard"
}

// ParseDifficulty accepts "easy" or "hard" in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "hard":
		return Hard, nil
	}
	return Hard, fmt.Errorf("unknown difficulty %q", s)
}

// Persona is the opponent's cosmetic identity. It changes chat lines and pacing only.
type Persona uint8

const (
	Hal Persona = iota
	Marvin

	personaCount = 2
)

func (p Persona) String() string {
	if p == Marvin {
		return "Marvin"
	}
	return "HAL"
}

// Next cycles to the following persona.
func (p Persona) Next() Persona {
	return (p + 1) % personaCount
}

func ParsePersona(s string) (Persona, error) {
	switch strings.ToLower(s) {
	case "hal":
		return Hal, nil
	case "marvin":
		return Marvin, nil
	}
	return Hal, fmt.Errorf("unknown persona %q", s)
}

type Phase uint8

const (
	NotStarted Phase = iota
	InProgress
	Won
	Drawn
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	default:
		return "drawn"
	}
}

// Game is the full game aggregate. It is owned by a single goroutine.
type Game struct {
	ID          string
	Board       Board
	Cursor      Position
	CurrentTurn Owner
	Winner      Owner
	Started     bool
	Difficulty  Difficulty
	Persona     Persona
}

// NewGame returns a game waiting to be started.
func NewGame(difficulty Difficulty, persona Persona) *Game {
	return &Game{
		ID:          uuid.NewString(),
		Board:       NewBoard(),
		Cursor:      Center,
		CurrentTurn: Human,
		Winner:      Nobody,
		Difficulty:  difficulty,
		Persona:     persona,
	}
}

// Phase derives the state machine position from the stored fields.
func (g *Game) Phase() Phase {
	switch {
	case !g.Started:
		return NotStarted
	case g.Winner != Nobody:
		return Won
	case g.Board.IsFull():
		return Drawn
	default:
		return InProgress
	}
}

// IsOver reports whether the game reached Won or Drawn.
func (g *Game) IsOver() bool {
	phase := g.Phase()
	return phase == Won || phase == Drawn
}

// Start moves a fresh game into play and picks the first turn at random.
func (g *Game) Start(rng Rand) (Owner, error) {
	switch g.Phase() {
	case InProgress:
		return Nobody, apperror.ErrGameAlreadyStarted
	case Won, Drawn:
		return Nobody, apperror.ErrGameFinished
	}

	g.Started = true
	g.CurrentTurn = chooseFirstTurn(rng)
	return g.CurrentTurn, nil
}

// PlaceHuman places the human token on the selected slot.
func (g *Game) PlaceHuman() (Outcome, error) {
	if err := g.confirmTurn(Human); err != nil {
		return Outcome{Kind: Rejected}, err
	}
	return g.apply(g.Board.Place(g.Cursor, Human), Human), nil
}

// PlaceAutomated places the automated token on p.
func (g *Game) PlaceAutomated(p Position) (Outcome, error) {
	if !p.InBounds() {
		return Outcome{Kind: Rejected}, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidPosition, p.Row, p.Col)
	}
	if err := g.confirmTurn(Automated); err != nil {
		return Outcome{Kind: Rejected}, err
	}
	return g.apply(g.Board.Place(p, Automated), Automated), nil
}

func (g *Game) confirmTurn(owner Owner) error {
	switch g.Phase() {
	case NotStarted:
		return apperror.ErrGameNotStarted
	case Won, Drawn:
		return apperror.ErrGameFinished
	}
	if g.CurrentTurn != owner {
		return apperror.ErrNotYourTurn
	}
	return nil
}

func (g *Game) apply(outcome Outcome, owner Owner) Outcome {
	switch outcome.Kind {
	case PlacedWithWinner:
		g.Winner = outcome.Winner
	case Placed:
		if !g.Board.IsFull() {
			g.CurrentTurn = owner.Opponent()
		}
	}
	return outcome
}

// Reset replaces the board after a finished game. Settings survive.
func (g *Game) Reset() error {
	switch g.Phase() {
	case NotStarted:
		return apperror.ErrGameNotStarted
	case InProgress:
		return apperror.ErrGameInProgress
	}

	*g = *NewGame(g.Difficulty, g.Persona)
	return nil
}

// SetDifficulty is allowed only while no game is in progress.
func (g *Game) SetDifficulty(d Difficulty) error {
	if g.Phase() == InProgress {
		return apperror.ErrSettingsLocked
	}
	g.Difficulty = d
	return nil
}

// TogglePersona is allowed only while no game is in progress.
func (g *Game) TogglePersona() (Persona, error) {
	if g.Phase() == InProgress {
		return g.Persona, apperror.ErrSettingsLocked
	}
	g.Persona = g.Persona.Next()
	return g.Persona, nil
}

// Snapshot is an immutable copy of a Game handed to other goroutines.
type Snapshot struct {
	GameID      string
	Board       Board
	Cursor      Position
	CurrentTurn Owner
	Winner      Owner
	Started     bool
	Phase       Phase
	Difficulty  Difficulty
	Persona     Persona
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		GameID:      g.ID,
		Board:       g.Board,
		Cursor:      g.Cursor,
		CurrentTurn: g.CurrentTurn,
		Winner:      g.Winner,
		Started:     g.Started,
		Phase:       g.Phase(),
		Difficulty:  g.Difficulty,
		Persona:     g.Persona,
	}
}

func chooseFirstTurn(rng Rand) Owner {
	if rng.IntN(2) == 0 {
		return Human
	}
	return Automated
}
