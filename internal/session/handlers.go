package session

import (
	"context"
	"ctchen222/Noughts-And-Crosses/internal/apperror"
	"ctchen222/Noughts-And-Crosses/internal/events"
	"ctchen222/Noughts-And-Crosses/internal/game"
	"ctchen222/Noughts-And-Crosses/internal/validator"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// handleConfirm places the human token on the selected cell.
func (s *Session) handleConfirm(ctx context.Context) error {
	outcome, err := s.game.PlaceHuman()
	switch {
	case errors.Is(err, apperror.ErrGameNotStarted):
		s.instructions = instrStart
		return nil
	case errors.Is(err, apperror.ErrGameFinished):
		s.instructions = instrGameOver
		return nil
	case errors.Is(err, apperror.ErrNotYourTurn):
		s.instructions = instrPleaseWait
		return nil
	case err != nil:
		slog.WarnContext(ctx, "Human placement failed", "game.id", s.game.ID, "error", err)
		s.instructions = instrSomethingWrong
		return nil
	}

	s.countPlacement(ctx, game.Human, outcome)
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("move.row", s.game.Cursor.Row),
		attribute.Int("move.col", s.game.Cursor.Col),
		attribute.String("move.outcome", outcome.Kind.String()),
	)

	switch outcome.Kind {
	case game.Placed:
		if s.game.Phase() == game.Drawn {
			s.instructions = instrTie
			s.countFinished(ctx, "draw")
			return s.send(ctx, events.Draw{Persona: s.game.Persona})
		}
		s.instructions = instrComputersTurn
		return s.send(ctx, events.ComputersTurn{Snapshot: s.game.Snapshot()})
	case game.PlacedWithWinner:
		s.instructions = instrHumanWins
		s.countFinished(ctx, "human")
		slog.InfoContext(ctx, "Human won", "game.id", s.game.ID)
		return s.send(ctx, events.Loser{Persona: s.game.Persona})
	case game.OccupiedByAutomated:
		s.instructions = instrOccupiedByOpp
	case game.OccupiedByHuman:
		s.instructions = instrOccupiedByYou
	default:
		s.instructions = instrSomethingWrong
	}
	return nil
}

// handleStartGame starts a fresh game and lets the opponent open if it won the toss.
func (s *Session) handleStartGame(ctx context.Context) error {
	first, err := s.game.Start(s.rng)
	switch {
	case errors.Is(err, apperror.ErrGameAlreadyStarted):
		s.instructions = instrAlreadyStarted
		return nil
	case errors.Is(err, apperror.ErrGameFinished):
		s.instructions = instrGameOver
		return nil
	case err != nil:
		slog.WarnContext(ctx, "Failed to start game", "game.id", s.game.ID, "error", err)
		s.instructions = instrSomethingWrong
		return nil
	}

	if s.gamesStarted != nil {
		s.gamesStarted.Add(ctx, 1)
	}
	slog.InfoContext(ctx, "Game started",
		"game.id", s.game.ID,
		"first", first,
		"difficulty", s.game.Difficulty,
		"persona", s.game.Persona,
	)

	if first == game.Automated {
		s.instructions = instrComputerFirst
		return s.send(ctx, events.ComputersTurnFirst{Snapshot: s.game.Snapshot()})
	}
	s.instructions = instrYourTurn
	return nil
}

// handleNewGame clears a finished game. Settings carry over.
func (s *Session) handleNewGame(ctx context.Context) {
	previous := s.game.ID
	switch err := s.game.Reset(); {
	case errors.Is(err, apperror.ErrGameInProgress):
		s.instructions = instrNewGameBlocked
	case errors.Is(err, apperror.ErrGameNotStarted):
		s.instructions = instrNothingToRestart
	case err != nil:
		slog.WarnContext(ctx, "Failed to reset game", "game.id", previous, "error", err)
		s.instructions = instrSomethingWrong
	default:
		s.instructions = instrNewGame
		s.chat = ""
		slog.InfoContext(ctx, "New game", "previous.game.id", previous, "game.id", s.game.ID)
	}
}

func (s *Session) handleSetDifficulty(ctx context.Context, d game.Difficulty) {
	if err := s.game.SetDifficulty(d); err != nil {
		slog.DebugContext(ctx, "Difficulty change rejected", "game.id", s.game.ID, "error", err)
		s.instructions = instrDifficultyLocked
		return
	}
	s.instructions = fmt.Sprintf(instrDifficultyFmt, d)
}

func (s *Session) handleToggleOpponent(ctx context.Context) {
	persona, err := s.game.TogglePersona()
	if err != nil {
		slog.DebugContext(ctx, "Opponent change rejected", "game.id", s.game.ID, "error", err)
		s.instructions = instrOpponentLocked
		return
	}
	s.chat = ""
	s.instructions = fmt.Sprintf(instrOpponentFmt, persona)
}

// handlePlaceToken applies the opponent's move. Moves for an earlier game are dropped.
func (s *Session) handlePlaceToken(ctx context.Context, e events.PlaceToken) error {
	if err := validator.Struct(e); err != nil {
		slog.WarnContext(ctx, "Invalid placement from opponent", "error", err)
		s.instructions = instrSomethingWrong
		return nil
	}
	if e.GameID != s.game.ID {
		slog.DebugContext(ctx, "Ignoring placement for a previous game", "event.game.id", e.GameID, "game.id", s.game.ID)
		return nil
	}

	outcome, err := s.game.PlaceAutomated(e.Position)
	if err != nil {
		slog.WarnContext(ctx, "Opponent placement rejected", "game.id", s.game.ID, "error", err)
		s.instructions = instrSomethingWrong
		return nil
	}

	s.countPlacement(ctx, game.Automated, outcome)
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("move.row", e.Position.Row),
		attribute.Int("move.col", e.Position.Col),
		attribute.String("move.outcome", outcome.Kind.String()),
	)

	switch outcome.Kind {
	case game.Placed:
		if s.game.Phase() == game.Drawn {
			s.instructions = instrTie
			s.countFinished(ctx, "draw")
			return s.send(ctx, events.Draw{Persona: s.game.Persona})
		}
		s.chat = fmt.Sprintf("%s: %s", s.game.Persona, chatYourTurn)
		s.instructions = instrYourTurn
	case game.PlacedWithWinner:
		s.instructions = instrComputerWins
		s.countFinished(ctx, "automated")
		slog.InfoContext(ctx, "Opponent won", "game.id", s.game.ID)
		return s.send(ctx, events.Winner{Persona: s.game.Persona})
	default:
		slog.WarnContext(ctx, "Opponent chose an unusable cell", "game.id", s.game.ID, "outcome", outcome.Kind)
		s.instructions = instrSomethingWrong
	}
	return nil
}

func (s *Session) handlePlaceTokenError(ctx context.Context, e events.PlaceTokenError) {
	if e.GameID != s.game.ID {
		slog.DebugContext(ctx, "Ignoring placement error for a previous game", "event.game.id", e.GameID)
		return
	}
	slog.ErrorContext(ctx, "Opponent could not move", "game.id", s.game.ID, "error", e.Err)
	s.instructions = fmt.Sprintf(instrOpponentNoMoveFmt, s.game.Persona)
}
