// Package session runs the main control loop. It is the only goroutine that
// mutates the game; everything else talks to it through events.
package session

import (
	"context"
	"ctchen222/Noughts-And-Crosses/internal/events"
	"ctchen222/Noughts-And-Crosses/internal/game"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("session")
	meter  = otel.Meter("session")
)

// ErrOpponentUnavailable means a trigger could not be delivered to the opponent.
// The session cannot continue without it.
var ErrOpponentUnavailable = errors.New("opponent unavailable")

var errQuit = errors.New("quit requested")

//go:generate mockgen -source=session.go -destination=mocks/mock_trigger_sender.go -package=mocks

// TriggerSender delivers triggers to the opponent goroutine.
type TriggerSender interface {
	Send(ctx context.Context, trigger events.Trigger) error
}

// Session owns one Game plus the text shown around it.
type Session struct {
	game         *game.Game
	instructions string
	chat         string

	inbox    <-chan events.Event
	opponent TriggerSender
	rng      game.Rand
	views    chan View

	gamesStarted  metric.Int64Counter
	gamesFinished metric.Int64Counter
	placements    metric.Int64Counter
}

// New creates a session around g. inbox carries both input commands and opponent actions.
func New(g *game.Game, inbox <-chan events.Event, opponent TriggerSender, rng game.Rand) *Session {
	s := &Session{
		game:         g,
		instructions: instrStart,
		inbox:        inbox,
		opponent:     opponent,
		rng:          rng,
		views:        make(chan View, 1),
	}

	var err error
	if s.gamesStarted, err = meter.Int64Counter("session.games_started",
		metric.WithDescription("Games moved from not started into play")); err != nil {
		slog.Warn("Failed to create games_started counter", "error", err)
	}
	if s.gamesFinished, err = meter.Int64Counter("session.games_finished",
		metric.WithDescription("Games that ended, by result")); err != nil {
		slog.Warn("Failed to create games_finished counter", "error", err)
	}
	if s.placements, err = meter.Int64Counter("session.placements",
		metric.WithDescription("Placement attempts, by owner and outcome")); err != nil {
		slog.Warn("Failed to create placements counter", "error", err)
	}
	return s
}

// Views delivers the latest View after each processed event. It is closed when Run returns.
func (s *Session) Views() <-chan View {
	return s.views
}

// Snapshot returns the current view. Only safe before Run starts or after it returns.
func (s *Session) Snapshot() View {
	return s.view()
}

// Run processes events until Quit, ctx cancellation, a closed inbox
// or a failed hand-off to the opponent.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.views)

	slog.InfoContext(ctx, "Session started", "game.id", s.game.ID)
	s.publish()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Session stopping.", "reason", ctx.Err())
			return ctx.Err()
		case ev, ok := <-s.inbox:
			if !ok {
				slog.InfoContext(ctx, "Session inbox closed")
				return nil
			}
			err := s.handle(ctx, ev)
			if errors.Is(err, errQuit) {
				slog.InfoContext(ctx, "Session quit", "game.id", s.game.ID)
				return nil
			}
			if err != nil {
				slog.ErrorContext(ctx, "Session cannot continue", "event", events.Name(ev), "error", err)
				return err
			}
			s.publish()
		}
	}
}

// handle dispatches a single event.
func (s *Session) handle(ctx context.Context, ev events.Event) error {
	ctx, span := tracer.Start(ctx, "session.handle", trace.WithAttributes(
		attribute.String("event", events.Name(ev)),
		attribute.String("game.id", s.game.ID),
	))
	defer span.End()

	var err error
	switch e := ev.(type) {
	case events.MoveUp:
		s.game.MoveUp()
	case events.MoveDown:
		s.game.MoveDown()
	case events.MoveLeft:
		s.game.MoveLeft()
	case events.MoveRight:
		s.game.MoveRight()
	case events.Confirm:
		err = s.handleConfirm(ctx)
	case events.Quit:
		return errQuit
	case events.NewGame:
		s.handleNewGame(ctx)
	case events.StartGame:
		err = s.handleStartGame(ctx)
	case events.SetDifficulty:
		s.handleSetDifficulty(ctx, e.Difficulty)
	case events.ToggleOpponent:
		s.handleToggleOpponent(ctx)
	case events.Chat:
		s.chat = fmt.Sprintf("%s: %s", s.game.Persona, e.Text)
	case events.PlaceToken:
		err = s.handlePlaceToken(ctx, e)
	case events.PlaceTokenError:
		s.handlePlaceTokenError(ctx, e)
	default:
		slog.WarnContext(ctx, "Ignoring unknown event", "event", events.Name(ev))
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Event handling failed")
	}
	return err
}

// send hands a trigger to the opponent. Any failure is fatal.
func (s *Session) send(ctx context.Context, trigger events.Trigger) error {
	if err := s.opponent.Send(ctx, trigger); err != nil {
		return fmt.Errorf("%w: sending %s: %w", ErrOpponentUnavailable, events.TriggerName(trigger), err)
	}
	return nil
}

func (s *Session) countPlacement(ctx context.Context, owner game.Owner, outcome game.Outcome) {
	if s.placements == nil {
		return
	}
	s.placements.Add(ctx, 1, metric.WithAttributes(
		attribute.String("owner", owner.String()),
		attribute.String("outcome", outcome.Kind.String()),
	))
}

func (s *Session) countFinished(ctx context.Context, result string) {
	if s.gamesFinished == nil {
		return
	}
	s.gamesFinished.Add(ctx, 1, metric.WithAttributes(
		attribute.String("result", result),
		attribute.String("difficulty", s.game.Difficulty.String()),
		attribute.String("persona", s.game.Persona.String()),
	))
}
