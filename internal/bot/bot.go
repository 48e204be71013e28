package bot

import (
	"context"
	"ctchen222/Noughts-And-Crosses/internal/events"
	"ctchen222/Noughts-And-Crosses/internal/game"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const triggerQueueSize = 8

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")
)

// ErrOpponentStopped is returned by Send once the opponent goroutine has exited.
var ErrOpponentStopped = errors.New("opponent is not running")

// Opponent is the automated player's goroutine. It consumes triggers one at a
// time and answers on the session's event channel.
type Opponent struct {
	triggers   chan events.Trigger
	out        chan<- events.Event
	calculator MoveCalculator
	waiter     Waiter
	rng        game.Rand
	pacing     float64
	done       chan struct{}
	decisions  metric.Int64Counter
}

// Option configures an Opponent.
type Option func(*Opponent)

// WithPacingScale multiplies every persona delay by scale. Zero removes all pauses.
func WithPacingScale(scale float64) Option {
	return func(o *Opponent) {
		o.pacing = scale
	}
}

// NewOpponent creates an opponent that writes to out.
// rng drives the flavor rolls only; move selection uses calculator.
func NewOpponent(out chan<- events.Event, calculator MoveCalculator, waiter Waiter, rng game.Rand, opts ...Option) *Opponent {
	o := &Opponent{
		triggers:   make(chan events.Trigger, triggerQueueSize),
		out:        out,
		calculator: calculator,
		waiter:     waiter,
		rng:        rng,
		pacing:     1,
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(o)
	}

	counter, err := meter.Int64Counter("bot.decisions",
		metric.WithDescription("Moves chosen by the opponent, by heuristic rule"))
	if err != nil {
		slog.Warn("Failed to create decisions counter", "error", err)
	}
	o.decisions = counter
	return o
}

// Send queues a trigger. It fails once the opponent has stopped.
func (o *Opponent) Send(ctx context.Context, trigger events.Trigger) error {
	select {
	case <-o.done:
		return ErrOpponentStopped
	default:
	}

	select {
	case o.triggers <- trigger:
		return nil
	case <-o.done:
		return ErrOpponentStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when Run returns.
func (o *Opponent) Done() <-chan struct{} {
	return o.done
}

// Run processes triggers until ctx is cancelled.
func (o *Opponent) Run(ctx context.Context) {
	defer close(o.done)

	slog.InfoContext(ctx, "Opponent goroutine started")
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Opponent goroutine stopping.", "reason", ctx.Err())
			return
		case trigger := <-o.triggers:
			if err := o.handle(ctx, trigger); err != nil {
				if ctx.Err() != nil {
					return
				}
				slog.ErrorContext(ctx, "Opponent failed to handle trigger", "trigger", events.TriggerName(trigger), "error", err)
			}
		}
	}
}

func (o *Opponent) handle(ctx context.Context, trigger events.Trigger) error {
	ctx, span := tracer.Start(ctx, "bot.handleTrigger", trace.WithAttributes(
		attribute.String("trigger", events.TriggerName(trigger)),
	))
	defer span.End()

	var err error
	switch t := trigger.(type) {
	case events.ComputersTurnFirst:
		span.SetAttributes(attribute.String("game.id", t.Snapshot.GameID))
		err = o.chat(ctx, profileFor(t.Snapshot.Persona).opening)
		if err == nil {
			err = o.takeTurn(ctx, t.Snapshot)
		}
	case events.ComputersTurn:
		span.SetAttributes(attribute.String("game.id", t.Snapshot.GameID))
		err = o.takeTurn(ctx, t.Snapshot)
	case events.Winner:
		err = o.gloat(ctx, profileFor(t.Persona))
	case events.Loser:
		err = o.chat(ctx, profileFor(t.Persona).concede)
	case events.Draw:
		err = o.chat(ctx, profileFor(t.Persona).draw)
	default:
		slog.WarnContext(ctx, "Opponent ignoring unknown trigger", "trigger", events.TriggerName(trigger))
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Trigger handling failed")
	}
	return err
}

// takeTurn paces, chats, decides and always ends with exactly one placement event.
func (o *Opponent) takeTurn(ctx context.Context, snapshot game.Snapshot) error {
	prof := profileFor(snapshot.Persona)

	if err := o.wait(ctx, prof.beforeThinking); err != nil {
		return err
	}
	if err := o.think(ctx, prof); err != nil {
		return err
	}
	if err := o.wait(ctx, prof.afterThinking); err != nil {
		return err
	}

	decision, err := o.calculator.CalculateNextMove(snapshot)
	if err != nil {
		slog.WarnContext(ctx, "Opponent found no move", "game.id", snapshot.GameID, "error", err)
		return o.emit(ctx, events.PlaceTokenError{GameID: snapshot.GameID, Err: err})
	}

	if o.decisions != nil {
		o.decisions.Add(ctx, 1, metric.WithAttributes(
			attribute.String("rule", string(decision.Rule)),
			attribute.String("difficulty", snapshot.Difficulty.String()),
		))
	}
	slog.InfoContext(ctx, "Opponent chose a cell",
		"game.id", snapshot.GameID,
		"row", decision.Position.Row,
		"col", decision.Position.Col,
		"rule", decision.Rule,
	)
	return o.emit(ctx, events.PlaceToken{GameID: snapshot.GameID, Position: decision.Position})
}

// think sends one flavor line picked by a roll from 0 to 10.
func (o *Opponent) think(ctx context.Context, prof profile) error {
	switch roll := o.rng.IntN(11); {
	case roll <= 3:
		return o.chat(ctx, prof.ponder)
	case roll <= 5:
		return o.chat(ctx, prof.tough)
	case roll <= 7:
		return o.digress(ctx, prof.coffee)
	case roll <= 9:
		return o.digress(ctx, prof.beer)
	default:
		return o.chat(ctx, prof.taunt)
	}
}

func (o *Opponent) digress(ctx context.Context, a aside) error {
	if err := o.chat(ctx, a.say); err != nil {
		return err
	}
	if err := o.wait(ctx, a.pause); err != nil {
		return err
	}
	return o.chat(ctx, a.then)
}

func (o *Opponent) gloat(ctx context.Context, prof profile) error {
	if err := o.wait(ctx, prof.beforeGloat); err != nil {
		return err
	}
	if err := o.chat(ctx, prof.gloat); err != nil {
		return err
	}
	if err := o.wait(ctx, prof.afterGloat); err != nil {
		return err
	}
	return o.chat(ctx, prof.rematch)
}

func (o *Opponent) wait(ctx context.Context, d time.Duration) error {
	return o.waiter.Wait(ctx, time.Duration(float64(d)*o.pacing))
}

func (o *Opponent) chat(ctx context.Context, text string) error {
	return o.emit(ctx, events.Chat{Text: text})
}

func (o *Opponent) emit(ctx context.Context, ev events.Event) error {
	select {
	case o.out <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
