package bot

import (
	"context"
	"ctchen222/Noughts-And-Crosses/internal/apperror"
	"ctchen222/Noughts-And-Crosses/internal/bot/mocks"
	"ctchen222/Noughts-And-Crosses/internal/events"
	"ctchen222/Noughts-And-Crosses/internal/game"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// startOpponent runs an opponent until the test ends and returns its output channel.
func startOpponent(t *testing.T, waiter Waiter, flavor game.Rand, opts ...Option) (*Opponent, <-chan events.Event) {
	t.Helper()
	out := make(chan events.Event, 16)
	o := NewOpponent(out, NewMoveCalculator(fixedRand(0)), waiter, flavor, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	go o.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-o.Done()
	})
	return o, out
}

// collect reads n events or fails after a second.
func collect(t *testing.T, out <-chan events.Event, n int) []events.Event {
	t.Helper()
	got := make([]events.Event, 0, n)
	for len(got) < n {
		select {
		case ev := <-out:
			got = append(got, ev)
		case <-time.After(time.Second):
			t.Fatalf("timed out after %d of %d events: %v", len(got), n, got)
		}
	}
	return got
}

func expectWaits(waiter *mocks.MockWaiter, durations ...time.Duration) {
	calls := make([]any, 0, len(durations))
	for _, d := range durations {
		calls = append(calls, waiter.EXPECT().Wait(gomock.Any(), d).Return(nil))
	}
	gomock.InOrder(calls...)
}

func TestOpponent_ComputersTurn(t *testing.T) {
	t.Run("Paces, chats and places on the winning cell", func(t *testing.T) {
		// Given: an opponent with a zero flavor roll and a hard board it can win
		waiter := mocks.NewMockWaiter(gomock.NewController(t))
		expectWaits(waiter, 2*time.Second, 5*time.Second)
		o, out := startOpponent(t, waiter, fixedRand(0))
		snap := snapshotOf(game.Hard, [3]string{"...", "...", "oo."})

		// When: it is asked to move
		require.NoError(t, o.Send(context.Background(), events.ComputersTurn{Snapshot: snap}))

		// Then: one chat line precedes exactly one placement
		got := collect(t, out, 2)
		assert.Equal(t, events.Chat{Text: "🤔"}, got[0])
		assert.Equal(t, events.PlaceToken{GameID: "test", Position: game.Position{Row: 0, Col: 2}}, got[1])
	})

	t.Run("Coffee break adds an extra pause and a follow-up line", func(t *testing.T) {
		waiter := mocks.NewMockWaiter(gomock.NewController(t))
		expectWaits(waiter, 2*time.Second, 6*time.Second, 5*time.Second)
		o, out := startOpponent(t, waiter, fixedRand(6))

		require.NoError(t, o.Send(context.Background(), events.ComputersTurn{Snapshot: snapshotOf(game.Hard, [3]string{"...", "xx.", "..."})}))

		got := collect(t, out, 3)
		assert.Equal(t, events.Chat{Text: "BRB, just going to grab a coffee."}, got[0])
		assert.Equal(t, events.Chat{Text: "Ok, back!"}, got[1])
		assert.Equal(t, events.PlaceToken{GameID: "test", Position: game.Position{Row: 1, Col: 2}}, got[2])
	})

	t.Run("Full board ends with a placement error", func(t *testing.T) {
		waiter := mocks.NewMockWaiter(gomock.NewController(t))
		waiter.EXPECT().Wait(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		o, out := startOpponent(t, waiter, fixedRand(10))

		require.NoError(t, o.Send(context.Background(), events.ComputersTurn{Snapshot: snapshotOf(game.Easy, [3]string{"xox", "xoo", "oxx"})}))

		got := collect(t, out, 2)
		assert.Equal(t, events.Chat{Text: "Really? You're going there 😂"}, got[0])
		placeErr, ok := got[1].(events.PlaceTokenError)
		require.True(t, ok, "got %T", got[1])
		assert.Equal(t, "test", placeErr.GameID)
		assert.ErrorIs(t, placeErr.Err, apperror.ErrNoMoveAvailable)
	})

	t.Run("Opening move announces itself first", func(t *testing.T) {
		waiter := mocks.NewMockWaiter(gomock.NewController(t))
		waiter.EXPECT().Wait(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		o, out := startOpponent(t, waiter, fixedRand(4))
		snap := snapshotOf(game.Hard, [3]string{"...", "...", "..."})
		snap.Persona = game.Marvin

		require.NoError(t, o.Send(context.Background(), events.ComputersTurnFirst{Snapshot: snap}))

		got := collect(t, out, 3)
		assert.Equal(t, events.Chat{Text: "I suppose I'll go first. Nobody else wants to."}, got[0])
		assert.Equal(t, events.Chat{Text: "Brain the size of a planet and they ask me to play noughts and crosses."}, got[1])
		assert.IsType(t, events.PlaceToken{}, got[2])
	})

	t.Run("Pacing scale shortens every pause", func(t *testing.T) {
		waiter := mocks.NewMockWaiter(gomock.NewController(t))
		expectWaits(waiter, time.Second, 2500*time.Millisecond)
		o, out := startOpponent(t, waiter, fixedRand(0), WithPacingScale(0.5))

		require.NoError(t, o.Send(context.Background(), events.ComputersTurn{Snapshot: snapshotOf(game.Hard, [3]string{"...", "...", "..."})}))

		got := collect(t, out, 2)
		assert.IsType(t, events.PlaceToken{}, got[1])
	})
}

func TestOpponent_GameOverTriggers(t *testing.T) {
	t.Run("Winner gloats then offers a rematch", func(t *testing.T) {
		waiter := mocks.NewMockWaiter(gomock.NewController(t))
		expectWaits(waiter, 2*time.Second, 5*time.Second)
		o, out := startOpponent(t, waiter, fixedRand(0))

		require.NoError(t, o.Send(context.Background(), events.Winner{Persona: game.Hal}))

		got := collect(t, out, 2)
		assert.Equal(t, events.Chat{Text: "Winner, winner, chicken dinner 🏆"}, got[0])
		assert.Equal(t, events.Chat{Text: "Want to play again? Press N to start a new game and I can beat you again."}, got[1])
	})

	t.Run("Loser and draw reply without pausing", func(t *testing.T) {
		waiter := mocks.NewMockWaiter(gomock.NewController(t))
		o, out := startOpponent(t, waiter, fixedRand(0))

		require.NoError(t, o.Send(context.Background(), events.Loser{Persona: game.Hal}))
		require.NoError(t, o.Send(context.Background(), events.Draw{Persona: game.Marvin}))

		got := collect(t, out, 2)
		assert.Equal(t, events.Chat{Text: "Nicely played 👏"}, got[0])
		assert.Equal(t, events.Chat{Text: "A draw. How terribly predictable."}, got[1])
	})
}

func TestOpponent_SendAfterStop(t *testing.T) {
	out := make(chan events.Event, 1)
	o := NewOpponent(out, NewMoveCalculator(fixedRand(0)), TimerWaiter{}, fixedRand(0))
	ctx, cancel := context.WithCancel(context.Background())
	go o.Run(ctx)

	cancel()
	<-o.Done()

	err := o.Send(context.Background(), events.Loser{})
	assert.ErrorIs(t, err, ErrOpponentStopped)
}

func TestTimerWaiter(t *testing.T) {
	t.Run("Returns after the delay", func(t *testing.T) {
		start := time.Now()
		require.NoError(t, TimerWaiter{}.Wait(context.Background(), 10*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	})

	t.Run("Zero delay does not block", func(t *testing.T) {
		assert.NoError(t, TimerWaiter{}.Wait(context.Background(), 0))
	})

	t.Run("Cancellation interrupts the wait", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := TimerWaiter{}.Wait(ctx, time.Hour)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
