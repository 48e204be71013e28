package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingHandler struct {
	slog.Handler
}

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestMultiHandler(t *testing.T) {
	t.Run("Records reach only handlers enabled for the level", func(t *testing.T) {
		var debugBuf, warnBuf bytes.Buffer
		h := NewMultiHandler(
			slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
			slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
		)
		log := slog.New(h)

		log.Info("placed", "row", 1)

		assert.Contains(t, debugBuf.String(), "msg=placed row=1")
		assert.Empty(t, warnBuf.String())
		assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
		assert.False(t, h.Enabled(context.Background(), slog.LevelDebug-4))
	})

	t.Run("Attributes and groups are applied to every handler", func(t *testing.T) {
		var a, b bytes.Buffer
		log := slog.New(NewMultiHandler(
			slog.NewTextHandler(&a, nil),
			slog.NewTextHandler(&b, nil),
		)).With("game.id", "g1").WithGroup("move")

		log.Info("placed", "row", 2)

		for _, buf := range []*bytes.Buffer{&a, &b} {
			assert.Contains(t, buf.String(), "game.id=g1")
			assert.Contains(t, buf.String(), "move.row=2")
		}
	})

	t.Run("A failing handler does not starve the rest", func(t *testing.T) {
		var buf bytes.Buffer
		h := NewMultiHandler(failingHandler{}, slog.NewTextHandler(&buf, nil))

		err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0))

		assert.EqualError(t, err, "sink down")
		assert.Contains(t, buf.String(), "msg=hello")
	})
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
