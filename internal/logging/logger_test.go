package logging

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureHandler struct {
	level    slog.Level
	messages []string
}

func (c *captureHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.level
}

func (c *captureHandler) Handle(_ context.Context, record slog.Record) error {
	c.messages = append(c.messages, record.Message)
	return nil
}

func (c *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return c }
func (c *captureHandler) WithGroup(string) slog.Handler      { return c }

func TestTeeHandlerRoutesByLevel(t *testing.T) {
	console := &captureHandler{level: slog.LevelInfo}
	store := &captureHandler{level: slog.LevelError}
	tee := &teeHandler{console: console, store: store}

	ctx := context.Background()
	info := slog.NewRecord(time.Now(), slog.LevelInfo, "listagem concluída", 0)
	require.NoError(t, tee.Handle(ctx, info))

	failure := slog.NewRecord(time.Now(), slog.LevelError, "falha ao gravar projeto", 0)
	require.NoError(t, tee.Handle(ctx, failure))

	assert.Equal(t, []string{"listagem concluída", "falha ao gravar projeto"}, console.messages)
	assert.Equal(t, []string{"falha ao gravar projeto"}, store.messages)
}

func TestTeeHandlerEnabledWhenEitherSideIs(t *testing.T) {
	tee := &teeHandler{
		console: &captureHandler{level: slog.LevelInfo},
		store:   &captureHandler{level: slog.LevelError},
	}

	ctx := context.Background()
	assert.True(t, tee.Enabled(ctx, slog.LevelInfo))
	assert.True(t, tee.Enabled(ctx, slog.LevelError))
	assert.False(t, tee.Enabled(ctx, slog.LevelDebug))
}
