package logging

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGHandlerOnlyAcceptsErrors(t *testing.T) {
	h := &PGHandler{}

	ctx := context.Background()
	assert.False(t, h.Enabled(ctx, slog.LevelDebug))
	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.False(t, h.Enabled(ctx, slog.LevelWarn))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}

func TestPGHandlerBuffersRecordFields(t *testing.T) {
	h := &PGHandler{}

	record := slog.NewRecord(time.Now(), slog.LevelError, "falha ao gravar projeto", 0)
	record.AddAttrs(
		slog.String("user_id", "abc-123"),
		slog.String("error", "connection refused"),
		slog.String("project_id", "p-1"),
	)

	require.NoError(t, h.Handle(context.Background(), record))
	require.Len(t, h.buffer, 1)

	entry := h.buffer[0]
	assert.Equal(t, "falha ao gravar projeto", entry.Message)
	assert.Equal(t, "ERROR", entry.Level)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "abc-123", *entry.UserID)
	assert.Equal(t, "connection refused", entry.Error)
	assert.JSONEq(t, `{"project_id":"p-1"}`, string(entry.Extra))
}
