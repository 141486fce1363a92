package logging

import (
	"context"
	"log/slog"
	"os"

	"gorm.io/gorm"
)

// Setup initializes the global slog logger with JSON output to stdout. It
// runs before the database is available; AttachDatabase upgrades the
// default logger once a connection exists.
func Setup() {
	slog.SetDefault(slog.New(stdoutHandler()))
}

// AttachDatabase routes ERROR+ records into the system_logs table alongside
// stdout and starts the retention pruning loop. The returned handler must
// be stopped on shutdown to flush the last batch.
func AttachDatabase(db *gorm.DB, retentionDays int) *PGHandler {
	pg := NewPGHandler(db, retentionDays)
	slog.SetDefault(slog.New(&teeHandler{console: stdoutHandler(), store: pg}))
	return pg
}

func stdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}

// teeHandler sends every record to the console and, when the level
// qualifies, to the database store.
type teeHandler struct {
	console slog.Handler
	store   slog.Handler
}

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return t.console.Enabled(ctx, level) || t.store.Enabled(ctx, level)
}

func (t *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	if t.console.Enabled(ctx, record.Level) {
		firstErr = t.console.Handle(ctx, record)
	}
	if t.store.Enabled(ctx, record.Level) {
		if err := t.store.Handle(ctx, record); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &teeHandler{
		console: t.console.WithAttrs(attrs),
		store:   t.store.WithAttrs(attrs),
	}
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	return &teeHandler{
		console: t.console.WithGroup(name),
		store:   t.store.WithGroup(name),
	}
}
