package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gestaopublica/painel-projetos/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const flushBatchSize = 50

// PGHandler is an slog.Handler that batches ERROR+ records into the
// system_logs table and prunes rows older than the retention window once a
// day.
type PGHandler struct {
	db        *gorm.DB
	retention time.Duration

	mu     sync.Mutex
	buffer []models.SystemLog

	flushTicker *time.Ticker
	pruneTicker *time.Ticker
	done        chan struct{}
}

func NewPGHandler(db *gorm.DB, retentionDays int) *PGHandler {
	h := &PGHandler{
		db:          db,
		retention:   time.Duration(retentionDays) * 24 * time.Hour,
		buffer:      make([]models.SystemLog, 0, flushBatchSize),
		flushTicker: time.NewTicker(5 * time.Second),
		pruneTicker: time.NewTicker(24 * time.Hour),
		done:        make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *PGHandler) run() {
	for {
		select {
		case <-h.flushTicker.C:
			h.flush()
		case <-h.pruneTicker.C:
			h.prune()
		case <-h.done:
			h.flush()
			return
		}
	}
}

func (h *PGHandler) flush() {
	h.mu.Lock()
	if len(h.buffer) == 0 {
		h.mu.Unlock()
		return
	}
	batch := h.buffer
	h.buffer = make([]models.SystemLog, 0, flushBatchSize)
	h.mu.Unlock()

	if err := h.db.CreateInBatches(batch, flushBatchSize).Error; err != nil {
		slog.Error("failed to flush system logs to DB", "error", err, "count", len(batch))
	}
}

func (h *PGHandler) prune() {
	cutoff := time.Now().Add(-h.retention)
	result := h.db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log retention prune failed", "error", result.Error)
	} else if result.RowsAffected > 0 {
		slog.Info("log retention prune completed", "deleted", result.RowsAffected)
	}
}

// Stop flushes the remaining buffer and ends the background loop.
func (h *PGHandler) Stop() {
	h.flushTicker.Stop()
	h.pruneTicker.Stop()
	close(h.done)
}

// Enabled only handles ERROR and above.
func (h *PGHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *PGHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	record.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "trace_id":
			entry.TraceID = a.Value.String()
		case "user_id":
			s := a.Value.String()
			entry.UserID = &s
		case "action":
			entry.Action = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		case "latency_ms":
			if f, ok := a.Value.Any().(float64); ok {
				entry.LatencyMs = int(math.Round(f))
			}
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	})

	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}

	h.mu.Lock()
	h.buffer = append(h.buffer, entry)
	needFlush := len(h.buffer) >= flushBatchSize
	h.mu.Unlock()

	if needFlush {
		go h.flush()
	}
	return nil
}

func (h *PGHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *PGHandler) WithGroup(name string) slog.Handler {
	return h
}
