package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/jobtrack/jobtrack/internal/tracker/domain"
	"github.com/jobtrack/jobtrack/internal/tracker/store"
	"github.com/jobtrack/jobtrack/pkg/slogx"
)

// Recorder appends entries to the append-only status transition ledger.
// It is stateless; callers pass the store they are operating on, which is
// how an append joins the same transaction as the entity mutation it
// records.
type Recorder struct{}

// RecordCreation appends the entry for a freshly created application:
// fromStatus is null, toStatus is the application's initial status.
func (Recorder) RecordCreation(
	ctx context.Context,
	st store.Store,
	actor domain.User,
	app domain.Application,
) (domain.StatusHistoryEntry, error) {
	return appendEntry(ctx, st, domain.StatusHistoryEntry{
		ApplicationID: app.ID,
		UserID:        actor.ID,
		FromStatus:    nil,
		ToStatus:      app.Status,
		ChangedAt:     time.Now().UTC(),
	})
}

// RecordTransition appends one entry for an observed status change. When
// from equals to there is nothing to record and the ledger is left
// untouched; the recorder never writes a degenerate no-change entry.
func (Recorder) RecordTransition(
	ctx context.Context,
	st store.Store,
	actor domain.User,
	app domain.Application,
	from, to domain.Status,
) (*domain.StatusHistoryEntry, error) {
	if from == to {
		return nil, nil
	}

	entry, err := appendEntry(ctx, st, domain.StatusHistoryEntry{
		ApplicationID: app.ID,
		UserID:        actor.ID,
		FromStatus:    &from,
		ToStatus:      to,
		ChangedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func appendEntry(ctx context.Context, st store.Store, e domain.StatusHistoryEntry) (domain.StatusHistoryEntry, error) {
	entry, err := st.StatusHistory().AppendEntry(ctx, e)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to append status history entry",
			slog.Int64("application_id", e.ApplicationID),
			slog.Int64("user_id", e.UserID),
			slog.Any("error", err),
		)
		return domain.StatusHistoryEntry{}, err
	}
	return entry, nil
}
