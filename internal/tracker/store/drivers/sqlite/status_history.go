package sqlite

import (
	"context"
	"database/sql"

	"github.com/jobtrack/jobtrack/internal/tracker/domain"
)

type statusHistoryRepo struct {
	db dbtx
}

func (r *statusHistoryRepo) AppendEntry(ctx context.Context, e domain.StatusHistoryEntry) (domain.StatusHistoryEntry, error) {
	var fromStatus sql.NullString
	if e.FromStatus != nil {
		fromStatus = sql.NullString{String: string(*e.FromStatus), Valid: true}
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO status_history (application_id, user_id, from_status, to_status, changed_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.ApplicationID,
		e.UserID,
		fromStatus,
		string(e.ToStatus),
		e.ChangedAt,
	)
	if err != nil {
		return domain.StatusHistoryEntry{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.StatusHistoryEntry{}, err
	}

	e.ID = id
	return e, nil
}

func (r *statusHistoryRepo) ListByApplication(ctx context.Context, applicationID, userID int64) ([]domain.StatusHistoryEntry, error) {
	// Newest first; ties on changed_at break by insertion order.
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, application_id, user_id, from_status, to_status, changed_at
		 FROM status_history
		 WHERE application_id = ? AND user_id = ?
		 ORDER BY changed_at DESC, id DESC`,
		applicationID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.StatusHistoryEntry
	for rows.Next() {
		var (
			e          domain.StatusHistoryEntry
			fromStatus sql.NullString
			toStatus   string
		)
		if err := rows.Scan(&e.ID, &e.ApplicationID, &e.UserID, &fromStatus, &toStatus, &e.ChangedAt); err != nil {
			return nil, err
		}
		if fromStatus.Valid {
			from := domain.Status(fromStatus.String)
			e.FromStatus = &from
		}
		e.ToStatus = domain.Status(toStatus)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
