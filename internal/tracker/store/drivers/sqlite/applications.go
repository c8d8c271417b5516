package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jobtrack/jobtrack/internal/tracker/domain"
	"github.com/jobtrack/jobtrack/internal/tracker/store"
)

type applicationsRepo struct {
	db dbtx
}

const applicationColumns = `id, company, role, status, priority, applied_date, follow_up_date, notes, job_url, salary, updated_at, user_id`

// sortColumns whitelists the sortable API field names. Anything not in
// this map falls back to id so the sort parameter can never inject SQL.
var sortColumns = map[string]string{
	"id":           "id",
	"company":      "company",
	"role":         "role",
	"status":       "status",
	"priority":     "priority",
	"appliedDate":  "applied_date",
	"followUpDate": "follow_up_date",
	"updatedAt":    "updated_at",
}

func (r *applicationsRepo) ListByUser(
	ctx context.Context,
	userID int64,
	f store.ApplicationFilter,
	page store.ListPage,
) ([]domain.Application, int64, error) {
	var (
		where = []string{"user_id = ?"}
		args  = []any{userID}
	)

	if f.Status != nil {
		where = append(where, "status = ?")
		args = append(args, string(*f.Status))
	}

	// Overdue is the stricter filter and wins when both flags are set.
	switch {
	case f.FollowUpOverdue:
		where = append(where, "follow_up_date IS NOT NULL AND follow_up_date < ?")
		args = append(args, f.Today)
	case f.FollowUpDue:
		where = append(where, "follow_up_date IS NOT NULL AND follow_up_date <= ?")
		args = append(args, f.Today)
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM job_applications WHERE `+whereClause, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[page.SortField]
	if !ok {
		column = "id"
	}
	direction := "ASC"
	if page.SortDesc {
		direction = "DESC"
	}
	orderBy := column + " " + direction
	if column != "id" {
		orderBy += ", id DESC"
	}

	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE ` + whereClause +
		` ORDER BY ` + orderBy + ` LIMIT ? OFFSET ?`
	args = append(args, page.Limit, page.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	apps := make([]domain.Application, 0, page.Limit)
	for rows.Next() {
		app, err := scanApplicationRows(rows)
		if err != nil {
			return nil, 0, err
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *applicationsRepo) GetByIDAndUser(ctx context.Context, id, userID int64) (domain.Application, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM job_applications WHERE id = ? AND user_id = ?`,
		id, userID)
	return scanApplication(row)
}

func (r *applicationsRepo) ExistsByIDAndUser(ctx context.Context, id, userID int64) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM job_applications WHERE id = ? AND user_id = ?`,
		id, userID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *applicationsRepo) CreateApplication(ctx context.Context, a domain.Application) (domain.Application, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO job_applications (company, role, status, priority, applied_date, follow_up_date, notes, job_url, salary, user_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Company,
		a.Role,
		string(a.Status),
		string(a.Priority),
		mapOptionalTime(a.AppliedDate),
		mapOptionalTime(a.FollowUpDate),
		a.Notes,
		a.JobURL,
		a.Salary,
		a.UserID,
	)
	if err != nil {
		return domain.Application{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Application{}, err
	}

	a.ID = id
	return a, nil
}

func (r *applicationsRepo) UpdateApplication(ctx context.Context, a domain.Application) (domain.Application, error) {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`UPDATE job_applications
		 SET company = ?, role = ?, status = ?, priority = ?, applied_date = ?, follow_up_date = ?, notes = ?, job_url = ?, salary = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		a.Company,
		a.Role,
		string(a.Status),
		string(a.Priority),
		mapOptionalTime(a.AppliedDate),
		mapOptionalTime(a.FollowUpDate),
		a.Notes,
		a.JobURL,
		a.Salary,
		now,
		a.ID,
		a.UserID,
	)
	if err != nil {
		return domain.Application{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Application{}, err
	}
	if affected == 0 {
		return domain.Application{}, store.ErrNotFound
	}

	a.UpdatedAt = &now
	return a, nil
}

func (r *applicationsRepo) DeleteApplication(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM job_applications WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanApplication(row *sql.Row) (domain.Application, error) {
	var (
		a            domain.Application
		status       string
		priority     string
		appliedDate  sql.NullTime
		followUpDate sql.NullTime
		updatedAt    sql.NullTime
	)

	err := row.Scan(
		&a.ID, &a.Company, &a.Role, &status, &priority,
		&appliedDate, &followUpDate, &a.Notes, &a.JobURL, &a.Salary,
		&updatedAt, &a.UserID,
	)
	if err != nil {
		return domain.Application{}, mapNotFound(err)
	}

	a.Status = domain.Status(status)
	a.Priority = domain.Priority(priority)
	a.AppliedDate = mapNullTimePtr(appliedDate)
	a.FollowUpDate = mapNullTimePtr(followUpDate)
	a.UpdatedAt = mapNullTimePtr(updatedAt)
	return a, nil
}

func scanApplicationRows(rows *sql.Rows) (domain.Application, error) {
	var (
		a            domain.Application
		status       string
		priority     string
		appliedDate  sql.NullTime
		followUpDate sql.NullTime
		updatedAt    sql.NullTime
	)

	err := rows.Scan(
		&a.ID, &a.Company, &a.Role, &status, &priority,
		&appliedDate, &followUpDate, &a.Notes, &a.JobURL, &a.Salary,
		&updatedAt, &a.UserID,
	)
	if err != nil {
		return domain.Application{}, err
	}

	a.Status = domain.Status(status)
	a.Priority = domain.Priority(priority)
	a.AppliedDate = mapNullTimePtr(appliedDate)
	a.FollowUpDate = mapNullTimePtr(followUpDate)
	a.UpdatedAt = mapNullTimePtr(updatedAt)
	return a, nil
}
