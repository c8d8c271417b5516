package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/jobtrack/jobtrack/internal/tracker/domain"
	"github.com/jobtrack/jobtrack/internal/tracker/store"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, name, email, password_hash, avatar_url, language, theme, sidebar_visible, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, email, password_hash, avatar_url, language, theme, sidebar_visible, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Name,
		u.Email,
		u.PasswordHash,
		mapOptionalString(u.AvatarURL),
		u.Language,
		u.Theme,
		u.SidebarVisible,
		now,
		now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, store.ErrAlreadyExists
		}
		return domain.User{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}

	u.ID = id
	u.CreatedAt = now
	u.UpdatedAt = now
	return u, nil
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) (domain.User, error) {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = ?, avatar_url = ?, language = ?, theme = ?, sidebar_visible = ?, updated_at = ?
		 WHERE id = ?`,
		u.Name,
		mapOptionalString(u.AvatarURL),
		u.Language,
		u.Theme,
		u.SidebarVisible,
		now,
		u.ID,
	)
	if err != nil {
		return domain.User{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.User{}, err
	}
	if affected == 0 {
		return domain.User{}, store.ErrNotFound
	}

	u.UpdatedAt = now
	return u, nil
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u         domain.User
		avatarURL sql.NullString
	)

	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&avatarURL,
		&u.Language,
		&u.Theme,
		&u.SidebarVisible,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.AvatarURL = mapNullStringPtr(avatarURL)
	return u, nil
}
