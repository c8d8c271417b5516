package store

import (
	"context"
	"errors"
	"time"

	"github.com/jobtrack/jobtrack/internal/tracker/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Users() Users
	Applications() Applications
	StatusHistory() StatusHistory

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to keep multi-statement writes atomic, e.g. a status
	// mutation together with its ledger append.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It exposes the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail looks a user up by normalized email. Callers must
	// normalize first; the store does not lowercase on its own.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ExistsByEmail reports whether the normalized email is taken.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// CreateUser inserts a new user and returns it with the assigned id
	// and timestamps. Returns ErrAlreadyExists on an email collision.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	// UpdateUser persists the mutable profile fields and bumps updated_at.
	UpdateUser(ctx context.Context, u domain.User) (domain.User, error)
}

// ApplicationFilter narrows an owner-scoped application listing.
type ApplicationFilter struct {
	Status          *domain.Status
	FollowUpDue     bool      // follow_up_date <= Today
	FollowUpOverdue bool      // follow_up_date < Today
	Today           time.Time // reference date for the follow-up filters
}

// ListPage is a page request. SortField is an API-level field name; the
// driver maps it onto a column whitelist and falls back to id when the
// field is unknown.
type ListPage struct {
	Offset    int
	Limit     int
	SortField string
	SortDesc  bool
}

type Applications interface {
	// ListByUser returns one page of the user's applications plus the
	// total count matching the filter.
	ListByUser(ctx context.Context, userID int64, f ApplicationFilter, page ListPage) ([]domain.Application, int64, error)

	// GetByIDAndUser fetches an application scoped by owner. An
	// application belonging to another user is ErrNotFound.
	GetByIDAndUser(ctx context.Context, id, userID int64) (domain.Application, error)

	// ExistsByIDAndUser reports owner-scoped existence.
	ExistsByIDAndUser(ctx context.Context, id, userID int64) (bool, error)

	// CreateApplication inserts a new application and returns it with the
	// assigned id.
	CreateApplication(ctx context.Context, a domain.Application) (domain.Application, error)

	// UpdateApplication persists all mutable fields, scoped by owner, and
	// bumps updated_at. Returns ErrNotFound when no owned row matches.
	UpdateApplication(ctx context.Context, a domain.Application) (domain.Application, error)

	// DeleteApplication removes an owned application; history rows cascade
	// per schema. Returns ErrNotFound when no owned row matches.
	DeleteApplication(ctx context.Context, id, userID int64) error
}

type StatusHistory interface {
	// AppendEntry durably appends one ledger entry. Entries are never
	// updated or deleted through this interface.
	AppendEntry(ctx context.Context, e domain.StatusHistoryEntry) (domain.StatusHistoryEntry, error)

	// ListByApplication returns the entries for an owned application in
	// reverse-chronological order, ties broken newest-inserted first.
	ListByApplication(ctx context.Context, applicationID, userID int64) ([]domain.StatusHistoryEntry, error)
}
