package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jobtrack/jobtrack/internal/tracker/domain"
	"github.com/jobtrack/jobtrack/internal/tracker/store"
	"github.com/jobtrack/jobtrack/pkg/slogx"
)

// ErrApplicationNotFound covers both a genuinely missing application and
// one owned by another user. The two cases are deliberately
// indistinguishable so ownership is never leaked.
var ErrApplicationNotFound = errors.New("application not found")

// ApplicationService owns the job-application CRUD and every status
// mutation. Status changes and their ledger appends run in one store
// transaction, so a recorded transition is never observable without its
// entity mutation or vice versa.
type ApplicationService struct {
	Store    store.Store
	Recorder Recorder
}

// ListQuery narrows and pages an owner-scoped listing.
type ListQuery struct {
	Status          *domain.Status
	FollowUpDue     bool
	FollowUpOverdue bool
	Page            int
	Size            int
	SortField       string
	SortDesc        bool
}

// List returns one page of the user's applications and the total count.
func (s *ApplicationService) List(ctx context.Context, user domain.User, q ListQuery) ([]domain.Application, int64, error) {
	filter := store.ApplicationFilter{
		Status:          q.Status,
		FollowUpDue:     q.FollowUpDue,
		FollowUpOverdue: q.FollowUpOverdue,
		Today:           today(),
	}
	page := store.ListPage{
		Offset:    q.Page * q.Size,
		Limit:     q.Size,
		SortField: q.SortField,
		SortDesc:  q.SortDesc,
	}

	return s.Store.Applications().ListByUser(ctx, user.ID, filter, page)
}

// UpsertParams carries the full set of mutable application fields used by
// both create and full update.
type UpsertParams struct {
	Company      string
	Role         string
	Status       domain.Status
	Priority     domain.Priority // empty means MEDIUM
	AppliedDate  *time.Time
	FollowUpDate *time.Time
	Notes        string
	JobURL       string
	Salary       string
}

// Create inserts a new owned application and records the initial ledger
// entry (null -> status) in the same transaction.
func (s *ApplicationService) Create(ctx context.Context, user domain.User, p UpsertParams) (domain.Application, error) {
	log := slogx.FromContext(ctx)

	app := applicationFromParams(p)
	app.UserID = user.ID

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		created, err := tx.Applications().CreateApplication(ctx, app)
		if err != nil {
			return err
		}
		app = created

		_, err = s.Recorder.RecordCreation(ctx, tx, user, created)
		return err
	})
	if err != nil {
		log.Error("failed to create application", slog.Any("error", err))
		return domain.Application{}, err
	}

	log.Info("application created",
		slog.Int64("application_id", app.ID),
		slog.String("status", string(app.Status)),
	)
	return app, nil
}

// Get fetches one owned application.
func (s *ApplicationService) Get(ctx context.Context, user domain.User, id int64) (domain.Application, error) {
	app, err := s.Store.Applications().GetByIDAndUser(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Application{}, ErrApplicationNotFound
		}
		return domain.Application{}, err
	}
	return app, nil
}

// Update replaces all mutable fields of an owned application. A ledger
// entry is appended only when the update changed the status field.
func (s *ApplicationService) Update(ctx context.Context, user domain.User, id int64, p UpsertParams) (domain.Application, error) {
	log := slogx.FromContext(ctx)

	var updated domain.Application
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Applications().GetByIDAndUser(ctx, id, user.ID)
		if err != nil {
			return err
		}

		previousStatus := current.Status

		next := applicationFromParams(p)
		next.ID = current.ID
		next.UserID = current.UserID

		updated, err = tx.Applications().UpdateApplication(ctx, next)
		if err != nil {
			return err
		}

		_, err = s.Recorder.RecordTransition(ctx, tx, user, updated, previousStatus, updated.Status)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Application{}, ErrApplicationNotFound
		}
		log.Error("failed to update application", slog.Int64("application_id", id), slog.Any("error", err))
		return domain.Application{}, err
	}

	return updated, nil
}

// UpdateStatus mutates only the status field. Setting the current status
// again is a no-op: the entity is returned unchanged and nothing is
// appended to the ledger.
func (s *ApplicationService) UpdateStatus(ctx context.Context, user domain.User, id int64, status domain.Status) (domain.Application, error) {
	log := slogx.FromContext(ctx)

	var result domain.Application
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Applications().GetByIDAndUser(ctx, id, user.ID)
		if err != nil {
			return err
		}

		if current.Status == status {
			result = current
			return nil
		}

		previousStatus := current.Status
		current.Status = status

		result, err = tx.Applications().UpdateApplication(ctx, current)
		if err != nil {
			return err
		}

		_, err = s.Recorder.RecordTransition(ctx, tx, user, result, previousStatus, status)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Application{}, ErrApplicationNotFound
		}
		log.Error("failed to update application status", slog.Int64("application_id", id), slog.Any("error", err))
		return domain.Application{}, err
	}

	return result, nil
}

// History returns the owned application's ledger entries newest first.
func (s *ApplicationService) History(ctx context.Context, user domain.User, id int64) ([]domain.StatusHistoryEntry, error) {
	exists, err := s.Store.Applications().ExistsByIDAndUser(ctx, id, user.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrApplicationNotFound
	}

	return s.Store.StatusHistory().ListByApplication(ctx, id, user.ID)
}

// Delete removes an owned application; its history cascades with it.
func (s *ApplicationService) Delete(ctx context.Context, user domain.User, id int64) error {
	err := s.Store.Applications().DeleteApplication(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrApplicationNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("application deleted", slog.Int64("application_id", id))
	return nil
}

func applicationFromParams(p UpsertParams) domain.Application {
	priority := p.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	return domain.Application{
		Company:      strings.TrimSpace(p.Company),
		Role:         strings.TrimSpace(p.Role),
		Status:       p.Status,
		Priority:     priority,
		AppliedDate:  p.AppliedDate,
		FollowUpDate: p.FollowUpDate,
		Notes:        p.Notes,
		JobURL:       p.JobURL,
		Salary:       p.Salary,
	}
}

// today returns the current UTC date at midnight, the reference point for
// the follow-up date filters.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
