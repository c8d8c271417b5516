package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jobtrack/jobtrack/internal/tracker/domain"
	"github.com/jobtrack/jobtrack/internal/tracker/store"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, svc *AuthService, email string) domain.User {
	t.Helper()

	user, err := svc.Register(context.Background(), "Test User", email, "some-pass")
	require.NoError(t, err)
	return user
}

func TestCreateApplication(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	svc := &ApplicationService{Store: st}

	user := seedUser(t, auth, "owner@example.com")

	t.Run("creation records the initial ledger entry", func(t *testing.T) {
		app, err := svc.Create(ctx, user, UpsertParams{
			Company: "Acme",
			Role:    "Backend Engineer",
			Status:  domain.StatusApplied,
		})
		require.NoError(t, err)
		require.NotZero(t, app.ID)
		require.Equal(t, domain.StatusApplied, app.Status)
		require.Equal(t, domain.PriorityMedium, app.Priority)

		history, err := svc.History(ctx, user, app.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		require.Nil(t, history[0].FromStatus)
		require.Equal(t, domain.StatusApplied, history[0].ToStatus)
	})

	t.Run("explicit priority is kept", func(t *testing.T) {
		app, err := svc.Create(ctx, user, UpsertParams{
			Company:  "Globex",
			Role:     "SRE",
			Status:   domain.StatusApplied,
			Priority: domain.PriorityHigh,
		})
		require.NoError(t, err)
		require.Equal(t, domain.PriorityHigh, app.Priority)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	svc := &ApplicationService{Store: st}

	user := seedUser(t, auth, "owner@example.com")

	app, err := svc.Create(ctx, user, UpsertParams{
		Company: "Acme",
		Role:    "Backend Engineer",
		Status:  domain.StatusApplied,
	})
	require.NoError(t, err)

	t.Run("transition appends a ledger entry", func(t *testing.T) {
		updated, err := svc.UpdateStatus(ctx, user, app.ID, domain.StatusInterview)
		require.NoError(t, err)
		require.Equal(t, domain.StatusInterview, updated.Status)

		history, err := svc.History(ctx, user, app.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		require.NotNil(t, history[0].FromStatus)
		require.Equal(t, domain.StatusApplied, *history[0].FromStatus)
		require.Equal(t, domain.StatusInterview, history[0].ToStatus)
	})

	t.Run("setting the current status is a no-op", func(t *testing.T) {
		updated, err := svc.UpdateStatus(ctx, user, app.ID, domain.StatusInterview)
		require.NoError(t, err)
		require.Equal(t, domain.StatusInterview, updated.Status)

		history, err := svc.History(ctx, user, app.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)
	})

	t.Run("history is ordered newest first", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, user, app.ID, domain.StatusOffer)
		require.NoError(t, err)
		_, err = svc.UpdateStatus(ctx, user, app.ID, domain.StatusRejected)
		require.NoError(t, err)

		history, err := svc.History(ctx, user, app.ID)
		require.NoError(t, err)
		require.Len(t, history, 4)

		require.Equal(t, domain.StatusRejected, history[0].ToStatus)
		require.Equal(t, domain.StatusOffer, history[1].ToStatus)
		require.Equal(t, domain.StatusInterview, history[2].ToStatus)
		require.Equal(t, domain.StatusApplied, history[3].ToStatus)

		for i := 1; i < len(history); i++ {
			require.False(t, history[i-1].ChangedAt.Before(history[i].ChangedAt))
		}
	})

	t.Run("unknown application yields not found", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, user, 9999, domain.StatusOffer)
		require.ErrorIs(t, err, ErrApplicationNotFound)
	})
}

func TestFullUpdateRecordsStatusChange(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	svc := &ApplicationService{Store: st}

	user := seedUser(t, auth, "owner@example.com")

	app, err := svc.Create(ctx, user, UpsertParams{
		Company: "Acme",
		Role:    "Backend Engineer",
		Status:  domain.StatusApplied,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, user, app.ID, UpsertParams{
		Company: "Acme Corp",
		Role:    "Backend Engineer",
		Status:  domain.StatusInterview,
		Notes:   "phone screen scheduled",
	})
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", updated.Company)
	require.Equal(t, domain.StatusInterview, updated.Status)

	history, err := svc.History(ctx, user, app.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, domain.StatusInterview, history[0].ToStatus)
}

var errLedgerUnavailable = errors.New("ledger unavailable")

// brokenLedgerStore hands transactions out with a StatusHistory repo that
// refuses every append, so tests can observe whether the entity mutation
// sharing the transaction is rolled back with it.
type brokenLedgerStore struct {
	store.Store
}

func (s *brokenLedgerStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		return fn(&brokenLedgerTx{storeTx: tx})
	})
}

// storeTx aliases store.Tx so it can be embedded without the field name
// colliding with the interface's Tx method.
type storeTx = store.Tx

type brokenLedgerTx struct {
	storeTx
}

func (t *brokenLedgerTx) StatusHistory() store.StatusHistory { return brokenLedger{} }

type brokenLedger struct{}

func (brokenLedger) AppendEntry(ctx context.Context, e domain.StatusHistoryEntry) (domain.StatusHistoryEntry, error) {
	return domain.StatusHistoryEntry{}, errLedgerUnavailable
}

func (brokenLedger) ListByApplication(ctx context.Context, applicationID, userID int64) ([]domain.StatusHistoryEntry, error) {
	return nil, errLedgerUnavailable
}

func TestStatusMutationRollsBackWithFailedAppend(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	svc := &ApplicationService{Store: st}

	user := seedUser(t, auth, "owner@example.com")

	app, err := svc.Create(ctx, user, UpsertParams{
		Company: "Acme",
		Role:    "Backend Engineer",
		Status:  domain.StatusApplied,
	})
	require.NoError(t, err)

	broken := &ApplicationService{Store: &brokenLedgerStore{Store: st}}

	t.Run("status patch rolls back", func(t *testing.T) {
		_, err := broken.UpdateStatus(ctx, user, app.ID, domain.StatusInterview)
		require.ErrorIs(t, err, errLedgerUnavailable)

		current, err := svc.Get(ctx, user, app.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusApplied, current.Status)

		history, err := svc.History(ctx, user, app.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
	})

	t.Run("full update rolls back", func(t *testing.T) {
		_, err := broken.Update(ctx, user, app.ID, UpsertParams{
			Company: "Acme Corp",
			Role:    "Backend Engineer",
			Status:  domain.StatusOffer,
		})
		require.ErrorIs(t, err, errLedgerUnavailable)

		current, err := svc.Get(ctx, user, app.ID)
		require.NoError(t, err)
		require.Equal(t, "Acme", current.Company)
		require.Equal(t, domain.StatusApplied, current.Status)
	})

	t.Run("create rolls back rather than insert an unledgered row", func(t *testing.T) {
		_, err := broken.Create(ctx, user, UpsertParams{
			Company: "Globex",
			Role:    "SRE",
			Status:  domain.StatusApplied,
		})
		require.ErrorIs(t, err, errLedgerUnavailable)

		_, total, err := svc.List(ctx, user, ListQuery{Size: 10})
		require.NoError(t, err)
		require.EqualValues(t, 1, total)
	})
}

func TestOwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	svc := &ApplicationService{Store: st}

	owner := seedUser(t, auth, "owner@example.com")
	other := seedUser(t, auth, "other@example.com")

	app, err := svc.Create(ctx, owner, UpsertParams{
		Company: "Acme",
		Role:    "Backend Engineer",
		Status:  domain.StatusApplied,
	})
	require.NoError(t, err)

	t.Run("get is scoped to the owner", func(t *testing.T) {
		_, err := svc.Get(ctx, other, app.ID)
		require.ErrorIs(t, err, ErrApplicationNotFound)
	})

	t.Run("status update is scoped to the owner", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, other, app.ID, domain.StatusOffer)
		require.ErrorIs(t, err, ErrApplicationNotFound)
	})

	t.Run("history is scoped to the owner", func(t *testing.T) {
		_, err := svc.History(ctx, other, app.ID)
		require.ErrorIs(t, err, ErrApplicationNotFound)
	})

	t.Run("delete is scoped to the owner", func(t *testing.T) {
		err := svc.Delete(ctx, other, app.ID)
		require.ErrorIs(t, err, ErrApplicationNotFound)

		// Still present for the owner.
		_, err = svc.Get(ctx, owner, app.ID)
		require.NoError(t, err)
	})

	t.Run("listing only returns own applications", func(t *testing.T) {
		apps, total, err := svc.List(ctx, other, ListQuery{Size: 10})
		require.NoError(t, err)
		require.Zero(t, total)
		require.Empty(t, apps)
	})
}

func TestListApplications(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	svc := &ApplicationService{Store: st}

	user := seedUser(t, auth, "owner@example.com")

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	tomorrow := time.Now().UTC().AddDate(0, 0, 1)

	mk := func(company string, status domain.Status, followUp *time.Time) domain.Application {
		app, err := svc.Create(ctx, user, UpsertParams{
			Company:      company,
			Role:         "Engineer",
			Status:       status,
			FollowUpDate: followUp,
		})
		require.NoError(t, err)
		return app
	}

	mk("Alpha", domain.StatusApplied, &yesterday)
	mk("Beta", domain.StatusInterview, &tomorrow)
	mk("Gamma", domain.StatusApplied, nil)

	t.Run("status filter", func(t *testing.T) {
		status := domain.StatusApplied
		apps, total, err := svc.List(ctx, user, ListQuery{Status: &status, Size: 10})
		require.NoError(t, err)
		require.EqualValues(t, 2, total)
		require.Len(t, apps, 2)
	})

	t.Run("overdue follow-up filter", func(t *testing.T) {
		apps, total, err := svc.List(ctx, user, ListQuery{FollowUpOverdue: true, Size: 10})
		require.NoError(t, err)
		require.EqualValues(t, 1, total)
		require.Equal(t, "Alpha", apps[0].Company)
	})

	t.Run("due follow-up filter includes overdue", func(t *testing.T) {
		_, total, err := svc.List(ctx, user, ListQuery{FollowUpDue: true, Size: 10})
		require.NoError(t, err)
		require.EqualValues(t, 1, total)
	})

	t.Run("sorting by company ascending", func(t *testing.T) {
		apps, _, err := svc.List(ctx, user, ListQuery{Size: 10, SortField: "company"})
		require.NoError(t, err)
		require.Equal(t, "Alpha", apps[0].Company)
		require.Equal(t, "Beta", apps[1].Company)
		require.Equal(t, "Gamma", apps[2].Company)
	})

	t.Run("paging", func(t *testing.T) {
		apps, total, err := svc.List(ctx, user, ListQuery{Size: 2, SortField: "company"})
		require.NoError(t, err)
		require.EqualValues(t, 3, total)
		require.Len(t, apps, 2)

		apps, _, err = svc.List(ctx, user, ListQuery{Page: 1, Size: 2, SortField: "company"})
		require.NoError(t, err)
		require.Len(t, apps, 1)
		require.Equal(t, "Gamma", apps[0].Company)
	})

	t.Run("deleting removes the ledger too", func(t *testing.T) {
		app := mk("Delta", domain.StatusApplied, nil)
		require.NoError(t, svc.Delete(ctx, user, app.ID))

		_, err := svc.History(ctx, user, app.ID)
		require.ErrorIs(t, err, ErrApplicationNotFound)
	})
}
