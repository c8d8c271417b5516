package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jobtrack/jobtrack/internal/tracker/store"
	"github.com/jobtrack/jobtrack/internal/tracker/store/drivers/sqlite"
	"github.com/jobtrack/jobtrack/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "jobtrack-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AuthService{Store: st}

	t.Run("creates user with defaults", func(t *testing.T) {
		user, err := svc.Register(ctx, "Alice", "Alice@Example.COM", "secret-pass")
		require.NoError(t, err)

		require.NotZero(t, user.ID)
		require.Equal(t, "Alice", user.Name)
		require.Equal(t, "alice@example.com", user.Email)
		require.Equal(t, "pt", user.Language)
		require.Equal(t, "light", user.Theme)
		require.True(t, user.SidebarVisible)
		require.Nil(t, user.AvatarURL)
	})

	t.Run("rejects duplicate email case-insensitively", func(t *testing.T) {
		_, err := svc.Register(ctx, "Other", "ALICE@example.com", "another-pass")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("password hash never stored in plaintext", func(t *testing.T) {
		stored, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotEqual(t, "secret-pass", stored.PasswordHash)
		require.NotContains(t, stored.PasswordHash, "secret-pass")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AuthService{Store: st}

	registered, err := svc.Register(ctx, "Bob", "bob@example.com", "correct-horse")
	require.NoError(t, err)

	t.Run("succeeds with correct credentials", func(t *testing.T) {
		user, err := svc.Login(ctx, "bob@example.com", "correct-horse")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		user, err := svc.Login(ctx, "BOB@Example.com", "correct-horse")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password yields invalid credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, "bob@example.com", "wrong-pass")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email yields the same error", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "whatever")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestResolveSubject(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AuthService{Store: st}

	user, err := svc.Register(ctx, "Carol", "carol@example.com", "some-pass")
	require.NoError(t, err)

	t.Run("resolves an existing user", func(t *testing.T) {
		resolved, err := svc.ResolveSubject(ctx, "carol@example.com")
		require.NoError(t, err)
		require.Equal(t, user.ID, resolved.ID)
	})

	t.Run("subject casing does not matter", func(t *testing.T) {
		resolved, err := svc.ResolveSubject(ctx, "CAROL@example.com")
		require.NoError(t, err)
		require.Equal(t, user.ID, resolved.ID)
	})

	t.Run("unknown subject yields user not found", func(t *testing.T) {
		_, err := svc.ResolveSubject(ctx, "ghost@example.com")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AuthService{Store: st}

	user, err := svc.Register(ctx, "Dave", "dave@example.com", "some-pass")
	require.NoError(t, err)

	t.Run("partial update leaves other fields untouched", func(t *testing.T) {
		theme := "dark"
		updated, err := svc.UpdateProfile(ctx, user, UpdateProfileParams{Theme: &theme})
		require.NoError(t, err)

		require.Equal(t, "dark", updated.Theme)
		require.Equal(t, "Dave", updated.Name)
		require.Equal(t, "pt", updated.Language)
		require.True(t, updated.SidebarVisible)
	})

	t.Run("avatar can be set and cleared", func(t *testing.T) {
		avatar := "https://cdn.example/avatar.png"
		updated, err := svc.UpdateProfile(ctx, user, UpdateProfileParams{AvatarURL: &avatar})
		require.NoError(t, err)
		require.NotNil(t, updated.AvatarURL)
		require.Equal(t, avatar, *updated.AvatarURL)

		blank := ""
		updated, err = svc.UpdateProfile(ctx, updated, UpdateProfileParams{AvatarURL: &blank})
		require.NoError(t, err)
		require.Nil(t, updated.AvatarURL)
	})

	t.Run("sidebar visibility can be toggled off", func(t *testing.T) {
		hidden := false
		updated, err := svc.UpdateProfile(ctx, user, UpdateProfileParams{SidebarVisible: &hidden})
		require.NoError(t, err)
		require.False(t, updated.SidebarVisible)
	})
}
