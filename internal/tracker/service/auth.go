package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jobtrack/jobtrack/internal/tracker/domain"
	"github.com/jobtrack/jobtrack/internal/tracker/store"
	"github.com/jobtrack/jobtrack/pkg/cryptox"
	"github.com/jobtrack/jobtrack/pkg/slogx"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a password
	// mismatch. Callers get no distinction between the two causes, which
	// prevents account enumeration through the login endpoint.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken reports a registration against an email already in
	// use, compared case-insensitively.
	ErrEmailTaken = errors.New("email already in use")

	// ErrUserNotFound reports a subject that no longer resolves to a user.
	ErrUserNotFound = errors.New("user not found")
)

// AuthService owns credential verification and account lifecycle.
type AuthService struct {
	Store store.Store
}

// Register creates a new user with the profile defaults applied. The
// email is normalized to lowercase before both the uniqueness check and
// the insert.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	normalized := domain.NormalizeEmail(email)

	taken, err := s.Store.Users().ExistsByEmail(ctx, normalized)
	if err != nil {
		log.Error("failed to check email availability", slog.Any("error", err))
		return domain.User{}, err
	}
	if taken {
		return domain.User{}, ErrEmailTaken
	}

	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	user, err := s.Store.Users().CreateUser(ctx, domain.User{
		Name:           strings.TrimSpace(name),
		Email:          normalized,
		PasswordHash:   passwordHash,
		Language:       domain.DefaultLanguage,
		Theme:          domain.DefaultTheme,
		SidebarVisible: true,
	})
	if err != nil {
		// A concurrent registration can slip past the ExistsByEmail check;
		// the unique index settles the race.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))
	return user, nil
}

// Login verifies credentials and returns the matching user.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.User{}, ErrInvalidCredentials
		}
		// Anything else means the stored hash is corrupt, which is an
		// internal failure rather than a credential problem.
		log.Error("failed to verify password", slog.Int64("user_id", user.ID), slog.Any("error", err))
		return domain.User{}, err
	}

	return user, nil
}

// ResolveSubject maps a verified token subject back to its user. A
// subject that no longer resolves yields ErrUserNotFound.
func (s *AuthService) ResolveSubject(ctx context.Context, subject string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, domain.NormalizeEmail(subject))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// UpdateProfileParams carries the optional profile mutations of a
// PATCH /auth/me request; nil fields are left untouched.
type UpdateProfileParams struct {
	Name           *string
	AvatarURL      *string
	Language       *string
	Theme          *string
	SidebarVisible *bool
}

// UpdateProfile applies the non-nil fields to the user's profile. Field
// values are validated at the request boundary; a blank avatar URL clears
// the stored one.
func (s *AuthService) UpdateProfile(ctx context.Context, user domain.User, p UpdateProfileParams) (domain.User, error) {
	if p.Name != nil {
		user.Name = strings.TrimSpace(*p.Name)
	}
	if p.AvatarURL != nil {
		avatar := strings.TrimSpace(*p.AvatarURL)
		if avatar == "" {
			user.AvatarURL = nil
		} else {
			user.AvatarURL = &avatar
		}
	}
	if p.Language != nil {
		user.Language = strings.ToLower(strings.TrimSpace(*p.Language))
	}
	if p.Theme != nil {
		user.Theme = strings.ToLower(strings.TrimSpace(*p.Theme))
	}
	if p.SidebarVisible != nil {
		user.SidebarVisible = *p.SidebarVisible
	}

	updated, err := s.Store.Users().UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return updated, nil
}
