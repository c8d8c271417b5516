package domain

import (
	"strings"
	"time"
)

// Defaults applied when a user is created without explicit preferences.
const (
	DefaultLanguage = "pt"
	DefaultTheme    = "light"
)

type User struct {
	ID             int64
	Name           string
	Email          string // unique, always stored lowercase
	PasswordHash   string // argon2id encoded, never serialized outward
	AvatarURL      *string
	Language       string
	Theme          string
	SidebarVisible bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NormalizeEmail lowercases and trims an email address. Emails are
// normalized before every lookup or comparison; the normalized form is
// also the subject encoded into session tokens.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
