package http

import (
	"fmt"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jobtrack/jobtrack/internal/tracker/domain"
	"github.com/jobtrack/jobtrack/pkg/httpx"
)

const dateLayout = "2006-01-02"

// errorResponse is the uniform error body. Fields is only populated for
// request validation failures, keyed by the offending JSON field.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, code int, msg string) {
	httpx.WriteJSON(w, code, errorResponse{Error: msg})
}

// writeValidationError renders an ozzo validation result as a 400 with a
// per-field error map.
func writeValidationError(w http.ResponseWriter, err error) {
	fields := map[string]string{}
	if verrs, ok := err.(validation.Errors); ok {
		for field, ferr := range verrs {
			fields[field] = ferr.Error()
		}
	}
	httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{
		Error:  "Validation failed",
		Fields: fields,
	})
}

func errBadQueryParam(name string) error {
	return fmt.Errorf("invalid value for query parameter %q", name)
}

func errBadField(name string) error {
	return fmt.Errorf("invalid value for field %q", name)
}

// userResponse is the public profile shape. The password hash is never
// part of any outward serialization.
type userResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	AvatarURL      *string `json:"avatarUrl"`
	Language       string  `json:"language"`
	Theme          string  `json:"theme"`
	SidebarVisible bool    `json:"sidebarVisible"`
}

func newUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		AvatarURL:      u.AvatarURL,
		Language:       u.Language,
		Theme:          u.Theme,
		SidebarVisible: u.SidebarVisible,
	}
}

type authResponse struct {
	User userResponse `json:"user"`
}

type applicationResponse struct {
	ID           int64      `json:"id"`
	Company      string     `json:"company"`
	Role         string     `json:"role"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	AppliedDate  *string    `json:"appliedDate"`
	FollowUpDate *string    `json:"followUpDate"`
	Notes        string     `json:"notes"`
	JobURL       string     `json:"jobUrl"`
	Salary       string     `json:"salary"`
	UpdatedAt    *time.Time `json:"updatedAt"`
}

func newApplicationResponse(a domain.Application) applicationResponse {
	return applicationResponse{
		ID:           a.ID,
		Company:      a.Company,
		Role:         a.Role,
		Status:       string(a.Status),
		Priority:     string(a.Priority),
		AppliedDate:  formatDate(a.AppliedDate),
		FollowUpDate: formatDate(a.FollowUpDate),
		Notes:        a.Notes,
		JobURL:       a.JobURL,
		Salary:       a.Salary,
		UpdatedAt:    a.UpdatedAt,
	}
}

type historyEntryResponse struct {
	ID         int64     `json:"id"`
	FromStatus *string   `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	ChangedAt  time.Time `json:"changedAt"`
}

func newHistoryEntryResponse(e domain.StatusHistoryEntry) historyEntryResponse {
	var from *string
	if e.FromStatus != nil {
		s := string(*e.FromStatus)
		from = &s
	}
	return historyEntryResponse{
		ID:         e.ID,
		FromStatus: from,
		ToStatus:   string(e.ToStatus),
		ChangedAt:  e.ChangedAt,
	}
}

// pageResponse mirrors the page envelope the web frontend consumes.
type pageResponse[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
	NumberOfElements int   `json:"numberOfElements"`
}

func newPageResponse[T any](content []T, total int64, page, size int) pageResponse[T] {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return pageResponse[T]{
		Content:          content,
		TotalElements:    total,
		TotalPages:       totalPages,
		Number:           page,
		Size:             size,
		First:            page == 0,
		Last:             page >= totalPages-1,
		Empty:            len(content) == 0,
		NumberOfElements: len(content),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
