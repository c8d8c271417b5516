package http

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/jobtrack/jobtrack/internal/tracker/domain"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.Email, validation.Required, is.Email, validation.Length(3, 160)),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 128)),
	)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// updateMeRequest carries partial profile updates. Absent fields stay nil
// and leave the stored value untouched.
type updateMeRequest struct {
	Name           *string `json:"name"`
	AvatarURL      *string `json:"avatarUrl"`
	Language       *string `json:"language"`
	Theme          *string `json:"theme"`
	SidebarVisible *bool   `json:"sidebarVisible"`
}

func (r *updateMeRequest) normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.Language != nil {
		lowered := strings.ToLower(strings.TrimSpace(*r.Language))
		r.Language = &lowered
	}
	if r.Theme != nil {
		lowered := strings.ToLower(strings.TrimSpace(*r.Theme))
		r.Theme = &lowered
	}
}

func (r updateMeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 120)),
		validation.Field(&r.Language, validation.In("pt", "en")),
		validation.Field(&r.Theme, validation.In("light", "dark")),
	)
}

type upsertApplicationRequest struct {
	Company      string  `json:"company"`
	Role         string  `json:"role"`
	Status       string  `json:"status"`
	Priority     string  `json:"priority"`
	AppliedDate  *string `json:"appliedDate"`
	FollowUpDate *string `json:"followUpDate"`
	Notes        string  `json:"notes"`
	JobURL       string  `json:"jobUrl"`
	Salary       string  `json:"salary"`
}

func (r upsertApplicationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Company, validation.Required, validation.Length(1, 160)),
		validation.Field(&r.Role, validation.Required, validation.Length(1, 160)),
		validation.Field(&r.Status, validation.Required, validation.By(validStatus)),
		validation.Field(&r.Priority, validation.In(
			string(domain.PriorityLow),
			string(domain.PriorityMedium),
			string(domain.PriorityHigh),
		)),
		validation.Field(&r.AppliedDate, validation.By(validDate)),
		validation.Field(&r.FollowUpDate, validation.By(validDate)),
	)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (r updateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required, validation.By(validStatus)),
	)
}

func validStatus(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !domain.Status(s).Valid() {
		return validation.NewError("validation_status", "must be one of APPLIED, INTERVIEW, OFFER, REJECTED")
	}
	return nil
}

func validDate(value interface{}) error {
	var s string
	switch v := value.(type) {
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	case string:
		s = v
	default:
		return nil
	}
	if s == "" {
		return nil
	}
	if _, err := parseDate(&s); err != nil {
		return validation.NewError("validation_date", "must be a date in YYYY-MM-DD format")
	}
	return nil
}
