package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/jobtrack/jobtrack/internal/tracker/domain"
	"github.com/jobtrack/jobtrack/internal/tracker/service"
	"github.com/jobtrack/jobtrack/pkg/httpx"
	"github.com/jobtrack/jobtrack/pkg/slogx"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ApplicationsHandler serves the /applications collection.
type ApplicationsHandler struct {
	ApplicationService *service.ApplicationService
}

// HandleList godoc
//
//	@Summary		List applications
//	@Description	Returns one page of the authenticated user's applications. Supports status, followUpDue and followUpOverdue filters plus "field,dir" sorting.
//	@Tags			Applications
//	@Produce		json
//	@Param			page			query		int		false	"Zero-based page index"			default(0)
//	@Param			size			query		int		false	"Page size, capped at 100"		default(10)
//	@Param			sort			query		string	false	"Sort as field,asc|desc"		default(id,desc)
//	@Param			status			query		string	false	"Filter by status"				Enums(APPLIED, INTERVIEW, OFFER, REJECTED)
//	@Param			followUpDue		query		bool	false	"Follow-up on or before today"
//	@Param			followUpOverdue	query		bool	false	"Follow-up strictly before today"
//	@Success		200				{object}	pageResponse[applicationResponse]
//	@Failure		400				{object}	errorResponse	"error"
//	@Failure		401				{object}	errorResponse	"error"
//	@Failure		500				{object}	errorResponse	"error"
//	@Router			/applications [get].
func (h *ApplicationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := userFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	query, err := parseListQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	apps, total, err := h.ApplicationService.List(ctx, user, query)
	if err != nil {
		log.Error("failed to list applications", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	content := make([]applicationResponse, 0, len(apps))
	for _, a := range apps {
		content = append(content, newApplicationResponse(a))
	}

	httpx.WriteJSON(w, http.StatusOK, newPageResponse(content, total, query.Page, query.Size))
}

// HandleCreate godoc
//
//	@Summary		Create an application
//	@Description	Creates an application owned by the authenticated user and records the initial status transition.
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			body	body		upsertApplicationRequest	true	"Application details"
//	@Success		201		{object}	applicationResponse
//	@Failure		400		{object}	errorResponse	"error, fields"
//	@Failure		401		{object}	errorResponse	"error"
//	@Failure		500		{object}	errorResponse	"error"
//	@Router			/applications [post].
func (h *ApplicationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := userFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req upsertApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	params, err := upsertParamsFromRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	app, err := h.ApplicationService.Create(ctx, user, params)
	if err != nil {
		log.Error("failed to create application", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, newApplicationResponse(app))
}

func parseListQuery(r *http.Request) (service.ListQuery, error) {
	q := r.URL.Query()

	query := service.ListQuery{
		Size:      defaultPageSize,
		SortField: "id",
		SortDesc:  true,
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return query, errBadQueryParam("page")
		}
		query.Page = page
	}
	if raw := q.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return query, errBadQueryParam("size")
		}
		if size > maxPageSize {
			size = maxPageSize
		}
		query.Size = size
	}
	if raw := q.Get("sort"); raw != "" {
		field, dir, _ := strings.Cut(raw, ",")
		query.SortField = strings.TrimSpace(field)
		switch strings.ToLower(strings.TrimSpace(dir)) {
		case "asc":
			query.SortDesc = false
		case "", "desc":
			query.SortDesc = true
		default:
			return query, errBadQueryParam("sort")
		}
	}
	if raw := q.Get("status"); raw != "" {
		status := domain.Status(raw)
		if !status.Valid() {
			return query, errBadQueryParam("status")
		}
		query.Status = &status
	}
	query.FollowUpDue = q.Get("followUpDue") == "true"
	query.FollowUpOverdue = q.Get("followUpOverdue") == "true"

	return query, nil
}

func upsertParamsFromRequest(req upsertApplicationRequest) (service.UpsertParams, error) {
	applied, err := parseDate(req.AppliedDate)
	if err != nil {
		return service.UpsertParams{}, errBadField("appliedDate")
	}
	followUp, err := parseDate(req.FollowUpDate)
	if err != nil {
		return service.UpsertParams{}, errBadField("followUpDate")
	}

	return service.UpsertParams{
		Company:      req.Company,
		Role:         req.Role,
		Status:       domain.Status(req.Status),
		Priority:     domain.Priority(req.Priority),
		AppliedDate:  applied,
		FollowUpDate: followUp,
		Notes:        req.Notes,
		JobURL:       req.JobURL,
		Salary:       req.Salary,
	}, nil
}
