package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/jobtrack/jobtrack/internal/tracker/domain"
	"github.com/jobtrack/jobtrack/internal/tracker/service"
	"github.com/jobtrack/jobtrack/pkg/httpx"
	"github.com/jobtrack/jobtrack/pkg/slogx"
)

// HandleGet godoc
//
//	@Summary		Fetch an application
//	@Description	Returns one application owned by the authenticated user. Another user's application yields 404, not 403.
//	@Tags			Applications
//	@Produce		json
//	@Param			id	path		int	true	"Application ID"
//	@Success		200	{object}	applicationResponse
//	@Failure		401	{object}	errorResponse	"error"
//	@Failure		404	{object}	errorResponse	"error"
//	@Failure		500	{object}	errorResponse	"error"
//	@Router			/applications/{id} [get].
func (h *ApplicationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := userFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Application not found")
		return
	}

	app, err := h.ApplicationService.Get(ctx, user, id)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			writeError(w, http.StatusNotFound, "Application not found")
			return
		}
		log.Error("failed to fetch application", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newApplicationResponse(app))
}

// HandleUpdate godoc
//
//	@Summary		Replace an application
//	@Description	Full update of an owned application. A status change through this endpoint also appends a ledger entry.
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Application ID"
//	@Param			body	body		upsertApplicationRequest	true	"Application details"
//	@Success		200		{object}	applicationResponse
//	@Failure		400		{object}	errorResponse	"error, fields"
//	@Failure		401		{object}	errorResponse	"error"
//	@Failure		404		{object}	errorResponse	"error"
//	@Failure		500		{object}	errorResponse	"error"
//	@Router			/applications/{id} [put].
func (h *ApplicationsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := userFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Application not found")
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

	app, err := h.ApplicationService.Update(ctx, user, id, params)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			writeError(w, http.StatusNotFound, "Application not found")
			return
		}
		log.Error("failed to update application", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newApplicationResponse(app))
}

// HandleUpdateStatus godoc
//
//	@Summary		Move an application to a new status
//	@Description	Updates only the status and appends a transition to the history ledger in the same transaction. Setting the current status again is a no-op.
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Application ID"
//	@Param			body	body		updateStatusRequest	true	"Target status"
//	@Success		200		{object}	applicationResponse
//	@Failure		400		{object}	errorResponse	"error, fields"
//	@Failure		401		{object}	errorResponse	"error"
//	@Failure		404		{object}	errorResponse	"error"
//	@Failure		500		{object}	errorResponse	"error"
//	@Router			/applications/{id}/status [patch].
func (h *ApplicationsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := userFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Application not found")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	app, err := h.ApplicationService.UpdateStatus(ctx, user, id, domain.Status(req.Status))
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			writeError(w, http.StatusNotFound, "Application not found")
			return
		}
		log.Error("failed to update application status", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newApplicationResponse(app))
}

// HandleHistory godoc
//
//	@Summary		Status transition history
//	@Description	Returns the application's transition ledger, newest first. The oldest entry is the creation record with a null fromStatus.
//	@Tags			Applications
//	@Produce		json
//	@Param			id	path		int	true	"Application ID"
//	@Success		200	{array}		historyEntryResponse
//	@Failure		401	{object}	errorResponse	"error"
//	@Failure		404	{object}	errorResponse	"error"
//	@Failure		500	{object}	errorResponse	"error"
//	@Router			/applications/{id}/history [get].
func (h *ApplicationsHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := userFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Application not found")
		return
	}

	entries, err := h.ApplicationService.History(ctx, user, id)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			writeError(w, http.StatusNotFound, "Application not found")
			return
		}
		log.Error("failed to list status history", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]historyEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, newHistoryEntryResponse(e))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleDelete godoc
//
//	@Summary		Delete an application
//	@Description	Deletes an owned application along with its history ledger.
//	@Tags			Applications
//	@Produce		json
//	@Param			id	path	int	true	"Application ID"
//	@Success		204	"deleted"
//	@Failure		401	{object}	errorResponse	"error"
//	@Failure		404	{object}	errorResponse	"error"
//	@Failure		500	{object}	errorResponse	"error"
//	@Router			/applications/{id} [delete].
func (h *ApplicationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := userFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Application not found")
		return
	}

	if err := h.ApplicationService.Delete(ctx, user, id); err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			writeError(w, http.StatusNotFound, "Application not found")
			return
		}
		log.Error("failed to delete application", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
