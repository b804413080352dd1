package jobrequest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/ops-dashboard/internal"
	"github.com/frahmantamala/ops-dashboard/internal/directory"
	"github.com/frahmantamala/ops-dashboard/internal/scope"
	"github.com/frahmantamala/ops-dashboard/internal/transport"
)

type ServiceAPI interface {
	List(ctx context.Context, company scope.ScopeIdentifier) ([]*JobRequest, error)
	Create(ctx context.Context, company scope.ScopeIdentifier, dto CreateJobRequestDTO) (*JobRequest, error)
	RecentTitles(ctx context.Context, limit int) ([]*JobRequest, error)
}

type ScopeResolver interface {
	Resolve(ctx context.Context, entity scope.Entity, raw string) (scope.ScopeIdentifier, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Scopes  ScopeResolver
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI, scopes ScopeResolver) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
		Scopes:      scopes,
	}
}

func (h *Handler) ListJobRequests(w http.ResponseWriter, r *http.Request) {
	company, err := h.Scopes.Resolve(r.Context(), scope.EntityCompany, chi.URLParam(r, "companyId"))
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	requests, err := h.Service.List(r.Context(), company)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, JobRequestsResponse{Requests: requests})
}

func (h *Handler) CreateJobRequest(w http.ResponseWriter, r *http.Request) {
	company, err := h.Scopes.Resolve(r.Context(), scope.EntityCompany, chi.URLParam(r, "companyId"))
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	var dto CreateJobRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.WarnContext(r.Context(), "CreateJobRequest: invalid request body", "error", err)
		h.HandleServiceError(w, r, internal.NewValidationError("invalid request body", internal.ErrCodeValidationFailed))
		return
	}

	job, err := h.Service.Create(r.Context(), company, dto)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, JobResponse{Job: job})
}

// RecentTitles treats a missing or malformed limit as the configured display cap.
func (h *Handler) RecentTitles(w http.ResponseWriter, r *http.Request) {
	limit := directory.PositiveIntOr(r.URL.Query().Get("limit"), 0)

	jobs, err := h.Service.RecentTitles(r.Context(), limit)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, RecentTitlesResponse{Jobs: jobs, Total: len(jobs)})
}
