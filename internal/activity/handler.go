package activity

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/ops-dashboard/internal/daterange"
	"github.com/frahmantamala/ops-dashboard/internal/directory"
	"github.com/frahmantamala/ops-dashboard/internal/scope"
	"github.com/frahmantamala/ops-dashboard/internal/transport"
)

type ServiceAPI interface {
	Aggregate(ctx context.Context, member scope.ScopeIdentifier, rng daterange.Range, userID string) (*Result, error)
}

type ScopeResolver interface {
	Resolve(ctx context.Context, entity scope.Entity, raw string) (scope.ScopeIdentifier, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Scopes  ScopeResolver
	Dates   *daterange.Resolver
	// MaxLimit caps the optional window, like directory.max_limit for the listings.
	MaxLimit int
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI, scopes ScopeResolver, dates *daterange.Resolver, maxLimit int) *Handler {
	if maxLimit <= 0 {
		maxLimit = directory.MaxLimit
	}
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
		Scopes:      scopes,
		Dates:       dates,
		MaxLimit:    maxLimit,
	}
}

// GetActivities serves GET /members/{memberId}/activities. The list is only windowed when
// limit is supplied.
func (h *Handler) GetActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	member, err := h.Scopes.Resolve(ctx, scope.EntityMember, chi.URLParam(r, "memberId"))
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	rng, err := h.Dates.Resolve(query.Get("date"), query.Get("startDate"), query.Get("endDate"))
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	result, err := h.Service.Aggregate(ctx, member, rng, query.Get("userId"))
	if err != nil {
		h.Logger.ErrorContext(ctx, "GetActivities: service error", "member_id", member.ID, "error", err)
		h.HandleServiceError(w, r, err)
		return
	}

	resp := ActivitiesResponse{
		Activities: result.Activities,
		Stats:      result.Stats,
		DateRange:  result.DateRange,
	}

	if query.Get("limit") != "" {
		page := directory.PositiveIntOr(query.Get("page"), directory.DefaultPage)
		limit := directory.PositiveIntOr(query.Get("limit"), directory.DefaultLimit)
		if limit > h.MaxLimit {
			limit = h.MaxLimit
		}
		page = directory.ClampPage(page, limit)
		resp.Activities, resp.Pagination = window(result.Activities, page, limit)
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func window(activities []*Activity, page, limit int) ([]*Activity, *Pagination) {
	total := len(activities)
	start := directory.Query{Page: page, Limit: limit}.Offset()
	if start < 0 || start > total {
		start = total
	}
	end := start + limit
	if end > total || end < start {
		end = total
	}
	return activities[start:end], &Pagination{
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasMore: end < total,
	}
}
