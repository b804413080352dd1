package employee

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/ops-dashboard/internal/directory"
	"github.com/frahmantamala/ops-dashboard/internal/scope"
	"github.com/frahmantamala/ops-dashboard/internal/transport"
)

type ServiceAPI interface {
	Options() directory.Options
	List(ctx context.Context, member scope.ScopeIdentifier, q directory.Query) (directory.Page[*Employee], error)
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

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	member, err := h.Scopes.Resolve(ctx, scope.EntityMember, chi.URLParam(r, "memberId"))
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	q := directory.ParseQuery(r.URL.Query(), h.Service.Options())
	page, err := h.Service.List(ctx, member, q)
	if err != nil {
		h.Logger.ErrorContext(ctx, "ListEmployees: service error", "member_id", member.ID, "error", err)
		h.HandleServiceError(w, r, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, NewEmployeesResponse(page))
}
