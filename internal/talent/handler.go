package talent

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/ops-dashboard/internal"
	"github.com/frahmantamala/ops-dashboard/internal/directory"
	"github.com/frahmantamala/ops-dashboard/internal/session"
	"github.com/frahmantamala/ops-dashboard/internal/transport"
)

type ServiceAPI interface {
	Options() directory.Options
	List(ctx context.Context, q directory.Query) (directory.Page[*Talent], error)
	Analyze(ctx context.Context, claims *session.Claims, talentID string) (*Analysis, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) ListTalents(w http.ResponseWriter, r *http.Request) {
	q := directory.ParseQuery(r.URL.Query(), h.Service.Options())
	page, err := h.Service.List(r.Context(), q)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, NewTalentsResponse(page))
}

func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	talentID := strings.TrimSpace(chi.URLParam(r, "id"))
	if talentID == "" {
		h.HandleServiceError(w, r, internal.ErrTalentNotFound)
		return
	}

	claims, _ := session.ClaimsFromContext(r.Context())
	analysis, err := h.Service.Analyze(r.Context(), claims, talentID)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, AnalysisResponse{Analysis: analysis})
}
