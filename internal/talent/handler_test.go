package talent_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/ops-dashboard/internal/session"
	"github.com/frahmantamala/ops-dashboard/internal/talent"
	"github.com/frahmantamala/ops-dashboard/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Talent Handler", func() {
	var (
		repo    *mockTalentRepository
		handler *talent.Handler
	)

	BeforeEach(func() {
		repo = newMockTalentRepository()
		service := talent.NewService(repo, &mockAnalyzer{}, talent.NewListOptions(20, 100), newTestLogger())
		handler = talent.NewHandler(&transport.BaseHandler{Logger: newTestLogger()}, service)
	})

	analysisRequest := func(id string, claims *session.Claims) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/talent-pool/"+id+"/analysis", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
		if claims != nil {
			ctx = session.ContextWithClaims(ctx, claims)
		}
		w := httptest.NewRecorder()
		handler.GetAnalysis(w, req.WithContext(ctx))
		return w
	}

	It("should list talents with the talents envelope", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/talent-pool?category=All&sortBy=unknown&limit=500", nil)
		w := httptest.NewRecorder()
		handler.ListTalents(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(repo.lastQuery.Filter).To(BeEmpty())
		Expect(repo.lastQuery.SortField).To(Equal("rating"))
		Expect(repo.lastQuery.Limit).To(Equal(100))

		var resp talent.TalentsResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Total).To(Equal(int64(1)))
		Expect(resp.Talents).To(HaveLen(1))
	})

	It("should answer 401 without a session", func() {
		w := analysisRequest(talentID, nil)
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("should answer 404 for an unknown talent", func() {
		w := analysisRequest("0f0e0d0c-0b0a-4909-8807-060504030201", &session.Claims{UserID: "user-1", IsAuthenticated: true})
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should return the analysis for an authorised session", func() {
		w := analysisRequest(talentID, &session.Claims{UserID: "user-1", IsAuthenticated: true})
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp talent.AnalysisResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Analysis.TalentID).To(Equal(talentID))
	})
})
