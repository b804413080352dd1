package activity_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/ops-dashboard/internal"
	"github.com/frahmantamala/ops-dashboard/internal/activity"
	"github.com/frahmantamala/ops-dashboard/internal/scope"
	"github.com/frahmantamala/ops-dashboard/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type stubScopeResolver struct{}

func (stubScopeResolver) Resolve(_ context.Context, entity scope.Entity, raw string) (scope.ScopeIdentifier, error) {
	switch raw {
	case "":
		return scope.ScopeIdentifier{}, internal.ErrMissingScope
	case memberID, "17":
		return scope.ScopeIdentifier{Entity: entity, ID: memberID}, nil
	default:
		return scope.ScopeIdentifier{}, internal.ErrUnresolvedScope
	}
}

var _ = Describe("Activity Handler", func() {
	var (
		repo    *mockActivityRepository
		handler *activity.Handler
	)

	BeforeEach(func() {
		repo = &mockActivityRepository{}
		for i, kind := range []string{"login", "page_view", "page_view", "task_created", "logout"} {
			repo.rows = append(repo.rows, row(string(rune('a'+i)), "1", kind))
		}
		dates := newTestDates()
		service := activity.NewService(repo, dates, newTestLogger())
		handler = activity.NewHandler(&transport.BaseHandler{Logger: newTestLogger()}, service, stubScopeResolver{}, dates, 3)
	})

	serve := func(memberParam string, values url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/members/"+memberParam+"/activities?"+values.Encode(), nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("memberId", memberParam)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		w := httptest.NewRecorder()
		handler.GetActivities(w, req)
		return w
	}

	It("should default the range to today in the organisation timezone", func() {
		w := serve("17", url.Values{})
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp activity.ActivitiesResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.DateRange.StartDate).To(Equal("2026-10-20"))
		Expect(resp.DateRange.EndDate).To(Equal("2026-10-20"))
		Expect(resp.Activities).To(HaveLen(5))
		Expect(resp.Stats.Totals).To(HaveKeyWithValue(activity.TypePageView, 2))
		Expect(resp.Pagination).To(BeNil())
	})

	It("should window the list when limit is supplied", func() {
		w := serve(memberID, url.Values{"date": {"2026-10-01"}, "page": {"2"}, "limit": {"2"}})
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp activity.ActivitiesResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Activities).To(HaveLen(2))
		Expect(resp.Activities[0].ID).To(Equal("c"))
		Expect(resp.Pagination).NotTo(BeNil())
		Expect(resp.Pagination.Total).To(Equal(5))
		Expect(resp.Pagination.HasMore).To(BeTrue())
		Expect(resp.Stats.Total).To(Equal(5))
	})

	It("should return an empty page past the end", func() {
		w := serve(memberID, url.Values{"page": {"9"}, "limit": {"2"}})
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp activity.ActivitiesResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Activities).To(BeEmpty())
		Expect(resp.Pagination.HasMore).To(BeFalse())
	})

	It("should return an empty window for a page far beyond the list", func() {
		w := serve(memberID, url.Values{"page": {"4611686018427387904"}, "limit": {"100"}})
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp activity.ActivitiesResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Activities).To(BeEmpty())
		Expect(resp.Pagination.HasMore).To(BeFalse())
		Expect(resp.Pagination.Limit).To(Equal(3))
		Expect(resp.Stats.Total).To(Equal(5))
	})

	It("should cap the window at the configured max limit", func() {
		w := serve(memberID, url.Values{"limit": {"50"}})
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp activity.ActivitiesResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Activities).To(HaveLen(3))
		Expect(resp.Pagination.Limit).To(Equal(3))
		Expect(resp.Pagination.HasMore).To(BeTrue())
	})

	It("should answer 400 for a missing member", func() {
		w := serve("", url.Values{})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring(string(internal.ErrCodeMissingScope)))
	})

	It("should answer 404 for an unresolved member", func() {
		w := serve("not-an-id", url.Values{})
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(ContainSubstring(string(internal.ErrCodeUnresolvedScope)))
	})

	It("should answer 400 for malformed dates", func() {
		w := serve(memberID, url.Values{"date": {"01-10-2026"}})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring(string(internal.ErrCodeInvalidDate)))
	})

	It("should hide storage details behind a 502", func() {
		repo.err = &url.Error{Op: "dial", URL: "postgres://secret-host:5432", Err: context.DeadlineExceeded}
		w := serve(memberID, url.Values{})
		Expect(w.Code).To(Equal(http.StatusBadGateway))
		Expect(w.Body.String()).NotTo(ContainSubstring("secret-host"))
	})
})
