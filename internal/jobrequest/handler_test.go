package jobrequest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/ops-dashboard/internal"
	jobrequestDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/jobrequest"
	"github.com/frahmantamala/ops-dashboard/internal/jobrequest"
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
	case companyID, "4521":
		return scope.ScopeIdentifier{Entity: entity, ID: companyID}, nil
	default:
		return scope.ScopeIdentifier{}, internal.ErrUnresolvedScope
	}
}

var _ = Describe("JobRequest Handler", func() {
	var (
		repo    *mockJobRequestRepository
		latest  *mockLatestRepository
		handler *jobrequest.Handler
	)

	BeforeEach(func() {
		repo = &mockJobRequestRepository{
			rows: []*jobrequestDatamodel.JobRequest{{ID: "1", CompanyID: companyID, JobTitle: "QA", Status: "open"}},
		}
		latest = &mockLatestRepository{}
		service := jobrequest.NewService(repo, latest, &recordingPublisher{}, 10, newTestLogger())
		handler = jobrequest.NewHandler(&transport.BaseHandler{Logger: newTestLogger()}, service, stubScopeResolver{})
	})

	withCompany := func(req *http.Request, company string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("companyId", company)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	It("should list requests resolved through a legacy company id", func() {
		req := withCompany(httptest.NewRequest(http.MethodGet, "/api/v1/companies/4521/job-requests", nil), "4521")
		w := httptest.NewRecorder()
		handler.ListJobRequests(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp jobrequest.JobRequestsResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Requests).To(HaveLen(1))
	})

	It("should create a request and answer 201", func() {
		body := `{"jobTitle":"Data Analyst","workArrangement":"hybrid","salaryMin":"8000000","salaryMax":12000000}`
		req := withCompany(httptest.NewRequest(http.MethodPost, "/api/v1/companies/x/job-requests", strings.NewReader(body)), companyID)
		w := httptest.NewRecorder()
		handler.CreateJobRequest(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp jobrequest.JobResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Job.JobTitle).To(Equal("Data Analyst"))
		Expect(resp.Job.SalaryMin.String()).To(Equal("8000000"))
		Expect(repo.created).To(HaveLen(1))
	})

	It("should answer 400 for a malformed body", func() {
		req := withCompany(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{")), companyID)
		w := httptest.NewRecorder()
		handler.CreateJobRequest(w, req)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should answer 400 with field details for invalid input", func() {
		req := withCompany(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"jobTitle":""}`)), companyID)
		w := httptest.NewRecorder()
		handler.CreateJobRequest(w, req)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring(`"field":"jobTitle"`))
	})

	It("should answer 404 for an unresolved company", func() {
		req := withCompany(httptest.NewRequest(http.MethodGet, "/", nil), "ACME-01")
		w := httptest.NewRecorder()
		handler.ListJobRequests(w, req)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should fall back to the display cap for malformed limits", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/job-requests/recent-titles?limit=abc", nil)
		w := httptest.NewRecorder()
		handler.RecentTitles(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(latest.lastLimit).To(Equal(10))
		var resp jobrequest.RecentTitlesResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Total).To(Equal(0))
		Expect(resp.Jobs).NotTo(BeNil())
	})
})
