package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/ops-dashboard/internal"
	employeeDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/employee"
	"github.com/frahmantamala/ops-dashboard/internal/directory"
	"github.com/frahmantamala/ops-dashboard/internal/employee"
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
	case memberID:
		return scope.ScopeIdentifier{Entity: entity, ID: memberID}, nil
	default:
		return scope.ScopeIdentifier{}, internal.ErrUnresolvedScope
	}
}

var _ = Describe("Employee Handler", func() {
	var (
		repo    *mockEmployeeRepository
		handler *employee.Handler
	)

	BeforeEach(func() {
		repo = &mockEmployeeRepository{
			rows:  []*employeeDatamodel.Employee{{ID: "e1", MemberID: memberID, Name: "Ana"}},
			total: 1,
		}
		service := employee.NewService(repo, employee.NewListOptions(20, 100), newTestLogger())
		handler = employee.NewHandler(&transport.BaseHandler{Logger: newTestLogger()}, service, stubScopeResolver{})
	})

	serve := func(memberParam, rawQuery string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/members/"+memberParam+"/employees?"+rawQuery, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("memberId", memberParam)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		w := httptest.NewRecorder()
		handler.ListEmployees(w, req)
		return w
	}

	It("should coerce malformed paging instead of failing", func() {
		w := serve(memberID, "page=0&limit=-5")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(repo.lastQuery.Page).To(Equal(1))
		Expect(repo.lastQuery.Limit).To(Equal(20))

		var resp employee.EmployeesResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Page).To(Equal(1))
		Expect(resp.Limit).To(Equal(20))
		Expect(resp.TotalCount).To(Equal(int64(1)))
		Expect(resp.Employees).To(HaveLen(1))
	})

	It("should pass search, department and sort through", func() {
		w := serve(memberID, "search=ana&department=Engineering&sortBy=hiredAt&sortOrder=desc")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(repo.lastQuery).To(Equal(directory.Query{
			Search:        "ana",
			Filter:        "Engineering",
			SortField:     "hiredAt",
			SortDirection: directory.SortDesc,
			Page:          1,
			Limit:         20,
		}))
	})

	It("should treat department All as no filter", func() {
		serve(memberID, "department=All")
		Expect(repo.lastQuery.Filter).To(BeEmpty())
	})

	It("should answer 404 for an unknown member", func() {
		w := serve("ACME-01", "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
