package jobrequest_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/ops-dashboard/internal"
	jobrequestDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/jobrequest"
	"github.com/frahmantamala/ops-dashboard/internal/core/events"
	"github.com/frahmantamala/ops-dashboard/internal/jobrequest"
	"github.com/frahmantamala/ops-dashboard/internal/scope"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const companyID = "0b6f2f3a-7c1e-4d55-9a0e-6b1d2f7c9e11"

type mockJobRequestRepository struct {
	rows      []*jobrequestDatamodel.JobRequest
	created   []*jobrequestDatamodel.JobRequest
	listErr   error
	createErr error
}

func (m *mockJobRequestRepository) ListByCompany(_ context.Context, companyID string) ([]*jobrequestDatamodel.JobRequest, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*jobrequestDatamodel.JobRequest
	for _, r := range m.rows {
		if r.CompanyID == companyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockJobRequestRepository) Create(_ context.Context, job *jobrequestDatamodel.JobRequest) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, job)
	return nil
}

type mockLatestRepository struct {
	rows      []*jobrequestDatamodel.JobRequest
	err       error
	lastLimit int
}

func (m *mockLatestRepository) LatestPerTitle(_ context.Context, limit int) ([]*jobrequestDatamodel.JobRequest, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

type recordingPublisher struct {
	published []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.published = append(p.published, event)
	return nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func money(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

var _ = Describe("JobRequest Service", func() {
	var (
		repo      *mockJobRequestRepository
		latest    *mockLatestRepository
		publisher *recordingPublisher
		service   *jobrequest.Service
		company   scope.ScopeIdentifier
		ctx       context.Context
	)

	BeforeEach(func() {
		repo = &mockJobRequestRepository{}
		latest = &mockLatestRepository{}
		publisher = &recordingPublisher{}
		service = jobrequest.NewService(repo, latest, publisher, 10, newTestLogger())
		company = scope.ScopeIdentifier{Entity: scope.EntityCompany, ID: companyID}
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("should store a valid request with defaults and publish an event", func() {
			job, err := service.Create(ctx, company, jobrequest.CreateJobRequestDTO{
				JobTitle:        "  Backend Engineer ",
				WorkArrangement: "Remote",
				SalaryMin:       money("15000000"),
				SalaryMax:       money("25000000.50"),
				Currency:        "idr",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(job.ID).NotTo(BeEmpty())
			Expect(job.JobTitle).To(Equal("Backend Engineer"))
			Expect(job.WorkArrangement).To(Equal(jobrequest.WorkArrangementRemote))
			Expect(job.Status).To(Equal(jobrequest.StatusOpen))
			Expect(job.Currency).To(Equal("IDR"))
			Expect(job.CompanyID).To(Equal(companyID))

			Expect(repo.created).To(HaveLen(1))
			Expect(repo.created[0].SalaryMax.Valid).To(BeTrue())
			Expect(repo.created[0].SalaryMax.Decimal.Equal(decimal.RequireFromString("25000000.5"))).To(BeTrue())

			Expect(publisher.published).To(HaveLen(1))
			event, ok := publisher.published[0].(*events.JobRequestCreatedEvent)
			Expect(ok).To(BeTrue())
			Expect(event.EventType()).To(Equal(events.EventTypeJobRequestCreated))
			Expect(event.JobRequestID).To(Equal(job.ID))
		})

		DescribeTable("validation failures",
			func(dto jobrequest.CreateJobRequestDTO, field string) {
				_, err := service.Create(ctx, company, dto)
				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(400))
				details, ok := appErr.Details.(internal.ValidationErrors)
				Expect(ok).To(BeTrue())
				fields := make([]string, len(details.Errors))
				for i, e := range details.Errors {
					fields[i] = e.Field
				}
				Expect(fields).To(ContainElement(field))
				Expect(repo.created).To(BeEmpty())
				Expect(publisher.published).To(BeEmpty())
			},
			Entry("missing title", jobrequest.CreateJobRequestDTO{JobTitle: "   "}, "jobTitle"),
			Entry("title too long", jobrequest.CreateJobRequestDTO{JobTitle: strings.Repeat("x", 201)}, "jobTitle"),
			Entry("unknown arrangement", jobrequest.CreateJobRequestDTO{JobTitle: "QA", WorkArrangement: "moon"}, "workArrangement"),
			Entry("unknown status", jobrequest.CreateJobRequestDTO{JobTitle: "QA", Status: "archived"}, "status"),
			Entry("negative salary", jobrequest.CreateJobRequestDTO{JobTitle: "QA", SalaryMin: money("-1")}, "salaryMin"),
			Entry("inverted salary range", jobrequest.CreateJobRequestDTO{JobTitle: "QA", SalaryMin: money("10"), SalaryMax: money("5")}, "salaryMax"),
		)

		It("should accept a title of exactly the maximum length", func() {
			_, err := service.Create(ctx, company, jobrequest.CreateJobRequestDTO{JobTitle: strings.Repeat("x", 200)})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should report storage failures as upstream errors without publishing", func() {
			repo.createErr = errors.New("duplicate key")
			_, err := service.Create(ctx, company, jobrequest.CreateJobRequestDTO{JobTitle: "QA"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeUpstreamFailure))
			Expect(publisher.published).To(BeEmpty())
		})
	})

	Describe("List", func() {
		It("should return only the company's requests", func() {
			repo.rows = []*jobrequestDatamodel.JobRequest{
				{ID: "1", CompanyID: companyID, JobTitle: "QA"},
				{ID: "2", CompanyID: "other", JobTitle: "Chef"},
			}
			requests, err := service.List(ctx, company)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids(requests)).To(Equal([]string{"1"}))
		})
	})

	Describe("RecentTitles", func() {
		It("should use the display cap by default", func() {
			_, err := service.RecentTitles(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest.lastLimit).To(Equal(10))
			Expect(service.DisplayCap()).To(Equal(10))
		})

		It("should cap large limits", func() {
			_, err := service.RecentTitles(ctx, 500)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest.lastLimit).To(Equal(jobrequest.MaxRecentTitles))
		})

		It("should dedupe whatever storage returns", func() {
			latest.rows = []*jobrequestDatamodel.JobRequest{
				{ID: "old", JobTitle: "QA", CreatedAt: day(1)},
				{ID: "new", JobTitle: "QA", CreatedAt: day(2)},
				{ID: "chef", JobTitle: "Chef", CreatedAt: day(1)},
			}
			jobs, err := service.RecentTitles(ctx, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids(jobs)).To(Equal([]string{"chef", "new"}))
		})

		It("should report storage failures as upstream errors", func() {
			latest.err = errors.New("canceling statement due to statement timeout")
			_, err := service.RecentTitles(ctx, 5)
			_, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
		})
	})
})

var _ = Describe("EventHandler", func() {
	It("should accept job request created events", func() {
		handler := jobrequest.NewEventHandler(newTestLogger())
		err := handler.HandleJobRequestCreated(context.Background(), events.NewJobRequestCreatedEvent("id", companyID, "QA", "open"))
		Expect(err).NotTo(HaveOccurred())
	})

	It("should reject other events", func() {
		handler := jobrequest.NewEventHandler(newTestLogger())
		err := handler.HandleJobRequestCreated(context.Background(), events.BaseEvent{Type: "other"})
		Expect(err).To(HaveOccurred())
	})

	It("should be reachable through the event bus", func() {
		bus := events.NewEventBus(newTestLogger())
		jobrequest.NewEventHandler(newTestLogger()).RegisterEventHandlers(bus)
		Expect(bus.PublishSync(context.Background(), events.NewJobRequestCreatedEvent("id", companyID, "QA", "open"))).To(Succeed())
	})
})
