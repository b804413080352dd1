package jobrequest

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/ops-dashboard/internal"
	jobrequestDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/jobrequest"
	"github.com/frahmantamala/ops-dashboard/internal/core/events"
	"github.com/frahmantamala/ops-dashboard/internal/scope"
)

const MaxRecentTitles = 50

type RepositoryAPI interface {
	// ListByCompany returns every request of the company, newest first.
	ListByCompany(ctx context.Context, companyID string) ([]*jobrequestDatamodel.JobRequest, error)
	Create(ctx context.Context, job *jobrequestDatamodel.JobRequest) error
}

type LatestRepositoryAPI interface {
	// LatestPerTitle returns at most limit rows, one per job title.
	LatestPerTitle(ctx context.Context, limit int) ([]*jobrequestDatamodel.JobRequest, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type Service struct {
	repo       RepositoryAPI
	latest     LatestRepositoryAPI
	publisher  EventPublisher
	displayCap int
	logger     *slog.Logger
	now        func() time.Time
}

func NewService(repo RepositoryAPI, latest LatestRepositoryAPI, publisher EventPublisher, displayCap int, logger *slog.Logger) *Service {
	if displayCap <= 0 {
		displayCap = 10
	}
	return &Service{
		repo:       repo,
		latest:     latest,
		publisher:  publisher,
		displayCap: displayCap,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *Service) DisplayCap() int {
	return s.displayCap
}

func (s *Service) List(ctx context.Context, company scope.ScopeIdentifier) ([]*JobRequest, error) {
	rows, err := s.repo.ListByCompany(ctx, company.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list job requests", "company_id", company.ID, "error", err)
		return nil, internal.NewUpstreamError("failed to list job requests", err)
	}

	requests := make([]*JobRequest, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, FromDataModel(row))
	}
	return requests, nil
}

// Create validates dto and stores it with a single insert.
func (s *Service) Create(ctx context.Context, company scope.ScopeIdentifier, dto CreateJobRequestDTO) (*JobRequest, error) {
	dto.Normalize()
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	job := &JobRequest{
		ID:              uuid.New().String(),
		CompanyID:       company.ID,
		JobTitle:        dto.JobTitle,
		WorkArrangement: dto.WorkArrangement,
		Status:          dto.Status,
		SalaryMin:       dto.SalaryMin,
		SalaryMax:       dto.SalaryMax,
		Currency:        dto.Currency,
		Skills:          dto.Skills,
		Requirements:    dto.Requirements,
		Description:     dto.Description,
		CreatedAt:       s.now().UTC(),
	}

	if err := s.repo.Create(ctx, ToDataModel(job)); err != nil {
		s.logger.ErrorContext(ctx, "failed to create job request", "company_id", company.ID, "error", err)
		return nil, internal.NewUpstreamError("failed to create job request", err)
	}

	s.logger.InfoContext(ctx, "job request created",
		"job_request_id", job.ID,
		"company_id", job.CompanyID,
		"job_title", job.JobTitle)

	if s.publisher != nil {
		event := events.NewJobRequestCreatedEvent(job.ID, job.CompanyID, job.JobTitle, job.Status)
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.WarnContext(ctx, "failed to publish job request created event", "job_request_id", job.ID, "error", err)
		}
	}
	return job, nil
}

// RecentTitles returns the newest request per distinct title. limit <= 0 means the display cap;
// larger values are capped at MaxRecentTitles.
func (s *Service) RecentTitles(ctx context.Context, limit int) ([]*JobRequest, error) {
	if limit <= 0 {
		limit = s.displayCap
	}
	if limit > MaxRecentTitles {
		limit = MaxRecentTitles
	}

	rows, err := s.latest.LatestPerTitle(ctx, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load recent job titles", "limit", limit, "error", err)
		return nil, internal.NewUpstreamError("failed to load recent job titles", err)
	}

	requests := make([]*JobRequest, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, FromDataModel(row))
	}
	return Dedupe(requests, limit), nil
}
