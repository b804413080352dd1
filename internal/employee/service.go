package employee

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/ops-dashboard/internal"
	employeeDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/employee"
	"github.com/frahmantamala/ops-dashboard/internal/directory"
	"github.com/frahmantamala/ops-dashboard/internal/scope"
)

type RepositoryAPI interface {
	// List returns one page of the member's employees plus the filtered total.
	List(ctx context.Context, memberID string, q directory.Query, opts directory.Options) ([]*employeeDatamodel.Employee, int64, error)
}

type Service struct {
	repo   RepositoryAPI
	opts   directory.Options
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, opts directory.Options, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		opts:   opts,
		logger: logger,
	}
}

func (s *Service) Options() directory.Options {
	return s.opts
}

func (s *Service) List(ctx context.Context, member scope.ScopeIdentifier, q directory.Query) (directory.Page[*Employee], error) {
	rows, total, err := s.repo.List(ctx, member.ID, q, s.opts)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list employees", "member_id", member.ID, "error", err)
		return directory.Page[*Employee]{}, internal.NewUpstreamError("failed to list employees", err)
	}

	employees := make([]*Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, FromDataModel(row))
	}

	s.logger.DebugContext(ctx, "listed employees",
		"member_id", member.ID,
		"search", q.Search,
		"department", q.Filter,
		"page", q.Page,
		"returned", len(employees),
		"total", total)
	return directory.NewPage(employees, total, q), nil
}
