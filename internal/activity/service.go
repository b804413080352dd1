package activity

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/ops-dashboard/internal"
	activityDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/activity"
	"github.com/frahmantamala/ops-dashboard/internal/daterange"
	"github.com/frahmantamala/ops-dashboard/internal/scope"
)

type RepositoryAPI interface {
	// FindByMemberBetween returns rows with from <= created_at < to, newest first.
	FindByMemberBetween(ctx context.Context, memberID string, from, to time.Time) ([]*activityDatamodel.Activity, error)
}

type Service struct {
	repo   RepositoryAPI
	dates  *daterange.Resolver
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, dates *daterange.Resolver, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		dates:  dates,
		logger: logger,
	}
}

// Aggregate loads every activity of the member within rng. Stats always cover the whole member;
// userID only narrows the returned list.
func (s *Service) Aggregate(ctx context.Context, member scope.ScopeIdentifier, rng daterange.Range, userID string) (*Result, error) {
	from, to, err := s.dates.Bounds(rng)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByMemberBetween(ctx, member.ID, from.UTC(), to.UTC())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load activities",
			"member_id", member.ID,
			"start_date", rng.StartDate,
			"end_date", rng.EndDate,
			"error", err)
		return nil, internal.NewUpstreamError("failed to load activities", err)
	}

	activities := make([]*Activity, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, FromDataModel(row))
	}

	result := &Result{
		Activities: FilterByUser(activities, userID),
		Stats:      ComputeStats(activities),
		DateRange:  rng,
	}

	s.logger.DebugContext(ctx, "aggregated activities",
		"member_id", member.ID,
		"start_date", rng.StartDate,
		"end_date", rng.EndDate,
		"total", result.Stats.Total,
		"returned", len(result.Activities))
	return result, nil
}
