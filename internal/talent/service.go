package talent

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/frahmantamala/ops-dashboard/internal"
	talentDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/talent"
	"github.com/frahmantamala/ops-dashboard/internal/directory"
	"github.com/frahmantamala/ops-dashboard/internal/session"
)

type RepositoryAPI interface {
	List(ctx context.Context, q directory.Query, opts directory.Options) ([]*talentDatamodel.Talent, int64, error)
	// GetByID returns (nil, nil) when the talent does not exist.
	GetByID(ctx context.Context, id string) (*talentDatamodel.Talent, error)
}

type Analyzer interface {
	Name() string
	Analyze(ctx context.Context, t *Talent) (*Analysis, error)
}

type Service struct {
	repo     RepositoryAPI
	analyzer Analyzer
	opts     directory.Options
	logger   *slog.Logger
}

func NewService(repo RepositoryAPI, analyzer Analyzer, opts directory.Options, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		analyzer: analyzer,
		opts:     opts,
		logger:   logger,
	}
}

func (s *Service) Options() directory.Options {
	return s.opts
}

func (s *Service) List(ctx context.Context, q directory.Query) (directory.Page[*Talent], error) {
	rows, total, err := s.repo.List(ctx, q, s.opts)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list talent pool", "error", err)
		return directory.Page[*Talent]{}, internal.NewUpstreamError("failed to list talent pool", err)
	}

	talents := make([]*Talent, 0, len(rows))
	for _, row := range rows {
		talents = append(talents, FromDataModel(row))
	}
	return directory.NewPage(talents, total, q), nil
}

// Analyze requires a session; claims are passed explicitly by the caller.
func (s *Service) Analyze(ctx context.Context, claims *session.Claims, talentID string) (*Analysis, error) {
	if claims == nil {
		return nil, internal.ErrUnauthorized
	}

	// Talent ids are UUIDs; anything else cannot match a row.
	if uuid.Validate(talentID) != nil {
		return nil, internal.ErrTalentNotFound
	}

	row, err := s.repo.GetByID(ctx, talentID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load talent", "talent_id", talentID, "error", err)
		return nil, internal.NewUpstreamError("failed to load talent", err)
	}
	if row == nil {
		return nil, internal.ErrTalentNotFound
	}

	analysis, err := s.analyzer.Analyze(ctx, FromDataModel(row))
	if err != nil {
		analysesTotal.WithLabelValues(s.analyzer.Name(), "error").Inc()
		s.logger.ErrorContext(ctx, "talent analysis failed",
			"talent_id", talentID,
			"analyzer", s.analyzer.Name(),
			"user_id", claims.IdentityID(),
			"error", err)
		return nil, internal.NewUpstreamError("talent analysis is unavailable", err)
	}

	analysesTotal.WithLabelValues(s.analyzer.Name(), "ok").Inc()
	s.logger.InfoContext(ctx, "talent analysed",
		"talent_id", talentID,
		"analyzer", s.analyzer.Name(),
		"user_id", claims.IdentityID())
	return analysis, nil
}
