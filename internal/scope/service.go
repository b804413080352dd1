package scope

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/ops-dashboard/internal"
)

// LookupRepository maps legacy integer ids onto canonical ids.
// It returns ("", nil) when no row matches.
type LookupRepository interface {
	FindByLegacyID(ctx context.Context, entity Entity, legacyID int64) (string, error)
}

type Resolver struct {
	repo   LookupRepository
	logger *slog.Logger
}

func NewResolver(repo LookupRepository, logger *slog.Logger) *Resolver {
	return &Resolver{
		repo:   repo,
		logger: logger,
	}
}

// Resolve returns internal.ErrMissingScope for empty input and internal.ErrUnresolvedScope
// when the identifier has an unknown shape or no matching legacy row.
func (r *Resolver) Resolve(ctx context.Context, entity Entity, raw string) (ScopeIdentifier, error) {
	id := Classify(raw)
	if id.Raw == "" {
		return ScopeIdentifier{}, internal.ErrMissingScope
	}

	switch id.Kind {
	case KindUUID:
		return ScopeIdentifier{Entity: entity, ID: id.Raw}, nil
	case KindLegacyNumeric:
		canonical, err := r.repo.FindByLegacyID(ctx, entity, id.LegacyID)
		if err != nil {
			r.logger.ErrorContext(ctx, "legacy scope lookup failed", "entity", entity, "legacy_id", id.LegacyID, "error", err)
			return ScopeIdentifier{}, internal.NewUpstreamError("failed to resolve scope", err)
		}
		if canonical == "" {
			r.logger.InfoContext(ctx, "legacy scope not found", "entity", entity, "legacy_id", id.LegacyID)
			return ScopeIdentifier{}, internal.ErrUnresolvedScope
		}
		return ScopeIdentifier{Entity: entity, ID: canonical}, nil
	default:
		r.logger.InfoContext(ctx, "unrecognised scope identifier", "entity", entity, "raw", id.Raw)
		return ScopeIdentifier{}, internal.ErrUnresolvedScope
	}
}
