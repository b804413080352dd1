package postgres

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"github.com/jmoiron/sqlx"

	jobrequestDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/jobrequest"
	"github.com/frahmantamala/ops-dashboard/internal/jobrequest"
)

// LatestPerTitleQuery keeps the newest row per title, then orders the survivors the way the
// dashboard shows them.
const LatestPerTitleQuery = `
SELECT id, company_id, job_title,
       COALESCE(work_arrangement, '') AS work_arrangement,
       COALESCE(status, '') AS status,
       salary_min, salary_max,
       COALESCE(currency, '') AS currency,
       COALESCE(skills, '') AS skills,
       COALESCE(requirements, '') AS requirements,
       COALESCE(description, '') AS description,
       created_at
FROM (
    SELECT DISTINCT ON (job_title) *
    FROM job_requests
    ORDER BY job_title, created_at DESC, id
) latest
ORDER BY job_title ASC, created_at DESC
LIMIT $1`

type LatestRepository struct {
	db *sqlx.DB
}

func NewLatestRepository(db *sqlx.DB) jobrequest.LatestRepositoryAPI {
	return &LatestRepository{db: db}
}

func (r *LatestRepository) LatestPerTitle(ctx context.Context, limit int) ([]*jobrequestDatamodel.JobRequest, error) {
	rows := make([]*jobrequestDatamodel.JobRequest, 0, limit)
	if err := r.db.SelectContext(ctx, &rows, LatestPerTitleQuery, limit); err != nil {
		return nil, gerrors.Wrap(err, "select latest job request per title")
	}
	return rows, nil
}
