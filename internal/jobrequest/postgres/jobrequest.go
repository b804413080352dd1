package postgres

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"gorm.io/gorm"

	jobrequestDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/jobrequest"
	"github.com/frahmantamala/ops-dashboard/internal/jobrequest"
)

type JobRequestRepository struct {
	db *gorm.DB
}

func NewJobRequestRepository(db *gorm.DB) jobrequest.RepositoryAPI {
	return &JobRequestRepository{db: db}
}

func (r *JobRequestRepository) ListByCompany(ctx context.Context, companyID string) ([]*jobrequestDatamodel.JobRequest, error) {
	var rows []*jobrequestDatamodel.JobRequest
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, gerrors.Wrap(err, "list job requests")
	}
	return rows, nil
}

func (r *JobRequestRepository) Create(ctx context.Context, job *jobrequestDatamodel.JobRequest) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return gerrors.Wrap(err, "create job request")
	}
	return nil
}
