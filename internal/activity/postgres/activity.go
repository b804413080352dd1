package postgres

import (
	"context"
	"time"

	gerrors "github.com/go-faster/errors"
	"gorm.io/gorm"

	"github.com/frahmantamala/ops-dashboard/internal/activity"
	activityDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/activity"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) activity.RepositoryAPI {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) FindByMemberBetween(ctx context.Context, memberID string, from, to time.Time) ([]*activityDatamodel.Activity, error) {
	var rows []*activityDatamodel.Activity
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND created_at >= ? AND created_at < ?", memberID, from, to).
		Order("created_at DESC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, gerrors.Wrap(err, "find activities by member")
	}
	return rows, nil
}
