package postgres

import (
	"context"
	"errors"

	gerrors "github.com/go-faster/errors"
	"gorm.io/gorm"

	talentDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/talent"
	"github.com/frahmantamala/ops-dashboard/internal/directory"
	"github.com/frahmantamala/ops-dashboard/internal/talent"
)

type TalentRepository struct {
	db *gorm.DB
}

func NewTalentRepository(db *gorm.DB) talent.RepositoryAPI {
	return &TalentRepository{db: db}
}

func (r *TalentRepository) List(ctx context.Context, q directory.Query, opts directory.Options) ([]*talentDatamodel.Talent, int64, error) {
	base := r.db.WithContext(ctx).Model(&talentDatamodel.Talent{})

	rows, total, err := directory.Find[*talentDatamodel.Talent](base, q, opts, talent.Columns)
	if err != nil {
		return nil, 0, gerrors.Wrap(err, "list talent pool")
	}
	return rows, total, nil
}

func (r *TalentRepository) GetByID(ctx context.Context, id string) (*talentDatamodel.Talent, error) {
	var t talentDatamodel.Talent
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, gerrors.Wrap(err, "get talent")
	}
	return &t, nil
}
