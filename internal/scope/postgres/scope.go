package postgres

import (
	"context"
	"errors"
	"fmt"

	gerrors "github.com/go-faster/errors"
	"gorm.io/gorm"

	"github.com/frahmantamala/ops-dashboard/internal/core/datamodel/organization"
	"github.com/frahmantamala/ops-dashboard/internal/scope"
)

type LookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) scope.LookupRepository {
	return &LookupRepository{db: db}
}

func (r *LookupRepository) FindByLegacyID(ctx context.Context, entity scope.Entity, legacyID int64) (string, error) {
	var model interface{}
	switch entity {
	case scope.EntityCompany:
		model = &organization.Company{}
	case scope.EntityMember:
		model = &organization.Member{}
	default:
		return "", fmt.Errorf("unknown scope entity %q", entity)
	}

	var id string
	err := r.db.WithContext(ctx).
		Model(model).
		Select("id").
		Where("legacy_id = ?", legacyID).
		Limit(1).
		Scan(&id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", gerrors.Wrap(err, "lookup legacy scope id")
	}
	return id, nil
}
