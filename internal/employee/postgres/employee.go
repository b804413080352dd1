package postgres

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"gorm.io/gorm"

	employeeDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/employee"
	"github.com/frahmantamala/ops-dashboard/internal/directory"
	"github.com/frahmantamala/ops-dashboard/internal/employee"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) List(ctx context.Context, memberID string, q directory.Query, opts directory.Options) ([]*employeeDatamodel.Employee, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&employeeDatamodel.Employee{}).
		Where("member_id = ?", memberID)

	rows, total, err := directory.Find[*employeeDatamodel.Employee](base, q, opts, employee.Columns)
	if err != nil {
		return nil, 0, gerrors.Wrap(err, "list employees")
	}
	return rows, total, nil
}
