package jobrequest

import (
	"time"

	"github.com/shopspring/decimal"
)

type JobRequest struct {
	ID              string              `gorm:"column:id;type:uuid;primaryKey" db:"id"`
	CompanyID       string              `gorm:"column:company_id;type:uuid;not null;index" db:"company_id"`
	JobTitle        string              `gorm:"column:job_title;not null" db:"job_title"`
	WorkArrangement string              `gorm:"column:work_arrangement" db:"work_arrangement"`
	Status          string              `gorm:"column:status" db:"status"`
	SalaryMin       decimal.NullDecimal `gorm:"column:salary_min;type:numeric(14,2)" db:"salary_min"`
	SalaryMax       decimal.NullDecimal `gorm:"column:salary_max;type:numeric(14,2)" db:"salary_max"`
	Currency        string              `gorm:"column:currency" db:"currency"`
	Skills          string              `gorm:"column:skills" db:"skills"`
	Requirements    string              `gorm:"column:requirements" db:"requirements"`
	Description     string              `gorm:"column:description" db:"description"`
	CreatedAt       time.Time           `gorm:"column:created_at;not null" db:"created_at"`
}

func (JobRequest) TableName() string {
	return "job_requests"
}
