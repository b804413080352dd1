package jobrequest

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/ops-dashboard/internal"
	"github.com/frahmantamala/ops-dashboard/internal/core/common/validation"
)

type CreateJobRequestDTO struct {
	JobTitle        string           `json:"jobTitle"`
	WorkArrangement string           `json:"workArrangement"`
	Status          string           `json:"status"`
	SalaryMin       *decimal.Decimal `json:"salaryMin"`
	SalaryMax       *decimal.Decimal `json:"salaryMax"`
	Currency        string           `json:"currency"`
	Skills          string           `json:"skills"`
	Requirements    string           `json:"requirements"`
	Description     string           `json:"description"`
}

// Normalize trims free text and applies the default status.
func (d *CreateJobRequestDTO) Normalize() {
	d.JobTitle = strings.TrimSpace(d.JobTitle)
	d.WorkArrangement = strings.ToLower(strings.TrimSpace(d.WorkArrangement))
	d.Status = strings.ToLower(strings.TrimSpace(d.Status))
	if d.Status == "" {
		d.Status = StatusOpen
	}
	d.Currency = strings.ToUpper(strings.TrimSpace(d.Currency))
}

func (d CreateJobRequestDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("jobTitle", d.JobTitle).
		Required().
		MaxLength(MaxJobTitleLength, internal.ErrCodeInvalidJobTitle)
	v.Field("workArrangement", d.WorkArrangement).
		OneOf(WorkArrangementRemote, WorkArrangementHybrid, WorkArrangementOnsite)
	v.Field("status", d.Status).
		OneOf(StatusOpen, StatusOnHold, StatusClosed)
	v.Field("salaryMin", d.SalaryMin).Custom(nonNegative("salaryMin"))
	v.Field("salaryMax", d.SalaryMax).Custom(nonNegative("salaryMax"))
	v.Field("salaryMax", d.SalaryMax).Custom(func(interface{}) *internal.AppError {
		if d.SalaryMin != nil && d.SalaryMax != nil && d.SalaryMin.GreaterThan(*d.SalaryMax) {
			return internal.NewValidationFieldError("salaryMax", "salaryMax must not be less than salaryMin", internal.ErrCodeInvalidSalary)
		}
		return nil
	})
	return v.Validate()
}

func nonNegative(field string) func(interface{}) *internal.AppError {
	return func(value interface{}) *internal.AppError {
		d, ok := value.(*decimal.Decimal)
		if !ok || d == nil {
			return nil
		}
		if d.IsNegative() {
			return internal.NewValidationFieldError(field, field+" must not be negative", internal.ErrCodeInvalidSalary)
		}
		return nil
	}
}

type JobRequestsResponse struct {
	Requests []*JobRequest `json:"requests"`
}

type JobResponse struct {
	Job *JobRequest `json:"job"`
}

type RecentTitlesResponse struct {
	Jobs  []*JobRequest `json:"jobs"`
	Total int           `json:"total"`
}
