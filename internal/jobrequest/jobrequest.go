package jobrequest

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	jobrequestDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/jobrequest"
)

const (
	WorkArrangementRemote = "remote"
	WorkArrangementHybrid = "hybrid"
	WorkArrangementOnsite = "onsite"
)

const (
	StatusOpen   = "open"
	StatusOnHold = "on_hold"
	StatusClosed = "closed"
)

const MaxJobTitleLength = 200

type JobRequest struct {
	ID              string           `json:"id"`
	CompanyID       string           `json:"companyId"`
	JobTitle        string           `json:"jobTitle"`
	WorkArrangement string           `json:"workArrangement,omitempty"`
	Status          string           `json:"status"`
	SalaryMin       *decimal.Decimal `json:"salaryMin,omitempty"`
	SalaryMax       *decimal.Decimal `json:"salaryMax,omitempty"`
	Currency        string           `json:"currency,omitempty"`
	Skills          string           `json:"skills,omitempty"`
	Requirements    string           `json:"requirements,omitempty"`
	Description     string           `json:"description,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// Dedupe keeps the newest request per job title (the first one seen wins a createdAt tie),
// orders the survivors by title then recency and truncates to limit. The input is not modified.
func Dedupe(requests []*JobRequest, limit int) []*JobRequest {
	if limit <= 0 {
		return []*JobRequest{}
	}

	latest := make(map[string]*JobRequest, len(requests))
	order := make([]string, 0, len(requests))
	for _, r := range requests {
		if r == nil {
			continue
		}
		kept, ok := latest[r.JobTitle]
		if !ok {
			order = append(order, r.JobTitle)
			latest[r.JobTitle] = r
			continue
		}
		if r.CreatedAt.After(kept.CreatedAt) {
			latest[r.JobTitle] = r
		}
	}

	out := make([]*JobRequest, 0, len(order))
	for _, title := range order {
		out = append(out, latest[title])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].JobTitle != out[j].JobTitle {
			return out[i].JobTitle < out[j].JobTitle
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func ToDataModel(j *JobRequest) *jobrequestDatamodel.JobRequest {
	return &jobrequestDatamodel.JobRequest{
		ID:              j.ID,
		CompanyID:       j.CompanyID,
		JobTitle:        j.JobTitle,
		WorkArrangement: j.WorkArrangement,
		Status:          j.Status,
		SalaryMin:       nullDecimal(j.SalaryMin),
		SalaryMax:       nullDecimal(j.SalaryMax),
		Currency:        j.Currency,
		Skills:          j.Skills,
		Requirements:    j.Requirements,
		Description:     j.Description,
		CreatedAt:       j.CreatedAt,
	}
}

func FromDataModel(j *jobrequestDatamodel.JobRequest) *JobRequest {
	return &JobRequest{
		ID:              j.ID,
		CompanyID:       j.CompanyID,
		JobTitle:        j.JobTitle,
		WorkArrangement: j.WorkArrangement,
		Status:          j.Status,
		SalaryMin:       decimalPtr(j.SalaryMin),
		SalaryMax:       decimalPtr(j.SalaryMax),
		Currency:        j.Currency,
		Skills:          j.Skills,
		Requirements:    j.Requirements,
		Description:     j.Description,
		CreatedAt:       j.CreatedAt,
	}
}
