package employee

import "github.com/frahmantamala/ops-dashboard/internal/directory"

type EmployeesResponse struct {
	Employees  []*Employee `json:"employees"`
	TotalCount int64       `json:"totalCount"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	HasMore    bool        `json:"hasMore"`
}

func NewEmployeesResponse(page directory.Page[*Employee]) EmployeesResponse {
	return EmployeesResponse{
		Employees:  page.Records,
		TotalCount: page.TotalCount,
		Page:       page.Page,
		Limit:      page.Limit,
		HasMore:    page.HasMore,
	}
}
