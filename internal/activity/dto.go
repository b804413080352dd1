package activity

import "github.com/frahmantamala/ops-dashboard/internal/daterange"

type Result struct {
	Activities []*Activity     `json:"activities"`
	Stats      Stats           `json:"stats"`
	DateRange  daterange.Range `json:"dateRange"`
}

type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

type ActivitiesResponse struct {
	Activities []*Activity     `json:"activities"`
	Stats      Stats           `json:"stats"`
	DateRange  daterange.Range `json:"dateRange"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}
