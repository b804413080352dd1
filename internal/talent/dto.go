package talent

import "github.com/frahmantamala/ops-dashboard/internal/directory"

type TalentsResponse struct {
	Talents []*Talent `json:"talents"`
	Total   int64     `json:"total"`
	Page    int       `json:"page"`
	Limit   int       `json:"limit"`
	HasMore bool      `json:"hasMore"`
}

func NewTalentsResponse(page directory.Page[*Talent]) TalentsResponse {
	return TalentsResponse{
		Talents: page.Records,
		Total:   page.TotalCount,
		Page:    page.Page,
		Limit:   page.Limit,
		HasMore: page.HasMore,
	}
}

type AnalysisResponse struct {
	Analysis *Analysis `json:"analysis"`
}
