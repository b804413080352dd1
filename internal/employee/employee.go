package employee

import (
	"time"

	employeeDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/employee"
	"github.com/frahmantamala/ops-dashboard/internal/directory"
)

type Employee struct {
	ID         string     `json:"id"`
	MemberID   string     `json:"memberId"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Department string     `json:"department"`
	Position   string     `json:"position"`
	Status     string     `json:"status"`
	HiredAt    *time.Time `json:"hiredAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Columns lists what the employee directory searches and filters on.
var Columns = directory.Columns{
	Search:     []string{"name", "email", "department", "position"},
	Filter:     "department",
	TieBreaker: "id",
}

// NewListOptions returns the employee directory options with the configured paging limits.
func NewListOptions(defaultLimit, maxLimit int) directory.Options {
	return directory.Options{
		FilterParam: "department",
		SortFields: map[string]string{
			"name":       "name",
			"email":      "email",
			"department": "department",
			"position":   "position",
			"hiredAt":    "hired_at",
		},
		DefaultSort:  "name",
		DefaultLimit: defaultLimit,
		MaxLimit:     maxLimit,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:         e.ID,
		MemberID:   e.MemberID,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
		Position:   e.Position,
		Status:     e.Status,
		HiredAt:    e.HiredAt,
		CreatedAt:  e.CreatedAt,
	}
}
