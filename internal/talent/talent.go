package talent

import (
	"strings"
	"time"

	talentDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/talent"
	"github.com/frahmantamala/ops-dashboard/internal/directory"
)

type Talent struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Category        string    `json:"category"`
	Rating          float64   `json:"rating"`
	ExperienceYears int       `json:"experienceYears"`
	Skills          []string  `json:"skills"`
	Location        string    `json:"location"`
	Summary         string    `json:"summary,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Analysis is produced on demand and never stored.
type Analysis struct {
	TalentID       string    `json:"talentId"`
	Summary        string    `json:"summary"`
	Strengths      []string  `json:"strengths"`
	Concerns       []string  `json:"concerns"`
	Recommendation string    `json:"recommendation"`
	Analyzer       string    `json:"analyzer"`
	GeneratedAt    time.Time `json:"generatedAt"`
}

var Columns = directory.Columns{
	Search:     []string{"name", "email", "category", "skills", "location"},
	Filter:     "category",
	TieBreaker: "id",
}

func NewListOptions(defaultLimit, maxLimit int) directory.Options {
	return directory.Options{
		FilterParam: "category",
		SortFields: map[string]string{
			"rating":     "rating",
			"name":       "name",
			"experience": "experience_years",
			"createdAt":  "created_at",
		},
		DefaultSort:  "rating",
		DefaultLimit: defaultLimit,
		MaxLimit:     maxLimit,
	}
}

// SplitSkills turns the stored comma separated list into trimmed, non-empty entries.
func SplitSkills(raw string) []string {
	skills := make([]string, 0)
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func FromDataModel(t *talentDatamodel.Talent) *Talent {
	return &Talent{
		ID:              t.ID,
		Name:            t.Name,
		Email:           t.Email,
		Category:        t.Category,
		Rating:          t.Rating,
		ExperienceYears: t.ExperienceYears,
		Skills:          SplitSkills(t.Skills),
		Location:        t.Location,
		Summary:         t.Summary,
		CreatedAt:       t.CreatedAt,
	}
}
