// Package ai holds the talent analyzers.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/frahmantamala/ops-dashboard/internal/talent"
)

const (
	RecommendationStrongFit = "strong_fit"
	RecommendationConsider  = "consider"
	RecommendationReview    = "review"
)

// RuleBasedAnalyzer is used when no model provider is configured. Its output depends only on
// the talent record.
type RuleBasedAnalyzer struct {
	now func() time.Time
}

func NewRuleBasedAnalyzer() *RuleBasedAnalyzer {
	return &RuleBasedAnalyzer{now: time.Now}
}

func (a *RuleBasedAnalyzer) Name() string {
	return "rules"
}

func (a *RuleBasedAnalyzer) Analyze(_ context.Context, t *talent.Talent) (*talent.Analysis, error) {
	strengths := make([]string, 0)
	concerns := make([]string, 0)

	switch {
	case t.Rating >= 4.5:
		strengths = append(strengths, fmt.Sprintf("Top rated candidate (%.1f/5)", t.Rating))
	case t.Rating < 3:
		concerns = append(concerns, fmt.Sprintf("Below average rating (%.1f/5)", t.Rating))
	}

	switch {
	case t.ExperienceYears >= 5:
		strengths = append(strengths, fmt.Sprintf("%d years of experience", t.ExperienceYears))
	case t.ExperienceYears < 2:
		concerns = append(concerns, "Limited professional experience")
	}

	switch {
	case len(t.Skills) >= 3:
		strengths = append(strengths, "Broad skill set: "+strings.Join(t.Skills[:3], ", "))
	case len(t.Skills) == 0:
		concerns = append(concerns, "No skills listed")
	}

	return &talent.Analysis{
		TalentID:       t.ID,
		Summary:        summarize(t),
		Strengths:      strengths,
		Concerns:       concerns,
		Recommendation: recommend(t),
		Analyzer:       a.Name(),
		GeneratedAt:    a.now().UTC(),
	}, nil
}

func summarize(t *talent.Talent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s candidate", t.Name, t.Category)
	if t.Location != "" {
		fmt.Fprintf(&b, " based in %s", t.Location)
	}
	fmt.Fprintf(&b, ", has %d years of experience and a %.1f rating.", t.ExperienceYears, t.Rating)
	return b.String()
}

func recommend(t *talent.Talent) string {
	switch {
	case t.Rating >= 4.5 && t.ExperienceYears >= 3:
		return RecommendationStrongFit
	case t.Rating >= 3.5:
		return RecommendationConsider
	default:
		return RecommendationReview
	}
}
