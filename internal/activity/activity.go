package activity

import (
	"encoding/json"
	"time"

	activityDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/activity"
)

type Type string

const (
	TypeLogin         Type = "login"
	TypeLogout        Type = "logout"
	TypePageView      Type = "page_view"
	TypeTaskCreated   Type = "task_created"
	TypeTaskCompleted Type = "task_completed"
	TypeMessageSent   Type = "message_sent"
	TypeFileUploaded  Type = "file_uploaded"
)

var KnownTypes = []Type{
	TypeLogin,
	TypeLogout,
	TypePageView,
	TypeTaskCreated,
	TypeTaskCompleted,
	TypeMessageSent,
	TypeFileUploaded,
}

func (t Type) IsKnown() bool {
	for _, k := range KnownTypes {
		if t == k {
			return true
		}
	}
	return false
}

type Activity struct {
	ID           string          `json:"id"`
	MemberID     string          `json:"memberId"`
	UserID       string          `json:"userId"`
	ActivityType Type            `json:"activityType"`
	Details      json.RawMessage `json:"details,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Stats is recomputed on every query.
type Stats struct {
	ByUser      map[string]map[Type]int `json:"byUser"`
	Totals      map[Type]int            `json:"totals"`
	Total       int                     `json:"total"`
	UniqueUsers int                     `json:"uniqueUsers"`
}

// ComputeStats counts activities per user and type. Types outside KnownTypes are counted
// under their raw value.
func ComputeStats(activities []*Activity) Stats {
	stats := Stats{
		ByUser: make(map[string]map[Type]int),
		Totals: make(map[Type]int),
	}
	for _, a := range activities {
		perUser, ok := stats.ByUser[a.UserID]
		if !ok {
			perUser = make(map[Type]int)
			stats.ByUser[a.UserID] = perUser
		}
		perUser[a.ActivityType]++
		stats.Totals[a.ActivityType]++
		stats.Total++
	}
	stats.UniqueUsers = len(stats.ByUser)
	return stats
}

// FilterByUser keeps the order of activities. An empty userID returns the input unchanged.
func FilterByUser(activities []*Activity, userID string) []*Activity {
	if userID == "" {
		return activities
	}
	filtered := make([]*Activity, 0, len(activities))
	for _, a := range activities {
		if a.UserID == userID {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func FromDataModel(a *activityDatamodel.Activity) *Activity {
	var details json.RawMessage
	if len(a.Details) > 0 {
		details = json.RawMessage(a.Details)
	}
	return &Activity{
		ID:           a.ID,
		MemberID:     a.MemberID,
		UserID:       a.UserID,
		ActivityType: Type(a.ActivityType),
		Details:      details,
		CreatedAt:    a.CreatedAt,
	}
}
