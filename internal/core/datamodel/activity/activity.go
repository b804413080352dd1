package activity

import (
	"time"

	"gorm.io/datatypes"
)

type Activity struct {
	ID           string         `gorm:"column:id;type:uuid;primaryKey"`
	MemberID     string         `gorm:"column:member_id;type:uuid;not null;index:idx_activities_member_created,priority:1"`
	UserID       string         `gorm:"column:user_id;not null"`
	ActivityType string         `gorm:"column:activity_type;not null"`
	Details      datatypes.JSON `gorm:"column:details"`
	CreatedAt    time.Time      `gorm:"column:created_at;not null;index:idx_activities_member_created,priority:2"`
}

func (Activity) TableName() string {
	return "activities"
}
