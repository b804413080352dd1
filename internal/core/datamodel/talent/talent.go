package talent

import "time"

type Talent struct {
	ID              string    `gorm:"column:id;type:uuid;primaryKey"`
	Name            string    `gorm:"column:name;not null"`
	Email           string    `gorm:"column:email"`
	Category        string    `gorm:"column:category;index"`
	Rating          float64   `gorm:"column:rating"`
	ExperienceYears int       `gorm:"column:experience_years"`
	Skills          string    `gorm:"column:skills"`
	Location        string    `gorm:"column:location"`
	Summary         string    `gorm:"column:summary"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (Talent) TableName() string {
	return "talent_pool"
}
