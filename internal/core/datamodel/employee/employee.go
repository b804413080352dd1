package employee

import "time"

type Employee struct {
	ID         string     `gorm:"column:id;type:uuid;primaryKey"`
	MemberID   string     `gorm:"column:member_id;type:uuid;not null;index"`
	Name       string     `gorm:"column:name;not null"`
	Email      string     `gorm:"column:email"`
	Department string     `gorm:"column:department"`
	Position   string     `gorm:"column:position"`
	Status     string     `gorm:"column:status;default:active"`
	HiredAt    *time.Time `gorm:"column:hired_at"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
