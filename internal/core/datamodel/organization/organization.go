package organization

import "time"

// Company owns job requests. LegacyID is the integer key used before the UUID migration.
type Company struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey"`
	LegacyID  *int64    `gorm:"column:legacy_id;uniqueIndex"`
	Name      string    `gorm:"column:name;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Company) TableName() string {
	return "companies"
}

// Member owns employees and activities.
type Member struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey"`
	LegacyID  *int64    `gorm:"column:legacy_id;uniqueIndex"`
	CompanyID *string   `gorm:"column:company_id;type:uuid"`
	Name      string    `gorm:"column:name;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Member) TableName() string {
	return "members"
}
