package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	activityDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/activity"
	employeeDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/employee"
	jobrequestDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/jobrequest"
	"github.com/frahmantamala/ops-dashboard/internal/core/datamodel/organization"
	talentDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/talent"
)

var clearData bool

// Fixed ids keep the seed idempotent and give the legacy ids something stable to point at.
var (
	seedCompanyID = "3f1c2a6e-8d4b-4c1e-9a57-0b6f2d9e1a01"
	seedMemberID  = "7a2d4e91-5c3b-4f8a-b6e2-1d9c0f3a5b02"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlxDB.Close()

		db, err := initGorm(sqlxDB)
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		loc, err := time.LoadLocation(cfg.Organization.Timezone)
		if err != nil {
			log.Fatalf("failed to load timezone: %v", err)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if clearData {
				if err := clearSeedData(tx); err != nil {
					return err
				}
			}
			return seed(tx, time.Now().In(loc))
		})
		if err != nil {
			log.Fatalf("failed to seed: %v", err)
		}
		fmt.Println("Seed data loaded")
	},
}

func init() {
	seedCmd.Flags().BoolVar(&clearData, "clear", false, "Clear existing data before seeding")
}

func clearSeedData(tx *gorm.DB) error {
	for _, table := range []string{"activities", "employees", "job_requests", "talent_pool", "members", "companies"} {
		if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	fmt.Println("Cleared existing data")
	return nil
}

func seed(tx *gorm.DB, now time.Time) error {
	insert := tx.Clauses(clause.OnConflict{DoNothing: true})
	companyLegacy, memberLegacy := int64(1), int64(1)

	if err := insert.Create(&organization.Company{ID: seedCompanyID, LegacyID: &companyLegacy, Name: "Acme Operations", CreatedAt: now.UTC()}).Error; err != nil {
		return fmt.Errorf("seed company: %w", err)
	}
	if err := insert.Create(&organization.Member{ID: seedMemberID, LegacyID: &memberLegacy, CompanyID: &seedCompanyID, Name: "Acme Jakarta", CreatedAt: now.UTC()}).Error; err != nil {
		return fmt.Errorf("seed member: %w", err)
	}

	hired := func(years int) *time.Time {
		t := now.AddDate(-years, 0, 0).UTC()
		return &t
	}
	employees := []employeeDatamodel.Employee{
		{Name: "Alya Putri", Email: "alya@acme.test", Department: "Engineering", Position: "Backend Engineer", HiredAt: hired(3)},
		{Name: "Bima Santoso", Email: "bima@acme.test", Department: "Engineering", Position: "Engineering Manager", HiredAt: hired(6)},
		{Name: "Citra Lestari", Email: "citra@acme.test", Department: "Operations", Position: "Ops Lead", HiredAt: hired(4)},
		{Name: "Dimas Pratama", Email: "dimas@acme.test", Department: "Sales", Position: "Account Executive", HiredAt: hired(1)},
		{Name: "Eka Wijaya", Email: "eka@acme.test", Department: "Operations", Position: "Support Specialist", HiredAt: hired(2)},
	}
	for i := range employees {
		employees[i].ID = uuid.NewString()
		employees[i].MemberID = seedMemberID
		employees[i].Status = "active"
		employees[i].CreatedAt = now.UTC()
		employees[i].UpdatedAt = now.UTC()
	}
	if err := insert.Create(&employees).Error; err != nil {
		return fmt.Errorf("seed employees: %w", err)
	}

	talents := []talentDatamodel.Talent{
		{Name: "Sari Nugroho", Email: "sari@talent.test", Category: "Engineering", Rating: 4.8, ExperienceYears: 7, Skills: "Go, PostgreSQL, Kubernetes", Location: "Bandung"},
		{Name: "Teguh Hidayat", Email: "teguh@talent.test", Category: "Design", Rating: 4.1, ExperienceYears: 4, Skills: "Figma, UX Research", Location: "Yogyakarta"},
		{Name: "Umi Kartika", Email: "umi@talent.test", Category: "Engineering", Rating: 3.6, ExperienceYears: 2, Skills: "TypeScript, React", Location: "Surabaya"},
		{Name: "Vino Halim", Email: "vino@talent.test", Category: "Data", Rating: 4.5, ExperienceYears: 5, Skills: "Python, dbt, Airflow", Location: "Jakarta"},
	}
	for i := range talents {
		talents[i].ID = uuid.NewString()
		talents[i].CreatedAt = now.UTC()
		talents[i].UpdatedAt = now.UTC()
	}
	if err := insert.Create(&talents).Error; err != nil {
		return fmt.Errorf("seed talent pool: %w", err)
	}

	types := []string{"login", "page_view", "task_created", "task_completed", "message_sent", "logout"}
	var activities []activityDatamodel.Activity
	for day := 0; day < 3; day++ {
		for i, activityType := range types {
			activities = append(activities, activityDatamodel.Activity{
				ID:           uuid.NewString(),
				MemberID:     seedMemberID,
				UserID:       fmt.Sprintf("%d", i%3+1),
				ActivityType: activityType,
				Details:      datatypes.JSON(fmt.Sprintf(`{"source":"seed","sequence":%d}`, i)),
				CreatedAt:    now.AddDate(0, 0, -day).Add(-time.Duration(i) * time.Hour).UTC(),
			})
		}
	}
	if err := insert.Create(&activities).Error; err != nil {
		return fmt.Errorf("seed activities: %w", err)
	}

	salary := func(v int64) decimal.NullDecimal {
		return decimal.NewNullDecimal(decimal.NewFromInt(v))
	}
	jobs := []jobrequestDatamodel.JobRequest{
		{JobTitle: "Backend Engineer", WorkArrangement: "hybrid", Status: "open", SalaryMin: salary(15000000), SalaryMax: salary(25000000), Currency: "IDR", Skills: "Go, PostgreSQL"},
		{JobTitle: "Backend Engineer", WorkArrangement: "remote", Status: "closed", SalaryMin: salary(14000000), SalaryMax: salary(22000000), Currency: "IDR", Skills: "Go"},
		{JobTitle: "Data Analyst", WorkArrangement: "onsite", Status: "open", Currency: "IDR", Skills: "SQL, Looker"},
		{JobTitle: "Product Designer", WorkArrangement: "remote", Status: "on_hold", Currency: "IDR", Skills: "Figma"},
	}
	for i := range jobs {
		jobs[i].ID = uuid.NewString()
		jobs[i].CompanyID = seedCompanyID
		jobs[i].CreatedAt = now.AddDate(0, 0, -i).UTC()
	}
	if err := insert.Create(&jobs).Error; err != nil {
		return fmt.Errorf("seed job requests: %w", err)
	}
	return nil
}
