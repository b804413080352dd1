package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/frahmantamala/ops-dashboard/internal/activity"
	activityPostgres "github.com/frahmantamala/ops-dashboard/internal/activity/postgres"
	activityDatamodel "github.com/frahmantamala/ops-dashboard/internal/core/datamodel/activity"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestActivityPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Activity Postgres Suite")
}

const (
	memberA = "5d3c1a2b-0e9f-4a8b-b7c6-d5e4f3a2b1c0"
	memberB = "9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d"
)

var _ = Describe("ActivityRepository", func() {
	var (
		db   *gorm.DB
		repo activity.RepositoryAPI
		ctx  context.Context
	)

	at := func(day, hour int) time.Time {
		return time.Date(2026, 10, day, hour, 0, 0, 0, time.UTC)
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&activityDatamodel.Activity{})).To(Succeed())

		rows := []*activityDatamodel.Activity{
			{ID: "a1", MemberID: memberA, UserID: "1", ActivityType: "login", CreatedAt: at(1, 1)},
			{ID: "a2", MemberID: memberA, UserID: "1", ActivityType: "logout", CreatedAt: at(1, 9)},
			{ID: "a3", MemberID: memberA, UserID: "2", ActivityType: "page_view", CreatedAt: at(2, 1),
				Details: datatypes.JSON(`{"path":"/dashboard"}`)},
			{ID: "a4", MemberID: memberB, UserID: "3", ActivityType: "login", CreatedAt: at(1, 2)},
			{ID: "a5", MemberID: memberA, UserID: "1", ActivityType: "login", CreatedAt: at(3, 0)},
		}
		Expect(db.Create(rows).Error).To(Succeed())

		repo = activityPostgres.NewActivityRepository(db)
		ctx = context.Background()
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	It("should return rows of the member inside the window, newest first", func() {
		rows, err := repo.FindByMemberBetween(ctx, memberA, at(1, 0), at(3, 0))
		Expect(err).NotTo(HaveOccurred())

		ids := make([]string, len(rows))
		for i, r := range rows {
			ids[i] = r.ID
		}
		Expect(ids).To(Equal([]string{"a3", "a2", "a1"}))
	})

	It("should exclude the upper bound", func() {
		rows, err := repo.FindByMemberBetween(ctx, memberA, at(2, 0), at(3, 0))
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(1))
		Expect(rows[0].ID).To(Equal("a3"))
		Expect(string(rows[0].Details)).To(MatchJSON(`{"path":"/dashboard"}`))
	})

	It("should return nothing for an inverted window", func() {
		rows, err := repo.FindByMemberBetween(ctx, memberA, at(3, 0), at(1, 0))
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(BeEmpty())
	})
})
