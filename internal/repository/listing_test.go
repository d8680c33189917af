package repository_test

import (
	"fmt"
	"testing"
	"time"

	"go-wms-admin/internal/model"
	"go-wms-admin/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRepositories(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Repository Suite")
}

var _ = Describe("Warehouse listing", func() {
	var (
		db   *gorm.DB
		repo repository.WarehouseRepository
	)

	seed := func(code, name string, active bool, createdAt time.Time) model.Warehouse {
		w := model.Warehouse{Code: code, Name: name, IsActive: active}
		w.CreatedAt = createdAt
		Expect(db.Create(&w).Error).To(Succeed())
		return w
	}

	BeforeEach(func() {
		var err error
		// In-memory database; the queries stay portable SQL
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&model.Warehouse{})).To(Succeed())

		repo = repository.NewWarehouseRepo(db)
	})

	Describe("search", func() {
		BeforeEach(func() {
			now := time.Now()
			seed("WH-CENTRAL", "Central Hub", true, now)
			seed("WH-NORTH", "North Depot", true, now)
			seed("WH-SOUTH", "South Depot", false, now)
		})

		It("matches case-insensitively across code and name", func() {
			rows, total, err := repo.List(repository.ListParams{
				Search:        "central",
				SearchColumns: []string{"code", "name"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
			Expect(rows[0].Code).To(Equal("WH-CENTRAL"))
		})

		It("matches substrings in either column", func() {
			_, total, err := repo.List(repository.ListParams{
				Search:        "depot",
				SearchColumns: []string{"code", "name"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(2)))
		})

		It("combines search with an equality filter", func() {
			rows, total, err := repo.List(repository.ListParams{
				Search:        "depot",
				SearchColumns: []string{"code", "name"},
				Filters:       map[string]interface{}{"is_active": true},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
			Expect(rows[0].Code).To(Equal("WH-NORTH"))
		})
	})

	Describe("pagination window", func() {
		BeforeEach(func() {
			base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
			for i := 0; i < 25; i++ {
				seed(fmt.Sprintf("WH-%03d", i), fmt.Sprintf("Warehouse %d", i), true, base.Add(time.Duration(i)*time.Minute))
			}
		})

		It("returns the exact total alongside one page of rows", func() {
			rows, total, err := repo.List(repository.ListParams{Page: 0, PageSize: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(25)))
			Expect(rows).To(HaveLen(10))
		})

		It("returns the short final page", func() {
			rows, total, err := repo.List(repository.ListParams{Page: 2, PageSize: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(25)))
			Expect(rows).To(HaveLen(5))
		})

		It("orders newest first", func() {
			rows, _, err := repo.List(repository.ListParams{Page: 0, PageSize: 3})
			Expect(err).NotTo(HaveOccurred())
			Expect(rows[0].Code).To(Equal("WH-024"))
			Expect(rows[1].Code).To(Equal("WH-023"))
			Expect(rows[2].Code).To(Equal("WH-022"))
		})

		It("falls back to the default page size", func() {
			rows, _, err := repo.List(repository.ListParams{Page: 0, PageSize: 0})
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(10))
		})
	})

	Describe("FindAllByCode", func() {
		It("orders by code ascending regardless of insert order", func() {
			now := time.Now()
			seed("WH-B", "Second", true, now)
			seed("WH-A", "First", true, now)

			warehouses, err := repo.FindAllByCode()
			Expect(err).NotTo(HaveOccurred())
			Expect(warehouses[0].Code).To(Equal("WH-A"))
			Expect(warehouses[1].Code).To(Equal("WH-B"))
		})
	})

	Describe("SetActive", func() {
		It("flips the flag and records the updater", func() {
			w := seed("WH-T", "Toggle", true, time.Now())

			Expect(repo.SetActive(w.ID, false, "user-1")).To(Succeed())

			stored, err := repo.FindByID(w.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.IsActive).To(BeFalse())
			Expect(stored.UpdatedBy).To(Equal("user-1"))
		})
	})
})
