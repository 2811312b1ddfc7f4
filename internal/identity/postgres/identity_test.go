package postgres

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	identityDatamodel "github.com/govflow/govflow/internal/core/datamodel/identity"
	"github.com/govflow/govflow/internal/identity"
)

func TestIdentityRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Identity Repository Suite")
}

var _ = Describe("IdentityRepository", func() {
	var (
		db   *gorm.DB
		repo identity.Repository
		ctx  context.Context
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&identityDatamodel.User{}, &identityDatamodel.Department{})
		Expect(err).NotTo(HaveOccurred())

		users := []identityDatamodel.User{
			{ID: "1", Name: "John Smith", Email: "john.smith@gov.local", Department: "IT", Role: "admin"},
			{ID: "2", Name: "Sarah Johnson", Email: "sarah.johnson@gov.local", Department: "Finance", Role: "sender"},
		}
		for i := range users {
			Expect(db.Create(&users[i]).Error).To(Succeed())
		}

		departments := []identityDatamodel.Department{
			{ID: "6", Name: "Finance"},
			{ID: "7", Name: "Legal"},
		}
		for i := range departments {
			Expect(db.Create(&departments[i]).Error).To(Succeed())
		}

		repo = NewIdentityRepository(db)
		ctx = context.Background()
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("GetUserByID", func() {
		It("should retrieve the user", func() {
			user, err := repo.GetUserByID(ctx, "1")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Name).To(Equal("John Smith"))
			Expect(user.Role).To(Equal("admin"))
		})

		It("should return ErrUserNotFound for an unknown id", func() {
			user, err := repo.GetUserByID(ctx, "99")
			Expect(err).To(Equal(identity.ErrUserNotFound))
			Expect(user).To(BeNil())
		})
	})

	Describe("GetDepartmentByID", func() {
		It("should retrieve the department", func() {
			dept, err := repo.GetDepartmentByID(ctx, "7")
			Expect(err).NotTo(HaveOccurred())
			Expect(dept.Name).To(Equal("Legal"))
		})

		It("should return ErrRecipientNotFound for an unknown id", func() {
			dept, err := repo.GetDepartmentByID(ctx, "99")
			Expect(err).To(Equal(identity.ErrRecipientNotFound))
			Expect(dept).To(BeNil())
		})
	})

	Describe("ListUsers", func() {
		It("should list users ordered by name", func() {
			users, err := repo.ListUsers(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(2))
			Expect(users[0].Name).To(Equal("John Smith"))
			Expect(users[1].Name).To(Equal("Sarah Johnson"))
		})
	})

	Describe("ListDepartments", func() {
		It("should list departments ordered by name", func() {
			departments, err := repo.ListDepartments(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(departments).To(HaveLen(2))
			Expect(departments[0].Name).To(Equal("Finance"))
			Expect(departments[1].Name).To(Equal("Legal"))
		})
	})
})
