package postgres

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/govflow/govflow/internal/comment"
	commentDatamodel "github.com/govflow/govflow/internal/core/datamodel/comment"
)

func TestCommentRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Comment Repository Suite")
}

var _ = Describe("CommentRepository", func() {
	var (
		db   *gorm.DB
		repo comment.Repository
		ctx  context.Context
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&commentDatamodel.Comment{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewCommentRepository(db)
		ctx = context.Background()
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	createAt := func(documentID, text string, createdAt time.Time) {
		c, err := comment.NewComment(documentID, "observer-1", text)
		Expect(err).NotTo(HaveOccurred())
		c.CreatedAt = createdAt
		Expect(repo.Create(ctx, c)).To(Succeed())
	}

	Describe("ListByDocument", func() {
		It("should return comments newest first", func() {
			base := time.Now().Truncate(time.Second)
			createAt("doc-1", "oldest", base.Add(-2*time.Minute))
			createAt("doc-1", "newest", base)
			createAt("doc-1", "middle", base.Add(-time.Minute))

			comments, err := repo.ListByDocument(ctx, "doc-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(comments).To(HaveLen(3))
			Expect(comments[0].Text).To(Equal("newest"))
			Expect(comments[1].Text).To(Equal("middle"))
			Expect(comments[2].Text).To(Equal("oldest"))
		})

		It("should only return the requested document's comments", func() {
			createAt("doc-1", "mine", time.Now())
			createAt("doc-2", "other", time.Now())

			comments, err := repo.ListByDocument(ctx, "doc-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(comments).To(HaveLen(1))
			Expect(comments[0].Text).To(Equal("mine"))
		})

		It("should return an empty thread for an unknown document", func() {
			comments, err := repo.ListByDocument(ctx, "missing")
			Expect(err).NotTo(HaveOccurred())
			Expect(comments).To(BeEmpty())
		})
	})
})
