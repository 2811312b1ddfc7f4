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

	"github.com/govflow/govflow/internal/activity"
	activityDatamodel "github.com/govflow/govflow/internal/core/datamodel/activity"
)

func TestActivityRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Activity Repository Suite")
}

var _ = Describe("ActivityRepository", func() {
	var (
		db   *gorm.DB
		repo activity.Repository
		ctx  context.Context
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&activityDatamodel.ActivityRecord{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewActivityRepository(db)
		ctx = context.Background()
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("Append", func() {
		It("should assign the insertion sequence back onto the record", func() {
			record, err := activity.NewRecord("doc-1", "sender-1", activity.KindUpload, "Document created and uploaded", nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(repo.Append(ctx, record)).To(Succeed())
			Expect(record.Seq).To(BeNumerically(">", 0))

			second, err := activity.NewRecord("doc-1", "sender-1", activity.KindComment, "Added comment", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.Append(ctx, second)).To(Succeed())
			Expect(second.Seq).To(BeNumerically(">", record.Seq))
		})

		It("should preserve the recipient on referral entries", func() {
			recipientID := "observer-1"
			record, err := activity.NewRecord("doc-1", "reviewer-1", activity.KindReferral, "Referred to Anna Williams", &recipientID)
			Expect(err).NotTo(HaveOccurred())

			Expect(repo.Append(ctx, record)).To(Succeed())

			records, err := repo.ListByDocument(ctx, "doc-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].RecipientID).NotTo(BeNil())
			Expect(*records[0].RecipientID).To(Equal("observer-1"))
		})
	})

	Describe("ListByDocument", func() {
		appendAt := func(documentID, detail string, occurredAt time.Time) *activity.ActivityRecord {
			record, err := activity.NewRecord(documentID, "sender-1", activity.KindComment, detail, nil)
			Expect(err).NotTo(HaveOccurred())
			record.OccurredAt = occurredAt
			Expect(repo.Append(ctx, record)).To(Succeed())
			return record
		}

		It("should order by timestamp regardless of insertion order", func() {
			base := time.Now().Truncate(time.Second)
			appendAt("doc-1", "third", base.Add(2*time.Second))
			appendAt("doc-1", "first", base)
			appendAt("doc-1", "second", base.Add(time.Second))

			records, err := repo.ListByDocument(ctx, "doc-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(3))
			Expect(records[0].Detail).To(Equal("first"))
			Expect(records[1].Detail).To(Equal("second"))
			Expect(records[2].Detail).To(Equal("third"))
		})

		It("should break timestamp ties by insertion sequence", func() {
			at := time.Now().Truncate(time.Second)
			appendAt("doc-1", "earlier insert", at)
			appendAt("doc-1", "later insert", at)

			records, err := repo.ListByDocument(ctx, "doc-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].Detail).To(Equal("earlier insert"))
			Expect(records[1].Detail).To(Equal("later insert"))
		})

		It("should only return the requested document's entries", func() {
			appendAt("doc-1", "mine", time.Now())
			appendAt("doc-2", "other", time.Now())

			records, err := repo.ListByDocument(ctx, "doc-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Detail).To(Equal("mine"))
		})

		It("should return an empty trail for an unknown document", func() {
			records, err := repo.ListByDocument(ctx, "missing")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(BeEmpty())
		})
	})
})
