package activity_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/govflow/govflow/internal/activity"
)

func TestActivity(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Activity Suite")
}

// Mock repository for testing
type mockActivityRepository struct {
	records     []*activity.ActivityRecord
	appendError error
	listError   error
	nextSeq     int64
}

func newMockActivityRepository() *mockActivityRepository {
	return &mockActivityRepository{nextSeq: 1}
}

func (m *mockActivityRepository) Append(ctx context.Context, record *activity.ActivityRecord) error {
	if m.appendError != nil {
		return m.appendError
	}
	record.Seq = m.nextSeq
	m.nextSeq++
	m.records = append(m.records, record)
	return nil
}

func (m *mockActivityRepository) ListByDocument(ctx context.Context, documentID string) ([]*activity.ActivityRecord, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	var result []*activity.ActivityRecord
	for _, r := range m.records {
		if r.DocumentID == documentID {
			result = append(result, r)
		}
	}
	return result, nil
}

var _ = Describe("NewRecord", func() {
	It("should build a validated record with a fresh id", func() {
		record, err := activity.NewRecord("doc-1", "sender-1", activity.KindUpload, "Document created and uploaded", nil)

		Expect(err).ToNot(HaveOccurred())
		Expect(record.ID).ToNot(BeEmpty())
		Expect(record.DocumentID).To(Equal("doc-1"))
		Expect(record.Kind).To(Equal(activity.KindUpload))
		Expect(record.OccurredAt).ToNot(BeZero())
	})

	It("should trim the detail text", func() {
		record, err := activity.NewRecord("doc-1", "sender-1", activity.KindComment, "  Added comment  ", nil)

		Expect(err).ToNot(HaveOccurred())
		Expect(record.Detail).To(Equal("Added comment"))
	})

	It("should reject a blank detail", func() {
		record, err := activity.NewRecord("doc-1", "sender-1", activity.KindComment, "   ", nil)

		Expect(err).To(MatchError(activity.ErrInvalidRecord))
		Expect(record).To(BeNil())
	})

	It("should reject an unknown kind", func() {
		record, err := activity.NewRecord("doc-1", "sender-1", "deletion", "Deleted", nil)

		Expect(err).To(MatchError(activity.ErrInvalidKind))
		Expect(record).To(BeNil())
	})
})

var _ = Describe("ActivityService", func() {
	var (
		service  *activity.Service
		mockRepo *mockActivityRepository
		ctx      context.Context
	)

	BeforeEach(func() {
		mockRepo = newMockActivityRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = activity.NewService(mockRepo, logger)
		ctx = context.Background()
	})

	Describe("Record", func() {
		It("should validate and append the entry", func() {
			record, err := service.Record(ctx, "doc-1", "sender-1", activity.KindUpload, "Document created and uploaded", nil)

			Expect(err).ToNot(HaveOccurred())
			Expect(record.Seq).To(Equal(int64(1)))
			Expect(mockRepo.records).To(HaveLen(1))
		})

		It("should not append a malformed entry", func() {
			record, err := service.Record(ctx, "doc-1", "sender-1", activity.KindUpload, "  ", nil)

			Expect(err).To(MatchError(activity.ErrInvalidRecord))
			Expect(record).To(BeNil())
			Expect(mockRepo.records).To(BeEmpty())
		})

		It("should propagate repository failures", func() {
			mockRepo.appendError = errors.New("disk full")

			_, err := service.Record(ctx, "doc-1", "sender-1", activity.KindUpload, "Document created and uploaded", nil)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Trail", func() {
		It("should return the document's entries", func() {
			_, err := service.Record(ctx, "doc-1", "sender-1", activity.KindUpload, "Document created and uploaded", nil)
			Expect(err).ToNot(HaveOccurred())
			_, err = service.Record(ctx, "doc-2", "sender-1", activity.KindUpload, "Document created and uploaded", nil)
			Expect(err).ToNot(HaveOccurred())

			trail, err := service.Trail(ctx, "doc-1")
			Expect(err).ToNot(HaveOccurred())
			Expect(trail).To(HaveLen(1))
		})
	})
})
