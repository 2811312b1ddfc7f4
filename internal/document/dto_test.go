package document_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "github.com/govflow/govflow/internal"
	"github.com/govflow/govflow/internal/document"
)

func fieldFailures(err error) []internal.ValidationError {
	appErr, ok := internal.IsAppError(err)
	Expect(ok).To(BeTrue(), "expected an AppError, got %T", err)
	Expect(appErr.Code).To(Equal(internal.ErrCodeValidationFailed))

	details, ok := appErr.Details.(internal.ValidationErrors)
	Expect(ok).To(BeTrue(), "expected field details on the validation error")
	return details.Errors
}

var _ = Describe("request validation", func() {
	Describe("UploadDocumentDTO", func() {
		It("should accept a trimmed title", func() {
			dto := document.UploadDocumentDTO{Title: "  Budget Proposal  "}
			Expect(dto.Validate()).To(Succeed())
			Expect(dto.Title).To(Equal("Budget Proposal"))
		})

		It("should report a blank title as a field failure", func() {
			dto := document.UploadDocumentDTO{Title: "   "}
			failures := fieldFailures(dto.Validate())
			Expect(failures).To(HaveLen(1))
			Expect(failures[0].Field).To(Equal("title"))
		})

		It("should report an overlong title as a field failure", func() {
			dto := document.UploadDocumentDTO{Title: strings.Repeat("x", 201)}
			failures := fieldFailures(dto.Validate())
			Expect(failures).To(HaveLen(1))
			Expect(failures[0].Field).To(Equal("title"))
			Expect(failures[0].Message).To(ContainSubstring("at most 200"))
		})
	})

	Describe("TransitionDTO", func() {
		It("should accept each workflow status", func() {
			for _, status := range []string{
				document.StatusPending,
				document.StatusInReview,
				document.StatusReferred,
				document.StatusCompleted,
			} {
				Expect(document.TransitionDTO{Status: status}.Validate()).To(Succeed())
			}
		})

		It("should report a missing status", func() {
			failures := fieldFailures(document.TransitionDTO{}.Validate())
			Expect(failures).To(HaveLen(1))
			Expect(failures[0].Field).To(Equal("status"))
		})

		It("should report an unknown status", func() {
			failures := fieldFailures(document.TransitionDTO{Status: "archived"}.Validate())
			Expect(failures).To(HaveLen(1))
			Expect(failures[0].Message).To(ContainSubstring("must be one of"))
		})
	})

	Describe("ReferDTO", func() {
		It("should report a blank recipient", func() {
			failures := fieldFailures(document.ReferDTO{RecipientID: "  "}.Validate())
			Expect(failures).To(HaveLen(1))
			Expect(failures[0].Field).To(Equal("recipient_id"))
		})

		It("should accept a recipient with an optional note", func() {
			dto := document.ReferDTO{RecipientID: "reviewer-1", Note: "please review"}
			Expect(dto.Validate()).To(Succeed())
		})
	})
})
