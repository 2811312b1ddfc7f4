package document

import (
	"strings"

	"github.com/govflow/govflow/internal/core/common/validation"
)

// UploadDocumentDTO carries document metadata; the file itself travels
// through the external upload service.
type UploadDocumentDTO struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description,omitempty"`
	DocType     string `json:"doc_type,omitempty"`
	Department  string `json:"department,omitempty"`
}

func (dto *UploadDocumentDTO) Validate() error {
	dto.Title = strings.TrimSpace(dto.Title)
	return validation.NewValidator().
		Required("title", dto.Title).
		MaxLen("title", dto.Title, 200).
		Validate()
}

type TransitionDTO struct {
	Status string `json:"status" validate:"required,oneof=pending in-review referred completed"`
}

func (dto TransitionDTO) Validate() error {
	return validation.NewValidator().
		Required("status", dto.Status).
		OneOf("status", dto.Status, []string{StatusPending, StatusInReview, StatusReferred, StatusCompleted}).
		Validate()
}

type ReferDTO struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Note        string `json:"note,omitempty"`
}

func (dto ReferDTO) Validate() error {
	return validation.NewValidator().
		Required("recipient_id", dto.RecipientID).
		Validate()
}

type PostCommentDTO struct {
	Text string `json:"text" validate:"required"`
}

// DocumentDetail is the read model for a single document, including who it
// is currently assigned to (newest referral, if any).
type DocumentDetail struct {
	*Document
	AssignedTo *Referral `json:"assigned_to,omitempty"`
}

// ListFilter narrows document listings; zero values mean no filtering.
type ListFilter struct {
	Status     string
	Department string
	Limit      int
	Offset     int
}
