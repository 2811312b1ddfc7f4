package document

import (
	"time"

	internal "github.com/govflow/govflow/internal"
	documentDatamodel "github.com/govflow/govflow/internal/core/datamodel/document"
)

// Document statuses. completed is deliberately not terminal: any status can
// be revisited, matching the workflow this engine replaces.
const (
	StatusPending   = "pending"
	StatusInReview  = "in-review"
	StatusReferred  = "referred"
	StatusCompleted = "completed"
)

// ValidStatus reports whether status is one of the four workflow statuses.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInReview, StatusReferred, StatusCompleted:
		return true
	}
	return false
}

// Document is the aggregate root: referrals, comments and trail entries
// belong to it and never outlive it.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DocType     string    `json:"doc_type"`
	OwnerID     string    `json:"owner_id"`
	Status      string    `json:"status"`
	Department  string    `json:"department"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Referral is evidence, not mutable state: once created it never changes.
// The newest referral for a document decides who it is assigned to.
type Referral struct {
	ID          string    `json:"id"`
	DocumentID  string    `json:"document_id"`
	ReferrerID  string    `json:"referrer_id"`
	RecipientID string    `json:"recipient_id"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Domain errors. These carry their HTTP mapping, so handlers hand them to
// HandleServiceError unchanged.
var (
	ErrDocumentNotFound = internal.ErrDocumentNotFound
	ErrPermissionDenied = internal.ErrPermissionDenied
	ErrInvalidStatus    = internal.ErrInvalidStatus
	ErrUnknownRecipient = internal.ErrUnknownRecipient
	ErrBusy             = internal.ErrBusy
)

func ToDataModel(d *Document) *documentDatamodel.Document {
	return &documentDatamodel.Document{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		DocType:     d.DocType,
		OwnerID:     d.OwnerID,
		Status:      d.Status,
		Department:  d.Department,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func FromDataModel(d *documentDatamodel.Document) *Document {
	return &Document{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		DocType:     d.DocType,
		OwnerID:     d.OwnerID,
		Status:      d.Status,
		Department:  d.Department,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func FromDataModelSlice(documents []*documentDatamodel.Document) []*Document {
	result := make([]*Document, len(documents))
	for i, d := range documents {
		result[i] = FromDataModel(d)
	}
	return result
}

func ReferralToDataModel(r *Referral) *documentDatamodel.Referral {
	return &documentDatamodel.Referral{
		ID:          r.ID,
		DocumentID:  r.DocumentID,
		ReferrerID:  r.ReferrerID,
		RecipientID: r.RecipientID,
		Note:        r.Note,
		CreatedAt:   r.CreatedAt,
	}
}

func ReferralFromDataModel(r *documentDatamodel.Referral) *Referral {
	return &Referral{
		ID:          r.ID,
		DocumentID:  r.DocumentID,
		ReferrerID:  r.ReferrerID,
		RecipientID: r.RecipientID,
		Note:        r.Note,
		CreatedAt:   r.CreatedAt,
	}
}
