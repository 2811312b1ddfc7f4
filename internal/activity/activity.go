package activity

import (
	"strings"
	"time"

	internal "github.com/govflow/govflow/internal"
	activityDatamodel "github.com/govflow/govflow/internal/core/datamodel/activity"
	"github.com/google/uuid"
)

// Kind classifies what a trail entry records.
const (
	KindUpload       = "upload"
	KindReferral     = "referral"
	KindComment      = "comment"
	KindStatusChange = "status-change"
)

// ActorSystem is recorded when a change is applied by automation rather
// than a named user.
const ActorSystem = "system"

// ActivityRecord is one immutable entry in a document's trail. Seq is
// assigned by the store at append time and breaks timestamp ties.
type ActivityRecord struct {
	ID          string    `json:"id"`
	Seq         int64     `json:"seq"`
	DocumentID  string    `json:"document_id"`
	ActorID     string    `json:"actor_id"`
	Kind        string    `json:"kind"`
	Detail      string    `json:"detail"`
	RecipientID *string   `json:"recipient_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

var (
	ErrInvalidRecord = internal.ErrInvalidRecord
	ErrInvalidKind   = internal.ErrInvalidKind
)

// ValidKind reports whether kind is one of the four trail entry kinds.
func ValidKind(kind string) bool {
	switch kind {
	case KindUpload, KindReferral, KindComment, KindStatusChange:
		return true
	}
	return false
}

// NewRecord builds a validated, unsaved trail entry.
func NewRecord(documentID, actorID, kind, detail string, recipientID *string) (*ActivityRecord, error) {
	if !ValidKind(kind) {
		return nil, ErrInvalidKind
	}
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return nil, ErrInvalidRecord
	}

	return &ActivityRecord{
		ID:          uuid.New().String(),
		DocumentID:  documentID,
		ActorID:     actorID,
		Kind:        kind,
		Detail:      detail,
		RecipientID: recipientID,
		OccurredAt:  time.Now(),
	}, nil
}

func ToDataModel(r *ActivityRecord) *activityDatamodel.ActivityRecord {
	return &activityDatamodel.ActivityRecord{
		Seq:         r.Seq,
		ID:          r.ID,
		DocumentID:  r.DocumentID,
		ActorID:     r.ActorID,
		Kind:        r.Kind,
		Detail:      r.Detail,
		RecipientID: r.RecipientID,
		OccurredAt:  r.OccurredAt,
	}
}

func FromDataModel(r *activityDatamodel.ActivityRecord) *ActivityRecord {
	return &ActivityRecord{
		ID:          r.ID,
		Seq:         r.Seq,
		DocumentID:  r.DocumentID,
		ActorID:     r.ActorID,
		Kind:        r.Kind,
		Detail:      r.Detail,
		RecipientID: r.RecipientID,
		OccurredAt:  r.OccurredAt,
	}
}

func FromDataModelSlice(records []*activityDatamodel.ActivityRecord) []*ActivityRecord {
	result := make([]*ActivityRecord, len(records))
	for i, r := range records {
		result[i] = FromDataModel(r)
	}
	return result
}
