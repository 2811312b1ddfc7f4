package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeDocumentUploaded = "document.uploaded"
	EventTypeDocumentReferred = "document.referred"
	EventTypeStatusChanged    = "document.status_changed"
	EventTypeCommentPosted    = "document.comment_posted"
)

type DocumentUploadedEvent struct {
	BaseEvent
	DocumentID string `json:"document_id"`
	OwnerID    string `json:"owner_id"`
	Title      string `json:"title"`
}

func NewDocumentUploadedEvent(documentID, ownerID, title string) *DocumentUploadedEvent {
	return &DocumentUploadedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeDocumentUploaded,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"document_id": documentID,
				"owner_id":    ownerID,
				"title":       title,
			},
		},
		DocumentID: documentID,
		OwnerID:    ownerID,
		Title:      title,
	}
}

type DocumentReferredEvent struct {
	BaseEvent
	DocumentID  string `json:"document_id"`
	ReferralID  string `json:"referral_id"`
	ReferrerID  string `json:"referrer_id"`
	RecipientID string `json:"recipient_id"`
}

func NewDocumentReferredEvent(documentID, referralID, referrerID, recipientID string) *DocumentReferredEvent {
	return &DocumentReferredEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeDocumentReferred,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"document_id":  documentID,
				"referral_id":  referralID,
				"referrer_id":  referrerID,
				"recipient_id": recipientID,
			},
		},
		DocumentID:  documentID,
		ReferralID:  referralID,
		ReferrerID:  referrerID,
		RecipientID: recipientID,
	}
}

type StatusChangedEvent struct {
	BaseEvent
	DocumentID string `json:"document_id"`
	ActorID    string `json:"actor_id"`
	OldStatus  string `json:"old_status"`
	NewStatus  string `json:"new_status"`
}

func NewStatusChangedEvent(documentID, actorID, oldStatus, newStatus string) *StatusChangedEvent {
	return &StatusChangedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeStatusChanged,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"document_id": documentID,
				"actor_id":    actorID,
				"old_status":  oldStatus,
				"new_status":  newStatus,
			},
		},
		DocumentID: documentID,
		ActorID:    actorID,
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
	}
}

type CommentPostedEvent struct {
	BaseEvent
	DocumentID string `json:"document_id"`
	CommentID  string `json:"comment_id"`
	AuthorID   string `json:"author_id"`
}

func NewCommentPostedEvent(documentID, commentID, authorID string) *CommentPostedEvent {
	return &CommentPostedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeCommentPosted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"document_id": documentID,
				"comment_id":  commentID,
				"author_id":   authorID,
			},
		},
		DocumentID: documentID,
		CommentID:  commentID,
		AuthorID:   authorID,
	}
}
