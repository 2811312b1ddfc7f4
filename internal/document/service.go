package document

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/govflow/govflow/internal/activity"
	"github.com/govflow/govflow/internal/comment"
	"github.com/govflow/govflow/internal/core/events"
	"github.com/govflow/govflow/internal/identity"
	"github.com/govflow/govflow/internal/permission"
)

// Repository defines the data access methods for documents and their owned
// records. The WithActivity methods apply the mutation and its trail entry
// as one atomic unit; a failure applies neither.
type Repository interface {
	CreateWithActivity(ctx context.Context, doc *Document, record *activity.ActivityRecord) error
	GetByID(ctx context.Context, id string) (*Document, error)
	List(ctx context.Context, filter ListFilter) ([]*Document, error)
	UpdateStatusWithActivity(ctx context.Context, id, newStatus string, record *activity.ActivityRecord) error
	CreateReferralWithActivity(ctx context.Context, ref *Referral, newStatus string, record *activity.ActivityRecord) error
	CreateCommentWithActivity(ctx context.Context, c *comment.Comment, record *activity.ActivityRecord) error
	LatestReferral(ctx context.Context, documentID string) (*Referral, error)
}

// IdentityStore is the externally-owned identity and role store.
type IdentityStore interface {
	GetUser(ctx context.Context, id string) (*identity.User, error)
	ResolveRecipient(ctx context.Context, id string) (*identity.Recipient, error)
}

// LedgerAPI reads a document's trail.
type LedgerAPI interface {
	Trail(ctx context.Context, documentID string) ([]*activity.ActivityRecord, error)
}

// CommentsAPI reads a document's comment thread.
type CommentsAPI interface {
	List(ctx context.Context, documentID string) ([]*comment.Comment, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Service is the document workflow engine: it validates who may act, moves
// documents between statuses, routes referrals and keeps the activity
// ledger as the canonical history of it all.
type Service struct {
	repo       Repository
	identities IdentityStore
	ledger     LedgerAPI
	comments   CommentsAPI
	bus        EventPublisher
	locks      *lockTable
	logger     *slog.Logger
}

func NewService(repo Repository, identities IdentityStore, ledger LedgerAPI, comments CommentsAPI, bus EventPublisher, lockTimeout time.Duration, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		identities: identities,
		ledger:     ledger,
		comments:   comments,
		bus:        bus,
		locks:      newLockTable(lockTimeout),
		logger:     logger,
	}
}

// authorize resolves the actor and checks the policy table. The system
// actor is trusted automation and bypasses the table.
func (s *Service) authorize(ctx context.Context, actorID string, action permission.Action, doc *Document) (*identity.User, error) {
	if actorID == activity.ActorSystem {
		return nil, nil
	}

	actor, err := s.identities.GetUser(ctx, actorID)
	if err != nil {
		s.logger.Warn("actor did not resolve", "actor_id", actorID, "action", action)
		return nil, err
	}

	role, ok := permission.ParseRole(actor.Role)
	if !ok {
		s.logger.Warn("actor has unknown role", "actor_id", actorID, "role", actor.Role)
		return nil, ErrPermissionDenied
	}

	owns := doc != nil && doc.OwnerID == actorID
	if !permission.Can(role, action, owns) {
		s.logger.Warn("action denied",
			"actor_id", actorID,
			"role", actor.Role,
			"action", action,
			"owns_document", owns)
		return nil, ErrPermissionDenied
	}

	return actor, nil
}

// UploadDocument registers document metadata on behalf of owner and writes
// the upload trail entry. The new document starts out pending.
func (s *Service) UploadDocument(ctx context.Context, ownerID string, dto UploadDocumentDTO) (*Document, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("upload validation failed", "error", err, "owner_id", ownerID)
		return nil, err
	}

	owner, err := s.authorize(ctx, ownerID, permission.ActionUpload, nil)
	if err != nil {
		return nil, err
	}

	department := dto.Department
	if department == "" && owner != nil {
		department = owner.Department
	}

	now := time.Now()
	doc := &Document{
		ID:          uuid.New().String(),
		Title:       dto.Title,
		Description: strings.TrimSpace(dto.Description),
		DocType:     dto.DocType,
		OwnerID:     ownerID,
		Status:      StatusPending,
		Department:  department,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	record, err := activity.NewRecord(doc.ID, ownerID, activity.KindUpload, "Document created and uploaded", nil)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateWithActivity(ctx, doc, record); err != nil {
		s.logger.Error("failed to create document", "error", err, "owner_id", ownerID)
		return nil, err
	}

	s.logger.Info("document uploaded",
		"document_id", doc.ID,
		"owner_id", ownerID,
		"title", doc.Title)

	s.bus.Publish(ctx, events.NewDocumentUploadedEvent(doc.ID, ownerID, doc.Title))

	return doc, nil
}

// Transition moves the document to newStatus and appends the status-change
// trail entry as one unit under the document's lock.
func (s *Service) Transition(ctx context.Context, documentID, newStatus, actorID string) error {
	if !ValidStatus(newStatus) {
		s.logger.Warn("rejected transition to unknown status",
			"document_id", documentID,
			"status", newStatus)
		return ErrInvalidStatus
	}

	release, err := s.locks.acquire(ctx, documentID)
	if err != nil {
		return err
	}
	defer release()

	doc, err := s.repo.GetByID(ctx, documentID)
	if err != nil {
		return ErrDocumentNotFound
	}

	if _, err := s.authorize(ctx, actorID, permission.ActionChangeStatus, doc); err != nil {
		return err
	}

	oldStatus := doc.Status
	detail := fmt.Sprintf("Status changed from %s to %s", oldStatus, newStatus)
	record, err := activity.NewRecord(documentID, actorID, activity.KindStatusChange, detail, nil)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateStatusWithActivity(ctx, documentID, newStatus, record); err != nil {
		s.logger.Error("failed to transition document",
			"document_id", documentID,
			"old_status", oldStatus,
			"new_status", newStatus,
			"error", err)
		return err
	}

	s.logger.Info("document transitioned",
		"document_id", documentID,
		"actor_id", actorID,
		"old_status", oldStatus,
		"new_status", newStatus)

	s.bus.Publish(ctx, events.NewStatusChangedEvent(documentID, actorID, oldStatus, newStatus))

	return nil
}

// Refer forwards the document to a user or department alias. It records an
// immutable referral, forces the status to referred regardless of the
// prior status, and appends one referral trail entry carrying the
// recipient, all as one unit under the document's lock.
func (s *Service) Refer(ctx context.Context, documentID, referrerID, recipientID, note string) (*Referral, error) {
	release, err := s.locks.acquire(ctx, documentID)
	if err != nil {
		return nil, err
	}
	defer release()

	doc, err := s.repo.GetByID(ctx, documentID)
	if err != nil {
		return nil, ErrDocumentNotFound
	}

	if _, err := s.authorize(ctx, referrerID, permission.ActionRefer, doc); err != nil {
		return nil, err
	}

	recipient, err := s.identities.ResolveRecipient(ctx, recipientID)
	if err != nil {
		s.logger.Warn("referral recipient did not resolve",
			"document_id", documentID,
			"recipient_id", recipientID)
		return nil, ErrUnknownRecipient
	}

	ref := &Referral{
		ID:          uuid.New().String(),
		DocumentID:  documentID,
		ReferrerID:  referrerID,
		RecipientID: recipient.ID,
		Note:        strings.TrimSpace(note),
		CreatedAt:   time.Now(),
	}

	detail := fmt.Sprintf("Referred to %s", recipient.Name)
	record, err := activity.NewRecord(documentID, referrerID, activity.KindReferral, detail, &recipient.ID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateReferralWithActivity(ctx, ref, StatusReferred, record); err != nil {
		s.logger.Error("failed to refer document",
			"document_id", documentID,
			"recipient_id", recipient.ID,
			"error", err)
		return nil, err
	}

	s.logger.Info("document referred",
		"document_id", documentID,
		"referrer_id", referrerID,
		"recipient_id", recipient.ID,
		"recipient_kind", recipient.Kind)

	s.bus.Publish(ctx, events.NewDocumentReferredEvent(documentID, ref.ID, referrerID, recipient.ID))

	return ref, nil
}

// PostComment appends a remark and its trail entry as one unit under the
// document's lock. Comments never touch workflow status.
func (s *Service) PostComment(ctx context.Context, documentID, authorID, text string) (*comment.Comment, error) {
	c, err := comment.NewComment(documentID, authorID, text)
	if err != nil {
		return nil, err
	}

	release, err := s.locks.acquire(ctx, documentID)
	if err != nil {
		return nil, err
	}
	defer release()

	if _, err := s.repo.GetByID(ctx, documentID); err != nil {
		return nil, ErrDocumentNotFound
	}

	if _, err := s.authorize(ctx, authorID, permission.ActionComment, nil); err != nil {
		return nil, err
	}

	record, err := activity.NewRecord(documentID, authorID, activity.KindComment, "Added comment", nil)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateCommentWithActivity(ctx, c, record); err != nil {
		s.logger.Error("failed to post comment",
			"document_id", documentID,
			"author_id", authorID,
			"error", err)
		return nil, err
	}

	s.logger.Info("comment posted",
		"document_id", documentID,
		"author_id", authorID,
		"comment_id", c.ID)

	s.bus.Publish(ctx, events.NewCommentPostedEvent(documentID, c.ID, authorID))

	return c, nil
}

// GetDocument returns the document with its current assignee.
func (s *Service) GetDocument(ctx context.Context, documentID, actorID string) (*DocumentDetail, error) {
	doc, err := s.repo.GetByID(ctx, documentID)
	if err != nil {
		return nil, ErrDocumentNotFound
	}

	if _, err := s.authorize(ctx, actorID, permission.ActionView, doc); err != nil {
		return nil, err
	}

	detail := &DocumentDetail{Document: doc}
	if ref, err := s.repo.LatestReferral(ctx, documentID); err == nil && ref != nil {
		detail.AssignedTo = ref
	}

	return detail, nil
}

// ListDocuments returns documents matching the filter.
func (s *Service) ListDocuments(ctx context.Context, actorID string, filter ListFilter) ([]*Document, error) {
	if _, err := s.authorize(ctx, actorID, permission.ActionView, nil); err != nil {
		return nil, err
	}

	if filter.Status != "" && !ValidStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	docs, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list documents", "error", err)
		return nil, err
	}

	return docs, nil
}

// Trail returns the document's full history, oldest first. Replaying it
// reconstructs every status change, referral, comment and upload.
func (s *Service) Trail(ctx context.Context, documentID string) ([]*activity.ActivityRecord, error) {
	if _, err := s.repo.GetByID(ctx, documentID); err != nil {
		return nil, ErrDocumentNotFound
	}
	return s.ledger.Trail(ctx, documentID)
}

// Comments returns the document's comment thread, newest first.
func (s *Service) Comments(ctx context.Context, documentID string) ([]*comment.Comment, error) {
	if _, err := s.repo.GetByID(ctx, documentID); err != nil {
		return nil, ErrDocumentNotFound
	}
	return s.comments.List(ctx, documentID)
}
