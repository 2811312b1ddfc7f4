package activity

import (
	"context"
	"log/slog"
)

// Repository defines the data access methods for the append-only trail.
type Repository interface {
	Append(ctx context.Context, record *ActivityRecord) error
	ListByDocument(ctx context.Context, documentID string) ([]*ActivityRecord, error)
}

// Service is the activity ledger: the canonical audit source for every
// document mutation.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Record validates and appends a single trail entry.
func (s *Service) Record(ctx context.Context, documentID, actorID, kind, detail string, recipientID *string) (*ActivityRecord, error) {
	record, err := NewRecord(documentID, actorID, kind, detail, recipientID)
	if err != nil {
		s.logger.Error("rejected malformed activity record",
			"document_id", documentID,
			"actor_id", actorID,
			"kind", kind,
			"error", err)
		return nil, err
	}

	if err := s.repo.Append(ctx, record); err != nil {
		s.logger.Error("failed to append activity record",
			"document_id", documentID,
			"kind", kind,
			"error", err)
		return nil, err
	}

	return record, nil
}

// Trail returns the document's full history oldest-to-newest, ordered by
// timestamp with insertion sequence breaking ties.
func (s *Service) Trail(ctx context.Context, documentID string) ([]*ActivityRecord, error) {
	records, err := s.repo.ListByDocument(ctx, documentID)
	if err != nil {
		s.logger.Error("failed to read trail", "document_id", documentID, "error", err)
		return nil, err
	}
	return records, nil
}
