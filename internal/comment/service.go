package comment

import (
	"context"
	"log/slog"
)

// Repository defines the data access methods for comment threads.
type Repository interface {
	Create(ctx context.Context, c *Comment) error
	ListByDocument(ctx context.Context, documentID string) ([]*Comment, error)
}

// Service owns the append-only comment thread of a document. Posting goes
// through the workflow engine so the matching trail entry is written in
// the same unit.
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

// Append persists an already validated comment.
func (s *Service) Append(ctx context.Context, c *Comment) error {
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("failed to append comment",
			"document_id", c.DocumentID,
			"author_id", c.AuthorID,
			"error", err)
		return err
	}
	return nil
}

// List returns the document's comments newest-first.
func (s *Service) List(ctx context.Context, documentID string) ([]*Comment, error) {
	comments, err := s.repo.ListByDocument(ctx, documentID)
	if err != nil {
		s.logger.Error("failed to list comments", "document_id", documentID, "error", err)
		return nil, err
	}
	return comments, nil
}
