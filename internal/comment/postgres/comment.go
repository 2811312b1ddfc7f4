package postgres

import (
	"context"

	"github.com/govflow/govflow/internal/comment"
	commentDatamodel "github.com/govflow/govflow/internal/core/datamodel/comment"
	"gorm.io/gorm"
)

// CommentRepository implements the comment.Repository interface using GORM
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) comment.Repository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	return r.db.WithContext(ctx).Create(comment.ToDataModel(c)).Error
}

// ListByDocument returns comments newest-first, the display order.
func (r *CommentRepository) ListByDocument(ctx context.Context, documentID string) ([]*comment.Comment, error) {
	var comments []*commentDatamodel.Comment
	err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comment.FromDataModelSlice(comments), nil
}
