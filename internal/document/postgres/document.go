package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/govflow/govflow/internal/activity"
	"github.com/govflow/govflow/internal/comment"
	documentDatamodel "github.com/govflow/govflow/internal/core/datamodel/document"
	"github.com/govflow/govflow/internal/document"
)

// DocumentRepository persists documents together with their trail entries.
// Every mutating method runs inside a single transaction so a document
// change and its activity record land together or not at all.
type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) document.Repository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) CreateWithActivity(ctx context.Context, doc *document.Document, record *activity.ActivityRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(document.ToDataModel(doc)).Error; err != nil {
			return err
		}
		return appendRecord(tx, record)
	})
}

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*document.Document, error) {
	var dm documentDatamodel.Document
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, document.ErrDocumentNotFound
		}
		return nil, err
	}
	return document.FromDataModel(&dm), nil
}

func (r *DocumentRepository) List(ctx context.Context, filter document.ListFilter) ([]*document.Document, error) {
	query := r.db.WithContext(ctx).Model(&documentDatamodel.Document{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}

	var models []*documentDatamodel.Document
	err := query.Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return document.FromDataModelSlice(models), nil
}

func (r *DocumentRepository) UpdateStatusWithActivity(ctx context.Context, id, newStatus string, record *activity.ActivityRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&documentDatamodel.Document{}).
			Where("id = ?", id).
			Update("status", newStatus)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return document.ErrDocumentNotFound
		}
		return appendRecord(tx, record)
	})
}

func (r *DocumentRepository) CreateReferralWithActivity(ctx context.Context, ref *document.Referral, newStatus string, record *activity.ActivityRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&documentDatamodel.Document{}).
			Where("id = ?", ref.DocumentID).
			Update("status", newStatus)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return document.ErrDocumentNotFound
		}
		if err := tx.Create(document.ReferralToDataModel(ref)).Error; err != nil {
			return err
		}
		return appendRecord(tx, record)
	})
}

func (r *DocumentRepository) CreateCommentWithActivity(ctx context.Context, c *comment.Comment, record *activity.ActivityRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment.ToDataModel(c)).Error; err != nil {
			return err
		}
		return appendRecord(tx, record)
	})
}

func (r *DocumentRepository) LatestReferral(ctx context.Context, documentID string) (*document.Referral, error) {
	var dm documentDatamodel.Referral
	err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("created_at DESC").
		First(&dm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return document.ReferralFromDataModel(&dm), nil
}

// appendRecord writes the trail entry inside the caller's transaction and
// copies the store-assigned sequence back onto the domain record.
func appendRecord(tx *gorm.DB, record *activity.ActivityRecord) error {
	dm := activity.ToDataModel(record)
	if err := tx.Create(dm).Error; err != nil {
		return err
	}
	record.Seq = dm.Seq
	return nil
}
