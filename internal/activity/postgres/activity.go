package postgres

import (
	"context"

	"github.com/govflow/govflow/internal/activity"
	activityDatamodel "github.com/govflow/govflow/internal/core/datamodel/activity"
	"gorm.io/gorm"
)

// ActivityRepository implements the activity.Repository interface using GORM
type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) activity.Repository {
	return &ActivityRepository{db: db}
}

// Append inserts one trail entry. The store assigns the insertion sequence;
// it is copied back onto the domain record.
func (r *ActivityRepository) Append(ctx context.Context, record *activity.ActivityRecord) error {
	dm := activity.ToDataModel(record)
	dm.Seq = 0
	if err := r.db.WithContext(ctx).Create(dm).Error; err != nil {
		return err
	}
	record.Seq = dm.Seq
	return nil
}

func (r *ActivityRepository) ListByDocument(ctx context.Context, documentID string) ([]*activity.ActivityRecord, error) {
	var records []*activityDatamodel.ActivityRecord
	err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("occurred_at ASC").
		Order("seq ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return activity.FromDataModelSlice(records), nil
}
