package activity

import "time"

// Seq is the insertion sequence; trail ordering is occurred_at with seq as
// the tiebreak, so same-timestamp records replay in append order.
type ActivityRecord struct {
	Seq         int64     `gorm:"primaryKey;autoIncrement"`
	ID          string    `gorm:"column:record_id;type:varchar(36);uniqueIndex;not null"`
	DocumentID  string    `gorm:"column:document_id;not null;index"`
	ActorID     string    `gorm:"column:actor_id;not null"`
	Kind        string    `gorm:"column:kind;not null"`
	Detail      string    `gorm:"column:detail;not null"`
	RecipientID *string   `gorm:"column:recipient_id"`
	OccurredAt  time.Time `gorm:"column:occurred_at;not null;index"`
}

func (ActivityRecord) TableName() string {
	return "activity_records"
}
