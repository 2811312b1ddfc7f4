package comment

import "time"

type Comment struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)"`
	DocumentID string    `gorm:"column:document_id;not null;index"`
	AuthorID   string    `gorm:"column:author_id;not null"`
	Text       string    `gorm:"column:text;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime;index"`
}

func (Comment) TableName() string {
	return "comments"
}
