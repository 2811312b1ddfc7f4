package document

import "time"

type Document struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	Title       string    `gorm:"column:title;not null"`
	Description string    `gorm:"column:description"`
	DocType     string    `gorm:"column:doc_type"`
	OwnerID     string    `gorm:"column:owner_id;not null;index"`
	Status      string    `gorm:"column:status;not null;default:pending;index"`
	Department  string    `gorm:"column:department;index"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Document) TableName() string {
	return "documents"
}

type Referral struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	DocumentID  string    `gorm:"column:document_id;not null;index"`
	ReferrerID  string    `gorm:"column:referrer_id;not null"`
	RecipientID string    `gorm:"column:recipient_id;not null"`
	Note        string    `gorm:"column:note"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Referral) TableName() string {
	return "referrals"
}
