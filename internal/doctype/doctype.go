package doctype

import (
	"time"

	doctypeDatamodel "github.com/govflow/govflow/internal/core/datamodel/doctype"
)

// DocumentType is a curated label for uploads (Policy Document, Budget
// Proposal, ...). Retiring a type hides it from pickers without touching
// documents already carrying it.
type DocumentType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func (t *DocumentType) IsActiveType() bool {
	return t.IsActive
}

func (t *DocumentType) ToResponse() DocumentTypeResponse {
	return DocumentTypeResponse{
		Name:        t.Name,
		Description: t.Description,
	}
}

func NewDocumentType(name, description string) *DocumentType {
	return &DocumentType{
		Name:        name,
		Description: description,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
}

func ToDataModel(t *DocumentType) *doctypeDatamodel.DocumentType {
	return &doctypeDatamodel.DocumentType{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
	}
}

func FromDataModel(t *doctypeDatamodel.DocumentType) *DocumentType {
	return &DocumentType{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
	}
}
