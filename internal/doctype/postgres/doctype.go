package postgres

import (
	doctypeDatamodel "github.com/govflow/govflow/internal/core/datamodel/doctype"
	"github.com/govflow/govflow/internal/doctype"
	"gorm.io/gorm"
)

type DocumentTypeRepository struct {
	db *gorm.DB
}

func NewDocumentTypeRepository(db *gorm.DB) doctype.RepositoryAPI {
	return &DocumentTypeRepository{db: db}
}

func (r *DocumentTypeRepository) GetAll() ([]*doctypeDatamodel.DocumentType, error) {
	var documentTypes []*doctypeDatamodel.DocumentType
	err := r.db.Order("name ASC").Find(&documentTypes).Error
	return documentTypes, err
}

func (r *DocumentTypeRepository) GetByName(name string) (*doctypeDatamodel.DocumentType, error) {
	var dt doctypeDatamodel.DocumentType
	err := r.db.Where("name = ?", name).First(&dt).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &dt, nil
}

func (r *DocumentTypeRepository) Create(dt *doctypeDatamodel.DocumentType) error {
	return r.db.Create(dt).Error
}
