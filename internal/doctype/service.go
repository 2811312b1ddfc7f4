package doctype

import (
	"log/slog"

	doctypeDatamodel "github.com/govflow/govflow/internal/core/datamodel/doctype"
)

type RepositoryAPI interface {
	GetAll() ([]*doctypeDatamodel.DocumentType, error)
	GetByName(name string) (*doctypeDatamodel.DocumentType, error)
	Create(documentType *doctypeDatamodel.DocumentType) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAllDocumentTypes() ([]DocumentTypeResponse, error) {
	dataTypes, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get document types from repository", "error", err)
		return nil, err
	}

	var responses []DocumentTypeResponse
	for _, dataType := range dataTypes {
		domainType := FromDataModel(dataType)
		if domainType.IsActiveType() {
			responses = append(responses, domainType.ToResponse())
		}
	}

	return responses, nil
}

// IsValidDocumentType reports whether name is an active document type.
func (s *Service) IsValidDocumentType(name string) bool {
	dataType, err := s.repo.GetByName(name)
	if err != nil {
		s.logger.Warn("error checking document type validity", "name", name, "error", err)
		return false
	}
	return dataType != nil && dataType.IsActive
}
