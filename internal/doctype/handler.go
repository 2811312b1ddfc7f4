package doctype

import (
	"net/http"

	"github.com/govflow/govflow/internal/transport"
)

type ServiceAPI interface {
	GetAllDocumentTypes() ([]DocumentTypeResponse, error)
	IsValidDocumentType(name string) bool
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) GetDocumentTypes(w http.ResponseWriter, r *http.Request) {
	documentTypes, err := h.Service.GetAllDocumentTypes()
	if err != nil {
		h.Logger.Error("GetDocumentTypes: failed to get document types", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get document types")
		return
	}

	h.WriteJSON(w, http.StatusOK, DocumentTypesResponse{
		DocumentTypes: documentTypes,
	})
}
