package doctype

type DocumentTypeResponse struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type DocumentTypesResponse struct {
	DocumentTypes []DocumentTypeResponse `json:"document_types"`
}
