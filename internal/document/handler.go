package document

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	internal "github.com/govflow/govflow/internal"
	"github.com/govflow/govflow/internal/activity"
	"github.com/govflow/govflow/internal/comment"
	"github.com/govflow/govflow/internal/transport"
	"github.com/govflow/govflow/pkg/logger"
)

type ServiceAPI interface {
	UploadDocument(ctx context.Context, ownerID string, dto UploadDocumentDTO) (*Document, error)
	GetDocument(ctx context.Context, documentID, actorID string) (*DocumentDetail, error)
	ListDocuments(ctx context.Context, actorID string, filter ListFilter) ([]*Document, error)
	Transition(ctx context.Context, documentID, newStatus, actorID string) error
	Refer(ctx context.Context, documentID, referrerID, recipientID, note string) (*Referral, error)
	PostComment(ctx context.Context, documentID, authorID, text string) (*comment.Comment, error)
	Trail(ctx context.Context, documentID string) ([]*activity.ActivityRecord, error)
	Comments(ctx context.Context, documentID string) ([]*comment.Comment, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	actorID := internal.ActorIDFromContext(r.Context())
	if actorID == "" {
		h.Logger.Error("UploadDocument: actor not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unknown actor")
		return
	}

	var dto UploadDocumentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UploadDocument: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.Logger.Error("UploadDocument: validation error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	doc, err := h.Service.UploadDocument(r.Context(), actorID, dto)
	if err != nil {
		h.Logger.Error("UploadDocument: service error", "error", err, "actor_id", actorID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("UploadDocument: document created",
		"document_id", doc.ID,
		"owner_id", actorID,
		"status", doc.Status)

	h.WriteJSON(w, http.StatusCreated, doc)
}

func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	actorID := internal.ActorIDFromContext(r.Context())
	if actorID == "" {
		h.Logger.Error("GetDocument: actor not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unknown actor")
		return
	}

	documentID := chi.URLParam(r, "id")

	detail, err := h.Service.GetDocument(r.Context(), documentID, actorID)
	if err != nil {
		h.Logger.Error("GetDocument: service error", "error", err, "document_id", documentID, "actor_id", actorID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	actorID := internal.ActorIDFromContext(r.Context())
	if actorID == "" {
		h.Logger.Error("ListDocuments: actor not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unknown actor")
		return
	}

	filter := ListFilter{
		Status:     r.URL.Query().Get("status"),
		Department: r.URL.Query().Get("department"),
		Limit:      20,
		Offset:     0,
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			filter.Limit = l
		}
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			filter.Offset = o
		}
	}

	docs, err := h.Service.ListDocuments(r.Context(), actorID, filter)
	if err != nil {
		h.Logger.Error("ListDocuments: service error", "error", err, "actor_id", actorID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"documents": docs,
		"limit":     filter.Limit,
		"offset":    filter.Offset,
	})
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actorID := internal.ActorIDFromContext(r.Context())
	if actorID == "" {
		h.Logger.Error("UpdateStatus: actor not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unknown actor")
		return
	}

	documentID := chi.URLParam(r, "id")

	var dto TransitionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateStatus: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.Logger.Error("UpdateStatus: validation error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	if err := h.Service.Transition(r.Context(), documentID, dto.Status, actorID); err != nil {
		h.Logger.Error("UpdateStatus: service error", "error", err, "document_id", documentID, "actor_id", actorID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("UpdateStatus: document transitioned",
		"document_id", documentID,
		"actor_id", actorID,
		"status", dto.Status)

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": dto.Status})
}

func (h *Handler) ReferDocument(w http.ResponseWriter, r *http.Request) {
	actorID := internal.ActorIDFromContext(r.Context())
	if actorID == "" {
		h.Logger.Error("ReferDocument: actor not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unknown actor")
		return
	}

	documentID := chi.URLParam(r, "id")

	var dto ReferDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("ReferDocument: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.Logger.Error("ReferDocument: validation error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	ref, err := h.Service.Refer(r.Context(), documentID, actorID, dto.RecipientID, dto.Note)
	if err != nil {
		h.Logger.Error("ReferDocument: service error",
			"error", err,
			"document_id", documentID,
			"actor_id", actorID,
			"recipient_id", dto.RecipientID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("ReferDocument: document referred",
		"document_id", documentID,
		"referral_id", ref.ID,
		"recipient_id", ref.RecipientID)

	h.WriteJSON(w, http.StatusCreated, ref)
}

func (h *Handler) PostComment(w http.ResponseWriter, r *http.Request) {
	actorID := internal.ActorIDFromContext(r.Context())
	if actorID == "" {
		h.Logger.Error("PostComment: actor not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unknown actor")
		return
	}

	documentID := chi.URLParam(r, "id")

	var dto PostCommentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("PostComment: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.PostComment(r.Context(), documentID, actorID, dto.Text)
	if err != nil {
		h.Logger.Error("PostComment: service error", "error", err, "document_id", documentID, "actor_id", actorID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("PostComment: comment posted",
		"document_id", documentID,
		"comment_id", c.ID,
		"author_id", actorID)

	h.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "id")

	comments, err := h.Service.Comments(r.Context(), documentID)
	if err != nil {
		h.Logger.Error("GetComments: service error", "error", err, "document_id", documentID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"comments": comments})
}

func (h *Handler) GetTrail(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "id")

	records, err := h.Service.Trail(r.Context(), documentID)
	if err != nil {
		h.Logger.Error("GetTrail: service error", "error", err, "document_id", documentID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"trail": records})
}
