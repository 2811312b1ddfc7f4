package identity

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/govflow/govflow/internal/transport"
	"github.com/govflow/govflow/pkg/logger"
)

type ServiceAPI interface {
	GetUser(ctx context.Context, id string) (*User, error)
	ListRecipients(ctx context.Context) ([]*Recipient, error)
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

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		h.WriteError(w, http.StatusBadRequest, "missing user ID")
		return
	}

	user, err := h.Service.GetUser(r.Context(), userID)
	if err != nil {
		h.Logger.Error("GetUser: service error", "error", err, "user_id", userID)
		h.WriteError(w, http.StatusNotFound, "user not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) ListRecipients(w http.ResponseWriter, r *http.Request) {
	recipients, err := h.Service.ListRecipients(r.Context())
	if err != nil {
		h.Logger.Error("ListRecipients: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list recipients")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"recipients": recipients,
	})
}
