package document_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-chi/chi"

	internal "github.com/govflow/govflow/internal"
	"github.com/govflow/govflow/internal/activity"
	"github.com/govflow/govflow/internal/comment"
	"github.com/govflow/govflow/internal/document"
)

// Stub service returning canned results per call
type stubDocumentService struct {
	uploadResult     *document.Document
	uploadErr        error
	getResult        *document.DocumentDetail
	getErr           error
	transitionErr    error
	referResult      *document.Referral
	referErr         error
	postCommentErr   error
	postCommentValue *comment.Comment
}

func (s *stubDocumentService) UploadDocument(ctx context.Context, ownerID string, dto document.UploadDocumentDTO) (*document.Document, error) {
	return s.uploadResult, s.uploadErr
}

func (s *stubDocumentService) GetDocument(ctx context.Context, documentID, actorID string) (*document.DocumentDetail, error) {
	return s.getResult, s.getErr
}

func (s *stubDocumentService) ListDocuments(ctx context.Context, actorID string, filter document.ListFilter) ([]*document.Document, error) {
	return nil, nil
}

func (s *stubDocumentService) Transition(ctx context.Context, documentID, newStatus, actorID string) error {
	return s.transitionErr
}

func (s *stubDocumentService) Refer(ctx context.Context, documentID, referrerID, recipientID, note string) (*document.Referral, error) {
	return s.referResult, s.referErr
}

func (s *stubDocumentService) PostComment(ctx context.Context, documentID, authorID, text string) (*comment.Comment, error) {
	return s.postCommentValue, s.postCommentErr
}

func (s *stubDocumentService) Trail(ctx context.Context, documentID string) ([]*activity.ActivityRecord, error) {
	return nil, nil
}

func (s *stubDocumentService) Comments(ctx context.Context, documentID string) ([]*comment.Comment, error) {
	return nil, nil
}

var _ = Describe("DocumentHandler", func() {
	var (
		handler *document.Handler
		stub    *stubDocumentService
		router  *chi.Mux
	)

	doRequest := func(method, path, actorID string, body interface{}) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		if actorID != "" {
			req = req.WithContext(internal.ContextWithActorID(req.Context(), actorID))
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	BeforeEach(func() {
		stub = &stubDocumentService{}
		handler = document.NewHandler(stub)

		router = chi.NewRouter()
		router.Route("/documents", func(r chi.Router) {
			r.Post("/", handler.UploadDocument)
			r.Get("/{id}", handler.GetDocument)
			r.Patch("/{id}/status", handler.UpdateStatus)
			r.Post("/{id}/referrals", handler.ReferDocument)
			r.Post("/{id}/comments", handler.PostComment)
		})
	})

	Describe("UploadDocument", func() {
		It("should return 201 with the created document", func() {
			stub.uploadResult = &document.Document{ID: "doc-1", Title: "Budget", Status: document.StatusPending}

			rec := doRequest(http.MethodPost, "/documents", "sender-1", map[string]string{"title": "Budget"})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var payload document.Document
			Expect(json.Unmarshal(rec.Body.Bytes(), &payload)).To(Succeed())
			Expect(payload.ID).To(Equal("doc-1"))
		})

		It("should return 401 without an actor", func() {
			rec := doRequest(http.MethodPost, "/documents", "", map[string]string{"title": "Budget"})
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should return 400 for a blank title", func() {
			rec := doRequest(http.MethodPost, "/documents", "sender-1", map[string]string{"title": "  "})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 403 when the role denies uploading", func() {
			stub.uploadErr = document.ErrPermissionDenied

			rec := doRequest(http.MethodPost, "/documents", "observer-1", map[string]string{"title": "Budget"})
			Expect(rec.Code).To(Equal(http.StatusForbidden))

			var resp struct {
				Error struct {
					Type string `json:"type"`
					Code string `json:"code"`
				} `json:"error"`
			}
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Error.Type).To(Equal("FORBIDDEN"))
			Expect(resp.Error.Code).To(Equal("PERMISSION_DENIED"))
		})
	})

	Describe("UpdateStatus", func() {
		It("should return 400 for an unknown status", func() {
			rec := doRequest(http.MethodPatch, "/documents/doc-1/status", "admin-1", map[string]string{"status": "archived"})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 404 when the document is missing", func() {
			stub.transitionErr = document.ErrDocumentNotFound

			rec := doRequest(http.MethodPatch, "/documents/missing/status", "admin-1", map[string]string{"status": "completed"})
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 409 when the document is busy", func() {
			stub.transitionErr = document.ErrBusy

			rec := doRequest(http.MethodPatch, "/documents/doc-1/status", "admin-1", map[string]string{"status": "completed"})
			Expect(rec.Code).To(Equal(http.StatusConflict))
		})
	})

	Describe("ReferDocument", func() {
		It("should return 201 with the referral", func() {
			stub.referResult = &document.Referral{ID: "ref-1", DocumentID: "doc-1", RecipientID: "observer-1"}

			rec := doRequest(http.MethodPost, "/documents/doc-1/referrals", "reviewer-1", map[string]string{"recipient_id": "observer-1"})
			Expect(rec.Code).To(Equal(http.StatusCreated))
		})

		It("should return 400 without a recipient", func() {
			rec := doRequest(http.MethodPost, "/documents/doc-1/referrals", "reviewer-1", map[string]string{"note": "no recipient"})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 422 for an unresolvable recipient", func() {
			stub.referErr = document.ErrUnknownRecipient

			rec := doRequest(http.MethodPost, "/documents/doc-1/referrals", "reviewer-1", map[string]string{"recipient_id": "nobody"})
			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
		})
	})

	Describe("PostComment", func() {
		It("should return 400 for a blank comment", func() {
			stub.postCommentErr = comment.ErrEmptyComment

			rec := doRequest(http.MethodPost, "/documents/doc-1/comments", "observer-1", map[string]string{"text": "  "})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 201 with the comment", func() {
			stub.postCommentValue = &comment.Comment{ID: "c-1", DocumentID: "doc-1", Text: "nice"}

			rec := doRequest(http.MethodPost, "/documents/doc-1/comments", "observer-1", map[string]string{"text": "nice"})
			Expect(rec.Code).To(Equal(http.StatusCreated))
		})
	})

	Describe("GetDocument", func() {
		It("should return 404 for a missing document", func() {
			stub.getErr = document.ErrDocumentNotFound

			rec := doRequest(http.MethodGet, "/documents/missing", "admin-1", nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})
})
