package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/govflow/govflow/internal/doctype"
	"github.com/govflow/govflow/internal/document"
	"github.com/govflow/govflow/internal/identity"
	"github.com/govflow/govflow/internal/transport/middleware"
	"github.com/govflow/govflow/internal/transport/swagger"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, documentHandler *document.Handler, identityHandler *identity.Handler, doctypeHandler *doctype.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.ActorContext)

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Public directory routes (no actor required)
		if doctypeHandler != nil {
			r.Get("/document-types", doctypeHandler.GetDocumentTypes)
		}
		if identityHandler != nil {
			r.Get("/recipients", identityHandler.ListRecipients)
			r.Get("/users/{id}", identityHandler.GetUser)
		}

		// Workflow routes require a resolved actor
		if documentHandler != nil {
			r.Group(func(pr chi.Router) {
				pr.Use(middleware.RequireActor)

				pr.Route("/documents", func(dr chi.Router) {
					dr.Post("/", documentHandler.UploadDocument)    // POST /documents
					dr.Get("/", documentHandler.ListDocuments)      // GET /documents
					dr.Get("/{id}", documentHandler.GetDocument)    // GET /documents/:id

					dr.Patch("/{id}/status", documentHandler.UpdateStatus)   // PATCH /documents/:id/status
					dr.Post("/{id}/referrals", documentHandler.ReferDocument) // POST /documents/:id/referrals
					dr.Post("/{id}/comments", documentHandler.PostComment)    // POST /documents/:id/comments
					dr.Get("/{id}/comments", documentHandler.GetComments)     // GET /documents/:id/comments
					dr.Get("/{id}/trail", documentHandler.GetTrail)           // GET /documents/:id/trail
				})
			})
		}
	})
}
