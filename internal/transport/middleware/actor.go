package middleware

import (
	"net/http"

	internal "github.com/govflow/govflow/internal"
	"github.com/govflow/govflow/pkg/logger"
)

// ActorContext copies the caller identity from the X-Actor-ID header into
// the request context. Session handling lives outside this service; by the
// time a request arrives here the gateway has already authenticated it.
func ActorContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID := r.Header.Get("X-Actor-ID")

		ctx := internal.ContextWithActorID(r.Context(), actorID)
		ctx = logger.With(ctx, "actorID", actorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireActor rejects requests that carry no actor identity. Fine-grained
// checks against the permission table happen in the service layer.
func RequireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if internal.ActorIDFromContext(r.Context()) == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
