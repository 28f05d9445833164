package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const SessionCookieName = "portal_session"

type contextKey string

const sessionIDKey contextKey = "session_id"

// EnsureSession guarantees every request carries a session identity. The
// cookie value is the key the workflow state lives under; a brand new visitor
// gets a fresh uuid and therefore a fresh LOGIN-stage workflow.
func EnsureSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string

		cookie, err := r.Cookie(SessionCookieName)
		if err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		} else {
			sessionID = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
