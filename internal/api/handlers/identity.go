package handlers

import (
	"context"
	"net/http"
	"strings"
)

const UserIDHeader = "X-User-ID"

type userCtxKey struct{}

func withUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userCtxKey{}, id)
}

// UserID returns the authenticated caller stored by RequireUser.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userCtxKey{}).(string)
	return id
}

// RequireUser rejects requests without an X-User-ID header.
// Identity is asserted by an upstream gateway; no credentials are checked here.
func RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if id == "" {
			writeError(w, r, http.StatusUnauthorized, "missing "+UserIDHeader+" header")
			return
		}
		next(w, r.WithContext(withUserID(r.Context(), id)))
	}
}
