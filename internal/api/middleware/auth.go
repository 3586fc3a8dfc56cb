package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/deva-sh/keepnotes/internal/accounts"
	"github.com/deva-sh/keepnotes/internal/models"
	"github.com/deva-sh/keepnotes/internal/utils"
)

type contextKey string

const userKey contextKey = "user"

// Auth builds a middleware that resolves the Authorization bearer token to
// a user and stores it in the request context. 401 on anything else.
func Auth(mgr *accounts.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				utils.WriteUnauthorized(w, "Not authenticated")
				return
			}

			user, err := mgr.ResolveToken(token)
			if err != nil {
				utils.WriteUnauthorized(w, "Could not validate credentials")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the authenticated user placed by Auth, or nil.
func UserFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
