package httpapi

import (
	"context"
	"net/http"

	"github.com/dalesbridge/chronicle/internal/common"
	"github.com/dalesbridge/chronicle/internal/server/models"
)

type ctxKey string

const userKey ctxKey = "user"

// requireAuth resolves the access-token header to a user and stores it in
// the request context. Requests without a valid session get 401.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(common.AccessTokenHeaderName)
		if token == "" {
			s.writeError(w, r, common.ErrUnauthorized)
			return
		}

		user, err := s.users.GetCurrentUser(r.Context(), token)
		if err != nil {
			s.writeError(w, r, common.ErrUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin additionally demands the admin flag.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return s.requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := userFrom(r.Context()); user == nil || !user.IsAdmin {
			s.writeError(w, r, common.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func userFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
