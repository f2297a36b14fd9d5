package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/contactbook/internal/common"
	"github.com/dmitrijs2005/contactbook/internal/server/models"
)

type ctxKey string

const userKey ctxKey = "user"

// withAuth is the auth gate: the Authorization header carries the opaque
// session token verbatim, which must resolve to exactly one user row.
// The resolved user is attached to the request context.
func (s *Server) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			s.writeError(r.Context(), w, common.ErrorUnauthorized)
			return
		}

		user, err := s.users.GetByToken(r.Context(), token)
		if err != nil {
			s.writeError(r.Context(), w, err)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userFrom returns the user attached by withAuth. It is only called on
// routes behind the gate, so the value is always present.
func userFrom(ctx context.Context) *models.User {
	return ctx.Value(userKey).(*models.User)
}
