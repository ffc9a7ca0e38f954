package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	apperrors "github.com/E11SH/RENTHUB/pkg/errors"
	httputil "github.com/E11SH/RENTHUB/pkg/http"
	"github.com/E11SH/RENTHUB/pkg/logger"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller, as decoded from the bearer token.
type Identity struct {
	UserID string
	Role   string
}

// Middleware is the authorization gate: it verifies the bearer token on
// protected routes and injects the caller's Identity into the request
// context. Role and ownership policies compose on top of it in the
// services.
type Middleware struct {
	tokens *Tokens
	log    *logger.Logger
}

func NewMiddleware(tokens *Tokens, log *logger.Logger) *Middleware {
	return &Middleware{
		tokens: tokens,
		log:    log,
	}
}

// Authenticate rejects requests without a valid bearer token.
func (m *Middleware) Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		token, ok := extractBearerToken(r)
		if !ok {
			httputil.WriteError(w, apperrors.Unauthorized("No token, authorization denied"))
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			m.log.Warn("Token verification failed", "path", r.URL.Path, "error", err)
			httputil.WriteError(w, apperrors.Unauthorized("Token is not valid"))
			return
		}

		identity := Identity{
			UserID: claims.UserID,
			Role:   claims.Role,
		}
		ctx := context.WithValue(r.Context(), identityKey, identity)
		next(w, r.WithContext(ctx), ps)
	}
}

func extractBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// IdentityFromContext returns the authenticated caller. The second return
// is false on unauthenticated routes.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

// ContextWithIdentity exists for handler tests that bypass the middleware.
func ContextWithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}
