package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	models "github.com/kabirm/safarnama/internal"
	"github.com/kabirm/safarnama/internal/utils"
	"github.com/kabirm/safarnama/pkg/logger"
)

type contextKey string

const identityKey contextKey = "identity"

// Claims carries the identity fields the auth provider embeds in its
// bearer tokens.
type Claims struct {
	Email    string `json:"email"`
	FullName string `json:"name"`
	jwt.RegisteredClaims
}

// RequireAuth validates the Bearer token and stores the caller Identity in
// the request context. Requests without a valid token get a 401.
func RequireAuth(secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.GetLogger()

		authHeader := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			ae := utils.NewUnauthorized("authorization required")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		claims := &Claims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !parsed.Valid || claims.Email == "" {
			log.Warnw("rejected bearer token", "path", r.URL.Path, "error", err)
			ae := utils.NewUnauthorized("invalid token")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		identity := models.Identity{
			Email:    claims.Email,
			FullName: claims.FullName,
			IsActive: true,
		}
		next(w, r.WithContext(WithIdentity(r.Context(), identity)))
	}
}

// WithIdentity returns a context carrying the caller identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the caller identity set by RequireAuth.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(models.Identity)
	return identity, ok
}
