package api

import (
	"net/http"

	"github.com/kabirm/safarnama/internal/middleware"
	"github.com/kabirm/safarnama/internal/utils"
)

// MeHandler echoes the authenticated identity resolved by the auth
// middleware.
func MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			ae := utils.NewUnauthorized("authorization required")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, identity)
	}
}
