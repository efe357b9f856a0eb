package middleware

import (
	"net/http"

	"github.com/denmor86/paytik/internal/helpers"
	"github.com/denmor86/paytik/internal/logger"
)

// RequireRole - пропускает только запросы с одной из указанных ролей в токене.
// Ставится после jwtauth.Verifier и jwtauth.Authenticator.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, err := helpers.GetRole(r.Context())
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			alias, _ := helpers.GetAlias(r.Context())
			logger.Warn("Access denied:", alias, role, r.URL.Path)
			http.Error(w, "Forbidden", http.StatusForbidden)
		})
	}
}
