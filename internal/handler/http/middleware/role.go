package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/user"
	"github.com/yashxjain/hrsmile-backend-go/internal/handler/http/response"
)

// RequireHR requires the HR role
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}

		if user.ParseRole(role) != user.RoleHR {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
