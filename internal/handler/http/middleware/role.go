package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/absensi-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/absensi-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireHRD requires the hrd or admin role.
func RequireHRD(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "HRD access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "HRD access required")
			return
		}

		if !employee.Role(roleStr).CanViewAllAttendance() {
			response.Forbidden(w, "HRD access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin requires the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Admin access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok || employee.Role(roleStr) != employee.RoleAdmin {
			response.Forbidden(w, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
