package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/absensi-backend-go/internal/config"
	"github.com/cmlabs-hris/absensi-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/absensi-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/absensi-backend-go/internal/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterDeps struct {
	Config            *config.Config
	JWTService        jwt.Service
	AuthHandler       AuthHandler
	AttendanceHandler AttendanceHandler
	EmployeeHandler   EmployeeHandler

	// Limiter is nil when Redis is not configured.
	Limiter *ratelimit.Limiter
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "absensi-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", deps.Config.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Proof photos served straight from local storage
	if deps.Config.Storage.Type == "local" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.Config.Storage.BasePath)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", deps.AuthHandler.Login)
			r.Post("/refresh", deps.AuthHandler.Refresh)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				// Submission endpoints carry the rate limiter when Redis
				// is available.
				r.Group(func(r chi.Router) {
					if deps.Limiter != nil {
						r.Use(deps.Limiter.Middleware)
					}
					r.Post("/check-in", deps.AttendanceHandler.CheckIn)
					r.Post("/check-out", deps.AttendanceHandler.CheckOut)
				})

				r.Get("/today", deps.AttendanceHandler.Today)
				r.Get("/me", deps.AttendanceHandler.GetMyAttendance)

				// Cross-employee reporting
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHRD)
					r.Get("/", deps.AttendanceHandler.List)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", deps.EmployeeHandler.Me)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHRD)
					r.Get("/", deps.EmployeeHandler.List)
					r.Post("/", deps.EmployeeHandler.Create)
					r.Get("/{id}", deps.EmployeeHandler.Get)
					r.Put("/{id}", deps.EmployeeHandler.Update)
					r.Delete("/{id}", deps.EmployeeHandler.Deactivate)
				})
			})
		})
	})

	return r
}
