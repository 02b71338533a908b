package api

import (
	"net/http"
	"time"

	"jobboard/internal/api/handler"
	"jobboard/internal/api/middleware"
	"jobboard/internal/app/service"
	"jobboard/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	tokens *security.TokenService,
	authService *service.AuthService,
	jobService *service.JobService,
	adminService *service.AdminService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies the bearer token from "Authorization: Bearer T" and puts
	// claims in context. Rejection happens later, in the Authenticator,
	// so public routes still work without a token.
	r.Use(jwtauth.Verifier(tokens.Auth()))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handler.NewAuthHandler(authService)
	r.Route("/auth", authHandler.RegisterRoutes)

	jobHandler := handler.NewJobHandler(jobService)
	r.Route("/jobs", jobHandler.RegisterRoutes)

	adminHandler := handler.NewAdminHandler(adminService, jobService)
	r.Route("/admin", adminHandler.RegisterRoutes)

	return r
}
