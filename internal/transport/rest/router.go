package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/saifuldipak/eoffice/internal/auth"
	"github.com/saifuldipak/eoffice/internal/role"
	"github.com/saifuldipak/eoffice/internal/transport/middleware"
	"github.com/saifuldipak/eoffice/internal/transport/swagger"
	"github.com/saifuldipak/eoffice/internal/user"
)

// RegisterAllRoutes wires the HTTP surface. Every /users route, including
// role management, sits behind the user_admin guard.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authSvc auth.ServiceAPI, userHandler *user.Handler, roleHandler *role.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Recovery(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/users", func(ur chi.Router) {
			ur.Use(auth.Middleware(authSvc, logger))
			ur.Use(auth.RequireUserAdmin(logger))

			ur.Post("/", userHandler.CreateUser)
			ur.Get("/{username}", userHandler.GetUsers)
			ur.Delete("/{username}", userHandler.DeleteUser)
			ur.Patch("/{username}", userHandler.UpdateUser)

			ur.Post("/roles", roleHandler.CreateRole)
			ur.Post("/roles/permissions", roleHandler.AddPermission)
		})
	})
}
