package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/vesotel/worklog-management/internal/accessrequest"
	"github.com/vesotel/worklog-management/internal/company"
	"github.com/vesotel/worklog-management/internal/settings"
	"github.com/vesotel/worklog-management/internal/transport/middleware"
	"github.com/vesotel/worklog-management/internal/transport/swagger"
	"github.com/vesotel/worklog-management/internal/user"
	"github.com/vesotel/worklog-management/internal/worklog"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	workLogHandler *worklog.Handler,
	settingsHandler *settings.Handler,
	userHandler *user.Handler,
	companyHandler *company.Handler,
	requestHandler *accessrequest.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.UserContext)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Work log routes
		if workLogHandler != nil {
			r.Route("/work-logs", func(wr chi.Router) {
				wr.Post("/", workLogHandler.CreateWorkLog)  // POST /work-logs
				wr.Get("/", workLogHandler.ListWorkLogs)    // GET /work-logs
				wr.Get("/{id}", workLogHandler.GetWorkLog)  // GET /work-logs/:id
			})
		}

		// User routes, with per-user settings and work logs nested
		if userHandler != nil {
			r.Route("/users", func(ur chi.Router) {
				ur.Post("/", userHandler.CreateUser)     // POST /users
				ur.Get("/", userHandler.ListUsers)       // GET /users
				ur.Get("/{userID}", userHandler.GetUser) // GET /users/:id

				if settingsHandler != nil {
					ur.Get("/{userID}/settings", settingsHandler.GetSettings)    // GET /users/:id/settings
					ur.Put("/{userID}/settings", settingsHandler.UpsertSettings) // PUT /users/:id/settings
				}

				if workLogHandler != nil {
					ur.Get("/{userID}/work-logs", workLogHandler.ListUserWorkLogs) // GET /users/:id/work-logs
				}
			})
		}

		// Company routes
		if companyHandler != nil {
			r.Route("/companies", func(cr chi.Router) {
				cr.Post("/", companyHandler.CreateCompany)           // POST /companies
				cr.Get("/", companyHandler.ListCompanies)            // GET /companies
				cr.Get("/{id}", companyHandler.GetCompany)           // GET /companies/:id
				cr.Post("/{id}/members", companyHandler.AddMember)   // POST /companies/:id/members
				cr.Get("/{id}/members", companyHandler.ListMembers)  // GET /companies/:id/members
			})
		}

		// Access request routes
		if requestHandler != nil {
			r.Route("/access-requests", func(ar chi.Router) {
				ar.Post("/", requestHandler.CreateRequest)                // POST /access-requests
				ar.Get("/", requestHandler.ListRequests)                  // GET /access-requests
				ar.Patch("/{id}/approve", requestHandler.ApproveRequest)  // PATCH /access-requests/:id/approve
				ar.Patch("/{id}/reject", requestHandler.RejectRequest)    // PATCH /access-requests/:id/reject
			})
		}
	})
}
