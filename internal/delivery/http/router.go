package http

import (
	"net/http"

	"medical-scheduling-api/internal/delivery/http/handler"
	"medical-scheduling-api/internal/delivery/http/middleware"
	"medical-scheduling-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	entities           []handler.CrudRoutes
	auditLogHandler    *handler.AuditLogHandler
	healthHandler      *handler.HealthHandler
	loggingMiddleware  *middleware.LoggingMiddleware
	recoveryMiddleware *middleware.RecoveryMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	entities []handler.CrudRoutes,
	auditLogHandler *handler.AuditLogHandler,
	healthHandler *handler.HealthHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	recoveryMiddleware *middleware.RecoveryMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		entities:           entities,
		auditLogHandler:    auditLogHandler,
		healthHandler:      healthHandler,
		loggingMiddleware:  loggingMiddleware,
		recoveryMiddleware: recoveryMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

// Setup mounts every route and wraps the mux so request ids, panics and
// CORS preflights are handled even when no route matches.
func (r *Router) Setup() http.Handler {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Entity routes: /api/Patient, /api/Doctor, /api/Appointment
	for _, e := range r.entities {
		mountCrud(api, e)
	}

	// Audit trail (read only)
	api.HandleFunc("/AuditLog", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	api.HandleFunc("/AuditLog/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	// Recovery sits inside logging so a recovered panic is logged as a 500.
	var h http.Handler = r.router
	h = r.corsMiddleware.Handle(h)
	h = r.recoveryMiddleware.Handle(h)
	h = r.loggingMiddleware.Handle(h)
	h = middleware.RequestID(h)

	return h
}

// mountCrud registers the fixed PATCH paths before the {id} routes. Routes go
// on api with full paths: nested per-entity subrouters make mux drop the 405
// of an earlier subrouter once a later one fails to match.
func mountCrud(api *mux.Router, e handler.CrudRoutes) {
	base := "/" + e.EntityName()

	api.HandleFunc(base+"/update-partial", e.UpdatePartial).Methods(http.MethodPatch)
	api.HandleFunc(base+"/delete-logic", e.DeleteLogic).Methods(http.MethodPatch)

	api.HandleFunc(base, e.List).Methods(http.MethodGet)
	api.HandleFunc(base, e.Create).Methods(http.MethodPost)
	api.HandleFunc(base+"/{id}", e.Get).Methods(http.MethodGet)
	api.HandleFunc(base+"/{id}", e.Update).Methods(http.MethodPut)
	api.HandleFunc(base+"/{id}", e.Delete).Methods(http.MethodDelete)
}
