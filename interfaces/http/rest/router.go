// Package rest wires the HTTP surface of the hotel API.
package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"letstayinn-backend/domain"
	"letstayinn-backend/infrastructure/config"
	"letstayinn-backend/interfaces/http/rest/handlers"
	"letstayinn-backend/interfaces/http/rest/middleware"
	"letstayinn-backend/pkg/auth"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg       *config.Config
	validator *auth.JWTValidator
	auth      *handlers.AuthHandler
	rooms     *handlers.RoomHandler
	bookings  *handlers.BookingHandler
	requests  *handlers.ServiceRequestHandler
	employees *handlers.EmployeeHandler
	feedback  *handlers.FeedbackHandler
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	validator *auth.JWTValidator,
	authHandler *handlers.AuthHandler,
	roomHandler *handlers.RoomHandler,
	bookingHandler *handlers.BookingHandler,
	requestHandler *handlers.ServiceRequestHandler,
	employeeHandler *handlers.EmployeeHandler,
	feedbackHandler *handlers.FeedbackHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:       cfg,
		validator: validator,
		auth:      authHandler,
		rooms:     roomHandler,
		bookings:  bookingHandler,
		requests:  requestHandler,
		employees: employeeHandler,
		feedback:  feedbackHandler,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.letstayinn.com"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)

	router.Route("/api/v1", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/signup", rt.auth.Signup)
		r.Post("/auth/login", rt.auth.Login)
		r.Get("/rooms/available", rt.rooms.ListAvailable)
		r.Get("/feedbacks", rt.feedback.List)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(rt.validator, rt.logger))

			r.Get("/users/me", rt.auth.Profile)
			r.Post("/feedbacks", rt.feedback.Create)
			r.Get("/feedbacks/mine", rt.feedback.ListOwn)

			// Guest flows
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRoles(domain.RoleGuest))

				r.Post("/bookings", rt.bookings.Create)
				r.Get("/bookings", rt.bookings.ListOwn)
				r.Post("/bookings/{id}/cancel", rt.bookings.Cancel)
				r.Post("/service-requests", rt.requests.Create)
				r.Get("/service-requests", rt.requests.ListOwn)
			})

			// Staff flows
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRoles(
					domain.RoleKitchenStaff,
					domain.RoleCleaningStaff,
					domain.RoleManager,
				))

				r.Get("/service-requests/assigned", rt.requests.ListAssigned)
				r.Post("/service-requests/{id}/complete", rt.requests.Complete)
			})

			// Manager flows
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRoles(domain.RoleManager))

				r.Get("/rooms", rt.rooms.List)
				r.Post("/rooms", rt.rooms.Create)
				r.Get("/rooms/{number}", rt.rooms.Get)
				r.Put("/rooms/{number}", rt.rooms.Update)
				r.Delete("/rooms/{number}", rt.rooms.Delete)

				r.Get("/employees", rt.employees.List)
				r.Post("/employees", rt.employees.Create)
				r.Put("/employees/{id}/availability", rt.employees.UpdateAvailability)
				r.Delete("/employees/{id}", rt.employees.Delete)

				r.Get("/service-requests/pending", rt.requests.ListPending)
				r.Post("/service-requests/{id}/assign", rt.requests.Assign)
				r.Delete("/feedbacks/{id}", rt.feedback.Delete)
			})
		})
	})

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "letstayinn-backend",
	})
}
