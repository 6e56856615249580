package rest

import (
	"net/http"

	"gardenbook/application/commands/bus"
	querybus "gardenbook/application/queries/bus"
	"gardenbook/infrastructure/config"
	"gardenbook/interfaces/http/rest/handlers"
	"gardenbook/interfaces/http/rest/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg        *config.Config
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:        cfg,
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
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
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.cfg))

		r.Route("/gardens", func(r chi.Router) {
			gardenHandler := handlers.NewGardenHandler(rt.commandBus, rt.queryBus, rt.logger)
			r.Post("/", gardenHandler.CreateGarden)
			r.Get("/", gardenHandler.ListGardens)
			r.Get("/{gardenID}", gardenHandler.GetGarden)
			r.Put("/{gardenID}", gardenHandler.UpdateGarden)
			r.Delete("/{gardenID}", gardenHandler.DeleteGarden)

			// Plant list endpoints
			r.Get("/{gardenID}/plants", gardenHandler.ListPlants)
			r.Post("/{gardenID}/plants", gardenHandler.AddPlant)
			r.Delete("/{gardenID}/plants/{plant}", gardenHandler.RemovePlant)

			// Image endpoint
			r.Put("/{gardenID}/image", gardenHandler.UpdateImage)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
