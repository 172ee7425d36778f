package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/studydesk/studydesk/internal/api/handler"
	customMiddleware "github.com/studydesk/studydesk/internal/api/middleware"
	"github.com/studydesk/studydesk/internal/config"
	"github.com/studydesk/studydesk/internal/domain"
	"github.com/studydesk/studydesk/internal/explain"
	mongodb "github.com/studydesk/studydesk/internal/repository/mongo"
	"github.com/studydesk/studydesk/internal/service"
)

// NewRouter creates and configures the HTTP router. A nil db wires the
// services without a store; store-backed endpoints then answer 503.
func NewRouter(cfg *config.Config, db *mongodb.DB) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS: any origin may call this API.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize repositories
	var sessionRepo domain.SessionRepository
	var messageRepo domain.MessageRepository
	if db != nil {
		sessionRepo = mongodb.NewSessionRepository(db)
		messageRepo = mongodb.NewMessageRepository(db)
	}

	// Initialize services
	sessionService := service.NewSessionService(sessionRepo)
	messageService := service.NewMessageService(messageRepo, sessionRepo, explain.Generate)

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(sessionService)
	messageHandler := handler.NewMessageHandler(messageService)

	r.Get("/", handler.Root)
	r.Get("/api/hello", handler.Hello)
	r.Get("/test", handler.StoreDiagnostic(db, cfg))

	r.Route("/api/sessions", func(r chi.Router) {
		r.Get("/", sessionHandler.List)
		r.Post("/", sessionHandler.Create)

		r.Route("/{sessionID}/messages", func(r chi.Router) {
			r.Get("/", messageHandler.List)
			r.Post("/", messageHandler.Post)
		})
	})

	return r
}
