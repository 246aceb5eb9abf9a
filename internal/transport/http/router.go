package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/vedran77/roomchat/internal/transport/http/handlers"
	"github.com/vedran77/roomchat/internal/transport/http/middleware"
)

type Deps struct {
	Log         *slog.Logger
	Tokens      middleware.TokenVerifier
	Auth        handlers.AuthService
	Users       handlers.UserService
	Messages    handlers.MessageService
	CORSOrigins []string
}

func NewRouter(d Deps) http.Handler {
	authHandler := handlers.NewAuthHandler(d.Auth, d.Log)
	userHandler := handlers.NewUserHandler(d.Users, d.Log)
	messageHandler := handlers.NewMessageHandler(d.Messages, d.Log)

	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.EchoRequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	// Public
	r.Get("/", handlers.Root)
	r.Get("/health", handlers.Health)
	r.Post("/api/signup", authHandler.Signup)
	r.Post("/api/login", authHandler.Login)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(d.Tokens, d.Log))

		r.Get("/api/me", userHandler.GetMe)
		r.Put("/api/me", userHandler.UpdateMe)
		r.Post("/api/messages", messageHandler.Post)
		r.Get("/api/messages", messageHandler.List)
	})

	return r
}
