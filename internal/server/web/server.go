// Package web exposes the HTTP surface of SkillSwap: the JSON API, the
// session middleware and the server-rendered pages.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillswap/skillswap/internal/logging"
	"github.com/skillswap/skillswap/internal/server/services"
)

// Server wires the services into an HTTP router and runs it until the
// context is cancelled.
type Server struct {
	address    string
	logger     logging.Logger
	users      *services.UserService
	skills     *services.SkillService
	swaps      *services.SwapService
	messages   *services.MessageService
	secretKey  []byte
	sessionTTL time.Duration
	router     chi.Router
}

// NewServer constructs the HTTP server and builds its route table.
func NewServer(
	address string,
	l logging.Logger,
	us *services.UserService,
	ss *services.SkillService,
	ws *services.SwapService,
	ms *services.MessageService,
	secretKey string,
	sessionTTL time.Duration,
) (*Server, error) {
	s := &Server{
		address:    address,
		logger:     l.With("module", "web"),
		users:      us,
		skills:     ss,
		swaps:      ws,
		messages:   ms,
		secretKey:  []byte(secretKey),
		sessionTTL: sessionTTL,
	}

	if err := loadTemplates(); err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	// public pages and auth endpoints
	r.Get("/", s.homePage)
	r.Get("/register", s.registerPage)
	r.Post("/register", s.handleRegister)
	r.Get("/login", s.loginPage)
	r.Post("/login", s.handleLogin)
	r.Get("/browse", s.browsePage)

	// protected pages
	r.Group(func(r chi.Router) {
		r.Use(s.requirePageAuth)
		r.Get("/logout", s.handleLogout)
		r.Get("/dashboard", s.dashboardPage)
		r.Get("/messages", s.messagesPage)
	})

	// JSON API, session-cookie authenticated
	r.Route("/api", func(r chi.Router) {
		r.Use(s.requireAPIAuth)
		r.Get("/user/profile", s.handleProfile)
		r.Get("/users", s.handleListUsers)
		r.Get("/search", s.handleSearch)
		r.Post("/skills", s.handleAddSkill)
		r.Delete("/skills/{id}", s.handleDeleteSkill)
		r.Post("/swap-requests", s.handleCreateSwapRequest)
		r.Put("/swap-requests/{id}", s.handleUpdateSwapRequest)
		r.Get("/messages", s.handleGetConversation)
		r.Post("/messages", s.handleSendMessage)
	})

	s.router = r
	return s, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "graceful shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
