package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/DoroteyaTodorova/Crypto/internal/activitylog"
	"github.com/DoroteyaTodorova/Crypto/internal/config"
	"github.com/DoroteyaTodorova/Crypto/internal/httpx"
	"github.com/DoroteyaTodorova/Crypto/internal/portfolio"
)

// Calculator is the engine capability the portfolio handler needs.
type Calculator interface {
	Calculate(ctx context.Context, entries []portfolio.Entry, includeSentiment bool) ([]portfolio.Result, error)
}

// Config holds server configuration.
type Config struct {
	Port   string
	Log    zerolog.Logger
	Engine Calculator
	Logs   *activitylog.Store
	News   config.News
	Model  config.Model
	Client *httpx.Client
}

// Server is the HTTP boundary of the service.
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	engine Calculator
	logs   *activitylog.Store
	news   config.News
	model  config.Model
	client *httpx.Client
}

func New(cfg Config) *Server {
	s := &Server{
		router: chi.NewRouter(),
		log:    cfg.Log.With().Str("component", "server").Logger(),
		engine: cfg.Engine,
		logs:   cfg.Logs,
		news:   cfg.News,
		model:  cfg.Model,
		client: cfg.Client,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(60 * time.Second))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/portfolio", func(r chi.Router) {
		r.Post("/calculate", s.handlePortfolioCalculate)
	})

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/news/{symbol}", s.handleNews)
		r.Post("/sentiment", s.handleSentiment)
	})

	s.router.Post("/log", s.handleAppendLog)
	s.router.Get("/logs", s.handleGetLogs)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Router exposes the handler tree for tests.
func (s *Server) Router() http.Handler { return s.router }

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
