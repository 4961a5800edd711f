package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

type Metrics interface {
	ObserveRequest(method, route string, status int, start time.Time)
	Handler() http.Handler
}

func loggingMiddleware(logger Logger, metrics Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			logger.InfoContext(
				r.Context(),
				"request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"request_id", middleware.GetReqID(r.Context()),
			)
			metrics.ObserveRequest(r.Method, route, ww.Status(), start)
		})
	}
}

type Server struct {
	httpServer *http.Server
	logger     Logger
}

func NewServer(
	service DirectoryService,
	logger Logger,
	metrics Metrics,
	config Config,
) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         config.Address,
			Handler:      NewRouter(service, logger, metrics),
			ReadTimeout:  config.Timeout,
			WriteTimeout: config.Timeout,
		},
		logger: logger,
	}
}

func NewRouter(service DirectoryService, logger Logger, metrics Metrics) http.Handler {
	h := NewHandler(service, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware(logger, metrics))
	r.Use(middleware.Recoverer)

	r.Get("/health", h.GetHealth)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/snapshot", h.PostSnapshot)

		r.Get("/banks", h.ListBanks)
		r.Post("/banks", h.PostBank)
		r.Route("/banks/{bankID}", func(r chi.Router) {
			r.Get("/", h.GetBank)
			r.Patch("/", h.PatchBank)
			r.Delete("/", h.DeleteBank)

			r.Post("/branches", h.PostBranch)
			r.Route("/branches/{code}", func(r chi.Router) {
				r.Get("/", h.GetBranch)
				r.Patch("/", h.PatchBranch)
				r.Delete("/", h.DeleteBranch)

				r.Post("/customers", h.PostCustomer)
				r.Route("/customers/{customerID}", func(r chi.Router) {
					r.Get("/", h.GetCustomer)
					r.Patch("/", h.PatchCustomer)
					r.Delete("/", h.DeleteCustomer)

					r.Post("/accounts", h.PostAccount)
					r.Route("/accounts/{number}", func(r chi.Router) {
						r.Get("/", h.GetAccount)
						r.Delete("/", h.DeleteAccount)
						r.Post("/deposit", h.PostDeposit)
						r.Post("/withdraw", h.PostWithdrawal)
						r.Post("/transfer", h.PostTransfer)
					})
				})
			})
		})
	})

	return r
}

func (s *Server) Start(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Starting HTTP server", "address", s.httpServer.Addr)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "HTTP server error", "error", err)
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}
