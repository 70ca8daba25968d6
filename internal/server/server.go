package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/wagerlab/predictgate/internal/handler"
	"github.com/wagerlab/predictgate/internal/ledger"
	"github.com/wagerlab/predictgate/internal/logger"
	"github.com/wagerlab/predictgate/internal/metrics"
	"github.com/wagerlab/predictgate/internal/network"
)

type Server struct {
	httpServer    *http.Server
	store         ledger.Store
	ledgerService ledger.Service
	networks      network.Registry
}

// Options carries the server wiring that isn't a service
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	AffiliateLink  string
}

// NewServer creates a new Server instance
func NewServer(opts Options, store ledger.Store, ledgerService ledger.Service, networks network.Registry) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	monitor := newClientMonitor()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, monitor))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, monitor))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Postback ingest routes
	postbackHandlers := handler.NewPostbackHandlers(ledgerService)
	r.Route("/postback", func(r chi.Router) {
		r.Get("/", postbackHandlers.HandlePostback())
		r.Post("/", postbackHandlers.HandlePostback())
		r.Get("/{network}", postbackHandlers.HandlePostback())
		r.Post("/{network}", postbackHandlers.HandlePostback())
	})

	// Affiliate link redirect
	linkHandlers := handler.NewLinkHandlers(opts.AffiliateLink)
	r.Get("/go", linkHandlers.HandleRedirect())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		verifyHandlers := handler.NewVerifyHandlers(ledgerService)
		r.Get("/verify", verifyHandlers.HandleVerify())
		r.Post("/verify", verifyHandlers.HandleVerifyPost())

		r.Get("/link", linkHandlers.HandleGetLink())

		// Admin routes
		adminHandlers := handler.NewAdminHandlers(networks)
		r.Route("/admin", func(r chi.Router) {
			r.Post("/reload-networks", adminHandlers.HandleReloadNetworks())
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		store:         store,
		ledgerService: ledgerService,
		networks:      networks,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
