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

	"github.com/osse101/CraftValue_Go/internal/catalog"
	"github.com/osse101/CraftValue_Go/internal/database"
	"github.com/osse101/CraftValue_Go/internal/dataset"
	"github.com/osse101/CraftValue_Go/internal/handler"
	"github.com/osse101/CraftValue_Go/internal/logger"
	"github.com/osse101/CraftValue_Go/internal/metrics"
	"github.com/osse101/CraftValue_Go/internal/pricing"
)

// Options carries everything NewServer wires into the router
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	RateLimit      int
	RateWindow     time.Duration

	// DBPool is nil when persistence is disabled
	DBPool   database.Pool
	Pricing  pricing.Service
	Catalog  catalog.Service
	Loader   dataset.Loader
	Datasets handler.DatasetVersioner
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts),
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		dbPool: opts.DBPool,
	}
}

// NewRouter builds the HTTP routes. Reads are public; anything that edits or
// persists the dataset needs the API key.
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(opts.RateWindow, opts.RateLimit)

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.DBPool))
	r.Get("/version", handler.HandleVersion(opts.Datasets))
	r.Handle("/metrics", promhttp.Handler())

	datasetHandler := handler.NewDatasetHandler(opts.Catalog, opts.Loader)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(RequestSizeLimitMiddleware(DefaultMaxRequestBytes))

			r.Route("/items/{name}", func(r chi.Router) {
				r.Get("/cost", handler.HandleGetItemCost(opts.Pricing))
				r.Get("/material-cost", handler.HandleGetMaterialCost(opts.Pricing))
				r.Get("/stamina", handler.HandleGetStamina(opts.Pricing))
				r.Get("/breakdown", handler.HandleGetBreakdown(opts.Pricing))
			})

			r.Post("/efficiency", handler.HandleEvaluateEfficiency(opts.Pricing))
			r.Post("/efficiency/batch", handler.HandleEvaluateBatch(opts.Pricing))
			r.Get("/stamina-value", handler.HandleGetStaminaValue(opts.Pricing))

			r.Get("/dataset", datasetHandler.HandleGetDataset)
		})

		// Dataset editing
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
			r.Use(RequestSizeLimitMiddleware(DatasetMaxRequestBytes))

			r.Put("/dataset", datasetHandler.HandleReplaceDataset)
			r.Post("/dataset/save", datasetHandler.HandleSaveDataset)
			r.Post("/dataset/load", datasetHandler.HandleLoadDataset)
			r.Post("/dataset/export", datasetHandler.HandleExportDataset)
			r.Get("/datasets", datasetHandler.HandleListDatasets)

			r.Put("/materials/{name}", datasetHandler.HandlePutMaterial)
			r.Delete("/materials/{name}", datasetHandler.HandleDeleteMaterial)
			r.Put("/recipes/{name}", datasetHandler.HandlePutRecipe)
			r.Delete("/recipes/{name}", datasetHandler.HandleDeleteRecipe)
			r.Patch("/settings", datasetHandler.HandlePatchSettings)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
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
		statusCode:     http.StatusOK,
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

		for _, prefix := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}

		// Reuse a caller-supplied request ID so bot and API logs line up
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr, "persistence", s.dbPool != nil)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
