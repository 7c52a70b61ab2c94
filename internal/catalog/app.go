package catalog

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"MiniCatalog/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	// RateLimit is the number of product listings a client IP may request
	// per RateWindow. Zero disables limiting.
	RateLimit  int
	RateWindow time.Duration
}

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if s.Log == nil {
		s.Log = deps.Log
	}
	if s.Limiter == nil && deps.RateLimit > 0 {
		s.Limiter = kit.NewIPRateLimiter(deps.RateLimit, deps.RateWindow)
	}

	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, s, deps)

	r.Mount("/", s.Routes())
	return r
}

// setupMiddleware orders the chain so metrics wraps the recoverer and still
// sees requests that panic.
func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(kit.RequestID)

	if deps.Registry != nil {
		metrics := kit.NewMetrics(deps.Registry)
		r.Use(metrics.Middleware(deps.Service, kit.RoutePatternOrPath))
	}

	r.Use(kit.Recoverer(deps.Log))
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, s *Server, deps HTTPDeps) {
	if deps.Registry == nil {
		if deps.MetricsEnabled {
			deps.Log.Warn("metrics enabled but Registry is nil")
		}
		return
	}

	deps.Registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name:        "catalog_products",
			Help:        "Number of products served by the catalog",
			ConstLabels: prometheus.Labels{"service": deps.Service},
		},
		func() float64 {
			products, err := s.Provider.List(context.Background())
			if err != nil {
				return 0
			}
			return float64(len(products))
		},
	))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}
