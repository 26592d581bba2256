// http — REST-поверхность newsreader.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/news-encapsulation/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
	// Gatherer — источник метрик для /metrics; nil — эндпойнт не регистрируется.
	Gatherer prometheus.Gatherer
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(rd NewsReader, opts Options) http.Handler {
	r := chi.NewRouter()

	h := NewHandlers(rd)
	r.Get("/news", h.LatestNews)

	if opts.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	return middleware.Chain(r, middleware.Stack(opts.Logger, opts.Timeout)...)
}
