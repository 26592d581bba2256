// health публикует доступность источника новостей через gRPC Health Checking.
package health

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/pribylovaa/news-encapsulation/internal/news"
	"github.com/pribylovaa/news-encapsulation/pkg/log"
)

// ServiceName — имя сервиса в health-протоколе.
const ServiceName = "news.NewsService"

// Prober периодически опрашивает news.Service и выставляет статус ServiceName:
// SERVING после успешного вызова, NOT_SERVING после любой ошибки.
type Prober struct {
	svc      news.Service
	hs       *health.Server
	interval time.Duration
	timeout  time.Duration
}

// NewProber создаёт Prober. До первого успешного опроса статус — NOT_SERVING.
func NewProber(svc news.Service, hs *health.Server, interval, timeout time.Duration) *Prober {
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Prober{svc: svc, hs: hs, interval: interval, timeout: timeout}
}

// Start выполняет опрос сразу и далее раз в interval до отмены ctx.
func (p *Prober) Start(ctx context.Context) error {
	const op = "health.Prober.Start"

	if p.interval <= 0 {
		return fmt.Errorf("%s: interval must be > 0", op)
	}

	lg := log.From(ctx)
	lg.Info("probe_start",
		slog.String("op", op),
		slog.Duration("interval", p.interval),
	)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.probeOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			lg.Info("probe_stop", slog.String("op", op))
			return nil
		case <-ticker.C:
			p.probeOnce(ctx)
		}
	}
}

// probeOnce — один опрос с собственным таймаутом.
func (p *Prober) probeOnce(ctx context.Context) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	_, err := p.svc.GetLatestNews(ctx)
	p.Observe(ctx, err)
}

// Observe выставляет статус по результату вызова news.Service.
func (p *Prober) Observe(ctx context.Context, err error) {
	const op = "health.Prober.Observe"

	st := healthpb.HealthCheckResponse_SERVING
	if err != nil {
		st = healthpb.HealthCheckResponse_NOT_SERVING
		log.From(ctx).Warn("probe_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	p.hs.SetServingStatus(ServiceName, st)
}
