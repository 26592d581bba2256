package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/pribylovaa/news-encapsulation/internal/config"
	newshealth "github.com/pribylovaa/news-encapsulation/internal/health"
	"github.com/pribylovaa/news-encapsulation/internal/metrics"
	"github.com/pribylovaa/news-encapsulation/internal/news"
	"github.com/pribylovaa/news-encapsulation/internal/reader"
	httpapi "github.com/pribylovaa/news-encapsulation/internal/transport/http"
	"github.com/pribylovaa/news-encapsulation/pkg/interceptors"
	"github.com/pribylovaa/news-encapsulation/pkg/log"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var (
		configPath string
		serve      bool
	)
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.BoolVar(&serve, "serve", false, "serve HTTP and gRPC health instead of printing news once")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	lg := setupLogger(cfg.Env)
	slog.SetDefault(lg)

	svc, err := news.New(cfg.News.Impl, news.WithURL(cfg.News.URL))
	if err != nil {
		lg.Error("news_service_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	lg.Info("news_service_initialized", slog.String("impl", cfg.News.Impl))

	if !serve {
		os.Exit(printOnce(lg, cfg, svc))
	}

	os.Exit(runServers(lg, cfg, svc))
}

// printOnce печатает последние новости в stdout и возвращает код выхода.
func printOnce(lg *slog.Logger, cfg *config.Config, svc news.Service) int {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Request)
	defer cancel()

	ctx = log.With(log.Into(ctx, lg), slog.String("request_id", uuid.NewString()))

	if err := reader.New(svc, nil).Print(ctx, os.Stdout); err != nil {
		log.From(ctx).Error("print_failed", slog.String("err", err.Error()))
		return 1
	}

	return 0
}

// runServers поднимает HTTP (/news, /metrics) и gRPC health до SIGINT/SIGTERM.
func runServers(lg *slog.Logger, cfg *config.Config, svc news.Service) int {
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	svc = metrics.Instrument(svc, cfg.News.Impl, metrics.New(reg))

	grpcServer := grpc.NewServer(interceptors.ServerOption(lg, cfg.Timeouts.Request))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	if cfg.Env == envLocal || cfg.Env == envDev {
		reflection.Register(grpcServer)
	}

	prober := newshealth.NewProber(svc, hs, cfg.Health.Interval, cfg.Timeouts.Request)
	go func() {
		if err := prober.Start(log.Into(rootCtx, lg)); err != nil {
			lg.Error("probe_start_failed", slog.String("err", err.Error()))
		}
	}()

	httpServer := &http.Server{
		Addr: cfg.HTTP.Addr(),
		Handler: httpapi.NewRouter(reader.New(svc, nil), httpapi.Options{
			Logger:   lg,
			Timeout:  cfg.Timeouts.Request,
			Gatherer: reg,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcAddr := cfg.GRPC.Addr()
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		lg.Error("grpc_listen_failed",
			slog.String("addr", grpcAddr),
			slog.String("err", err.Error()),
		)
		return 1
	}

	serveErrCh := make(chan error, 2)
	go func() {
		lg.Info("grpc_listen_start", slog.String("addr", grpcAddr))
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			serveErrCh <- err
		}
	}()
	go func() {
		lg.Info("http_listen_start", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
	}()

	code := 0
	select {
	case <-rootCtx.Done():
		lg.Info("shutdown_requested")
	case err := <-serveErrCh:
		lg.Error("serve_failed", slog.String("err", err.Error()))
		code = 1
	}

	hs.Shutdown()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		lg.Warn("http_shutdown_failed", slog.String("err", err.Error()))
	}

	done := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		lg.Info("grpc_stopped")
	case <-shutdownCtx.Done():
		lg.Warn("grpc_force_stop")
		grpcServer.Stop()
	}

	lg.Info("service_stopped")
	return code
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	switch env {
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
