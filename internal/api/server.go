// Package api assembles the marketplace HTTP surface: the v1 routes, metrics,
// API docs, health and profiling endpoints, and the middleware chain around them.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"yokeair/internal/api/handler/v1handler"
	"yokeair/internal/config"
	"yokeair/pkg/controller"
	"yokeair/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// v1Spec is the OpenAPI document of the v1 routes.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const timeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`

type Options struct {
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Server timeouts. Zero leaves the net/http default.
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int

	// RequestTimeout bounds a whole request through http.TimeoutHandler.
	RequestTimeout time.Duration
	// MaxUploadBytes caps multipart bodies of image and document uploads.
	MaxUploadBytes int64

	MetricsPath string
	// Registerer receives the otel request metrics. Nil means
	// prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer

	// AllowedOrigins is the CORS allow-list; empty allows any origin.
	AllowedOrigins []string
	EnablePprof    bool
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxUploadBytes:    cfg.HTTP.MaxUploadBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		EnablePprof:       cfg.HTTP.EnablePprof,
	}
}

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	v1handler.Deps

	// Health is checked by GET /healthz. Nil always reports healthy.
	Health Pinger
}

// NewHandler builds the full handler chain. From the outside in: request
// timeout, request logger, CORS, request metrics, then the mux.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	registerer := opts.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	exporter, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	meters := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}

	mux := http.NewServeMux()
	mountOperational(mux, deps.Health, opts)

	v1handler.New(deps.Deps).
		WithMaxUploadBytes(opts.MaxUploadBytes).
		Register(mux, secHandler)

	withMetrics, err := controller.WithMetrics(meters.Meter("yokeair/api"))
	if err != nil {
		return nil, fmt.Errorf("could not create metrics middleware: %w", err)
	}

	handler := controller.WithLogger(controller.WithCORS(opts.AllowedOrigins)(withMetrics(mux)))
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody)
	}

	return handler, nil
}

// mountOperational registers the routes that sit outside /v1: metrics, the
// OpenAPI document with its Swagger UI, health and optionally pprof.
func mountOperational(mux *http.ServeMux, health Pinger, opts Options) {
	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	mux.Handle("GET "+metricsPath, promhttp.Handler())

	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	mux.Handle("/v1/docs/", v5emb.New("Yokeair Marketplace", "/specs/v1.yaml", "/v1/docs/"))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if health != nil {
			if err := health.Ping(r.Context()); err != nil {
				logger.Warn(r.Context(), "health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"unavailable"}`))

				return
			}
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if opts.EnablePprof {
		controller.RegisterPprof(mux)
	}
}

func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
