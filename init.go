package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/tournevent/dhlexpress/internal/config"
	"github.com/tournevent/dhlexpress/internal/telemetry"
	"github.com/tournevent/dhlexpress/pkg/express"
	"github.com/tournevent/dhlexpress/pkg/express/mock"
	"github.com/tournevent/dhlexpress/pkg/express/rest"
)

// app holds what one command run needs to talk to DHL Express.
type app struct {
	cfg       *config.Config
	logger    *otelzap.Logger
	transport express.Transport
}

func loadConfig(envFile string) (*config.Config, error) {
	if envFile == "" {
		return config.Load()
	}
	return config.Load(envFile)
}

func initLogger(level string) (*otelzap.Logger, error) {
	return telemetry.NewLogger(level)
}

func initTracer(ctx context.Context, cfg *config.Config) (trace.Tracer, func(context.Context) error, error) {
	if !cfg.OTELEnabled {
		return nil, func(context.Context) error { return nil }, nil
	}
	return telemetry.InitTracer(ctx, cfg.OTELEndpoint, cfg.ServiceName, cfg.Attributes()...)
}

func initTransportRegistry(cfg *config.Config, logger *otelzap.Logger, tracer trace.Tracer) *express.Registry {
	registry := express.NewRegistry()
	registry.Register(mock.New(mock.Name))

	httpClient := &http.Client{Timeout: cfg.RESTTimeout}
	registry.Register(rest.New(rest.Config{BaseURL: cfg.RESTBaseURL},
		basicAuthDoer{client: httpClient, username: cfg.Username, password: cfg.Password},
		logger, tracer))

	return registry
}

// withApp wires configuration, telemetry and the configured transport, then runs fn.
func withApp(ctx context.Context, opts *options, fn func(context.Context, *app) error) error {
	cfg, err := loadConfig(opts.envFile)
	if err != nil {
		return err
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tracer, tracerShutdown, err := initTracer(ctx, cfg)
	if err != nil {
		logger.Warn("Failed to initialize tracer", zap.Error(err))
	} else {
		defer tracerShutdown(context.WithoutCancel(ctx))
	}

	registry := initTransportRegistry(cfg, logger, tracer)
	transport, err := registry.Get(cfg.Transport)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(reg)

	logger.Debug("Using DHL Express transport",
		zap.String("transport", cfg.Transport),
		zap.Strings("available", registry.Names()),
	)

	runErr := fn(ctx, &app{
		cfg:       cfg,
		logger:    logger,
		transport: express.Instrument(transport, metrics),
	})

	if opts.metricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.metricsFile, reg); err != nil {
			logger.Warn("Failed to write metrics", zap.String("path", opts.metricsFile), zap.Error(err))
		}
	}
	return runErr
}

// basicAuthDoer adds HTTP basic credentials to every request when a username is configured.
type basicAuthDoer struct {
	client             *http.Client
	username, password string
}

// Do sends req with the configured credentials.
func (d basicAuthDoer) Do(req *http.Request) (*http.Response, error) {
	if d.username != "" {
		req.SetBasicAuth(d.username, d.password)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dhl express request: %w", err)
	}
	return resp, nil
}
