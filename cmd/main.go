package main

import (
	"context"
	"net/http"
	"os"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/cmd/launcher"
	"google.golang.org/adk/cmd/launcher/full"

	"waypoint/internal/adapters/config"
	"waypoint/internal/adapters/errors/noop"
	"waypoint/internal/adapters/errors/sentry"
	"waypoint/internal/agents"
	"waypoint/internal/maps"
	"waypoint/internal/metrics"
	"waypoint/internal/tools"
	"waypoint/internal/tools/shared"
	"waypoint/pkg/errors"
	"waypoint/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer logger.Sync()

	log := logger.Get()
	log.Infof("Starting %s in %s mode", cfg.App.Name, cfg.App.Env)

	tracker := initErrorTracker(cfg, log)
	logger.SetErrorTracker(tracker)

	metrics.Register()
	if cfg.Metrics.Enabled {
		go serveMetrics(cfg.Metrics.Addr, log)
	}

	client, err := maps.NewClient(maps.ClientOptions{
		APIKey: cfg.Maps.APIKey,
		QPS:    cfg.Maps.QPS,
		Log:    log,
	})
	if err != nil {
		log.Fatalf("Failed to create maps client: %v", err)
	}

	registry := tools.NewRegistry()
	if err := tools.RegisterAll(registry, shared.Deps{
		Maps:       client,
		Log:        log,
		Language:   cfg.Maps.Language,
		MaxResults: cfg.Maps.MaxResults,
	}); err != nil {
		log.Fatalf("Failed to register tools: %v", err)
	}
	log.Infof("Registered tools: %v", registry.List())

	ctx := context.Background()
	assistant, err := agents.NewTravelAssistant(ctx, agents.Config{
		Model:  cfg.Agent.Model,
		APIKey: cfg.Agent.GeminiAPIKey,
	}, registry)
	if err != nil {
		log.Fatalf("Failed to create agent: %v", err)
	}

	l := full.NewLauncher()
	launcherCfg := &launcher.Config{
		AgentLoader: agent.NewSingleLoader(assistant),
	}
	if err := l.Execute(ctx, launcherCfg, os.Args[1:]); err != nil {
		log.Fatalf("Run failed: %v\n\n%s", err, l.CommandLineSyntax())
	}
}

// initErrorTracker initializes error tracking (Sentry or no-op)
func initErrorTracker(cfg *config.Config, log *logger.Logger) errors.Tracker {
	if !cfg.ErrorTracking.Enabled {
		return noop.New()
	}

	tracker, err := sentry.New(cfg.ErrorTracking.SentryDSN, cfg.ErrorTracking.Environment)
	if err != nil {
		log.Warnf("Failed to init Sentry, falling back to no-op tracker: %v", err)
		return noop.New()
	}
	log.Info("Sentry error tracking enabled")
	return tracker
}

func serveMetrics(addr string, log *logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	log.Infof("Metrics listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Errorf("Metrics server stopped: %v", err)
	}
}
