package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"dbt-portal/internal/actionplan"
	"dbt-portal/internal/config"
	"dbt-portal/internal/grievance"
	"dbt-portal/internal/handler"
	"dbt-portal/internal/i18n"
	"dbt-portal/internal/lookup"
	"dbt-portal/internal/quiz"
)

func main() {
	configPath := os.Getenv("DBT_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Config failed: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Logger failed: %v", err)
	}
	defer logger.Sync()

	var assistant grievance.DescriptionGenerator
	if cfg.Assist.APIKey != "" {
		gemini, err := grievance.NewGeminiAssistant(context.Background(), cfg.Assist.APIKey, cfg.Assist.Model, logger)
		if err != nil {
			logger.Warn("AI assistant disabled", zap.Error(err))
		} else {
			assistant = gemini
		}
	} else {
		logger.Info("AI assistant disabled: no API key configured")
	}

	h := handler.New(
		lookup.NewClient(),
		actionplan.NewTracker(actionplan.NewFileStore(cfg.Storage.DataDir)),
		quiz.NewRegistry(),
		assistant,
		i18n.NewBundle(logger),
		i18n.ParseLocale(cfg.DefaultLocale, i18n.LocaleEN),
		logger,
	)

	route := func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		h.Route(ctx)
		logger.Info("request",
			zap.ByteString("method", ctx.Method()),
			zap.ByteString("path", ctx.Path()),
			zap.Int("status", ctx.Response.StatusCode()),
			zap.Duration("duration", time.Since(start)))
	}

	logger.Info("DBT portal starting", zap.String("port", cfg.Server.Port))
	if err := fasthttp.ListenAndServe(":"+cfg.Server.Port, route); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
