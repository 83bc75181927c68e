package main

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/opencouncil/clipscribe/internal/config"
	"github.com/opencouncil/clipscribe/internal/docs"
	"github.com/opencouncil/clipscribe/internal/granicus"
	"github.com/opencouncil/clipscribe/internal/logger"
	"github.com/opencouncil/clipscribe/internal/media"
	"github.com/opencouncil/clipscribe/internal/pipeline"
	"github.com/opencouncil/clipscribe/internal/store"
	"github.com/opencouncil/clipscribe/internal/summarizer"
	"github.com/opencouncil/clipscribe/internal/transcriber"
	"github.com/opencouncil/clipscribe/pkg/executor"
)

// app holds the wired pipeline and the pieces commands need directly.
type app struct {
	cfg   *config.Config
	log   logger.Logger
	store store.Store
	pipe  pipeline.Pipeline
}

// buildApp loads configuration and assembles the full dependency graph.
func buildApp() (*app, error) {
	cfg, err := config.LoadOrDefault(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flagOutputDir != "" {
		cfg.Paths.Output = flagOutputDir
	}

	log := logger.New(logger.Options{
		Level:      cfg.Logging.Level,
		OutputPath: cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})

	st, err := store.New(cfg.Paths.Output, log)
	if err != nil {
		return nil, fmt.Errorf("open output store: %w", err)
	}

	exec := executor.New()
	client := openai.NewClient(cfg.OpenAI.APIKey)

	prober := media.NewProber(exec, log)
	trans := transcriber.New(
		transcriber.NewOpenAIService(client, cfg.OpenAI.TranscribeModel),
		media.NewTranscoder(exec, log),
		media.NewSegmenter(exec, prober, log),
		st,
		log,
		transcriber.Options{
			SoftCeiling: media.MBToBytes(cfg.Limits.SoftCeilingMB),
			HardCeiling: media.MBToBytes(cfg.Limits.HardCeilingMB),
			CallTimeout: time.Duration(cfg.OpenAI.TranscribeTimeoutSeconds) * time.Second,
		},
	)

	summ := summarizer.New(
		summarizer.NewOpenAIChat(client),
		st,
		log,
		cfg.OpenAI.SummaryModel,
		cfg.OpenAI.TopicModel,
	)

	pipe, err := pipeline.New(
		cfg,
		granicus.New(cfg.Granicus.BaseURL, cfg.Granicus.ViewID, exec, log),
		docs.New(log),
		trans,
		summ,
		st,
		log,
		pipeline.Options{
			Force:     flagForce,
			KeepAudio: cfg.Retention.KeepAudio && !flagNoAudio,
		},
	)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, log: log, store: st, pipe: pipe}, nil
}

// report prints the end-of-run summary for multi-clip commands.
func (a *app) report(ctx context.Context, verb string, results pipeline.Results) {
	a.log.Info(ctx, "============================================================")
	a.log.Info(ctx, "Run complete: %d %s, %d failed", len(results.Processed), verb, len(results.Failed))
	if len(results.Processed) > 0 {
		a.log.Info(ctx, "  %s: %v", verb, results.Processed)
	}
	if len(results.Failed) > 0 {
		a.log.Warn(ctx, "  failed: %v", results.Failed)
	}
	if state, err := a.store.LoadState(); err == nil && state.LastProcessedClipID > 0 {
		a.log.Info(ctx, "Last processed clip ID: %d", state.LastProcessedClipID)
	}
	a.log.Info(ctx, "============================================================")
}
