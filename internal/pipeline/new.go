package pipeline

import (
	"fmt"

	"github.com/opencouncil/clipscribe/internal/config"
	"github.com/opencouncil/clipscribe/internal/docs"
	"github.com/opencouncil/clipscribe/internal/granicus"
	"github.com/opencouncil/clipscribe/internal/logger"
	"github.com/opencouncil/clipscribe/internal/store"
	"github.com/opencouncil/clipscribe/internal/summarizer"
	"github.com/opencouncil/clipscribe/internal/transcriber"
)

// Options are the per-invocation switches, threaded explicitly rather than
// read from ambient state.
type Options struct {
	Force     bool
	KeepAudio bool
}

type implPipeline struct {
	cfg         *config.Config
	granicus    granicus.Client
	docs        docs.Fetcher
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	store       store.Store
	logger      logger.Logger
	opts        Options

	state *store.State
}

// New creates a Pipeline, loading durable state once up front.
func New(
	cfg *config.Config,
	gran granicus.Client,
	docFetcher docs.Fetcher,
	trans transcriber.Transcriber,
	summ summarizer.Summarizer,
	st store.Store,
	log logger.Logger,
	opts Options,
) (Pipeline, error) {
	state, err := st.LoadState()
	if err != nil {
		return nil, fmt.Errorf("load pipeline state: %w", err)
	}

	return &implPipeline{
		cfg:         cfg,
		granicus:    gran,
		docs:        docFetcher,
		transcriber: trans,
		summarizer:  summ,
		store:       st,
		logger:      log,
		opts:        opts,
		state:       state,
	}, nil
}
