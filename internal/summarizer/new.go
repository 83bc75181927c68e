package summarizer

import (
	"github.com/opencouncil/clipscribe/internal/logger"
	"github.com/opencouncil/clipscribe/internal/store"
)

type implSummarizer struct {
	chat         ChatService
	store        store.Store
	logger       logger.Logger
	summaryModel string
	topicModel   string
}

// New creates a Summarizer instance.
func New(chat ChatService, st store.Store, log logger.Logger, summaryModel, topicModel string) Summarizer {
	return &implSummarizer{
		chat:         chat,
		store:        st,
		logger:       log,
		summaryModel: summaryModel,
		topicModel:   topicModel,
	}
}
