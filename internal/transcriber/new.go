package transcriber

import (
	"time"

	"github.com/opencouncil/clipscribe/internal/logger"
	"github.com/opencouncil/clipscribe/internal/media"
	"github.com/opencouncil/clipscribe/internal/store"
)

// Options sets the size ceilings and the per-call timeout. SoftCeiling is the
// size below which a single direct call is attempted (service limit minus
// headroom); HardCeiling is the service's true maximum upload size.
type Options struct {
	SoftCeiling int64
	HardCeiling int64
	CallTimeout time.Duration
}

type implTranscriber struct {
	service    SpeechService
	transcoder media.Transcoder
	segmenter  media.Segmenter
	store      store.Store
	logger     logger.Logger
	opts       Options
}

// New creates a Transcriber instance.
func New(service SpeechService, transcoder media.Transcoder, segmenter media.Segmenter, st store.Store, log logger.Logger, opts Options) Transcriber {
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = 10 * time.Minute
	}
	return &implTranscriber{
		service:    service,
		transcoder: transcoder,
		segmenter:  segmenter,
		store:      st,
		logger:     log,
		opts:       opts,
	}
}
