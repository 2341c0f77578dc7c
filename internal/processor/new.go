package processor

import (
	"github.com/nguyentantai21042004/reelify/internal/config"
	"github.com/nguyentantai21042004/reelify/internal/highlight"
	"github.com/nguyentantai21042004/reelify/internal/logger"
	"github.com/nguyentantai21042004/reelify/internal/reel"
	"github.com/nguyentantai21042004/reelify/internal/transcriber"
	"github.com/nguyentantai21042004/reelify/internal/workspace"
)

type implProcessor struct {
	cfg         *config.Config
	ws          workspace.Workspace
	reel        reel.Reel
	transcriber transcriber.Transcriber
	extractor   highlight.Extractor
	logger      logger.Logger
}

// New creates a Processor wired to explicitly constructed services. Service
// lifecycles belong to the caller, not to the pipeline components.
func New(
	cfg *config.Config,
	ws workspace.Workspace,
	r reel.Reel,
	t transcriber.Transcriber,
	e highlight.Extractor,
	log logger.Logger,
) Processor {
	return &implProcessor{
		cfg:         cfg,
		ws:          ws,
		reel:        r,
		transcriber: t,
		extractor:   e,
		logger:      log,
	}
}
