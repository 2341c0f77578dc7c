package transcriber

import (
	"os"

	"github.com/nguyentantai21042004/reelify/internal/config"
	"github.com/nguyentantai21042004/reelify/internal/logger"
	"github.com/nguyentantai21042004/reelify/internal/media"
	"github.com/nguyentantai21042004/reelify/internal/workspace"
	"github.com/nguyentantai21042004/reelify/pkg/executor"
)

type implTranscriber struct {
	cfg      *config.Config
	ws       workspace.Workspace
	media    media.Transformer
	executor executor.Executor
	logger   logger.Logger

	readFile func(name string) ([]byte, error)
}

// New creates a Transcriber backed by the whisper.cpp binary
func New(cfg *config.Config, ws workspace.Workspace, m media.Transformer, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		ws:       ws,
		media:    m,
		executor: exec,
		logger:   log,
		readFile: os.ReadFile,
	}
}
