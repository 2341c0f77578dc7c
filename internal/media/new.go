package media

import (
	"github.com/nguyentantai21042004/reelify/internal/config"
	"github.com/nguyentantai21042004/reelify/internal/logger"
	"github.com/nguyentantai21042004/reelify/pkg/executor"
)

type implTransformer struct {
	ffmpegPath  string
	ffprobePath string
	executor    executor.Executor
	logger      logger.Logger
}

// New creates a Transformer backed by the ffmpeg and ffprobe binaries
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Transformer {
	return &implTransformer{
		ffmpegPath:  cfg.FFmpeg.BinaryPath,
		ffprobePath: cfg.FFmpeg.ProbePath,
		executor:    exec,
		logger:      log,
	}
}
