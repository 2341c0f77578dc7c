package highlight

import (
	"github.com/nguyentantai21042004/reelify/internal/logger"
	"github.com/nguyentantai21042004/reelify/internal/summarizer"
)

type implExtractor struct {
	summarizer summarizer.Summarizer
	logger     logger.Logger

	// assumed total video duration the timeline is spread over
	videoDurationSecs int
}

// New creates an Extractor over the given summarization service
func New(sum summarizer.Summarizer, videoDurationSecs int, log logger.Logger) Extractor {
	return &implExtractor{
		summarizer:        sum,
		logger:            log,
		videoDurationSecs: videoDurationSecs,
	}
}
