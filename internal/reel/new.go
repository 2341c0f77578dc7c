package reel

import (
	"os"

	"github.com/nguyentantai21042004/reelify/internal/logger"
	"github.com/nguyentantai21042004/reelify/internal/media"
	"github.com/nguyentantai21042004/reelify/internal/workspace"
)

type implReel struct {
	ws     workspace.Workspace
	media  media.Transformer
	logger logger.Logger

	stat func(name string) (os.FileInfo, error)
}

// New creates a Reel instance over the given workspace and media service
func New(ws workspace.Workspace, m media.Transformer, log logger.Logger) Reel {
	return &implReel{
		ws:     ws,
		media:  m,
		logger: log,
		stat:   os.Stat,
	}
}
