package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/reelify/internal/config"
	"github.com/nguyentantai21042004/reelify/internal/highlight"
	"github.com/nguyentantai21042004/reelify/internal/logger"
	"github.com/nguyentantai21042004/reelify/internal/media"
	"github.com/nguyentantai21042004/reelify/internal/processor"
	"github.com/nguyentantai21042004/reelify/internal/reel"
	"github.com/nguyentantai21042004/reelify/internal/summarizer"
	"github.com/nguyentantai21042004/reelify/internal/transcriber"
	"github.com/nguyentantai21042004/reelify/internal/watcher"
	"github.com/nguyentantai21042004/reelify/internal/workspace"
	"github.com/nguyentantai21042004/reelify/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Reelify - Video Processor")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Inbox: %s", cfg.Paths.Inbox)
	log.Info(ctx, "Workspace: %s", cfg.Paths.Workspace)

	// Ensure the inbox exists before watching it
	if err := os.MkdirAll(cfg.Paths.Inbox, 0755); err != nil {
		log.Error(ctx, "Failed to create inbox: %v", err)
		os.Exit(1)
	}

	// Wire dependencies explicitly; no process-wide singletons
	exec := executor.New()
	ws := workspace.New(cfg.Paths.Workspace, log)
	if err := ws.Ensure(); err != nil {
		log.Error(ctx, "Failed to acquire workspace: %v", err)
		os.Exit(1)
	}

	transform := media.New(cfg, exec, log)
	r := reel.New(ws, transform, log)
	t := transcriber.New(cfg, ws, transform, exec, log)
	sum := summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	ext := highlight.New(sum, cfg.Highlight.VideoDurationSecs, log)
	proc := processor.New(cfg, ws, r, t, ext, log)

	// Create watcher with processor as handler and concurrency control
	w, err := watcher.New(cfg.Paths.Inbox, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	watcherDone := make(chan struct{})
	go func() {
		defer close(watcherDone)
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Reelify is ready!")
	log.Info(ctx, "Drop a video in the inbox for the reel flow,")
	log.Info(ctx, "or an audio file for transcript highlights.")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	// Start drains in-flight handlers before returning; the workspace must
	// not be reset while a handler still writes into it.
	<-watcherDone

	// Release the workspace on exit when configured
	if cfg.Paths.CleanOnExit {
		if err := proc.Clean(context.Background()); err != nil {
			log.Error(ctx, "Failed to clean workspace: %v", err)
		}
	}

	log.Info(ctx, "Reelify stopped")
}
