package logger

import (
	"context"
	"log"
	"os"
	"strings"
)

type implLogger struct {
	out    *log.Logger
	errOut *log.Logger
	level  string
}

// New creates a new Logger instance. Warn and Error lines go to stderr
// so pipeline diagnostics survive stdout redirection.
func New(level string) Logger {
	return &implLogger{
		out:    log.New(os.Stdout, "", log.LstdFlags),
		errOut: log.New(os.Stderr, "", log.LstdFlags),
		level:  strings.ToLower(level),
	}
}

func (l *implLogger) shouldLog(level string) bool {
	levels := map[string]int{
		"debug": 0,
		"info":  1,
		"warn":  2,
		"error": 3,
	}

	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.out.Printf("[DEBUG] "+msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.out.Printf("[INFO] "+msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.errOut.Printf("[WARN] "+msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.errOut.Printf("[ERROR] "+msg, args...)
	}
}
