package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/reelify/internal/logger"
)

// Fixed artifact names within the workspace. One vertical-video slot, one
// chunk set, one audio-extract slot; concurrent runs against the same
// workspace would race on these, so the caller serializes runs.
const (
	audioWAVName     = "audio.wav"
	audioMP3Name     = "audio.mp3"
	verticalName     = "vertical_output.mp4"
	chunkPrefix      = "chunk_"
	chunkSuffix      = ".mp4"
	languageClipName = "language_probe.wav"
)

// CleanupWarning records one file that could not be removed during Reset.
// Warnings are collected and logged, never escalated.
type CleanupWarning struct {
	Path string
	Err  error
}

func (w CleanupWarning) String() string {
	return fmt.Sprintf("skipped locked file: %s (%v)", w.Path, w.Err)
}

type implWorkspace struct {
	root   string
	logger logger.Logger

	// filesystem seams, swappable in tests
	removeFile func(path string) error
	removeDir  func(path string) error
	mkdirAll   func(path string, perm os.FileMode) error
}

// New creates a Workspace rooted at the given scratch directory
func New(root string, log logger.Logger) Workspace {
	return &implWorkspace{
		root:       root,
		logger:     log,
		removeFile: os.Remove,
		removeDir:  os.Remove,
		mkdirAll:   os.MkdirAll,
	}
}

func (w *implWorkspace) Root() string { return w.root }

// Ensure creates the workspace root if it does not exist. Safe to call
// repeatedly; this is the acquire half of the workspace lifecycle.
func (w *implWorkspace) Ensure() error {
	if err := w.mkdirAll(w.root, 0755); err != nil {
		return fmt.Errorf("create workspace %s: %w", w.root, err)
	}
	return nil
}

func (w *implWorkspace) AudioWAV() string      { return filepath.Join(w.root, audioWAVName) }
func (w *implWorkspace) AudioMP3() string      { return filepath.Join(w.root, audioMP3Name) }
func (w *implWorkspace) VerticalVideo() string { return filepath.Join(w.root, verticalName) }
func (w *implWorkspace) LanguageClip() string  { return filepath.Join(w.root, languageClipName) }

// ChunkPattern returns the ffmpeg segment output pattern. The 3-digit
// zero-padded suffix keeps lexicographic order equal to temporal order
// past 9 chunks.
func (w *implWorkspace) ChunkPattern() string {
	return filepath.Join(w.root, chunkPrefix+"%03d"+chunkSuffix)
}

// Chunks lists existing chunk artifacts sorted by filename, which by the
// naming scheme is temporal order.
func (w *implWorkspace) Chunks() ([]string, error) {
	entries, err := os.ReadDir(w.root)
	if err != nil {
		return nil, fmt.Errorf("read workspace: %w", err)
	}

	var chunks []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, chunkPrefix) && strings.HasSuffix(name, chunkSuffix) {
			chunks = append(chunks, filepath.Join(w.root, name))
		}
	}

	sort.Strings(chunks)
	return chunks, nil
}

// RemoveChunks deletes any previously produced chunk artifacts so a re-run
// never leaves a stale chunk N from an earlier, longer video.
func (w *implWorkspace) RemoveChunks() error {
	chunks, err := w.Chunks()
	if err != nil {
		return err
	}
	for _, c := range chunks {
		if err := w.removeFile(c); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove stale chunk %s: %w", c, err)
		}
	}
	return nil
}

// TranscriptPath returns the transcript artifact path for an audio file,
// named <original_filename>.txt.
func (w *implWorkspace) TranscriptPath(audioName string) string {
	return filepath.Join(w.root, audioName+".txt")
}

// ReportPath returns the docx highlight report path for an audio file.
func (w *implWorkspace) ReportPath(audioName string) string {
	return filepath.Join(w.root, audioName+".docx")
}

// Reset removes everything under the workspace root and recreates it empty.
// Per-file removal failures become CleanupWarnings and are skipped, not
// escalated; undeletable directories are tolerated silently. The only error
// returned is a failure to recreate the root itself.
func (w *implWorkspace) Reset(ctx context.Context) ([]CleanupWarning, error) {
	var warnings []CleanupWarning

	// Bottom-up walk: files first, then their now-empty directories.
	var dirs []string
	_ = filepath.WalkDir(w.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != w.root {
				dirs = append(dirs, path)
			}
			return nil
		}
		if err := w.removeFile(path); err != nil {
			warnings = append(warnings, CleanupWarning{Path: path, Err: err})
			w.logger.Warn(ctx, "Skipped locked file during reset: %s (%v)", path, err)
		}
		return nil
	})

	// Deepest directories first.
	sort.Slice(dirs, func(i, j int) bool { return len(dirs[i]) > len(dirs[j]) })
	for _, d := range dirs {
		// Non-empty or otherwise undeletable directories are tolerated.
		_ = w.removeDir(d)
	}
	_ = w.removeDir(w.root)

	if err := w.mkdirAll(w.root, 0755); err != nil {
		return warnings, fmt.Errorf("recreate workspace %s: %w", w.root, err)
	}

	return warnings, nil
}
