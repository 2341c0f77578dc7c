package reel

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/reelify/internal/logger"
	"github.com/nguyentantai21042004/reelify/internal/media"
	"github.com/nguyentantai21042004/reelify/internal/workspace"
)

// stubTransformer records transform requests and can fail or run a
// side-effect standing in for ffmpeg's output files.
type stubTransformer struct {
	requests []media.Request
	err      error
	onCall   func(req media.Request) error
}

func (s *stubTransformer) Transform(ctx context.Context, req media.Request) error {
	s.requests = append(s.requests, req)
	if s.onCall != nil {
		if err := s.onCall(req); err != nil {
			return err
		}
	}
	return s.err
}

func (s *stubTransformer) Probe(ctx context.Context, path string) (media.Metadata, error) {
	return media.Metadata{}, nil
}

func newTestReel(t *testing.T, stub *stubTransformer) (*implReel, workspace.Workspace) {
	t.Helper()
	ws := workspace.New(t.TempDir(), logger.New("error"))
	if err := ws.Ensure(); err != nil {
		t.Fatal(err)
	}
	return New(ws, stub, logger.New("error")).(*implReel), ws
}

func TestToVerticalFilter(t *testing.T) {
	stub := &stubTransformer{}
	r, ws := newTestReel(t, stub)

	out, err := r.ToVertical(context.Background(), "input.mp4")
	if err != nil {
		t.Fatalf("ToVertical() error = %v", err)
	}
	if out != ws.VerticalVideo() {
		t.Errorf("output = %q, want fixed vertical slot %q", out, ws.VerticalVideo())
	}

	if len(stub.requests) != 1 {
		t.Fatalf("transform calls = %d, want 1", len(stub.requests))
	}
	args := strings.Join(stub.requests[0].OutputArgs, " ")
	if !strings.Contains(args, "scale=1080:-2,pad=1080:1920:(ow-iw)/2:(oh-ih)/2") {
		t.Errorf("vertical filter missing from args: %q", args)
	}
}

func TestToVerticalPropagatesTransformError(t *testing.T) {
	stub := &stubTransformer{err: &media.TransformError{Op: "vertical", Diagnostic: "unsupported codec", Err: errors.New("exit 1")}}
	r, _ := newTestReel(t, stub)

	_, err := r.ToVertical(context.Background(), "input.mp4")
	var tErr *media.TransformError
	if !errors.As(err, &tErr) {
		t.Fatalf("error type = %T, want *media.TransformError", err)
	}
	if !strings.Contains(tErr.Diagnostic, "unsupported codec") {
		t.Errorf("diagnostic = %q, want the service's raw text", tErr.Diagnostic)
	}
}

func TestExtractAudioProducesBothSlots(t *testing.T) {
	stub := &stubTransformer{}
	r, ws := newTestReel(t, stub)

	wav, mp3, err := r.ExtractAudio(context.Background(), "input.mp4")
	if err != nil {
		t.Fatalf("ExtractAudio() error = %v", err)
	}
	if wav != ws.AudioWAV() || mp3 != ws.AudioMP3() {
		t.Errorf("paths = %q, %q, want fixed slots", wav, mp3)
	}
	if len(stub.requests) != 2 {
		t.Fatalf("transform calls = %d, want 2", len(stub.requests))
	}

	wavArgs := strings.Join(stub.requests[0].OutputArgs, " ")
	if !strings.Contains(wavArgs, "pcm_s16le") || !strings.Contains(wavArgs, "16000") {
		t.Errorf("wav args = %q, want 16kHz PCM", wavArgs)
	}
}

func TestSplitPrecondition(t *testing.T) {
	stub := &stubTransformer{}
	r, ws := newTestReel(t, stub)

	// No vertical artifact has ever been produced.
	chunks, err := r.Split(context.Background())

	var pErr *PreconditionError
	if !errors.As(err, &pErr) {
		t.Fatalf("error type = %T, want *PreconditionError", err)
	}
	if !strings.Contains(pErr.Error(), "run transcoding first") {
		t.Errorf("error = %q, want transcoding hint", pErr.Error())
	}
	if len(chunks) != 0 {
		t.Errorf("chunks = %d, want 0", len(chunks))
	}
	if len(stub.requests) != 0 {
		t.Error("the transform service must not be invoked on a failed precondition")
	}

	onDisk, _ := ws.Chunks()
	if len(onDisk) != 0 {
		t.Errorf("chunk files on disk = %d, want 0", len(onDisk))
	}
}

func TestSplitClearsStaleChunks(t *testing.T) {
	var r *implReel
	var ws workspace.Workspace

	stub := &stubTransformer{
		onCall: func(req media.Request) error {
			// A shorter re-run writes fewer chunks than the prior run left.
			for _, name := range []string{"chunk_000.mp4", "chunk_001.mp4"} {
				if err := os.WriteFile(filepath.Join(ws.Root(), name), []byte("new"), 0644); err != nil {
					return err
				}
			}
			return nil
		},
	}
	r, ws = newTestReel(t, stub)

	if err := os.WriteFile(ws.VerticalVideo(), []byte("v"), 0644); err != nil {
		t.Fatal(err)
	}
	// Stale set from an earlier, longer video.
	for _, name := range []string{"chunk_000.mp4", "chunk_001.mp4", "chunk_002.mp4", "chunk_003.mp4"} {
		if err := os.WriteFile(filepath.Join(ws.Root(), name), []byte("old"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	chunks, err := r.Split(context.Background())
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("chunks = %d, want 2 (stale chunk_002/003 must be gone)", len(chunks))
	}
	for i, c := range chunks {
		want := []string{"chunk_000.mp4", "chunk_001.mp4"}[i]
		if filepath.Base(c) != want {
			t.Errorf("chunk[%d] = %q, want %q", i, filepath.Base(c), want)
		}
	}
}

func TestSplitFailureLeavesZeroChunks(t *testing.T) {
	stub := &stubTransformer{err: &media.TransformError{Op: "segment", Err: errors.New("exit 1")}}
	r, ws := newTestReel(t, stub)

	if err := os.WriteFile(ws.VerticalVideo(), []byte("v"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(ws.Root(), "chunk_000.mp4"), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := r.Split(context.Background())
	if err == nil {
		t.Fatal("Split() should fail when the service fails")
	}

	// The stale set was cleared before the failed call: zero usable chunks,
	// no stale leftovers.
	onDisk, _ := ws.Chunks()
	if len(onDisk) != 0 {
		t.Errorf("chunk files on disk = %d, want 0", len(onDisk))
	}
}

func TestSplitSegmentArgs(t *testing.T) {
	stub := &stubTransformer{}
	r, ws := newTestReel(t, stub)

	if err := os.WriteFile(ws.VerticalVideo(), []byte("v"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := r.Split(context.Background()); err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	req := stub.requests[0]
	args := strings.Join(req.OutputArgs, " ")
	if !strings.Contains(args, "-f segment") || !strings.Contains(args, "-segment_time 30") {
		t.Errorf("segment args = %q", args)
	}
	if !strings.Contains(args, "-c copy") {
		t.Errorf("stream-copy policy missing from args: %q", args)
	}
	if filepath.Base(req.OutputPath) != "chunk_%03d.mp4" {
		t.Errorf("output pattern = %q", req.OutputPath)
	}
}

func TestChunkArithmetic(t *testing.T) {
	tests := []struct {
		duration  float64
		wantCount int
		wantLast  float64
	}{
		{0, 0, 0},
		{10, 1, 10},
		{30, 1, 30},
		{31, 2, 1},
		{90, 3, 30},
		{95.5, 4, 5.5},
		{300, 10, 30},
	}

	for _, tt := range tests {
		if got := ChunkCount(tt.duration); got != tt.wantCount {
			t.Errorf("ChunkCount(%v) = %d, want %d", tt.duration, got, tt.wantCount)
		}
		if got := LastChunkSeconds(tt.duration); got != tt.wantLast {
			t.Errorf("LastChunkSeconds(%v) = %v, want %v", tt.duration, got, tt.wantLast)
		}
	}
}
