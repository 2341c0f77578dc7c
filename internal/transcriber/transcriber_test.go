package transcriber

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/reelify/internal/config"
	"github.com/nguyentantai21042004/reelify/internal/logger"
	"github.com/nguyentantai21042004/reelify/internal/media"
	"github.com/nguyentantai21042004/reelify/internal/workspace"
	"github.com/nguyentantai21042004/reelify/pkg/executor"
)

type stubMedia struct {
	requests []media.Request
	err      error
}

func (s *stubMedia) Transform(ctx context.Context, req media.Request) error {
	s.requests = append(s.requests, req)
	return s.err
}

func (s *stubMedia) Probe(ctx context.Context, path string) (media.Metadata, error) {
	return media.Metadata{}, nil
}

// scriptedExecutor returns one canned result per call, in order.
type scriptedExecutor struct {
	calls   [][]string
	outputs []executor.Output
	errs    []error
}

func (s *scriptedExecutor) Execute(ctx context.Context, name string, args ...string) (executor.Output, error) {
	i := len(s.calls)
	s.calls = append(s.calls, append([]string{name}, args...))
	var out executor.Output
	var err error
	if i < len(s.outputs) {
		out = s.outputs[i]
	}
	if i < len(s.errs) {
		err = s.errs[i]
	}
	return out, err
}

func testConfig() *config.Config {
	return &config.Config{
		Whisper: config.WhisperConfig{
			ModelPath:  "models/ggml-tiny.bin",
			BinaryPath: "whisper-cli",
			Language:   "en",
			Threads:    4,
		},
	}
}

func newTestTranscriber(t *testing.T, m media.Transformer, exec executor.Executor, transcript string) *implTranscriber {
	t.Helper()
	ws := workspace.New(t.TempDir(), logger.New("error"))
	if err := ws.Ensure(); err != nil {
		t.Fatal(err)
	}

	tr := New(testConfig(), ws, m, exec, logger.New("error")).(*implTranscriber)
	tr.readFile = func(name string) ([]byte, error) {
		return []byte(transcript), nil
	}
	return tr
}

func TestTranscribeForcesConfiguredLanguage(t *testing.T) {
	m := &stubMedia{}
	exec := &scriptedExecutor{
		outputs: []executor.Output{
			{Stderr: "whisper_init ...\nauto-detected language: vi (p = 0.976776)\n"},
			{},
		},
	}
	tr := newTestTranscriber(t, m, exec, " Xin chào mọi người. ")

	got, err := tr.Transcribe(context.Background(), "/uploads/talk.mp3")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	// The probe detects Vietnamese, but the full transcript is still
	// requested with the configured fixed language.
	if got.Language != "vi" {
		t.Errorf("detected language = %q, want vi", got.Language)
	}
	if len(exec.calls) != 2 {
		t.Fatalf("whisper calls = %d, want 2 (probe + transcript)", len(exec.calls))
	}

	full := strings.Join(exec.calls[1], " ")
	if !strings.Contains(full, "-l en") {
		t.Errorf("transcript call must force the fixed language: %q", full)
	}
	if !strings.Contains(full, "-otxt") {
		t.Errorf("transcript call must export plain text: %q", full)
	}

	if got.Text != "Xin chào mọi người." {
		t.Errorf("text = %q, want trimmed transcript", got.Text)
	}
	if got.Source != "talk.mp3" {
		t.Errorf("source = %q, want talk.mp3", got.Source)
	}
	if !strings.HasSuffix(got.TextPath, "talk.mp3.txt") {
		t.Errorf("text path = %q, want <original_filename>.txt", got.TextPath)
	}
}

func TestTranscribeProbeClipsLeadingWindow(t *testing.T) {
	m := &stubMedia{}
	exec := &scriptedExecutor{
		outputs: []executor.Output{
			{Stderr: "auto-detected language: en (p = 0.99)"},
			{},
		},
	}
	tr := newTestTranscriber(t, m, exec, "hello")

	if _, err := tr.Transcribe(context.Background(), "/uploads/talk.wav"); err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if len(m.requests) != 1 {
		t.Fatalf("clip transforms = %d, want 1", len(m.requests))
	}
	args := strings.Join(m.requests[0].OutputArgs, " ")
	if !strings.Contains(args, "-t 30") {
		t.Errorf("probe clip must bound the leading window: %q", args)
	}
	if !strings.Contains(args, "16000") {
		t.Errorf("probe clip must be 16kHz mono: %q", args)
	}

	probe := strings.Join(exec.calls[0], " ")
	if !strings.Contains(probe, "--detect-language") {
		t.Errorf("probe call = %q, want detect-only mode", probe)
	}
}

func TestTranscribeDetectionFailure(t *testing.T) {
	m := &stubMedia{}
	exec := &scriptedExecutor{
		outputs: []executor.Output{{Stderr: "no language line here"}},
	}
	tr := newTestTranscriber(t, m, exec, "hello")

	if _, err := tr.Transcribe(context.Background(), "/uploads/talk.mp3"); err == nil {
		t.Fatal("Transcribe() should fail when detection output is unparseable")
	}
}

func TestTranscribeWhisperFailure(t *testing.T) {
	m := &stubMedia{}
	exec := &scriptedExecutor{
		outputs: []executor.Output{
			{Stderr: "auto-detected language: en (p = 0.99)"},
			{},
		},
		errs: []error{nil, errors.New("exit status 1")},
	}
	tr := newTestTranscriber(t, m, exec, "hello")

	if _, err := tr.Transcribe(context.Background(), "/uploads/talk.mp3"); err == nil {
		t.Fatal("Transcribe() should fail when whisper fails")
	}
}
