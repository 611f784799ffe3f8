package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"voicequery/internal/voice"
)

// clipRecorder replays a pre-recorded audio file as a capture session.
// Start verifies the file exists so a bad path fails before the window
// opens; Stop hands the bytes over with a mime type derived from the
// extension.
type clipRecorder struct {
	path string
}

func (r clipRecorder) Start() error {
	if _, err := os.Stat(r.path); err != nil {
		return fmt.Errorf("voice file: %w", err)
	}
	return nil
}

func (r clipRecorder) Stop() ([]byte, string, error) {
	clip, err := os.ReadFile(r.path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", r.path, err)
	}
	mimeType := mime.TypeByExtension(filepath.Ext(r.path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return clip, mimeType, nil
}

// transcribeFile runs an audio file through the voice controller with the
// gateway as the transcription engine. A zero capture window makes the
// session fire immediately. A session that ends without delivering a
// transcript surfaces as an error here, since the transcript was requested
// explicitly.
func transcribeFile(ctx context.Context, client *Client, path string) (string, error) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctl := voice.NewController(voice.NewFallbackProvider(clipRecorder{path: path}, client, 0, log))
	results, _ := ctl.Start(ctx)
	res, ok := <-results
	if !ok {
		return "", fmt.Errorf("could not transcribe %s", path)
	}
	if res.Err != nil {
		return "", res.Err
	}
	return res.Text, nil
}
