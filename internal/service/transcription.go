package service

import (
	"context"
	"log/slog"

	"voicequery/internal/domain"
	"voicequery/internal/nlu"
)

// TranscriptionService forwards a captured audio clip to the external
// transcription engine.
type TranscriptionService struct {
	nlu *nlu.Client
	log *slog.Logger
}

// NewTranscriptionService creates a new TranscriptionService.
func NewTranscriptionService(client *nlu.Client, log *slog.Logger) *TranscriptionService {
	return &TranscriptionService{nlu: client, log: log}
}

var _ domain.Transcriber = (*TranscriptionService)(nil)

// Transcribe submits one non-empty audio clip and returns the recognized
// text. Filename and mime type default to audio.wav / audio/wav when the
// caller does not know them.
func (s *TranscriptionService) Transcribe(ctx context.Context, audio []byte, filename, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", domain.ErrMissingInput("audio payload is empty")
	}
	if filename == "" {
		filename = "audio.wav"
	}
	if mimeType == "" {
		mimeType = "audio/wav"
	}

	resp, err := s.nlu.Transcribe(ctx, audio, filename, mimeType)
	if err != nil {
		return "", domain.ErrUpstream("transcription", "%v", err)
	}

	s.log.Info("audio transcribed", "bytes", len(audio), "chars", len(resp.Text))
	return resp.Text, nil
}
