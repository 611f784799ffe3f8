package voice

import (
	"context"
	"log/slog"
	"time"

	"voicequery/internal/domain"
)

// Recorder captures raw audio for the fallback strategy.
type Recorder interface {
	// Start begins capture.
	Start() error
	// Stop ends capture and returns the assembled clip and its mime type.
	Stop() (clip []byte, mimeType string, err error)
}

// FallbackProvider records audio for a fixed window and ships the clip to the
// transcription gateway. Used only when no platform recognizer is available.
// The window expires deterministically, with no silence detection, and
// it cannot be shortened once capture starts, which keeps the clip
// well-formed. All failures are swallowed: speech input is always an
// alternative to typed text, never the only path, so the fallback must never
// break the caller's flow.
type FallbackProvider struct {
	rec         Recorder
	transcriber domain.Transcriber
	window      time.Duration
	log         *slog.Logger

	after func(time.Duration) <-chan time.Time
}

// NewFallbackProvider creates a FallbackProvider with the given capture
// window.
func NewFallbackProvider(rec Recorder, tr domain.Transcriber, window time.Duration, log *slog.Logger) *FallbackProvider {
	return &FallbackProvider{
		rec:         rec,
		transcriber: tr,
		window:      window,
		log:         log,
		after:       time.After,
	}
}

func (p *FallbackProvider) Name() string { return "fallback" }

func (p *FallbackProvider) Cancelable() bool { return false }

// Begin captures for exactly the configured window, then makes exactly one
// transcription call. Success delivers the text; any failure passes through
// the Failed transition without delivering an error.
func (p *FallbackProvider) Begin(ctx context.Context, ev Events) (Session, error) {
	go func() {
		if err := p.rec.Start(); err != nil {
			p.log.Debug("voice fallback: capture start failed", "err", err)
			ev.Fail()
			return
		}

		<-p.after(p.window)

		clip, mimeType, err := p.rec.Stop()
		if err != nil {
			p.log.Debug("voice fallback: capture stop failed", "err", err)
			ev.Fail()
			return
		}

		text, err := p.transcriber.Transcribe(ctx, clip, "query.wav", mimeType)
		if err != nil {
			p.log.Debug("voice fallback: transcription failed", "err", err)
			ev.Fail()
			return
		}
		ev.Result(text)
	}()

	return fallbackSession{}, nil
}

// fallbackSession ignores Cancel: the capture window is not cancelable once
// capture starts.
type fallbackSession struct{}

func (fallbackSession) Cancel() {}
