package voice

import (
	"context"
	"fmt"
)

// Recognizer is a platform speech recognizer with callback-style delivery.
// onResult receives the transcript candidates in confidence order; onError
// receives the recognizer's error code; onEnd fires on end-of-stream.
type Recognizer interface {
	Start(onResult func(candidates []string), onError func(code string), onEnd func()) error
	Stop()
}

// RecognizerError is a platform recognizer failure, identified by the
// recognizer's own error code.
type RecognizerError struct {
	Code string
}

func (e *RecognizerError) Error() string { return fmt.Sprintf("recognizer error: %s", e.Code) }

// NativeProvider acquires speech through a platform recognizer. It is the
// preferred strategy: real-time cancellation and lower latency than the
// record-and-transcribe fallback.
type NativeProvider struct {
	rec Recognizer
}

// NewNativeProvider wraps the given platform recognizer.
func NewNativeProvider(rec Recognizer) *NativeProvider {
	return &NativeProvider{rec: rec}
}

func (p *NativeProvider) Name() string { return "native" }

func (p *NativeProvider) Cancelable() bool { return true }

// Begin starts one recognition pass. Only the top candidate is kept;
// lower-confidence alternatives are discarded. End-of-stream with no result
// ends the session silently.
func (p *NativeProvider) Begin(_ context.Context, ev Events) (Session, error) {
	delivered := false
	err := p.rec.Start(
		func(candidates []string) {
			delivered = true
			if len(candidates) == 0 {
				ev.End()
				return
			}
			ev.Result(candidates[0])
		},
		func(code string) {
			delivered = true
			ev.Error(&RecognizerError{Code: code})
		},
		func() {
			if !delivered {
				ev.End()
			}
		},
	)
	if err != nil {
		return nil, fmt.Errorf("start recognizer: %w", err)
	}
	return nativeSession{rec: p.rec}, nil
}

type nativeSession struct {
	rec Recognizer
}

func (s nativeSession) Cancel() { s.rec.Stop() }
