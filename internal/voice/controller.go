// Package voice implements the voice-input controller: a state machine that
// acquires one spoken utterance per session through an injected acquisition
// provider. Two provider variants exist: a platform-native recognizer and a
// record-and-transcribe fallback, chosen once at controller construction and
// never re-evaluated per call.
package voice

import (
	"context"
	"fmt"
	"sync"
)

// State is the controller's acquisition state.
type State int

const (
	// Idle means no acquisition session is active.
	Idle State = iota
	// Listening means a session is in flight.
	Listening
	// Recognized means a transcript was produced; transient, auto-resets to Idle.
	Recognized
	// Failed means the session ended with an error; transient, auto-resets to Idle.
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Listening:
		return "listening"
	case Recognized:
		return "recognized"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Result is the outcome of one acquisition session. A session that ends
// silently (end-of-stream with no transcript, cancellation, or a swallowed
// fallback failure) closes its channel without sending a Result.
type Result struct {
	Text string
	Err  error
}

// Events carries a session's outcome from the provider back to the
// controller. Callbacks are safe to invoke from any goroutine; the controller
// ignores events from superseded sessions.
type Events struct {
	// Result delivers the recognized transcript.
	Result func(text string)
	// Error delivers a recognizer error to the caller.
	Error func(err error)
	// Fail signals a swallowed failure: the session passes through Failed
	// but no error reaches the caller.
	Fail func()
	// End signals end-of-stream with nothing to deliver.
	End func()
}

// Session is one in-flight acquisition owned by a provider.
type Session interface {
	// Cancel requests the session to stop early. Only the native strategy
	// honors it; the fallback's fixed capture window always runs out.
	Cancel()
}

// Provider starts acquisition sessions. Implementations: NativeProvider,
// FallbackProvider.
type Provider interface {
	Name() string
	// Cancelable reports whether Cancel on a session has any effect.
	Cancelable() bool
	// Begin starts one session, reporting its outcome through ev exactly once
	// (one Result, Error, Fail, or End call).
	Begin(ctx context.Context, ev Events) (Session, error)
}

// Controller is the voice-input state machine. One session may be active at a
// time; a start request while Listening is a no-op. Recognized and Failed
// auto-reset to Idle after delivering their outcome, so the controller is
// always ready for a new session once the previous one's channel is closed.
type Controller struct {
	provider Provider

	mu      sync.Mutex
	state   State
	seq     uint64 // current session id; stale session events are dropped
	session Session
	ch      chan Result
}

// NewController creates a Controller over the given provider. The provider
// choice is fixed for the controller's lifetime.
func NewController(p Provider) *Controller {
	return &Controller{provider: p, state: Idle}
}

// State returns the current acquisition state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start begins a new acquisition session and returns its result channel. The
// channel receives at most one Result and is then closed; a silent end closes
// it without a value. If a session is already listening, Start is a no-op and
// returns the in-flight session's channel with started=false.
func (c *Controller) Start(ctx context.Context) (results <-chan Result, started bool) {
	c.mu.Lock()
	if c.state == Listening {
		ch := c.ch
		c.mu.Unlock()
		return ch, false
	}

	c.seq++
	id := c.seq
	c.state = Listening
	c.ch = make(chan Result, 1)
	ch := c.ch
	ev := Events{
		Result: func(text string) { c.finish(id, Recognized, &Result{Text: text}) },
		Error:  func(err error) { c.finish(id, Failed, &Result{Err: err}) },
		Fail:   func() { c.finish(id, Failed, nil) },
		End:    func() { c.finish(id, Idle, nil) },
	}
	c.mu.Unlock()

	session, err := c.provider.Begin(ctx, ev)
	if err != nil {
		// A session that never started ends silently.
		c.finish(id, Idle, nil)
		return ch, true
	}

	c.mu.Lock()
	if c.seq == id && c.state == Listening {
		c.session = session
	}
	c.mu.Unlock()
	return ch, true
}

// Stop cancels the in-flight session. Honored only when the provider is
// cancelable (native strategy); otherwise the capture window runs out on its
// own. A canceled session's channel is closed without a value.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.state != Listening || !c.provider.Cancelable() {
		c.mu.Unlock()
		return
	}
	id := c.seq
	session := c.session
	c.mu.Unlock()

	if session != nil {
		session.Cancel()
	}
	c.finish(id, Idle, nil)
}

// finish delivers a session outcome and resets to Idle. Events from
// superseded or already-finished sessions are dropped.
func (c *Controller) finish(id uint64, via State, res *Result) {
	c.mu.Lock()
	if c.seq != id || c.state != Listening {
		c.mu.Unlock()
		return
	}
	ch := c.ch
	c.state = via
	c.session = nil
	if res != nil {
		ch <- *res
	}
	close(ch)
	// Recognized and Failed are transient: the outcome is on the channel, so
	// the controller immediately returns to Idle.
	c.state = Idle
	c.mu.Unlock()
}
