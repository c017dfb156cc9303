package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	app_errors "study-buddy/backend/internal/errors"
	"study-buddy/backend/internal/model"
	"study-buddy/backend/internal/sse"
)

// State is the streaming state of a Conversation.
type State int

const (
	StateIdle State = iota
	StateStreaming
)

func (s State) String() string {
	if s == StateStreaming {
		return "streaming"
	}
	return "idle"
}

// UpdateFunc receives a snapshot of the conversation after every change.
// Snapshots are copies and may be kept. Calls are serialized and never go
// back in time: a snapshot that lost the race to a newer one is dropped, so
// the last call always carries the latest history. An UpdateFunc may read
// the conversation but must not call Send.
type UpdateFunc func(messages []model.Message)

// Conversation is the ordered message history of one chat session.
// Assistant replies are streamed into it one turn at a time.
type Conversation struct {
	client   *Client
	onUpdate UpdateFunc

	mu       sync.Mutex
	messages []model.Message
	state    State
	seq      uint64

	// notifyMu serializes callbacks. It is never acquired while mu is held.
	notifyMu  sync.Mutex
	delivered uint64
}

// NewConversation starts a conversation, optionally seeded with history.
func (c *Client) NewConversation(onUpdate UpdateFunc, history ...model.Message) *Conversation {
	return &Conversation{
		client:   c,
		onUpdate: onUpdate,
		messages: cloneMessages(history),
	}
}

// Messages returns a copy of the current history.
func (cv *Conversation) Messages() []model.Message {
	cv.mu.Lock()
	defer cv.mu.Unlock()
	return cloneMessages(cv.messages)
}

// State reports whether a reply is streaming.
func (cv *Conversation) State() State {
	cv.mu.Lock()
	defer cv.mu.Unlock()
	return cv.state
}

// Turn tracks one assistant reply.
type Turn struct {
	done chan struct{}
	err  error
}

// Done is closed once the reply has finished, failed or been cancelled.
func (t *Turn) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the turn is over. It returns nil when the stream ended
// normally, the context error when the caller cancelled, and otherwise the
// failure that was replaced by FallbackMessage.
func (t *Turn) Wait() error {
	<-t.done
	return t.err
}

// Send appends a user message and streams the assistant reply into the
// conversation in the background. The user message is visible to Messages
// and to the update callback before Send returns. Only one turn may stream
// at a time; a second Send returns ErrTurnInProgress. Cancelling ctx stops
// the stream and keeps whatever text already arrived.
func (cv *Conversation) Send(ctx context.Context, text string) (*Turn, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: message is empty", app_errors.ErrValidation)
	}

	cv.mu.Lock()
	if cv.state == StateStreaming {
		cv.mu.Unlock()
		return nil, app_errors.ErrTurnInProgress
	}
	cv.messages = append(cv.messages, model.Message{Role: model.RoleUser, Content: text})
	cv.state = StateStreaming
	history := cloneMessages(cv.messages)
	seq, snapshot := cv.snapshotLocked()
	cv.mu.Unlock()
	cv.deliver(seq, snapshot)

	turn := &Turn{done: make(chan struct{})}
	go cv.run(ctx, history, turn)
	return turn, nil
}

func (cv *Conversation) run(ctx context.Context, history []model.Message, turn *Turn) {
	log := logger().With("history_len", len(history))

	err := cv.consume(ctx, history)
	fallback := false
	switch {
	case err == nil:
		log.Debug("Stream finished")
	case ctx.Err() != nil:
		log.Info("Stream cancelled by caller", "error", err)
		err = ctx.Err()
	default:
		log.Error("Stream failed, showing fallback reply", "error", err)
		fallback = true
	}

	cv.mu.Lock()
	if fallback {
		cv.messages = append(cv.messages, model.Message{Role: model.RoleAssistant, Content: FallbackMessage})
	}
	cv.state = StateIdle
	seq, snapshot := cv.snapshotLocked()
	cv.mu.Unlock()
	cv.deliver(seq, snapshot)

	turn.err = err
	close(turn.done)
}

// consume reads the reply stream until it ends and applies every delta.
func (cv *Conversation) consume(ctx context.Context, history []model.Message) error {
	body, err := cv.client.openStream(ctx, history)
	if err != nil {
		return err
	}
	reader := newIdleTimeoutReader(body, cv.client.idleTimeout)
	defer reader.Close()

	decoder := sse.NewDecoderSize(reader, cv.client.maxLine)
	var reply strings.Builder
	for {
		delta, err := decoder.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, sse.ErrStreamEvent) {
			return fmt.Errorf("%w: %w", app_errors.ErrUpstream, err)
		}
		if err != nil {
			return fmt.Errorf("failed to read stream: %w", err)
		}
		reply.WriteString(delta)
		cv.applyDelta(reply.String())
	}
}

// applyDelta shows the accumulated reply as the last assistant message.
func (cv *Conversation) applyDelta(reply string) {
	cv.mu.Lock()
	if n := len(cv.messages); n > 0 && cv.messages[n-1].Role == model.RoleAssistant {
		cv.messages[n-1].Content = reply
	} else {
		cv.messages = append(cv.messages, model.Message{Role: model.RoleAssistant, Content: reply})
	}
	seq, snapshot := cv.snapshotLocked()
	cv.mu.Unlock()
	cv.deliver(seq, snapshot)
}

// snapshotLocked numbers the current history for delivery. Callers hold mu.
func (cv *Conversation) snapshotLocked() (uint64, []model.Message) {
	if cv.onUpdate == nil {
		return 0, nil
	}
	cv.seq++
	return cv.seq, cloneMessages(cv.messages)
}

// deliver hands a snapshot to the callback unless a newer one already went
// out. It must be called without mu held so the callback can read the
// conversation.
func (cv *Conversation) deliver(seq uint64, snapshot []model.Message) {
	if cv.onUpdate == nil {
		return
	}
	cv.notifyMu.Lock()
	defer cv.notifyMu.Unlock()
	if seq <= cv.delivered {
		return
	}
	cv.delivered = seq
	cv.onUpdate(snapshot)
}

// openStream posts the history as a chat action and returns the event
// stream body.
func (c *Client) openStream(ctx context.Context, history []model.Message) (io.ReadCloser, error) {
	request := model.ActionRequest{
		Messages: history,
		Action:   model.ActionChat,
		Language: c.language,
	}

	resp, err := c.post(ctx, ChatPath, request)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", app_errors.ErrStreamStart, err)
	}
	if resp.Body == nil || resp.Body == http.NoBody {
		if resp.Body != nil {
			resp.Body.Close()
		}
		return nil, fmt.Errorf("%w: response has no body", app_errors.ErrStreamStart)
	}
	return resp.Body, nil
}

// idleTimeoutReader closes the body when no bytes arrive for timeout. The
// blocked Read then fails with ErrTimeout.
type idleTimeoutReader struct {
	body    io.ReadCloser
	timeout time.Duration
	timer   *time.Timer
	expired atomic.Bool
}

func newIdleTimeoutReader(body io.ReadCloser, timeout time.Duration) *idleTimeoutReader {
	r := &idleTimeoutReader{body: body, timeout: timeout}
	if timeout > 0 {
		r.timer = time.AfterFunc(timeout, r.expire)
	}
	return r
}

func (r *idleTimeoutReader) expire() {
	r.expired.Store(true)
	_ = r.body.Close()
}

func (r *idleTimeoutReader) Read(p []byte) (int, error) {
	n, err := r.body.Read(p)
	if r.expired.Load() {
		return n, fmt.Errorf("%w: no stream data for %s", app_errors.ErrTimeout, r.timeout)
	}
	if n > 0 && r.timer != nil {
		r.timer.Reset(r.timeout)
	}
	return n, err
}

func (r *idleTimeoutReader) Close() error {
	if r.timer != nil {
		r.timer.Stop()
	}
	return r.body.Close()
}

func cloneMessages(messages []model.Message) []model.Message {
	if len(messages) == 0 {
		return []model.Message{}
	}
	out := make([]model.Message, len(messages))
	copy(out, messages)
	return out
}
