package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"campusmatch_client/models"
)

// DefaultPollInterval is the cadence of the repeating message fetch.
const DefaultPollInterval = 5 * time.Second

// ErrNoSession is returned by Send when no chat is open.
var ErrNoSession = errors.New("no open chat session")

// MessageAPI is the slice of the HTTP client the poller fetches and
// sends through.
type MessageAPI interface {
	GetMessages(ctx context.Context, counterpartID string) ([]models.Message, error)
	SendMessage(ctx context.Context, recipientID, content string, image []byte) (models.Message, error)
}

// ChatRenderer receives the ordered message list after each successful
// fetch.
type ChatRenderer interface {
	RenderMessages(messages []models.Message)
}

// ChatSession scopes the repeating fetch to one counterpart. Its done
// channel is the timer handle: closing it releases the poll goroutine,
// and a fetch that resolves after the close never renders.
type ChatSession struct {
	CounterpartID string
	done          chan struct{}
}

// ChatPoller keeps one near-real-time fetch cycle alive for the open
// conversation. There is at most one running session process-wide:
// starting a new one revokes the previous session's timer before the
// replacement is acquired. Poll failures are swallowed and retried on
// the next tick, with no backoff; the cadence is fixed.
type ChatPoller struct {
	API      MessageAPI
	Renderer ChatRenderer
	Interval time.Duration

	mu      sync.Mutex
	session *ChatSession
}

// Start opens the poll cycle for a counterpart. Any prior session, for
// the same counterpart or another, is stopped first. The first fetch
// happens immediately, then on the fixed interval.
func (p *ChatPoller) Start(counterpartID string) {
	p.mu.Lock()
	if p.session != nil {
		close(p.session.done)
	}
	s := &ChatSession{CounterpartID: counterpartID, done: make(chan struct{})}
	p.session = s
	p.mu.Unlock()

	go p.run(s)
}

// Stop releases the poll timer. Safe to call when already stopped.
func (p *ChatPoller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session == nil {
		return
	}
	close(p.session.done)
	p.session = nil
}

// Active returns the counterpart of the running session, if any.
func (p *ChatPoller) Active() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session == nil {
		return "", false
	}
	return p.session.CounterpartID, true
}

// Send posts a message, with an optional binary attachment, to the open
// session's counterpart. On success it triggers an immediate
// out-of-cycle fetch so the sender sees their own message without
// waiting for the next tick. On failure the composed content is gone;
// the input is not restored.
func (p *ChatPoller) Send(ctx context.Context, content string, image []byte) error {
	p.mu.Lock()
	s := p.session
	p.mu.Unlock()
	if s == nil {
		return ErrNoSession
	}
	if content == "" && image == nil {
		return nil
	}

	if _, err := p.API.SendMessage(ctx, s.CounterpartID, content, image); err != nil {
		log.Printf("❌ Failed to send message to %s, composed input lost: %v", s.CounterpartID, err)
		return err
	}
	p.fetch(s)
	return nil
}

func (p *ChatPoller) run(s *ChatSession) {
	p.fetch(s)

	interval := p.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			p.fetch(s)
		}
	}
}

// fetch loads the session's conversation and renders it, unless the
// session was replaced or stopped while the request was in flight.
func (p *ChatPoller) fetch(s *ChatSession) {
	messages, err := p.API.GetMessages(context.Background(), s.CounterpartID)
	if err != nil {
		log.Printf("❌ Poll fetch for %s failed, retrying next tick: %v", s.CounterpartID, err)
		return
	}

	p.mu.Lock()
	live := p.session == s
	p.mu.Unlock()
	if !live {
		return
	}
	if p.Renderer != nil {
		p.Renderer.RenderMessages(messages)
	}
}
