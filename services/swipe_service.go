package services

import (
	"context"
	"log"
	"net/http"

	"campusmatch_client/models"
)

// DecisionAPI is the slice of the HTTP client the coordinator submits
// decisions through.
type DecisionAPI interface {
	SubmitLike(ctx context.Context, likedID string, isLike bool) (int, error)
}

// FeedRenderer receives the queue-state render hooks: the current/peek
// card pair after every advance, or the exhausted state once the
// session drains.
type FeedRenderer interface {
	RenderCards(current models.Candidate, peek *models.Candidate)
	RenderExhausted()
}

// SwipeCoordinator bridges committed gestures and the like/pass buttons
// to the decision queue and the outbound decision request. The advance
// is optimistic: the card is consumed and re-rendered synchronously,
// then the request goes out fire-and-forget. A failed or ambiguous
// response is never retried and never rolls the queue back; the server
// stays the source of truth and the queue is rebuilt fresh on the next
// feed visit.
type SwipeCoordinator struct {
	Queue    *DecisionQueue
	API      DecisionAPI
	Notifier *MatchNotifier
	Renderer FeedRenderer
	View     *ViewHandle
	Me       models.Candidate
}

// Refill replaces the session queue and renders the new head pair.
// Used at feed entry and from the exhausted state's refresh affordance.
func (c *SwipeCoordinator) Refill(candidates []models.Candidate) {
	c.Queue.Refill(candidates)
	c.render()
}

// Resolve feeds a finished gesture into the decision path. Cancelled
// gestures change nothing.
func (c *SwipeCoordinator) Resolve(outcome GestureOutcome) {
	if !outcome.Committed {
		return
	}
	c.Commit(outcome.Direction)
}

// Like is the explicit accept button. It shares the commit path with
// gestures, so one card yields one decision whatever the input
// modality.
func (c *SwipeCoordinator) Like() {
	c.Commit(DirectionAccept)
}

// Pass is the explicit reject button.
func (c *SwipeCoordinator) Pass() {
	c.Commit(DirectionReject)
}

// Commit consumes the displayed candidate, re-renders immediately, then
// issues the decision request in the background. A commit against an
// empty queue is a no-op.
func (c *SwipeCoordinator) Commit(dir Direction) {
	cand, ok := c.Queue.ConsumeCurrent()
	if !ok {
		return
	}
	c.render()
	go c.submit(cand, dir == DirectionAccept)
}

// Exhausted reports whether the session is drained and waiting on a
// refresh.
func (c *SwipeCoordinator) Exhausted() bool {
	return c.Queue.IsEmpty()
}

func (c *SwipeCoordinator) render() {
	if c.Renderer == nil {
		return
	}
	current, ok := c.Queue.Current()
	if !ok {
		c.Renderer.RenderExhausted()
		return
	}
	var peek *models.Candidate
	if next, ok := c.Queue.PeekNext(); ok {
		peek = &next
	}
	c.Renderer.RenderCards(current, peek)
}

func (c *SwipeCoordinator) submit(cand models.Candidate, isLike bool) {
	status, err := c.API.SubmitLike(context.Background(), cand.ID, isLike)
	if err != nil {
		// Dropped decision: the optimistic advance stands and the
		// candidate can resurface on a later fetch.
		log.Printf("❌ Decision for %s not recorded: %v", cand.ID, err)
		return
	}
	if status == http.StatusCreated && isLike && c.View.Live() {
		c.Notifier.Present(c.Me, cand)
	}
}
