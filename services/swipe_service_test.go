package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"campusmatch_client/models"
)

type submitCall struct {
	id     string
	isLike bool
}

type fakeDecisionAPI struct {
	status  int
	err     error
	release chan struct{} // when set, SubmitLike blocks until closed
	calls   chan submitCall
}

func newFakeDecisionAPI(status int) *fakeDecisionAPI {
	return &fakeDecisionAPI{status: status, calls: make(chan submitCall, 8)}
}

func (f *fakeDecisionAPI) SubmitLike(ctx context.Context, likedID string, isLike bool) (int, error) {
	if f.release != nil {
		<-f.release
	}
	f.calls <- submitCall{id: likedID, isLike: isLike}
	return f.status, f.err
}

type fakeFeedRenderer struct {
	heads     []string
	peeks     []string
	exhausted int
}

func (f *fakeFeedRenderer) RenderCards(current models.Candidate, peek *models.Candidate) {
	f.heads = append(f.heads, current.ID)
	if peek != nil {
		f.peeks = append(f.peeks, peek.ID)
	} else {
		f.peeks = append(f.peeks, "")
	}
}

func (f *fakeFeedRenderer) RenderExhausted() {
	f.exhausted++
}

type fakeMatchView struct {
	shown chan models.Candidate
}

func newFakeMatchView() *fakeMatchView {
	return &fakeMatchView{shown: make(chan models.Candidate, 8)}
}

func (f *fakeMatchView) Show(me, matched models.Candidate) { f.shown <- matched }
func (f *fakeMatchView) Hide()                             {}

func newTestCoordinator(api *fakeDecisionAPI) (*SwipeCoordinator, *fakeFeedRenderer, *fakeMatchView) {
	renderer := &fakeFeedRenderer{}
	view := newFakeMatchView()
	coord := &SwipeCoordinator{
		Queue:    NewDecisionQueue(),
		API:      api,
		Notifier: &MatchNotifier{View: view},
		Renderer: renderer,
		View:     NewViewHandle(),
		Me:       models.Candidate{ID: "me", DisplayName: "Me"},
	}
	return coord, renderer, view
}

func waitCall(t *testing.T, api *fakeDecisionAPI) submitCall {
	t.Helper()
	select {
	case c := <-api.calls:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for decision submission")
		return submitCall{}
	}
}

func waitShown(t *testing.T, view *fakeMatchView) models.Candidate {
	t.Helper()
	select {
	case c := <-view.shown:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for match presentation")
		return models.Candidate{}
	}
}

func expectNoShow(t *testing.T, view *fakeMatchView) {
	t.Helper()
	select {
	case c := <-view.shown:
		t.Fatalf("unexpected match presentation for %s", c.ID)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCommitAdvancesQueueBeforeResponse(t *testing.T) {
	api := newFakeDecisionAPI(http.StatusCreated)
	api.release = make(chan struct{})
	coord, renderer, _ := newTestCoordinator(api)
	coord.Refill(candidates("p1", "p2", "p3"))

	coord.Commit(DirectionAccept)

	// The request is still blocked, but the queue already advanced and
	// the new head pair rendered.
	if coord.Queue.Len() != 2 {
		t.Fatalf("queue len = %d, want 2 before any response", coord.Queue.Len())
	}
	last := renderer.heads[len(renderer.heads)-1]
	if last != "p2" {
		t.Fatalf("rendered head = %s, want p2", last)
	}

	close(api.release)
	if c := waitCall(t, api); c.id != "p1" || !c.isLike {
		t.Fatalf("submitted = %+v, want {p1 true}", c)
	}
}

func TestSwipeScenario(t *testing.T) {
	api := newFakeDecisionAPI(http.StatusCreated)
	coord, _, view := newTestCoordinator(api)
	coord.Refill(candidates("p1", "p2", "p3"))
	tracker := NewGestureTracker()

	// Swipe p1 right with dx=150: commit, decision sent, 201 -> match.
	tracker.Begin(100, 300)
	tracker.Update(250, 300)
	coord.Resolve(tracker.End(250))

	if c := waitCall(t, api); c.id != "p1" || !c.isLike {
		t.Fatalf("submitted = %+v, want {p1 true}", c)
	}
	if matched := waitShown(t, view); matched.ID != "p1" {
		t.Fatalf("match shown for %s, want p1", matched.ID)
	}
	if coord.Queue.Len() != 2 {
		t.Fatalf("queue len = %d, want 2", coord.Queue.Len())
	}

	// Swipe p2 left with dx=40: below threshold, cancel, no decision.
	tracker.Begin(100, 300)
	tracker.Update(60, 300)
	coord.Resolve(tracker.End(60))
	if coord.Queue.Len() != 2 {
		t.Fatalf("queue changed on a cancelled gesture: len = %d", coord.Queue.Len())
	}

	// Swipe p2 left with dx=-120: reject sent, no match regardless of
	// the 201 the fake keeps returning.
	tracker.Begin(200, 300)
	tracker.Update(80, 300)
	coord.Resolve(tracker.End(80))

	if c := waitCall(t, api); c.id != "p2" || c.isLike {
		t.Fatalf("submitted = %+v, want {p2 false}", c)
	}
	expectNoShow(t, view)
	if coord.Queue.Len() != 1 {
		t.Fatalf("queue len = %d, want 1", coord.Queue.Len())
	}
}

func TestCommitOnEmptyQueueIsNoOp(t *testing.T) {
	api := newFakeDecisionAPI(http.StatusNoContent)
	coord, renderer, _ := newTestCoordinator(api)

	coord.Commit(DirectionAccept)
	coord.Like()
	coord.Pass()

	select {
	case c := <-api.calls:
		t.Fatalf("decision %+v issued from an empty queue", c)
	case <-time.After(100 * time.Millisecond):
	}
	if len(renderer.heads) != 0 {
		t.Fatal("render fired for an empty-queue commit")
	}
}

func TestButtonsShareCommitPath(t *testing.T) {
	api := newFakeDecisionAPI(http.StatusNoContent)
	coord, _, _ := newTestCoordinator(api)
	coord.Refill(candidates("p1", "p2"))

	coord.Like()
	if c := waitCall(t, api); c.id != "p1" || !c.isLike {
		t.Fatalf("submitted = %+v, want {p1 true}", c)
	}
	coord.Pass()
	if c := waitCall(t, api); c.id != "p2" || c.isLike {
		t.Fatalf("submitted = %+v, want {p2 false}", c)
	}
	if !coord.Exhausted() {
		t.Fatal("two decisions on two candidates must exhaust the queue")
	}
}

func TestExhaustedStateAndRefill(t *testing.T) {
	api := newFakeDecisionAPI(http.StatusNoContent)
	coord, renderer, _ := newTestCoordinator(api)
	coord.Refill(candidates("p1"))

	coord.Like()
	waitCall(t, api)
	if renderer.exhausted != 1 {
		t.Fatalf("exhausted renders = %d, want 1", renderer.exhausted)
	}
	if !coord.Exhausted() {
		t.Fatal("coordinator not exhausted after draining")
	}

	coord.Refill(candidates("p4"))
	if coord.Exhausted() {
		t.Fatal("refill must exit the exhausted state")
	}
	last := renderer.heads[len(renderer.heads)-1]
	if last != "p4" {
		t.Fatalf("rendered head after refill = %s, want p4", last)
	}
}

func TestNonMutualAndFailedDecisionsShowNoMatch(t *testing.T) {
	api := newFakeDecisionAPI(http.StatusNoContent)
	coord, _, view := newTestCoordinator(api)
	coord.Refill(candidates("p1", "p2"))

	// Recorded but not mutual.
	coord.Like()
	waitCall(t, api)
	expectNoShow(t, view)

	// Transport failure: swallowed, queue already advanced, no retry.
	api.err = errors.New("connection reset")
	coord.Like()
	waitCall(t, api)
	expectNoShow(t, view)
	if coord.Queue.Len() != 0 {
		t.Fatalf("queue len = %d, want 0 after optimistic advances", coord.Queue.Len())
	}
}

func TestDetachedViewSuppressesMatchPresentation(t *testing.T) {
	api := newFakeDecisionAPI(http.StatusCreated)
	api.release = make(chan struct{})
	coord, _, view := newTestCoordinator(api)
	coord.Refill(candidates("p1"))

	coord.Like()
	// The feed unmounts while the decision is in flight.
	coord.View.Close()
	close(api.release)

	waitCall(t, api)
	expectNoShow(t, view)
}
