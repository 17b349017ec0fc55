package services

import (
	"log"
	"sync"

	"campusmatch_client/models"
)

// MatchView is the single modal surface a match is presented on.
type MatchView interface {
	Show(me, matched models.Candidate)
	Hide()
}

// MatchNotifier surfaces a confirmed mutual match and offers the jump
// into chat with that counterpart. Only one modal instance exists, so
// presenting while one is already up overwrites it, last wins.
type MatchNotifier struct {
	View     MatchView
	OpenChat func(counterpartID string)

	mu      sync.Mutex
	matched *models.Candidate
}

// Present shows the match modal for the given pair.
func (n *MatchNotifier) Present(me, matched models.Candidate) {
	n.mu.Lock()
	n.matched = &matched
	n.mu.Unlock()

	log.Printf("🎉 Match confirmed: %s ❤️ %s", me.DisplayName, matched.DisplayName)
	if n.View != nil {
		n.View.Show(me, matched)
	}
}

// StartChat dismisses the modal and navigates into the chat scoped to
// the presented counterpart. No-op when nothing is presented.
func (n *MatchNotifier) StartChat() {
	n.mu.Lock()
	matched := n.matched
	n.matched = nil
	n.mu.Unlock()

	if matched == nil {
		return
	}
	if n.View != nil {
		n.View.Hide()
	}
	if n.OpenChat != nil {
		n.OpenChat(matched.ID)
	}
}

// Dismiss hides the modal without navigating.
func (n *MatchNotifier) Dismiss() {
	n.mu.Lock()
	n.matched = nil
	n.mu.Unlock()

	if n.View != nil {
		n.View.Hide()
	}
}

// Presented returns the currently displayed counterpart, if any.
func (n *MatchNotifier) Presented() (models.Candidate, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.matched == nil {
		return models.Candidate{}, false
	}
	return *n.matched, true
}
