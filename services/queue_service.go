package services

import (
	"campusmatch_client/models"
)

// DecisionQueue holds the ordered candidates for one feed session.
// Front of the slice is the displayed card, second is the pre-rendered
// peek. Consumption is FIFO and synchronous; the queue advances before
// any network confirmation is awaited, which is what makes a duplicate
// decision against the same displayed card impossible.
type DecisionQueue struct {
	candidates []models.Candidate
}

// NewDecisionQueue returns an empty queue; fill it with Refill.
func NewDecisionQueue() *DecisionQueue {
	return &DecisionQueue{}
}

// Refill replaces the whole queue with a fresh server-ordered list.
// Duplicate ids are dropped keeping the first occurrence, so one feed
// session never shows the same candidate twice.
func (q *DecisionQueue) Refill(candidates []models.Candidate) {
	seen := make(map[string]bool, len(candidates))
	q.candidates = q.candidates[:0]
	for _, c := range candidates {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		q.candidates = append(q.candidates, c)
	}
}

// Current returns the displayed candidate, if any.
func (q *DecisionQueue) Current() (models.Candidate, bool) {
	if len(q.candidates) == 0 {
		return models.Candidate{}, false
	}
	return q.candidates[0], true
}

// PeekNext returns the candidate behind the displayed one, if any.
func (q *DecisionQueue) PeekNext() (models.Candidate, bool) {
	if len(q.candidates) < 2 {
		return models.Candidate{}, false
	}
	return q.candidates[1], true
}

// ConsumeCurrent removes and returns the front candidate.
func (q *DecisionQueue) ConsumeCurrent() (models.Candidate, bool) {
	if len(q.candidates) == 0 {
		return models.Candidate{}, false
	}
	front := q.candidates[0]
	q.candidates = q.candidates[1:]
	return front, true
}

// IsEmpty reports whether the session is drained.
func (q *DecisionQueue) IsEmpty() bool {
	return len(q.candidates) == 0
}

// Len returns the number of undecided candidates remaining.
func (q *DecisionQueue) Len() int {
	return len(q.candidates)
}
