package models

// Candidate is a profile eligible for a swipe decision in the current
// feed session. Immutable once fetched; owned by the DecisionQueue while
// queued.
type Candidate struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Age         int      `json:"age,omitempty"`
	Major       string   `json:"major,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Interests   []string `json:"interests,omitempty"`
	HasImage    bool     `json:"has_image"`
}
