package models

// Decision is the like/pass verdict for a single candidate. Sent
// at-most-once per candidate id within a feed session; the queue
// advances before the request is issued, so a duplicate can never be
// built from the same displayed card.
type Decision struct {
	LikedID string `json:"liked_id"`
	IsLike  bool   `json:"is_like"`
}
