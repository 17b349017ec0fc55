package models

// Match is the body returned with a 201 on a mutual like. The swipe
// engine branches on the status code alone; the body is kept for the
// match list and for parity with the server contract.
type Match struct {
	ID        string `json:"id"`
	User1ID   string `json:"user1_id"`
	User2ID   string `json:"user2_id"`
	CreatedAt string `json:"created_at"`
}

// MatchEntry is one element of the matches listing: the counterpart's
// profile, ready to open a chat against.
type MatchEntry struct {
	User Candidate `json:"user"`
}
