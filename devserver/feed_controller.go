package devserver

import (
	"encoding/json"
	"log"
	"net/http"

	"campusmatch_client/models"
)

// FeedController serves the profile feed and decision endpoints.
type FeedController struct {
	Store *Store
}

// NewFeedController initializes the feed controller.
func NewFeedController(store *Store) *FeedController {
	return &FeedController{Store: store}
}

// HandleGetMe - return the session user's own profile
func (c *FeedController) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c.Store.Me())
}

// HandleGetCompatibleProfiles - return undecided candidates in
// compatibility order
func (c *FeedController) HandleGetCompatibleProfiles(w http.ResponseWriter, r *http.Request) {
	profiles := c.Store.CompatibleProfiles()
	log.Printf("✅ Serving %d compatible profiles", len(profiles))
	w.Header().Set("Content-Type", "application/json")
	if profiles == nil {
		profiles = []models.Candidate{}
	}
	json.NewEncoder(w).Encode(profiles)
}

// HandleSubmitLike - record a like/pass; 201 with the match on mutual
// interest, 204 otherwise
func (c *FeedController) HandleSubmitLike(w http.ResponseWriter, r *http.Request) {
	var decision models.Decision
	if err := json.NewDecoder(r.Body).Decode(&decision); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if decision.LikedID == "" {
		http.Error(w, `{"error": "liked_id is required"}`, http.StatusBadRequest)
		return
	}

	match := c.Store.SubmitLike(decision.LikedID, decision.IsLike)
	if match == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	log.Printf("🎉 Mutual match recorded: %s ❤️ %s", match.User1ID, match.User2ID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(match)
}

// HandleGetMatches - list confirmed matches with counterpart profiles
func (c *FeedController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	matches := c.Store.Matches()
	w.Header().Set("Content-Type", "application/json")
	if matches == nil {
		matches = []models.MatchEntry{}
	}
	json.NewEncoder(w).Encode(matches)
}
