package devserver

import (
	"sync"
	"time"

	"campusmatch_client/models"

	"github.com/google/uuid"
)

type storedMessage struct {
	models.Message
	recipientID string
}

// Store is the in-memory state behind the dev server: seeded profiles,
// recorded likes, matches, and messages. It authenticates every request
// as the single seeded user, which is all the client engine needs to
// run end-to-end locally.
type Store struct {
	mu       sync.Mutex
	me       models.Candidate
	profiles []models.Candidate
	likes    map[string]map[string]bool // liker id -> liked id -> is_like
	matches  []models.Match
	messages []storedMessage
	images   map[string][]byte // image_key -> raw bytes
}

// NewStore seeds a store with the session user and the candidate pool.
func NewStore(me models.Candidate, profiles []models.Candidate) *Store {
	return &Store{
		me:       me,
		profiles: profiles,
		likes:    make(map[string]map[string]bool),
		images:   make(map[string][]byte),
	}
}

// Me returns the session user's profile.
func (s *Store) Me() models.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.me
}

// SeedIncomingLike records a like from a seeded profile toward the
// session user, so a right swipe on that profile produces a mutual
// match.
func (s *Store) SeedIncomingLike(likerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordLike(likerID, s.me.ID, true)
}

func (s *Store) recordLike(likerID, likedID string, isLike bool) {
	byLiker, ok := s.likes[likerID]
	if !ok {
		byLiker = make(map[string]bool)
		s.likes[likerID] = byLiker
	}
	byLiker[likedID] = isLike
}

// CompatibleProfiles lists the seeded candidates the session user has
// not yet decided on, in seed (compatibility) order.
func (s *Store) CompatibleProfiles() []models.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	decided := s.likes[s.me.ID]
	var out []models.Candidate
	for _, p := range s.profiles {
		if _, done := decided[p.ID]; done {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SubmitLike upserts the session user's decision on likedID. When the
// decision is a like and the counterpart already liked back, a match is
// created (smaller id first, duplicate pairs collapse) and returned.
func (s *Store) SubmitLike(likedID string, isLike bool) *models.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordLike(s.me.ID, likedID, isLike)

	if !isLike || !s.likes[likedID][s.me.ID] {
		return nil
	}

	user1, user2 := s.me.ID, likedID
	if user2 < user1 {
		user1, user2 = user2, user1
	}
	for i := range s.matches {
		if s.matches[i].User1ID == user1 && s.matches[i].User2ID == user2 {
			return &s.matches[i]
		}
	}
	m := models.Match{
		ID:        uuid.New().String(),
		User1ID:   user1,
		User2ID:   user2,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	s.matches = append(s.matches, m)
	return &m
}

// Matches lists the session user's confirmed matches as counterpart
// profiles.
func (s *Store) Matches() []models.MatchEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.MatchEntry
	for _, m := range s.matches {
		counterpartID := m.User1ID
		if counterpartID == s.me.ID {
			counterpartID = m.User2ID
		}
		for _, p := range s.profiles {
			if p.ID == counterpartID {
				out = append(out, models.MatchEntry{User: p})
				break
			}
		}
	}
	return out
}

// Messages returns the conversation between the session user and the
// counterpart, oldest first.
func (s *Store) Messages(counterpartID string) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Message
	for _, m := range s.messages {
		between := (m.SenderID == s.me.ID && m.recipientID == counterpartID) ||
			(m.SenderID == counterpartID && m.recipientID == s.me.ID)
		if between {
			out = append(out, m.Message)
		}
	}
	return out
}

// AddMessage stores a message from the session user, with an optional
// image attachment, and returns the created record.
func (s *Store) AddMessage(recipientID, content string, image []byte) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := models.Message{
		ID:        uuid.New().String(),
		SenderID:  s.me.ID,
		Content:   content,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	if image != nil {
		msg.ImageKey = uuid.New().String()
		s.images[msg.ImageKey] = image
	}
	s.messages = append(s.messages, storedMessage{Message: msg, recipientID: recipientID})
	return msg
}

// Image returns the raw attachment bytes for a message, when it has
// one.
func (s *Store) Image(messageID string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.messages {
		if m.ID == messageID && m.ImageKey != "" {
			data, ok := s.images[m.ImageKey]
			return data, ok
		}
	}
	return nil, false
}
