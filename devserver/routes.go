package devserver

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes wires the dev server's contract endpoints onto the
// router. Paths mirror the production API the client is written
// against.
func RegisterRoutes(r *mux.Router, store *Store) {
	feed := NewFeedController(store)
	chat := NewChatController(store)

	r.HandleFunc("/user/me", feed.HandleGetMe).Methods("GET")
	r.HandleFunc("/profiles/compatible", feed.HandleGetCompatibleProfiles).Methods("GET")
	r.HandleFunc("/like", feed.HandleSubmitLike).Methods("POST")
	r.HandleFunc("/matches", feed.HandleGetMatches).Methods("GET")

	r.HandleFunc("/messages/{id}/image", chat.HandleGetMessageImage).Methods("GET")
	r.HandleFunc("/messages/{userId}", chat.HandleGetMessages).Methods("GET")
	r.HandleFunc("/message", chat.HandleSendMessage).Methods("POST")
}
