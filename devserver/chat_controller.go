package devserver

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"campusmatch_client/models"

	"github.com/gorilla/mux"
)

// maxMessageUpload caps a message attachment at 10 MB.
const maxMessageUpload = 10 << 20

// ChatController serves the conversation endpoints.
type ChatController struct {
	Store *Store
}

// NewChatController initializes the chat controller.
func NewChatController(store *Store) *ChatController {
	return &ChatController{Store: store}
}

// HandleGetMessages - fetch the conversation with one counterpart,
// oldest first
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	counterpartID := mux.Vars(r)["userId"]
	if counterpartID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	messages := c.Store.Messages(counterpartID)
	w.Header().Set("Content-Type", "application/json")
	if messages == nil {
		messages = []models.Message{}
	}
	json.NewEncoder(w).Encode(messages)
}

// HandleSendMessage - store a multipart message with an optional image
// attachment
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMessageUpload); err != nil {
		http.Error(w, `{"error": "Invalid multipart body"}`, http.StatusBadRequest)
		return
	}

	recipientID := r.FormValue("recipient_id")
	content := r.FormValue("content")
	if recipientID == "" {
		http.Error(w, `{"error": "recipient_id is required"}`, http.StatusBadRequest)
		return
	}

	var image []byte
	if file, _, err := r.FormFile("image"); err == nil {
		data, readErr := io.ReadAll(file)
		file.Close()
		if readErr != nil {
			log.Printf("❌ Failed to read message attachment: %v", readErr)
			http.Error(w, `{"error": "Failed to read image"}`, http.StatusBadRequest)
			return
		}
		image = data
	}

	if content == "" && image == nil {
		http.Error(w, `{"error": "Message needs content or an image"}`, http.StatusBadRequest)
		return
	}

	msg := c.Store.AddMessage(recipientID, content, image)
	log.Printf("📩 Stored message %s -> %s", msg.SenderID, recipientID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(msg)
}

// HandleGetMessageImage - serve a message's raw attachment bytes
func (c *ChatController) HandleGetMessageImage(w http.ResponseWriter, r *http.Request) {
	messageID := mux.Vars(r)["id"]
	data, ok := c.Store.Image(messageID)
	if !ok {
		http.Error(w, `{"error": "No image for message"}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(data)
}
