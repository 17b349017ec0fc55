package models

type Message struct {
	ID        string `json:"id"`
	SenderID  string `json:"sender_id"`
	Content   string `json:"content,omitempty"`
	ImageKey  string `json:"image_key,omitempty"`
	CreatedAt string `json:"created_at"`
}
