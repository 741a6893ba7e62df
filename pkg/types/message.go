package types

// Role identifies the author of a chat message.
type Role string

// Message is a single chat message exchanged with a language model.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
