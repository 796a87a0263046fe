package models

import "time"

// Message is a direct message between two users. Messages are immutable
// once stored; a conversation is reconstructed on read from the unordered
// {sender, receiver} pair, ordered by creation time.
type Message struct {
	ID         string
	SenderID   string
	ReceiverID string
	Content    string
	IsRead     bool
	CreatedAt  time.Time
}
