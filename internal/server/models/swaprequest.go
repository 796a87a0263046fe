package models

import "time"

// SwapRequestStatusPending is the status every request is created with.
// The stored status is otherwise a free-form string set by the recipient.
const SwapRequestStatusPending = "pending"

// SwapRequest is a swap proposal from one user to another. Only the
// recipient may change its status; requests are never deleted.
type SwapRequest struct {
	ID          string
	RequesterID string
	RecipientID string
	Message     string
	Status      string
	CreatedAt   time.Time
}
