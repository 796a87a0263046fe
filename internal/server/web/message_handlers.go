package web

import (
	"encoding/json"
	"net/http"
)

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
}

// conversationItem tags each message with is_sent so the client can tell
// its own messages apart without comparing ids.
type conversationItem struct {
	ID         string  `json:"id"`
	Content    string  `json:"content"`
	SenderID   string  `json:"sender_id"`
	ReceiverID string  `json:"receiver_id"`
	IsSent     bool    `json:"is_sent"`
	CreatedAt  *string `json:"created_at"`
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ReceiverID == "" || req.Content == "" {
		s.respondError(w, http.StatusBadRequest, "Receiver and content required")
		return
	}

	msg, err := s.messages.Send(r.Context(), callerID(r.Context()), req.ReceiverID, req.Content)
	if err != nil {
		s.logger.Error(r.Context(), "message send failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message_id": msg.ID,
		"created_at": isoTime(msg.CreatedAt),
	})
}

func (s *Server) handleGetConversation(w http.ResponseWriter, r *http.Request) {
	otherID := r.URL.Query().Get("user_id")
	if otherID == "" {
		s.respondError(w, http.StatusBadRequest, "User ID required")
		return
	}

	caller := callerID(r.Context())
	msgs, err := s.messages.Conversation(r.Context(), caller, otherID)
	if err != nil {
		s.logger.Error(r.Context(), "conversation lookup failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	items := make([]conversationItem, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, conversationItem{
			ID:         m.ID,
			Content:    m.Content,
			SenderID:   m.SenderID,
			ReceiverID: m.ReceiverID,
			IsSent:     m.SenderID == caller,
			CreatedAt:  isoTime(m.CreatedAt),
		})
	}
	s.respondJSON(w, http.StatusOK, items)
}
