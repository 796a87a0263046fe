package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap/internal/common"
	"github.com/skillswap/skillswap/internal/server/models"
	"github.com/skillswap/skillswap/internal/server/repositories/repomanager"
)

// MessageService stores direct messages and reconstructs two-party
// conversations on read.
type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewMessageService constructs a MessageService.
func NewMessageService(db *sql.DB, m repomanager.RepositoryManager) *MessageService {
	return &MessageService{db: db, repomanager: m}
}

// Send stores a message from senderID to receiverID. The receiver id is
// stored as given; its existence is not validated. Messages start unread
// and are immutable afterwards.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID, content string) (*models.Message, error) {
	msg := &models.Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		IsRead:     false,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.repomanager.Messages(s.db).Create(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("error creating message: %w", err)
	}
	return created, nil
}

// Conversation returns the full message history between callerID and
// otherID, ascending by creation time. The result is the same regardless
// of which side asks.
func (s *MessageService) Conversation(ctx context.Context, callerID, otherID string) ([]*models.Message, error) {
	msgs, err := s.repomanager.Messages(s.db).Conversation(ctx, callerID, otherID)
	if err != nil {
		return nil, common.ErrInternal
	}
	return msgs, nil
}
