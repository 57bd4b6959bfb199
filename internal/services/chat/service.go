// Package chat keeps the per-user assistant log. A user message
// triggers a delayed bot reply written by a detached goroutine; the
// reply is fire-and-forget with no ordering guarantee relative to
// later user messages.
package chat

import (
	"context"
	"fmt"
	"log"
	"time"

	"campuspay/internal/models"
	"campuspay/internal/repositories"
)

// DefaultBotReplyDelay mimics the assistant "thinking" before it
// answers.
const DefaultBotReplyDelay = time.Second

type Service interface {
	List(ctx context.Context, userID uint) ([]models.ChatMessage, error)
	Send(ctx context.Context, userID uint, message, sender string) (*models.ChatMessage, error)
}

type service struct {
	chat     repositories.ChatRepository
	policy   ResponsePolicy
	botDelay time.Duration
}

// NewService creates the chat service. A zero botDelay falls back to
// DefaultBotReplyDelay.
func NewService(chat repositories.ChatRepository, policy ResponsePolicy, botDelay time.Duration) Service {
	if policy == nil {
		policy = RandomCannedResponse{}
	}
	if botDelay == 0 {
		botDelay = DefaultBotReplyDelay
	}
	return &service{chat: chat, policy: policy, botDelay: botDelay}
}

func (s *service) List(_ context.Context, userID uint) ([]models.ChatMessage, error) {
	return s.chat.GetByUser(userID)
}

func (s *service) Send(_ context.Context, userID uint, message, sender string) (*models.ChatMessage, error) {
	msg := &models.ChatMessage{
		UserID:    userID,
		Message:   message,
		Sender:    sender,
		Timestamp: time.Now(),
	}
	if err := s.chat.Create(msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	if sender == models.SenderUser {
		reply := s.policy.Reply(message)
		go func() {
			time.Sleep(s.botDelay)
			bot := &models.ChatMessage{
				UserID:    userID,
				Message:   reply,
				Sender:    models.SenderBot,
				Timestamp: time.Now(),
			}
			if err := s.chat.Create(bot); err != nil {
				log.Printf("failed to store bot reply for user %d: %v", userID, err)
			}
		}()
	}

	return msg, nil
}
