package services

import (
	"context"
	"fmt"

	"easyrent-backend/internal/models"
	"easyrent-backend/internal/repositories"
	"easyrent-backend/internal/validators"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessageService struct {
	repo      repositories.MessageRepository
	userRepo  repositories.UserRepository
	validator validators.MessageValidator
}

func NewMessageService(
	repo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	validator validators.MessageValidator,
) *MessageService {
	return &MessageService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// ConversationID derives a stable identifier for the pair of participants.
// The pair is sorted first, so both directions of a dialog land in the same
// conversation.
func ConversationID(a, b primitive.ObjectID) string {
	lo, hi := a.Hex(), b.Hex()
	if lo > hi {
		lo, hi = hi, lo
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(lo+":"+hi)).String()
}

func (s *MessageService) SendMessage(ctx context.Context, senderID, recipientID, propertyID, content string) (*models.Message, error) {
	if err := s.validator.ValidateSend(recipientID, content); err != nil {
		return nil, err
	}

	sender, err := primitive.ObjectIDFromHex(senderID)
	if err != nil {
		return nil, fmt.Errorf("invalid sender ID")
	}
	recipient, err := primitive.ObjectIDFromHex(recipientID)
	if err != nil {
		return nil, fmt.Errorf("invalid recipient ID")
	}
	if sender == recipient {
		return nil, fmt.Errorf("cannot send a message to yourself")
	}

	recipientUser, err := s.userRepo.FindByID(ctx, recipient)
	if err != nil {
		return nil, err
	}
	if recipientUser == nil {
		return nil, fmt.Errorf("recipient not found")
	}

	message := &models.Message{
		ConversationID: ConversationID(sender, recipient),
		Sender:         sender,
		Recipient:      recipient,
		Content:        content,
	}
	if propertyID != "" {
		property, err := primitive.ObjectIDFromHex(propertyID)
		if err != nil {
			return nil, fmt.Errorf("invalid property ID")
		}
		message.Property = &property
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListConversations returns one summary per dialog the user participates in,
// newest first, with the peer's public details and the unread count.
func (s *MessageService) ListConversations(ctx context.Context, userID string) ([]models.ConversationSummary, error) {
	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	latest, err := s.repo.FindLatestPerConversation(ctx, user)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ConversationSummary, 0, len(latest))
	for _, message := range latest {
		peerID := message.Sender
		if peerID == user {
			peerID = message.Recipient
		}

		summary := models.ConversationSummary{
			Peer:        models.OwnerSummary{ID: peerID.Hex()},
			LastMessage: message,
		}
		if peer, err := s.userRepo.FindByID(ctx, peerID); err == nil && peer != nil {
			summary.Peer.Name = peer.Name
			summary.Peer.Email = peer.Email
		}
		if unread, err := s.repo.CountUnread(ctx, message.ConversationID, user); err == nil {
			summary.Unread = unread
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetConversation returns the full dialog with the peer in chronological
// order and marks the user's unread messages in it as read.
func (s *MessageService) GetConversation(ctx context.Context, userID, peerID string) ([]models.Message, error) {
	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	peer, err := primitive.ObjectIDFromHex(peerID)
	if err != nil {
		return nil, fmt.Errorf("invalid peer ID")
	}

	conversationID := ConversationID(user, peer)
	messages, err := s.repo.FindByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.MarkRead(ctx, conversationID, user); err != nil {
		return nil, err
	}
	return messages, nil
}
