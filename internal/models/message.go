package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Message struct {
	ID             primitive.ObjectID  `json:"_id,omitempty" bson:"_id,omitempty"`
	ConversationID string              `json:"conversationId" bson:"conversationId"`
	Sender         primitive.ObjectID  `json:"sender" bson:"sender"`
	Recipient      primitive.ObjectID  `json:"recipient" bson:"recipient"`
	Property       *primitive.ObjectID `json:"property,omitempty" bson:"property,omitempty"`
	Content        string              `json:"content" bson:"content"`
	Read           bool                `json:"read" bson:"read"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt"`
}

// ConversationSummary is one inbox row: the peer plus the latest message
// exchanged with them.
type ConversationSummary struct {
	Peer        OwnerSummary `json:"peer"`
	LastMessage Message      `json:"lastMessage"`
	Unread      int64        `json:"unread"`
}
