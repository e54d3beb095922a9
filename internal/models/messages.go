package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a single note exchanged between two users about one listing.
type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderID   primitive.ObjectID `bson:"sender_id" json:"sender_id"`
	ReceiverID primitive.ObjectID `bson:"receiver_id" json:"receiver_id"`
	ListingID  primitive.ObjectID `bson:"listing_id" json:"listing_id"`
	Body       string             `bson:"body" json:"body"`
	IsRead     bool               `bson:"is_read" json:"is_read"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// ConversationThread is computed per viewer and never stored.
type ConversationThread struct {
	ListingID      primitive.ObjectID `json:"listing_id"`
	ListingName    string             `json:"listing_name"`
	OtherUserID    primitive.ObjectID `json:"other_user_id"`
	OtherUserName  string             `json:"other_user_name"`
	LastMessage    string             `json:"last_message"`
	LastMessageAt  time.Time          `json:"last_message_at"`
	LastSenderID   primitive.ObjectID `json:"last_sender_id"`
	LastReceiverID primitive.ObjectID `json:"last_receiver_id"`
	UnreadCount    int                `json:"unread_count"`
}
