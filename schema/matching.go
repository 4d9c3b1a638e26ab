package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	HelpRequestCollection    = "helpRequest"
	VolunteerOfferCollection = "volunteerOffer"
	SupportSessionCollection = "supportSession"
)

const (
	REQUEST_OPEN      = "OPEN"
	REQUEST_MATCHED   = "MATCHED"
	REQUEST_COMPLETED = "COMPLETED"

	OFFER_PENDING  = "PENDING"
	OFFER_ACCEPTED = "ACCEPTED"
	OFFER_REJECTED = "REJECTED"

	SESSION_ACTIVE    = "ACTIVE"
	SESSION_COMPLETED = "COMPLETED"
)

// HelpRequest is a posted ask for a fixed amount of volunteer support.
// Its status is only ever moved by the matcher (OPEN -> MATCHED) or by
// session completion (MATCHED -> COMPLETED).
type HelpRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AccountNumber string             `bson:"account_number" json:"account_number"`
	Description   string             `bson:"description" json:"description"`
	Status        string             `bson:"status" json:"status"`
	DurationHours int                `bson:"duration_hours" json:"duration_hours"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// VolunteerOffer is a volunteer's pledge to fulfill a specific help request.
type VolunteerOffer struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestID     primitive.ObjectID `bson:"request_id" json:"request_id"`
	AccountNumber string             `bson:"account_number" json:"account_number"`
	VolunteerName string             `bson:"volunteer_name" json:"volunteer_name"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// ChatMessage is one entry of a session chat log. Messages are immutable
// once appended and the timestamp is always server-assigned.
type ChatMessage struct {
	Sender     string    `bson:"sender" json:"sender"`
	SenderName string    `bson:"sender_name" json:"sender_name"`
	Content    string    `bson:"content" json:"content"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

// SupportSession is the private two-party conversation created once an
// offer is accepted. Participants always hold exactly the request owner
// and the accepted volunteer.
type SupportSession struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestID    primitive.ObjectID `bson:"request_id" json:"request_id"`
	Participants []string           `bson:"participants" json:"participants"`
	Status       string             `bson:"status" json:"status"`
	ChatLog      []ChatMessage      `bson:"chat_log" json:"chat_log"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
