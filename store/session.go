package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unheard-app/unheard-api/schema"
)

var (
	ErrNotRequestOwner   = fmt.Errorf("only the request owner may accept an offer")
	ErrSessionNotExist   = fmt.Errorf("the session does not exist")
	ErrNotParticipant    = fmt.Errorf("the account is not a participant of the session")
	ErrSessionNotActive  = fmt.Errorf("the session is no longer active")
	ErrRequestNotMatched = fmt.Errorf("the request is not in a matched state")
	ErrEmptyMessage      = fmt.Errorf("the message content is empty")
)

type SupportSessionOperator interface {
	AcceptOffer(caller string, requestID, offerID primitive.ObjectID) (*schema.SupportSession, error)
	GetSession(caller string, id primitive.ObjectID) (*schema.SupportSession, error)
	ListAccountSessions(accountNumber string) ([]schema.SupportSession, error)
	AppendMessage(sessionID primitive.ObjectID, sender, senderName, content string) (*schema.ChatMessage, error)
	CompleteSession(caller string, sessionID primitive.ObjectID) error
}

// AcceptOffer is the matcher: the only state transition that creates a
// session. The three writes happen in one mongo transaction and every
// status update asserts the expected current status in its filter, so a
// concurrent accept on the same request observes MatchedCount 0 and the
// transaction aborts without any partial state becoming visible.
func (m *mongoDB) AcceptOffer(caller string, requestID, offerID primitive.ObjectID) (*schema.SupportSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)
	requests := db.Collection(schema.HelpRequestCollection)
	offers := db.Collection(schema.VolunteerOfferCollection)
	sessions := db.Collection(schema.SupportSessionCollection)

	mongoSession, err := m.client.StartSession()
	if err != nil {
		return nil, err
	}
	defer mongoSession.EndSession(ctx)

	result, err := mongoSession.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var request schema.HelpRequest
		if err := requests.FindOne(sc, bson.M{"_id": requestID}).Decode(&request); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrRequestNotExist
			}
			return nil, err
		}
		if request.AccountNumber != caller {
			return nil, ErrNotRequestOwner
		}

		var offer schema.VolunteerOffer
		if err := offers.FindOne(sc, bson.M{"_id": offerID}).Decode(&offer); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrOfferNotExist
			}
			return nil, err
		}
		if offer.RequestID != requestID {
			return nil, ErrOfferRequestMismatch
		}

		updated, err := requests.UpdateOne(sc,
			bson.M{"_id": requestID, "status": schema.REQUEST_OPEN},
			bson.M{"$set": bson.M{"status": schema.REQUEST_MATCHED}},
		)
		if err != nil {
			return nil, err
		}
		if updated.MatchedCount == 0 {
			return nil, ErrRequestNotOpen
		}

		updated, err = offers.UpdateOne(sc,
			bson.M{"_id": offerID, "status": schema.OFFER_PENDING},
			bson.M{"$set": bson.M{"status": schema.OFFER_ACCEPTED}},
		)
		if err != nil {
			return nil, err
		}
		if updated.MatchedCount == 0 {
			return nil, ErrOfferNotPending
		}

		session := schema.SupportSession{
			RequestID:    requestID,
			Participants: []string{request.AccountNumber, offer.AccountNumber},
			Status:       schema.SESSION_ACTIVE,
			ChatLog:      []schema.ChatMessage{},
			CreatedAt:    time.Now().UTC(),
		}
		inserted, err := sessions.InsertOne(sc, session)
		if err != nil {
			return nil, err
		}
		session.ID = inserted.InsertedID.(primitive.ObjectID)

		return &session, nil
	})
	if err != nil {
		return nil, err
	}

	session := result.(*schema.SupportSession)
	log.WithFields(log.Fields{
		"prefix":     mongoLogPrefix,
		"request_id": requestID.Hex(),
		"session_id": session.ID.Hex(),
	}).Info("matched help request with volunteer offer")

	return session, nil
}

// GetSession returns a session only to its participants.
func (m *mongoDB) GetSession(caller string, id primitive.ObjectID) (*schema.SupportSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SupportSessionCollection)

	var session schema.SupportSession
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&session); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSessionNotExist
		}
		return nil, err
	}

	if !isParticipant(session, caller) {
		return nil, ErrNotParticipant
	}

	return &session, nil
}

// ListAccountSessions returns sessions the account participates in,
// newest first.
func (m *mongoDB) ListAccountSessions(accountNumber string) ([]schema.SupportSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SupportSessionCollection)

	cursor, err := c.Find(ctx,
		bson.M{"participants": accountNumber},
		options.Find().SetSort(bson.M{"created_at": -1}),
	)
	if err != nil {
		return nil, err
	}

	sessions := []schema.SupportSession{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}

	return sessions, nil
}

// AppendMessage pushes one message onto a session chat log. The filter
// asserts the sender is a participant and the session is still active, so
// the append and its permission check are a single atomic operation. The
// timestamp is server-assigned to keep one consistent order across
// participants with skewed clocks.
func (m *mongoDB) AppendMessage(sessionID primitive.ObjectID, sender, senderName, content string) (*schema.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	message := schema.ChatMessage{
		Sender:     sender,
		SenderName: senderName,
		Content:    content,
		Timestamp:  time.Now().UTC(),
	}

	c := m.client.Database(m.database).Collection(schema.SupportSessionCollection)
	result, err := c.UpdateOne(ctx,
		bson.M{
			"_id":          sessionID,
			"status":       schema.SESSION_ACTIVE,
			"participants": sender,
		},
		bson.M{"$push": bson.M{"chat_log": message}},
	)
	if err != nil {
		return nil, err
	}

	if result.MatchedCount == 0 {
		// the filter hides which precondition failed; re-read to report it
		var session schema.SupportSession
		if err := c.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&session); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrSessionNotExist
			}
			return nil, err
		}
		if !isParticipant(session, sender) {
			return nil, ErrNotParticipant
		}
		return nil, ErrSessionNotActive
	}

	return &message, nil
}

// CompleteSession closes a session and its request together. Both updates
// assert the expected current status so a racing completion fails cleanly.
func (m *mongoDB) CompleteSession(caller string, sessionID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)
	sessions := db.Collection(schema.SupportSessionCollection)
	requests := db.Collection(schema.HelpRequestCollection)

	mongoSession, err := m.client.StartSession()
	if err != nil {
		return err
	}
	defer mongoSession.EndSession(ctx)

	_, err = mongoSession.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var session schema.SupportSession
		if err := sessions.FindOne(sc, bson.M{"_id": sessionID}).Decode(&session); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrSessionNotExist
			}
			return nil, err
		}
		if !isParticipant(session, caller) {
			return nil, ErrNotParticipant
		}

		updated, err := sessions.UpdateOne(sc,
			bson.M{"_id": sessionID, "status": schema.SESSION_ACTIVE},
			bson.M{"$set": bson.M{"status": schema.SESSION_COMPLETED}},
		)
		if err != nil {
			return nil, err
		}
		if updated.MatchedCount == 0 {
			return nil, ErrSessionNotActive
		}

		updated, err = requests.UpdateOne(sc,
			bson.M{"_id": session.RequestID, "status": schema.REQUEST_MATCHED},
			bson.M{"$set": bson.M{"status": schema.REQUEST_COMPLETED}},
		)
		if err != nil {
			return nil, err
		}
		if updated.MatchedCount == 0 {
			return nil, ErrRequestNotMatched
		}

		return nil, nil
	})

	return err
}

func isParticipant(session schema.SupportSession, accountNumber string) bool {
	for _, p := range session.Participants {
		if p == accountNumber {
			return true
		}
	}
	return false
}
