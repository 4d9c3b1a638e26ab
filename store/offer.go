package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unheard-app/unheard-api/schema"
)

var (
	ErrOfferNotExist        = fmt.Errorf("the offer does not exist")
	ErrOfferNotPending      = fmt.Errorf("the offer is no longer pending")
	ErrOfferOwnRequest      = fmt.Errorf("offering help on your own request is not allowed")
	ErrOfferRequestMismatch = fmt.Errorf("the offer does not belong to the request")
)

type VolunteerOfferOperator interface {
	CreateOffer(requestID primitive.ObjectID, accountNumber, volunteerName string) (*schema.VolunteerOffer, error)
	GetOffer(id primitive.ObjectID) (*schema.VolunteerOffer, error)
	ListPendingOffers(requestID primitive.ObjectID) ([]schema.VolunteerOffer, error)
	ListAccountOffers(accountNumber string) ([]schema.VolunteerOffer, error)
	RejectStaleOffers() (int64, error)
}

// CreateOffer records a volunteer's pledge against an existing request. The
// request status is deliberately not checked here; a volunteer may offer on
// a request that gets matched a moment later, and the matcher is the only
// place that settles the race.
func (m *mongoDB) CreateOffer(requestID primitive.ObjectID, accountNumber, volunteerName string) (*schema.VolunteerOffer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	request, err := m.GetHelpRequest(requestID)
	if err != nil {
		return nil, err
	}
	if request.AccountNumber == accountNumber {
		return nil, ErrOfferOwnRequest
	}

	offer := schema.VolunteerOffer{
		RequestID:     requestID,
		AccountNumber: accountNumber,
		VolunteerName: volunteerName,
		Status:        schema.OFFER_PENDING,
		CreatedAt:     time.Now().UTC(),
	}

	c := m.client.Database(m.database).Collection(schema.VolunteerOfferCollection)
	result, err := c.InsertOne(ctx, offer)
	if err != nil {
		return nil, err
	}
	offer.ID = result.InsertedID.(primitive.ObjectID)

	return &offer, nil
}

// GetOffer finds an offer by its id
func (m *mongoDB) GetOffer(id primitive.ObjectID) (*schema.VolunteerOffer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.VolunteerOfferCollection)

	var offer schema.VolunteerOffer
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&offer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrOfferNotExist
		}
		return nil, err
	}

	return &offer, nil
}

// ListPendingOffers returns pending offers for a request, oldest first so
// the requester sees them in arrival order.
func (m *mongoDB) ListPendingOffers(requestID primitive.ObjectID) ([]schema.VolunteerOffer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.VolunteerOfferCollection)

	cursor, err := c.Find(ctx,
		bson.M{"request_id": requestID, "status": schema.OFFER_PENDING},
		options.Find().SetSort(bson.M{"created_at": 1}),
	)
	if err != nil {
		return nil, err
	}

	offers := []schema.VolunteerOffer{}
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, err
	}

	return offers, nil
}

// ListAccountOffers returns all offers made by an account, newest first.
func (m *mongoDB) ListAccountOffers(accountNumber string) ([]schema.VolunteerOffer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.VolunteerOfferCollection)

	cursor, err := c.Find(ctx,
		bson.M{"account_number": accountNumber},
		options.Find().SetSort(bson.M{"created_at": -1}),
	)
	if err != nil {
		return nil, err
	}

	offers := []schema.VolunteerOffer{}
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, err
	}

	return offers, nil
}

// RejectStaleOffers rejects pending offers whose request has left the OPEN
// state. AcceptOffer leaves sibling offers untouched, so this sweeper is
// what eventually settles them. The update is status-filtered and safe to
// run repeatedly.
func (m *mongoDB) RejectStaleOffers() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)

	openIDs, err := db.Collection(schema.HelpRequestCollection).
		Distinct(ctx, "_id", bson.M{"status": schema.REQUEST_OPEN})
	if err != nil {
		return 0, err
	}

	result, err := db.Collection(schema.VolunteerOfferCollection).UpdateMany(ctx,
		bson.M{
			"status":     schema.OFFER_PENDING,
			"request_id": bson.M{"$nin": openIDs},
		},
		bson.M{"$set": bson.M{"status": schema.OFFER_REJECTED}},
	)
	if err != nil {
		return 0, err
	}

	if result.ModifiedCount > 0 {
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"rejected": result.ModifiedCount,
		}).Info("rejected stale volunteer offers")
	}

	return result.ModifiedCount, nil
}
