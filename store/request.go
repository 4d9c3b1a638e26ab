package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unheard-app/unheard-api/schema"
)

var (
	ErrEmptyDescription = fmt.Errorf("the request description is empty")
	ErrRequestNotExist  = fmt.Errorf("the request does not exist")
	ErrRequestNotOpen   = fmt.Errorf("the request is no longer open")
)

type HelpRequestOperator interface {
	CreateHelpRequest(accountNumber, description string, durationHours int) (*schema.HelpRequest, error)
	GetHelpRequest(id primitive.ObjectID) (*schema.HelpRequest, error)
	ListOpenHelpRequests() ([]schema.HelpRequest, error)
	ListAccountHelpRequests(accountNumber string) ([]schema.HelpRequest, error)
}

// CreateHelpRequest creates a help request entry. It only validates field
// presence; workflow rules are enforced by AcceptOffer.
func (m *mongoDB) CreateHelpRequest(accountNumber, description string, durationHours int) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if durationHours <= 0 {
		durationHours = 1
	}

	request := schema.HelpRequest{
		AccountNumber: accountNumber,
		Description:   description,
		Status:        schema.REQUEST_OPEN,
		DurationHours: durationHours,
		CreatedAt:     time.Now().UTC(),
	}

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)
	result, err := c.InsertOne(ctx, request)
	if err != nil {
		return nil, err
	}
	request.ID = result.InsertedID.(primitive.ObjectID)

	return &request, nil
}

// GetHelpRequest finds a help request by its ID
func (m *mongoDB) GetHelpRequest(id primitive.ObjectID) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	var request schema.HelpRequest
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotExist
		}
		return nil, err
	}

	return &request, nil
}

// ListOpenHelpRequests returns requests still waiting for a volunteer,
// newest first.
func (m *mongoDB) ListOpenHelpRequests() ([]schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	cursor, err := c.Find(ctx,
		bson.M{"status": schema.REQUEST_OPEN},
		options.Find().SetSort(bson.M{"created_at": -1}),
	)
	if err != nil {
		return nil, err
	}

	requests := []schema.HelpRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// ListAccountHelpRequests returns all requests posted by an account,
// newest first.
func (m *mongoDB) ListAccountHelpRequests(accountNumber string) ([]schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	cursor, err := c.Find(ctx,
		bson.M{"account_number": accountNumber},
		options.Find().SetSort(bson.M{"created_at": -1}),
	)
	if err != nil {
		return nil, err
	}

	requests := []schema.HelpRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}
