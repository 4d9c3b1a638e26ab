package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unheard-app/unheard-api/schema"
)

type MatchingTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewMatchingTestSuite(connURI, dbName string) *MatchingTestSuite {
	return &MatchingTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *MatchingTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

// CleanMongoDB drop the whole test mongodb
func (s *MatchingTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

// TestCreateHelpRequest tests creating a request normally
func (s *MatchingTestSuite) TestCreateHelpRequest() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request, err := store.CreateHelpRequest("account-requester", "  help me read a letter  ", 2)
	s.NoError(err)
	s.Equal("help me read a letter", request.Description)
	s.Equal(schema.REQUEST_OPEN, request.Status)
	s.Equal(2, request.DurationHours)
	s.False(request.ID.IsZero())

	count, err := s.testDatabase.Collection(schema.HelpRequestCollection).CountDocuments(context.Background(), bson.M{
		"_id":    request.ID,
		"status": schema.REQUEST_OPEN,
	})
	s.NoError(err)
	s.Equal(int64(1), count)
}

// TestCreateHelpRequestWithoutDescription tests that a blank description is rejected
func (s *MatchingTestSuite) TestCreateHelpRequestWithoutDescription() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request, err := store.CreateHelpRequest("account-requester", "   ", 1)
	s.EqualError(err, ErrEmptyDescription.Error())
	s.Nil(request)
}

// TestCreateHelpRequestDefaultDuration tests that a non-positive duration falls back to one hour
func (s *MatchingTestSuite) TestCreateHelpRequestDefaultDuration() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request, err := store.CreateHelpRequest("account-requester", "short task", 0)
	s.NoError(err)
	s.Equal(1, request.DurationHours)
}

// TestCreateOfferOnOwnRequest tests that a requester can not volunteer for themselves
func (s *MatchingTestSuite) TestCreateOfferOnOwnRequest() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request, err := store.CreateHelpRequest("account-self", "groceries", 1)
	s.NoError(err)

	offer, err := store.CreateOffer(request.ID, "account-self", "Self")
	s.EqualError(err, ErrOfferOwnRequest.Error())
	s.Nil(offer)
}

// TestCreateOfferOnMissingRequest tests offering against an unknown request id
func (s *MatchingTestSuite) TestCreateOfferOnMissingRequest() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	offer, err := store.CreateOffer(primitive.NewObjectID(), "account-volunteer", "Vera")
	s.EqualError(err, ErrRequestNotExist.Error())
	s.Nil(offer)
}

// TestAcceptOffer tests the whole matching flow: the request becomes
// matched, the offer becomes accepted and a session with both accounts
// is created
func (s *MatchingTestSuite) TestAcceptOffer() {
	ctx := context.Background()
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request, err := store.CreateHelpRequest("account-owner", "read my mail", 1)
	s.NoError(err)

	offer, err := store.CreateOffer(request.ID, "account-volunteer", "Vera")
	s.NoError(err)

	session, err := store.AcceptOffer("account-owner", request.ID, offer.ID)
	s.NoError(err)
	s.Equal(schema.SESSION_ACTIVE, session.Status)
	s.Equal(request.ID, session.RequestID)
	s.ElementsMatch([]string{"account-owner", "account-volunteer"}, session.Participants)
	s.Empty(session.ChatLog)

	count, err := s.testDatabase.Collection(schema.HelpRequestCollection).CountDocuments(ctx, bson.M{
		"_id":    request.ID,
		"status": schema.REQUEST_MATCHED,
	})
	s.NoError(err)
	s.Equal(int64(1), count)

	count, err = s.testDatabase.Collection(schema.VolunteerOfferCollection).CountDocuments(ctx, bson.M{
		"_id":    offer.ID,
		"status": schema.OFFER_ACCEPTED,
	})
	s.NoError(err)
	s.Equal(int64(1), count)
}

// TestAcceptOfferTwice tests that a request can only be matched once; the
// second accept finds the request no longer open and nothing of its
// transaction is applied
func (s *MatchingTestSuite) TestAcceptOfferTwice() {
	ctx := context.Background()
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request, err := store.CreateHelpRequest("account-owner", "walk to the station", 1)
	s.NoError(err)

	first, err := store.CreateOffer(request.ID, "account-volunteer-1", "Vera")
	s.NoError(err)
	second, err := store.CreateOffer(request.ID, "account-volunteer-2", "Sam")
	s.NoError(err)

	_, err = store.AcceptOffer("account-owner", request.ID, first.ID)
	s.NoError(err)

	session, err := store.AcceptOffer("account-owner", request.ID, second.ID)
	s.EqualError(err, ErrRequestNotOpen.Error())
	s.Nil(session)

	// the second offer is untouched and exactly one session exists
	count, err := s.testDatabase.Collection(schema.VolunteerOfferCollection).CountDocuments(ctx, bson.M{
		"_id":    second.ID,
		"status": schema.OFFER_PENDING,
	})
	s.NoError(err)
	s.Equal(int64(1), count)

	count, err = s.testDatabase.Collection(schema.SupportSessionCollection).CountDocuments(ctx, bson.M{
		"request_id": request.ID,
	})
	s.NoError(err)
	s.Equal(int64(1), count)
}

// TestAcceptOfferByNonOwner tests that only the request owner may accept
func (s *MatchingTestSuite) TestAcceptOfferByNonOwner() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request, err := store.CreateHelpRequest("account-owner", "fill in a form", 1)
	s.NoError(err)

	offer, err := store.CreateOffer(request.ID, "account-volunteer", "Vera")
	s.NoError(err)

	session, err := store.AcceptOffer("account-volunteer", request.ID, offer.ID)
	s.EqualError(err, ErrNotRequestOwner.Error())
	s.Nil(session)
}

// TestAcceptOfferOfOtherRequest tests accepting an offer that belongs to
// a different request
func (s *MatchingTestSuite) TestAcceptOfferOfOtherRequest() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request, err := store.CreateHelpRequest("account-owner", "first request", 1)
	s.NoError(err)
	other, err := store.CreateHelpRequest("account-owner", "second request", 1)
	s.NoError(err)

	offer, err := store.CreateOffer(other.ID, "account-volunteer", "Vera")
	s.NoError(err)

	session, err := store.AcceptOffer("account-owner", request.ID, offer.ID)
	s.EqualError(err, ErrOfferRequestMismatch.Error())
	s.Nil(session)
}

// TestAppendMessage tests that messages land in the chat log in order
func (s *MatchingTestSuite) TestAppendMessage() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request, err := store.CreateHelpRequest("account-owner", "chat with me", 1)
	s.NoError(err)
	offer, err := store.CreateOffer(request.ID, "account-volunteer", "Vera")
	s.NoError(err)
	session, err := store.AcceptOffer("account-owner", request.ID, offer.ID)
	s.NoError(err)

	first, err := store.AppendMessage(session.ID, "account-owner", "Olive", "hello")
	s.NoError(err)
	s.Equal("hello", first.Content)

	second, err := store.AppendMessage(session.ID, "account-volunteer", "Vera", "hi, how can I help?")
	s.NoError(err)

	stored, err := store.GetSession("account-owner", session.ID)
	s.NoError(err)
	s.Len(stored.ChatLog, 2)
	s.Equal("hello", stored.ChatLog[0].Content)
	s.Equal("hi, how can I help?", stored.ChatLog[1].Content)
	s.True(second.Timestamp.After(first.Timestamp) || second.Timestamp.Equal(first.Timestamp))
}

// TestAppendEmptyMessage tests that a blank message is rejected before any write
func (s *MatchingTestSuite) TestAppendEmptyMessage() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request, err := store.CreateHelpRequest("account-owner", "quiet session", 1)
	s.NoError(err)
	offer, err := store.CreateOffer(request.ID, "account-volunteer", "Vera")
	s.NoError(err)
	session, err := store.AcceptOffer("account-owner", request.ID, offer.ID)
	s.NoError(err)

	message, err := store.AppendMessage(session.ID, "account-owner", "Olive", "   ")
	s.EqualError(err, ErrEmptyMessage.Error())
	s.Nil(message)
}

// TestAppendMessageByOutsider tests that non-participants can not write
// into a session
func (s *MatchingTestSuite) TestAppendMessageByOutsider() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request, err := store.CreateHelpRequest("account-owner", "private session", 1)
	s.NoError(err)
	offer, err := store.CreateOffer(request.ID, "account-volunteer", "Vera")
	s.NoError(err)
	session, err := store.AcceptOffer("account-owner", request.ID, offer.ID)
	s.NoError(err)

	message, err := store.AppendMessage(session.ID, "account-outsider", "Oscar", "let me in")
	s.EqualError(err, ErrNotParticipant.Error())
	s.Nil(message)
}

// TestGetSessionByOutsider tests that a session is only readable by its participants
func (s *MatchingTestSuite) TestGetSessionByOutsider() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request, err := store.CreateHelpRequest("account-owner", "secret errand", 1)
	s.NoError(err)
	offer, err := store.CreateOffer(request.ID, "account-volunteer", "Vera")
	s.NoError(err)
	session, err := store.AcceptOffer("account-owner", request.ID, offer.ID)
	s.NoError(err)

	found, err := store.GetSession("account-outsider", session.ID)
	s.EqualError(err, ErrNotParticipant.Error())
	s.Nil(found)
}

// TestCompleteSession tests ending a session closes the request as well
// and the chat log becomes read-only
func (s *MatchingTestSuite) TestCompleteSession() {
	ctx := context.Background()
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request, err := store.CreateHelpRequest("account-owner", "one more errand", 1)
	s.NoError(err)
	offer, err := store.CreateOffer(request.ID, "account-volunteer", "Vera")
	s.NoError(err)
	session, err := store.AcceptOffer("account-owner", request.ID, offer.ID)
	s.NoError(err)

	s.NoError(store.CompleteSession("account-volunteer", session.ID))

	count, err := s.testDatabase.Collection(schema.HelpRequestCollection).CountDocuments(ctx, bson.M{
		"_id":    request.ID,
		"status": schema.REQUEST_COMPLETED,
	})
	s.NoError(err)
	s.Equal(int64(1), count)

	message, err := store.AppendMessage(session.ID, "account-owner", "Olive", "too late")
	s.EqualError(err, ErrSessionNotActive.Error())
	s.Nil(message)

	err = store.CompleteSession("account-owner", session.ID)
	s.EqualError(err, ErrSessionNotActive.Error())
}

// TestRejectStaleOffers tests that the sweeper rejects pending offers of
// requests which are no longer open and keeps offers of open requests
func (s *MatchingTestSuite) TestRejectStaleOffers() {
	ctx := context.Background()
	store := NewMongoStore(s.mongoClient, s.testDBName)

	matched, err := store.CreateHelpRequest("account-owner", "matched request", 1)
	s.NoError(err)
	accepted, err := store.CreateOffer(matched.ID, "account-volunteer-1", "Vera")
	s.NoError(err)
	sibling, err := store.CreateOffer(matched.ID, "account-volunteer-2", "Sam")
	s.NoError(err)

	open, err := store.CreateHelpRequest("account-owner", "still waiting", 1)
	s.NoError(err)
	fresh, err := store.CreateOffer(open.ID, "account-volunteer-3", "Kim")
	s.NoError(err)

	_, err = store.AcceptOffer("account-owner", matched.ID, accepted.ID)
	s.NoError(err)

	rejected, err := store.RejectStaleOffers()
	s.NoError(err)
	s.True(rejected >= 1)

	count, err := s.testDatabase.Collection(schema.VolunteerOfferCollection).CountDocuments(ctx, bson.M{
		"_id":    sibling.ID,
		"status": schema.OFFER_REJECTED,
	})
	s.NoError(err)
	s.Equal(int64(1), count)

	count, err = s.testDatabase.Collection(schema.VolunteerOfferCollection).CountDocuments(ctx, bson.M{
		"_id":    fresh.ID,
		"status": schema.OFFER_PENDING,
	})
	s.NoError(err)
	s.Equal(int64(1), count)
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to s.Run
func TestMatchingTestSuite(t *testing.T) {
	suite.Run(t, NewMatchingTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
