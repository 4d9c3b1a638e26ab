package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unheard-app/unheard-api/api/mocks"
	"github.com/unheard-app/unheard-api/schema"
	"github.com/unheard-app/unheard-api/store"
)

func testRouter(s *Server, requester string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("requester", requester)
		c.Next()
	})
	router.Use(s.recognizeAccountMiddleware())
	return router
}

func TestAskForHelp(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockUnheardCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount("account-owner").Return(&schema.Account{
		AccountNumber: "account-owner",
		Profile:       schema.AccountProfile{Name: "Olive"},
	}, nil).Times(1)

	requestID := primitive.NewObjectID()
	m.EXPECT().CreateHelpRequest("account-owner", "read a letter", 2).Return(&schema.HelpRequest{
		ID:            requestID,
		AccountNumber: "account-owner",
		Description:   "read a letter",
		DurationHours: 2,
		Status:        schema.REQUEST_OPEN,
	}, nil).Times(1)

	router := testRouter(&s, "account-owner")
	router.POST("/", s.askForHelp)

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"description":"read a letter","duration_hours":2}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result schema.HelpRequest `json:"result"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, requestID, jResp.Result.ID, "wrong request id")
	assert.Equal(t, schema.REQUEST_OPEN, jResp.Result.Status, "wrong status")
}

func TestAskForHelpWithoutDescription(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockUnheardCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount("account-owner").Return(&schema.Account{
		AccountNumber: "account-owner",
	}, nil).Times(1)

	m.EXPECT().CreateHelpRequest("account-owner", "", 0).
		Return(nil, store.ErrEmptyDescription).Times(1)

	router := testRouter(&s, "account-owner")
	router.POST("/", s.askForHelp)

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1207), jResp.Code, "wrong error code")
}

func TestOfferHelpOnOwnRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockUnheardCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount("account-owner").Return(&schema.Account{
		AccountNumber: "account-owner",
		Profile:       schema.AccountProfile{Name: "Olive"},
	}, nil).Times(1)

	requestID := primitive.NewObjectID()
	m.EXPECT().CreateOffer(requestID, "account-owner", "Olive").
		Return(nil, store.ErrOfferOwnRequest).Times(1)

	router := testRouter(&s, "account-owner")
	router.POST("/:requestID/offers", s.offerHelp)

	req := httptest.NewRequest("POST", "/"+requestID.Hex()+"/offers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1206), jResp.Code, "wrong error code")
}

func TestAcceptOffer(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockUnheardCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount("account-owner").Return(&schema.Account{
		AccountNumber: "account-owner",
	}, nil).Times(1)

	requestID := primitive.NewObjectID()
	offerID := primitive.NewObjectID()
	sessionID := primitive.NewObjectID()

	m.EXPECT().AcceptOffer("account-owner", requestID, offerID).Return(&schema.SupportSession{
		ID:           sessionID,
		RequestID:    requestID,
		Participants: []string{"account-owner", "account-volunteer"},
		Status:       schema.SESSION_ACTIVE,
		ChatLog:      []schema.ChatMessage{},
	}, nil).Times(1)

	router := testRouter(&s, "account-owner")
	router.PATCH("/:requestID/offers/:offerID", s.acceptOffer)

	req := httptest.NewRequest("PATCH", "/"+requestID.Hex()+"/offers/"+offerID.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result schema.SupportSession `json:"result"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, sessionID, jResp.Result.ID, "wrong session id")
	assert.Equal(t, schema.SESSION_ACTIVE, jResp.Result.Status, "wrong status")
}

func TestAcceptOfferOnMatchedRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockUnheardCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount("account-owner").Return(&schema.Account{
		AccountNumber: "account-owner",
	}, nil).Times(1)

	requestID := primitive.NewObjectID()
	offerID := primitive.NewObjectID()

	m.EXPECT().AcceptOffer("account-owner", requestID, offerID).
		Return(nil, store.ErrRequestNotOpen).Times(1)

	router := testRouter(&s, "account-owner")
	router.PATCH("/:requestID/offers/:offerID", s.acceptOffer)

	req := httptest.NewRequest("PATCH", "/"+requestID.Hex()+"/offers/"+offerID.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1201), jResp.Code, "wrong error code")
}

func TestAcceptOfferWithInvalidID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockUnheardCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount("account-owner").Return(&schema.Account{
		AccountNumber: "account-owner",
	}, nil).Times(1)

	router := testRouter(&s, "account-owner")
	router.PATCH("/:requestID/offers/:offerID", s.acceptOffer)

	req := httptest.NewRequest("PATCH", "/not-an-id/offers/also-not-an-id", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1010), jResp.Code, "wrong error code")
}

func TestListPendingOffersByNonOwner(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockUnheardCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount("account-other").Return(&schema.Account{
		AccountNumber: "account-other",
	}, nil).Times(1)

	requestID := primitive.NewObjectID()
	m.EXPECT().GetHelpRequest(requestID).Return(&schema.HelpRequest{
		ID:            requestID,
		AccountNumber: "account-owner",
		Status:        schema.REQUEST_OPEN,
	}, nil).Times(1)

	router := testRouter(&s, "account-other")
	router.GET("/:requestID/offers", s.listPendingOffers)

	req := httptest.NewRequest("GET", "/"+requestID.Hex()+"/offers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1205), jResp.Code, "wrong error code")
}
