package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unheard-app/unheard-api/api/mocks"
	"github.com/unheard-app/unheard-api/schema"
	"github.com/unheard-app/unheard-api/store"
)

func TestAppendMessage(t *testing.T) {
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

	sessionID := primitive.NewObjectID()
	m.EXPECT().AppendMessage(sessionID, "account-owner", "Olive", "hello").Return(&schema.ChatMessage{
		Sender:     "account-owner",
		SenderName: "Olive",
		Content:    "hello",
		Timestamp:  time.Now().UTC(),
	}, nil).Times(1)

	router := testRouter(&s, "account-owner")
	router.POST("/:sessionID/messages", s.appendMessage)

	req := httptest.NewRequest("POST", "/"+sessionID.Hex()+"/messages", strings.NewReader(`{"content":"hello"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result schema.ChatMessage `json:"result"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "hello", jResp.Result.Content, "wrong content")
	assert.Equal(t, "Olive", jResp.Result.SenderName, "wrong sender name")
}

func TestAppendEmptyMessage(t *testing.T) {
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

	sessionID := primitive.NewObjectID()
	m.EXPECT().AppendMessage(sessionID, "account-owner", "Olive", "   ").
		Return(nil, store.ErrEmptyMessage).Times(1)

	router := testRouter(&s, "account-owner")
	router.POST("/:sessionID/messages", s.appendMessage)

	req := httptest.NewRequest("POST", "/"+sessionID.Hex()+"/messages", strings.NewReader(`{"content":"   "}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1303), jResp.Code, "wrong error code")
}

func TestGetSessionByNonParticipant(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockUnheardCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount("account-outsider").Return(&schema.Account{
		AccountNumber: "account-outsider",
	}, nil).Times(1)

	sessionID := primitive.NewObjectID()
	m.EXPECT().GetSession("account-outsider", sessionID).
		Return(nil, store.ErrNotParticipant).Times(1)

	router := testRouter(&s, "account-outsider")
	router.GET("/:sessionID", s.getSession)

	req := httptest.NewRequest("GET", "/"+sessionID.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1301), jResp.Code, "wrong error code")
}

func TestCompleteSessionAlreadyCompleted(t *testing.T) {
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

	sessionID := primitive.NewObjectID()
	m.EXPECT().CompleteSession("account-owner", sessionID).
		Return(store.ErrSessionNotActive).Times(1)

	router := testRouter(&s, "account-owner")
	router.PATCH("/:sessionID", s.completeSession)

	req := httptest.NewRequest("PATCH", "/"+sessionID.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1302), jResp.Code, "wrong error code")
}
