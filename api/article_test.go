package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/unheard-app/unheard-api/api/mocks"
	"github.com/unheard-app/unheard-api/external/assistant"
	"github.com/unheard-app/unheard-api/schema"
)

func TestSummarizeArticle(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockUnheardCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	ai := mocks.NewMockAssistant(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
		assistant:  ai,
	}

	articleID := uuid.New()
	a.EXPECT().GetArticle(articleID.String()).Return(&schema.Article{
		ID:      articleID,
		Title:   "Community Garden Opens",
		Content: "A new community garden opened this weekend.",
	}, nil).Times(1)

	summary := assistant.ArticleSummary{
		AudioSummary:    "A new community garden opened this weekend.",
		EasyReadBullets: []string{"A garden opened.", "Everyone can visit."},
		KeyFacts:        []string{"Opened this weekend"},
		SignCards:       []string{"garden", "open"},
	}
	ai.EXPECT().SummarizeArticle(gomock.Any(), "A new community garden opened this weekend.").
		Return(&summary, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/:articleID/summary", s.summarizeArticle)

	req := httptest.NewRequest("POST", "/"+articleID.String()+"/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result assistant.ArticleSummary `json:"result"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, summary, jResp.Result, "wrong data")
}

func TestSummarizeArticleWithBrokenResponse(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockUnheardCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	ai := mocks.NewMockAssistant(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
		assistant:  ai,
	}

	articleID := uuid.New()
	a.EXPECT().GetArticle(articleID.String()).Return(&schema.Article{
		ID:      articleID,
		Content: "article body",
	}, nil).Times(1)

	ai.EXPECT().SummarizeArticle(gomock.Any(), "article body").
		Return(nil, assistant.ErrInvalidResponse).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/:articleID/summary", s.summarizeArticle)

	req := httptest.NewRequest("POST", "/"+articleID.String()+"/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1500), jResp.Code, "wrong error code")
}
