package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unheard-app/unheard-api/external/assistant"
)

// listArticles is the API for browsing news articles
func (s *Server) listArticles(c *gin.Context) {
	articles, err := s.store.ListArticles()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// getArticle is the API for reading one article
func (s *Server) getArticle(c *gin.Context) {
	article, err := s.store.GetArticle(c.Param("articleID"))
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": article})
}

// summarizeArticle is the API for generating the accessible summary of an
// article: audio summary, easy-read bullets, key facts and sign cards.
func (s *Server) summarizeArticle(c *gin.Context) {
	article, err := s.store.GetArticle(c.Param("articleID"))
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	summary, err := s.assistant.SummarizeArticle(c.Request.Context(), article.Content)
	if err != nil {
		abortWithAssistantError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": summary})
}

// abortWithAssistantError reports an assistant failure. A response that
// does not match its schema is a bad gateway, not an internal error.
func abortWithAssistantError(c *gin.Context, err error) {
	switch err {
	case assistant.ErrInvalidResponse, assistant.ErrResponseStatus:
		abortWithEncoding(c, http.StatusBadGateway, errorAssistantResponse, err)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}
