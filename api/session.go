package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mySessions is the API for listing the support sessions of the caller
func (s *Server) mySessions(c *gin.Context) {
	requester := c.GetString("requester")

	sessions, err := s.mongoStore.ListAccountSessions(requester)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// getSession is the API for reading one session with its chat log
func (s *Server) getSession(c *gin.Context) {
	requester := c.GetString("requester")

	sessionID, err := primitive.ObjectIDFromHex(c.Param("sessionID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	session, err := s.mongoStore.GetSession(requester, sessionID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": session})
}

// appendMessage is the API for posting a chat message into a session
func (s *Server) appendMessage(c *gin.Context) {
	requester := c.GetString("requester")
	account := currentAccount(c)
	if account == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	sessionID, err := primitive.ObjectIDFromHex(c.Param("sessionID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var params struct {
		Content string `json:"content"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	message, err := s.mongoStore.AppendMessage(sessionID, requester, account.Profile.Name, params.Content)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": message})
}

// completeSession is the API for a participant to end a session. The
// underlying request is completed in the same transaction.
func (s *Server) completeSession(c *gin.Context) {
	requester := c.GetString("requester")

	sessionID, err := primitive.ObjectIDFromHex(c.Param("sessionID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mongoStore.CompleteSession(requester, sessionID); err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
