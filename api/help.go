package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unheard-app/unheard-api/background"
)

// askForHelp is the API for posting a help request to volunteers
func (s *Server) askForHelp(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Description   string `json:"description"`
		DurationHours int    `json:"duration_hours"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	request, err := s.mongoStore.CreateHelpRequest(requester, params.Description, params.DurationHours)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.enqueue(background.TaskBroadcastNewRequest,
		tasks.Arg{Type: "string", Value: request.ID.Hex()})

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// listOpenHelpRequests is the API for browsing requests waiting for a volunteer
func (s *Server) listOpenHelpRequests(c *gin.Context) {
	requests, err := s.mongoStore.ListOpenHelpRequests()
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"help_requests": requests})
}

// myHelpRequests is the API for listing the requests posted by the caller
func (s *Server) myHelpRequests(c *gin.Context) {
	requester := c.GetString("requester")

	requests, err := s.mongoStore.ListAccountHelpRequests(requester)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"help_requests": requests})
}

// offerHelp is the API for volunteering on an open request
func (s *Server) offerHelp(c *gin.Context) {
	requester := c.GetString("requester")
	account := currentAccount(c)
	if account == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	requestID, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	volunteerName := account.Profile.Name
	if volunteerName == "" {
		volunteerName = "Anonymous Volunteer"
	}

	offer, err := s.mongoStore.CreateOffer(requestID, requester, volunteerName)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.enqueue(background.TaskNotifyOfferReceived,
		tasks.Arg{Type: "string", Value: offer.RequestID.Hex()},
		tasks.Arg{Type: "string", Value: offer.ID.Hex()})

	c.JSON(http.StatusOK, gin.H{"result": offer})
}

// listPendingOffers is the API for the request owner to review offers
func (s *Server) listPendingOffers(c *gin.Context) {
	requester := c.GetString("requester")

	requestID, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	request, err := s.mongoStore.GetHelpRequest(requestID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	if request.AccountNumber != requester {
		abortWithEncoding(c, http.StatusForbidden, errorNotRequestOwner)
		return
	}

	offers, err := s.mongoStore.ListPendingOffers(requestID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

// acceptOffer is the API that matches a request with one offer and opens
// the support session. The heavy lifting is a single transactional state
// transition in the store.
func (s *Server) acceptOffer(c *gin.Context) {
	requester := c.GetString("requester")

	requestID, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	offerID, err := primitive.ObjectIDFromHex(c.Param("offerID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	session, err := s.mongoStore.AcceptOffer(requester, requestID, offerID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.enqueue(background.TaskNotifyOfferAccepted,
		tasks.Arg{Type: "string", Value: offerID.Hex()},
		tasks.Arg{Type: "string", Value: session.ID.Hex()})

	c.JSON(http.StatusOK, gin.H{"result": session})
}

// myOffers is the API for listing the offers made by the caller
func (s *Server) myOffers(c *gin.Context) {
	requester := c.GetString("requester")

	offers, err := s.mongoStore.ListAccountOffers(requester)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

// enqueue submits a background task and only logs on failure; notification
// delivery never blocks or fails an API call.
func (s *Server) enqueue(name string, args ...tasks.Arg) {
	if s.backgroundEnqueuer == nil {
		return
	}

	if _, err := s.backgroundEnqueuer.SendTask(&tasks.Signature{
		Name: name,
		Args: args,
	}); err != nil {
		log.WithError(err).WithField("task", name).Error("fail to enqueue background task")
	}
}
