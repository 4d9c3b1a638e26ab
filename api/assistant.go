package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unheard-app/unheard-api/external/assistant"
)

// assistantChat is the API for the multi-persona chat assistant. The
// persona is picked from the tone of the latest message.
func (s *Server) assistantChat(c *gin.Context) {
	var params assistant.ChatInput
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Message == "" && params.ImageURL == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	output, err := s.assistant.Chat(c.Request.Context(), &params)
	if err != nil {
		abortWithAssistantError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": output})
}

// assistantReadText is the API for extracting text from a photo together
// with a spoken version of it
func (s *Server) assistantReadText(c *gin.Context) {
	var params struct {
		ImageURL string `json:"image_url"`
	}
	if err := c.BindJSON(&params); err != nil || params.ImageURL == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	result, err := s.assistant.ReadTextFromImage(c.Request.Context(), params.ImageURL)
	if err != nil {
		abortWithAssistantError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// assistantInterpretSign is the API for transcribing sign language from
// a short video clip
func (s *Server) assistantInterpretSign(c *gin.Context) {
	var params struct {
		VideoURL string `json:"video_url"`
	}
	if err := c.BindJSON(&params); err != nil || params.VideoURL == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	result, err := s.assistant.InterpretSignLanguage(c.Request.Context(), params.VideoURL)
	if err != nil {
		abortWithAssistantError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// assistantSignCards is the API for turning text into a list of sign cards
func (s *Server) assistantSignCards(c *gin.Context) {
	var params struct {
		Text string `json:"text"`
	}
	if err := c.BindJSON(&params); err != nil || params.Text == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	result, err := s.assistant.GenerateSignCards(c.Request.Context(), params.Text)
	if err != nil {
		abortWithAssistantError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// assistantEasyRead is the API for rewriting text into an easy-to-read form
func (s *Server) assistantEasyRead(c *gin.Context) {
	var params struct {
		Text string `json:"text"`
	}
	if err := c.BindJSON(&params); err != nil || params.Text == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	result, err := s.assistant.EasyRead(c.Request.Context(), params.Text)
	if err != nil {
		abortWithAssistantError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// assistantDescribeScene is the API for describing a photo of the caller's
// surroundings, with a spoken version of the description
func (s *Server) assistantDescribeScene(c *gin.Context) {
	var params struct {
		ImageURL string `json:"image_url"`
	}
	if err := c.BindJSON(&params); err != nil || params.ImageURL == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	result, err := s.assistant.DescribeSurroundings(c.Request.Context(), params.ImageURL)
	if err != nil {
		abortWithAssistantError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// assistantReflection is the API for generating a gentle reflection on a
// journal entry
func (s *Server) assistantReflection(c *gin.Context) {
	var params struct {
		Mood string `json:"mood"`
		Note string `json:"note"`
	}
	if err := c.BindJSON(&params); err != nil || params.Note == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	result, err := s.assistant.DailyReflection(c.Request.Context(), params.Mood, params.Note)
	if err != nil {
		abortWithAssistantError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
