package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listLearningTracks is the API for browsing sign language learning tracks
func (s *Server) listLearningTracks(c *gin.Context) {
	tracks, err := s.store.ListLearningTracks()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"tracks": tracks})
}

// listLessons is the API for listing the lessons of one track
func (s *Server) listLessons(c *gin.Context) {
	lessons, err := s.store.ListLessons(c.Param("trackSlug"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"lessons": lessons})
}

// getLesson is the API for reading one lesson
func (s *Server) getLesson(c *gin.Context) {
	lesson, err := s.store.GetLesson(c.Param("lessonID"))
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": lesson})
}

// generateLessonQuiz is the API for generating a multiple choice quiz
// from a lesson's content
func (s *Server) generateLessonQuiz(c *gin.Context) {
	lesson, err := s.store.GetLesson(c.Param("lessonID"))
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	quiz, err := s.assistant.GenerateLessonQuiz(c.Request.Context(), lesson.Content)
	if err != nil {
		abortWithAssistantError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": quiz})
}
