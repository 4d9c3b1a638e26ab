package store

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/unheard-app/unheard-api/schema"
)

var ErrLessonNotExist = fmt.Errorf("the lesson does not exist")

// ListLearningTracks returns all learning tracks in display order
func (s *UnheardStore) ListLearningTracks() ([]schema.LearningTrack, error) {
	tracks := []schema.LearningTrack{}
	if err := s.ormDB.Order(`"order"`).Find(&tracks).Error; err != nil {
		return nil, err
	}
	return tracks, nil
}

// ListLessons returns lessons of a track in display order
func (s *UnheardStore) ListLessons(trackSlug string) ([]schema.Lesson, error) {
	lessons := []schema.Lesson{}
	if err := s.ormDB.Where("track_slug = ?", trackSlug).Order(`"order"`).Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

// GetLesson finds a lesson by its id
func (s *UnheardStore) GetLesson(id string) (*schema.Lesson, error) {
	var lesson schema.Lesson
	if err := s.ormDB.Where("id = ?", id).First(&lesson).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrLessonNotExist
		}
		return nil, err
	}
	return &lesson, nil
}
