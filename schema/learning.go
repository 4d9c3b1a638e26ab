package schema

import (
	"time"

	"github.com/google/uuid"
)

// LearningTrack is a themed group of lessons, e.g. digital skills or
// sign language basics.
type LearningTrack struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug" gorm:"unique_index"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}

type Lesson struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	TrackSlug string    `json:"track_slug" gorm:"index"`
	Title     string    `json:"title"`
	Content   string    `json:"content" gorm:"type:text"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}
