package schema

import (
	"time"

	"github.com/google/uuid"
)

// Article is a seeded news article served by the news reader.
type Article struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	ImageHint string    `json:"image_hint"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
