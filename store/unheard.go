package store

import (
	"github.com/jinzhu/gorm"

	"github.com/unheard-app/unheard-api/schema"
)

// unheard main datastore
type UnheardCore interface {
	Ping() error

	// Account
	CreateAccount(accountNumber, email, passwordHash, name string, metadata map[string]interface{}) (*schema.Account, error)
	GetAccount(string) (*schema.Account, error)
	GetAccountByEmail(string) (*schema.Account, error)
	UpdateAccountMetadata(string, map[string]interface{}) error
	DeleteAccount(string) error

	// Articles
	ListArticles() ([]schema.Article, error)
	GetArticle(id string) (*schema.Article, error)

	// Learning
	ListLearningTracks() ([]schema.LearningTrack, error)
	ListLessons(trackSlug string) ([]schema.Lesson, error)
	GetLesson(id string) (*schema.Lesson, error)
}

// UnheardStore is an implementation of UnheardCore
type UnheardStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewUnheardStore(ormDB *gorm.DB, mongo MongoStore) *UnheardStore {
	return &UnheardStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *UnheardStore) Ping() error {
	return s.ormDB.DB().Ping()
}
