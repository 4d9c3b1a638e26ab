package store

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/unheard-app/unheard-api/schema"
)

var ErrArticleNotExist = fmt.Errorf("the article does not exist")

// ListArticles returns all seeded news articles, newest first
func (s *UnheardStore) ListArticles() ([]schema.Article, error) {
	articles := []schema.Article{}
	if err := s.ormDB.Order("created_at desc").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// GetArticle finds an article by its id
func (s *UnheardStore) GetArticle(id string) (*schema.Article, error) {
	var article schema.Article
	if err := s.ormDB.Where("id = ?", id).First(&article).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrArticleNotExist
		}
		return nil, err
	}
	return &article, nil
}
