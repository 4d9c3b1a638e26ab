package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/unheard-app/unheard-api/schema"
)

// SeedContent is the shape of the content file this command imports
type SeedContent struct {
	Articles []schema.Article `json:"articles"`
	Tracks   []struct {
		schema.LearningTrack
		Lessons []schema.Lesson `json:"lessons"`
	} `json:"tracks"`
}

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("unheard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	contentFile := "content.json"
	if len(os.Args) > 1 {
		contentFile = os.Args[1]
	}

	file, err := os.Open(contentFile)
	if err != nil {
		panic(err)
	}

	var content SeedContent
	if err := json.NewDecoder(file).Decode(&content); err != nil {
		panic(err)
	}

	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	for _, a := range content.Articles {
		if err := db.Save(&a).Error; err != nil {
			panic(err)
		}
	}

	for _, t := range content.Tracks {
		track := t.LearningTrack
		if err := db.Save(&track).Error; err != nil {
			panic(err)
		}

		for _, l := range t.Lessons {
			l.TrackSlug = track.Slug
			if err := db.Save(&l).Error; err != nil {
				panic(err)
			}
		}
	}
}
