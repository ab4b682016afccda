package dto

import "paperdrill/internal/modules/catalog/domain"

type (
	Article    = domain.Article
	Sentence   = domain.Sentence
	Stats      = domain.Stats
	Catalog    = domain.Catalog
	DailyStats = domain.DailyStats
	TagCount   = domain.TagCount
	Status     = domain.Status
)

const (
	StatusNew  = domain.StatusNew
	StatusDone = domain.StatusDone
)

// CompleteInput carries the reflection text written when an article is done.
type CompleteInput struct {
	ID      string
	Purpose string
	Methods string
	Results string
	Memo    string
}

type ImportInput struct {
	Articles []ImportArticle
}

type ImportArticle struct {
	ID       string     `yaml:"id"`
	Title    string     `yaml:"title"`
	Tags     []string   `yaml:"tags"`
	Status   string     `yaml:"status"`
	Stats    *Stats     `yaml:"stats"`
	GameData []Sentence `yaml:"game_data"`
}

type ImportOutput struct {
	Imported int
}
