package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrSessionNotCompleted = errors.New("session not completed")

type Item struct {
	Reference string
	Hint      string
	Result    string
}

// Summary is the end-of-article review shown once every sentence is solved
// or skipped.
type Summary struct {
	ArticleID string
	Items     []Item
	Solved    int
	Skipped   int
}

type Stats struct {
	Sentences int
	Words     int
}

type Submission struct {
	ID      string
	Title   string
	Purpose string
	Methods string
	Results string
	Memo    string
	Stats   *Stats
}

func (s Submission) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("id is required")
	}
	return nil
}

// Counts are the ledger increments for this submission; nil stats count zero.
func (s Submission) Counts() (sentences, words int) {
	if s.Stats == nil {
		return 0, 0
	}
	return s.Stats.Sentences, s.Stats.Words
}
