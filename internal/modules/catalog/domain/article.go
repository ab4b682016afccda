package domain

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusNew  Status = "New"
	StatusDone Status = "Done"
)

// ParseStatus reads a stored status; anything but Done counts as New.
func ParseStatus(raw string) Status {
	if strings.TrimSpace(raw) == string(StatusDone) {
		return StatusDone
	}
	return StatusNew
}

type Stats struct {
	Sentences int `json:"sentences" yaml:"sentences"`
	Words     int `json:"words" yaml:"words"`
}

type Sentence struct {
	Reference string   `json:"original" yaml:"original"`
	Hint      string   `json:"japanese" yaml:"japanese"`
	Words     []string `json:"words" yaml:"words"`
}

type Article struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Tags     []string   `json:"tags"`
	Status   Status     `json:"status"`
	Stats    *Stats     `json:"stats"`
	GameData []Sentence `json:"gameData"`

	Purpose string `json:"-"`
	Methods string `json:"-"`
	Results string `json:"-"`
	Memo    string `json:"-"`
}

func (a Article) Playable() bool {
	return len(a.GameData) > 0 && a.Status != StatusDone
}

func (a Article) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// ParseTags splits a comma-joined tag cell into trimmed, non-empty labels,
// dropping repeats and keeping first-seen order.
func ParseTags(raw string) []string {
	tags := make([]string, 0)
	seen := map[string]struct{}{}
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

func JoinTags(tags []string) string {
	return strings.Join(ParseTags(strings.Join(tags, ",")), ",")
}

type Reflection struct {
	Purpose string
	Methods string
	Results string
	Memo    string
}
