package domain

import (
	"fmt"
	"strings"
)

// Entry is one completed article on one local day.
type Entry struct {
	Date      string
	ArticleID string
	Title     string
	Sentences int
	Words     int
}

func (e Entry) Validate() error {
	if strings.TrimSpace(e.Date) == "" {
		return fmt.Errorf("date is required")
	}
	if strings.TrimSpace(e.ArticleID) == "" {
		return fmt.Errorf("article id is required")
	}
	if e.Sentences < 0 || e.Words < 0 {
		return fmt.Errorf("counts must be non-negative")
	}
	return nil
}

type DailyStats struct {
	Papers    int
	Sentences int
	Words     int
}

func Aggregate(entries []Entry, date string) DailyStats {
	var stats DailyStats
	for _, e := range entries {
		if e.Date != date {
			continue
		}
		stats.Papers++
		stats.Sentences += e.Sentences
		stats.Words += e.Words
	}
	return stats
}
