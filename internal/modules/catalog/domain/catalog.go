package domain

import "sort"

type DailyStats struct {
	Papers    int `json:"papers"`
	Sentences int `json:"sentences"`
	Words     int `json:"words"`
}

type Catalog struct {
	Articles   []Article  `json:"articles"`
	DailyStats DailyStats `json:"dailyStats"`
}

func (c Catalog) Playable() []Article {
	out := make([]Article, 0, len(c.Articles))
	for _, a := range c.Articles {
		if a.Playable() {
			out = append(out, a)
		}
	}
	return out
}

func (c Catalog) Find(id string) (Article, bool) {
	for _, a := range c.Articles {
		if a.ID == id {
			return a, true
		}
	}
	return Article{}, false
}

// MarkDone applies a completion locally: the article turns Done and today's
// totals grow by one paper plus stats. The receiver is not modified.
func (c Catalog) MarkDone(id string, stats *Stats) Catalog {
	next := Catalog{
		Articles:   make([]Article, len(c.Articles)),
		DailyStats: c.DailyStats,
	}
	copy(next.Articles, c.Articles)
	for i := range next.Articles {
		if next.Articles[i].ID == id {
			next.Articles[i].Status = StatusDone
		}
	}
	next.DailyStats.Papers++
	if stats != nil {
		next.DailyStats.Sentences += stats.Sentences
		next.DailyStats.Words += stats.Words
	}
	return next
}

type TagCount struct {
	Tag   string
	Count int
}

func Tags(articles []Article) []TagCount {
	counts := map[string]int{}
	for _, a := range articles {
		for _, tag := range a.Tags {
			counts[tag]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Tag < out[j].Tag
		}
		return out[i].Count > out[j].Count
	})
	return out
}
