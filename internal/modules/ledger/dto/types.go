package dto

type RecordInput struct {
	ArticleID string
	Title     string
	Sentences int
	Words     int
}

type RecordOutput struct {
	Date string
}

type DailyStatsOutput struct {
	Date      string
	Papers    int
	Sentences int
	Words     int
}
