package dto

type SummaryItem struct {
	Reference string
	Hint      string
	Result    string
}

type SummaryOutput struct {
	ArticleID string
	Items     []SummaryItem
	Solved    int
	Skipped   int
}

type Stats struct {
	Sentences int `json:"sentences"`
	Words     int `json:"words"`
}

type SubmitInput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Purpose string `json:"purpose"`
	Methods string `json:"methods"`
	Results string `json:"results"`
	Memo    string `json:"memo"`
	Stats   *Stats `json:"stats"`
}

type SubmitOutput struct {
	LedgerRecorded bool
}
