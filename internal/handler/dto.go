package handler

type CreateGuideRequest struct {
	Topic        string `json:"topic" binding:"required"`
	Subject      string `json:"subject" binding:"required"`
	Freshness    string `json:"freshness"`
	MinimumLinks *int   `json:"minimum_links"`
}

type VerdictResponse struct {
	Passed       bool     `json:"passed"`
	Inconclusive bool     `json:"inconclusive"`
	Issues       []string `json:"issues"`
	StyleValid   bool     `json:"style_valid"`
	StyleIssues  []string `json:"style_issues"`
}

type GuideResponse struct {
	ID           int64            `json:"id"`
	Topic        string           `json:"topic"`
	Subject      string           `json:"subject"`
	Freshness    string           `json:"freshness"`
	MinimumLinks int              `json:"minimum_links"`
	Status       string           `json:"status"`
	Content      string           `json:"content,omitempty"`
	Sources      []string         `json:"sources,omitempty"`
	ModelUsed    string           `json:"model_used,omitempty"`
	CreatedAt    string           `json:"created_at"`
	CompletedAt  string           `json:"completed_at,omitempty"`
	Verdict      *VerdictResponse `json:"verdict,omitempty"`
}

type FeedEntryResponse struct {
	ID           int64  `json:"id"`
	Topic        string `json:"topic"`
	Subject      string `json:"subject"`
	Freshness    string `json:"freshness"`
	MinimumLinks int    `json:"minimum_links"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

type FeedResponse struct {
	Guides []FeedEntryResponse `json:"guides"`
	Total  int                 `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}
