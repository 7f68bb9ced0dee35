package dto

type AddFaqRequest struct {
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

type MetricsResponse struct {
	TotalSessions int64 `json:"total_sessions"`
	OpenSessions  int64 `json:"open_sessions"`
	Escalated     int64 `json:"escalated"`
	Messages      int64 `json:"messages"`
	Faqs          int64 `json:"faqs"`
}
