package events

import "github.com/google/uuid"

// Topics for the in-process job bus. Handlers run out-of-request and carry no
// ordering guarantee relative to live traffic.
const (
	TopicReindexFaqs      = "jobs.reindex_faqs"
	TopicSummarizeSession = "jobs.summarize_session"
)

// ReindexFaqsJob asks the worker to rebuild the FAQ index. The current
// handler only counts rows; real vector indexing is out of scope.
type ReindexFaqsJob struct {
	RequestedBy string `json:"requested_by,omitempty"`
}

// SummarizeSessionJob asks the worker to store a naive summary of one
// session's transcript as an FAQ entry.
type SummarizeSessionJob struct {
	SessionId uuid.UUID `json:"session_id"`
}
