package action

import "strings"

// ActionTypeOpenTicket is the only action type currently emitted.
const ActionTypeOpenTicket = "open_ticket"

// Priorities attached to suggested actions.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// Suggested is a structured hint for a human operator or a downstream
// ticketing system. It is heuristic, not authoritative.
type Suggested struct {
	Type     string `json:"type"`
	Priority string `json:"priority"`
}

// Result pairs the optional action with the orchestrator's confidence score.
type Result struct {
	Action     *Suggested
	Confidence float64
}

// issueKeywords flag negative sentiment or an order problem in user text.
var issueKeywords = []string{
	"refund", "cancel", "dispute", "lost", "charge",
	"damaged", "broken", "issue", "problem", "late",
}

// escalationKeywords flag a reply that is already steering toward a handoff.
var escalationKeywords = []string{
	"ticket", "escalate", "agent", "support team",
}

// Suggest derives the action and confidence for one successful exchange.
// Two heuristics run in order: the user-text check sets both confidence and
// action; the reply-text check may overwrite the action (priority medium) but
// never touches the confidence.
func Suggest(userText, replyText string) Result {
	result := Result{Confidence: 0.9}

	if containsAny(userText, issueKeywords) {
		result.Confidence = 0.5
		result.Action = &Suggested{Type: ActionTypeOpenTicket, Priority: PriorityHigh}
	}

	if containsAny(replyText, escalationKeywords) {
		result.Action = &Suggested{Type: ActionTypeOpenTicket, Priority: PriorityMedium}
	}

	return result
}

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
