package constant

// Message roles persisted in the messages table.
const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// Session statuses. Transitions are one-way: open -> escalated.
const (
	SessionStatusOpen      = "open"
	SessionStatusEscalated = "escalated"
	SessionStatusClosed    = "closed"
)

// SystemPromptV1 is the fixed assistant persona sent with every completion.
const SystemPromptV1 = "You are HelpBot, a friendly and professional AI customer support assistant. " +
	"Answer user queries clearly using the company's FAQ knowledge. " +
	"If unsure, say 'I'm not sure — I can escalate this to a human agent.' " +
	"Always include one brief suggested next step."

// DefaultEscalationReason is stored when an escalate request carries no reason.
const DefaultEscalationReason = "manual_escalation"
