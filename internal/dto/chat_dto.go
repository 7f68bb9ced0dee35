package dto

import (
	"time"

	"ai-supportbot-be/pkg/ai/action"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	SessionId uuid.UUID `json:"session_id"`
}

type GetSessionResponse struct {
	Id           uuid.UUID `json:"id"`
	StartAt      time.Time `json:"start_at"`
	LastActiveAt time.Time `json:"last_active_at"`
	Status       string    `json:"status"`
}

type SendMessageRequest struct {
	Text   string `json:"text" validate:"required"`
	UserId string `json:"user_id,omitempty"`
}

type SendMessageResponse struct {
	Text            string            `json:"text"`
	SuggestedAction *action.Suggested `json:"suggested_action"`
	Confidence      float64           `json:"confidence"`
}

type MessageResponse struct {
	Id        int64     `json:"id"`
	SessionId uuid.UUID `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// EscalateRequest accepts a free-form reason: an object or a plain string,
// stored serialized either way.
type EscalateRequest struct {
	Reason interface{} `json:"reason,omitempty"`
}

type OkResponse struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

type FeedbackRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	MessageId *int64 `json:"message_id,omitempty"`
	Rating    int    `json:"rating" validate:"required"`
	Comments  string `json:"comments,omitempty"`
}
