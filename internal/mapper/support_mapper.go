package mapper

import (
	"encoding/json"

	"ai-supportbot-be/internal/entity"
	"ai-supportbot-be/internal/model"
)

type SupportMapper struct{}

func NewSupportMapper() *SupportMapper {
	return &SupportMapper{}
}

// Session Mappers

func (m *SupportMapper) SessionToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}
	return &entity.Session{
		Id:           s.Id,
		Status:       s.Status,
		StartAt:      s.StartAt,
		LastActiveAt: s.LastActiveAt,
	}
}

func (m *SupportMapper) SessionToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}
	return &model.Session{
		Id:           s.Id,
		Status:       s.Status,
		StartAt:      s.StartAt,
		LastActiveAt: s.LastActiveAt,
	}
}

// Message Mappers

func (m *SupportMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	return &entity.Message{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *SupportMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	return &model.Message{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

// Escalation Mappers

func (m *SupportMapper) EscalationToEntity(e *model.Escalation) *entity.Escalation {
	if e == nil {
		return nil
	}
	return &entity.Escalation{
		Id:        e.Id,
		SessionId: e.SessionId,
		Reason:    e.Reason,
		CreatedAt: e.CreatedAt,
	}
}

func (m *SupportMapper) EscalationToModel(e *entity.Escalation) *model.Escalation {
	if e == nil {
		return nil
	}
	return &model.Escalation{
		Id:        e.Id,
		SessionId: e.SessionId,
		Reason:    e.Reason,
		CreatedAt: e.CreatedAt,
	}
}

// Feedback Mappers

func (m *SupportMapper) FeedbackToEntity(f *model.Feedback) *entity.Feedback {
	if f == nil {
		return nil
	}
	return &entity.Feedback{
		Id:        f.Id,
		SessionId: f.SessionId,
		MessageId: f.MessageId,
		Rating:    f.Rating,
		Comments:  f.Comments,
		CreatedAt: f.CreatedAt,
	}
}

func (m *SupportMapper) FeedbackToModel(f *entity.Feedback) *model.Feedback {
	if f == nil {
		return nil
	}
	return &model.Feedback{
		Id:        f.Id,
		SessionId: f.SessionId,
		MessageId: f.MessageId,
		Rating:    f.Rating,
		Comments:  f.Comments,
		CreatedAt: f.CreatedAt,
	}
}

// Faq Mappers
//
// Tags are stored JSON-serialized; an unparseable column degrades to an empty
// list rather than failing the read.

func (m *SupportMapper) FaqToEntity(f *model.Faq) *entity.Faq {
	if f == nil {
		return nil
	}
	var tags []string
	if f.Tags != "" {
		if err := json.Unmarshal([]byte(f.Tags), &tags); err != nil {
			tags = nil
		}
	}
	return &entity.Faq{
		Id:        f.Id,
		Title:     f.Title,
		Content:   f.Content,
		Tags:      tags,
		CreatedAt: f.CreatedAt,
	}
}

func (m *SupportMapper) FaqToModel(f *entity.Faq) *model.Faq {
	if f == nil {
		return nil
	}
	tags := "[]"
	if len(f.Tags) > 0 {
		if b, err := json.Marshal(f.Tags); err == nil {
			tags = string(b)
		}
	}
	return &model.Faq{
		Id:        f.Id,
		Title:     f.Title,
		Content:   f.Content,
		Tags:      tags,
		CreatedAt: f.CreatedAt,
	}
}
