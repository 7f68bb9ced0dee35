package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai-supportbot-be/internal/constant"
	"ai-supportbot-be/internal/dto"
	"ai-supportbot-be/internal/entity"
	"ai-supportbot-be/internal/pkg/logger"
	"ai-supportbot-be/internal/pkg/serverutils"
	"ai-supportbot-be/internal/repository/specification"
	"ai-supportbot-be/internal/repository/unitofwork"
	"ai-supportbot-be/pkg/ai/action"
	"ai-supportbot-be/pkg/chat/history"
	"ai-supportbot-be/pkg/llm"

	"github.com/google/uuid"
)

// IChatService is the session/message lifecycle and reply orchestration
// surface used by the public controllers.
type IChatService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetSession(ctx context.Context, sessionId uuid.UUID) (*dto.GetSessionResponse, error)
	SendMessage(ctx context.Context, sessionId uuid.UUID, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	GetMessages(ctx context.Context, sessionId uuid.UUID) ([]*dto.MessageResponse, error)
	Escalate(ctx context.Context, sessionId uuid.UUID, request *dto.EscalateRequest) (*dto.OkResponse, error)
	RecordFeedback(ctx context.Context, request *dto.FeedbackRequest) (*dto.OkResponse, error)
}

type chatService struct {
	uowFactory    unitofwork.RepositoryFactory
	llmProvider   llm.Provider
	historyLoader *history.Loader
	logger        logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.Provider,
	historyLoader *history.Loader,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:    uowFactory,
		llmProvider:   llmProvider,
		historyLoader: historyLoader,
		logger:        sysLogger,
	}
}

// CreateSession allocates a fresh session with status open.
func (cs *chatService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	now := time.Now().UTC()

	session := entity.Session{
		Id:           uuid.New(),
		Status:       constant.SessionStatusOpen,
		StartAt:      now,
		LastActiveAt: now,
	}

	if err := uow.SessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	cs.logger.Info("chat", "session created", map[string]interface{}{"session_id": session.Id.String()})

	return &dto.CreateSessionResponse{SessionId: session.Id}, nil
}

func (cs *chatService) GetSession(ctx context.Context, sessionId uuid.UUID) (*dto.GetSessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("session not found")
	}

	return &dto.GetSessionResponse{
		Id:           session.Id,
		StartAt:      session.StartAt,
		LastActiveAt: session.LastActiveAt,
		Status:       session.Status,
	}, nil
}

// SendMessage runs the reply pipeline: verify the session, persist the user
// turn, assemble recent history, call the model, derive the suggested action,
// persist the reply. A provider failure is degraded into a synthetic reply
// with low confidence; the caller still gets a 200.
func (cs *chatService) SendMessage(ctx context.Context, sessionId uuid.UUID, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("session not found")
	}

	now := time.Now().UTC()

	// The user turn is persisted before the model call so it survives any
	// downstream failure.
	userMessage := entity.Message{
		SessionId: sessionId,
		Role:      constant.MessageRoleUser,
		Content:   request.Text,
		CreatedAt: now,
	}
	if err := uow.MessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}

	session.LastActiveAt = now
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	// History excludes the turn just written; it is appended separately.
	recent, err := cs.historyLoader.LoadRecent(ctx, sessionId, userMessage.Id, history.DefaultMaxTurns)
	if err != nil {
		return nil, err
	}

	turns := make([]llm.Message, 0, len(recent)+2)
	turns = append(turns, llm.Message{Role: "system", Content: constant.SystemPromptV1})
	turns = append(turns, recent...)
	turns = append(turns, llm.Message{Role: constant.MessageRoleUser, Content: request.Text})

	replyText, result := cs.generateReply(ctx, request.Text, turns)

	assistantMessage := entity.Message{
		SessionId: sessionId,
		Role:      constant.MessageRoleAssistant,
		Content:   replyText,
		CreatedAt: now,
	}
	if err := uow.MessageRepository().Create(ctx, &assistantMessage); err != nil {
		return nil, err
	}

	return &dto.SendMessageResponse{
		Text:            replyText,
		SuggestedAction: result.Action,
		Confidence:      result.Confidence,
	}, nil
}

// generateReply calls the provider and pattern-matches the outcome: success
// feeds the keyword heuristics, failure produces the degraded fallback reply.
func (cs *chatService) generateReply(ctx context.Context, userText string, turns []llm.Message) (string, action.Result) {
	reply, err := cs.llmProvider.Chat(ctx, turns)
	if err != nil {
		cs.logger.Warn("chat", "provider call failed, returning degraded reply", map[string]interface{}{"error": err.Error()})
		return fmt.Sprintf("OpenRouter API error: %v", err), action.Result{Confidence: 0.3}
	}
	return strings.TrimSpace(reply), action.Suggest(userText, reply)
}

func (cs *chatService) GetMessages(ctx context.Context, sessionId uuid.UUID) ([]*dto.MessageResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "id", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		response = append(response, &dto.MessageResponse{
			Id:        m.Id,
			SessionId: m.SessionId,
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return response, nil
}

// Escalate records the audit row and flips the session status as one
// transactional unit; a reader never sees one without the other.
func (cs *chatService) Escalate(ctx context.Context, sessionId uuid.UUID, request *dto.EscalateRequest) (*dto.OkResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("session not found")
	}

	escalation := entity.Escalation{
		SessionId: sessionId,
		Reason:    serializeReason(request.Reason),
		CreatedAt: time.Now().UTC(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.EscalationRepository().Create(ctx, &escalation); err != nil {
		return nil, err
	}

	session.Status = constant.SessionStatusEscalated
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	cs.logger.Info("chat", "session escalated", map[string]interface{}{"session_id": sessionId.String()})

	return &dto.OkResponse{Ok: true, Message: "session escalated"}, nil
}

func serializeReason(reason interface{}) string {
	switch v := reason.(type) {
	case nil:
		return constant.DefaultEscalationReason
	case string:
		if v == "" {
			return constant.DefaultEscalationReason
		}
		return v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return constant.DefaultEscalationReason
		}
		return string(b)
	}
}

// RecordFeedback stores the entry as-is; the session and message references
// are intentionally not validated.
func (cs *chatService) RecordFeedback(ctx context.Context, request *dto.FeedbackRequest) (*dto.OkResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	feedback := entity.Feedback{
		SessionId: request.SessionId,
		MessageId: request.MessageId,
		Rating:    request.Rating,
		Comments:  request.Comments,
		CreatedAt: time.Now().UTC(),
	}

	if err := uow.FeedbackRepository().Create(ctx, &feedback); err != nil {
		return nil, err
	}

	return &dto.OkResponse{Ok: true}, nil
}
