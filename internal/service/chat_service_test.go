package service

import (
	"context"
	"errors"
	"testing"

	"ai-supportbot-be/internal/constant"
	"ai-supportbot-be/internal/dto"
	"ai-supportbot-be/internal/pkg/serverutils"
	"ai-supportbot-be/internal/repository/specification"
	"ai-supportbot-be/internal/repository/unitofwork"
	"ai-supportbot-be/pkg/chat/history"
	"ai-supportbot-be/pkg/database"
	"ai-supportbot-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// stubProvider returns a canned reply (or error) and records the turns it was
// handed, so tests can assert on the assembled context.
type stubProvider struct {
	reply     string
	err       error
	lastTurns []llm.Message
}

func (s *stubProvider) Chat(ctx context.Context, turns []llm.Message, opts ...llm.Option) (string, error) {
	s.lastTurns = turns
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubProvider) ResolveModel(ctx context.Context) string {
	return "stub-model"
}

func newChatTestEnv(t *testing.T, provider llm.Provider) (IChatService, unitofwork.RepositoryFactory) {
	t.Helper()
	db, err := database.NewGormDBFromDSN(":memory:")
	require.NoError(t, err)

	factory := unitofwork.NewRepositoryFactory(db)
	loader := history.NewLoader(factory)
	return NewChatService(factory, provider, loader, nopLogger{}), factory
}

func messageCount(t *testing.T, factory unitofwork.RepositoryFactory) int64 {
	t.Helper()
	n, err := factory.NewUnitOfWork(context.Background()).MessageRepository().Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestCreateSessionIsOpenAndUnique(t *testing.T) {
	svc, factory := newChatTestEnv(t, &stubProvider{reply: "hi"})
	ctx := context.Background()

	first, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	second, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionId, second.SessionId)

	got, err := svc.GetSession(ctx, first.SessionId)
	require.NoError(t, err)
	assert.Equal(t, constant.SessionStatusOpen, got.Status)

	count, err := factory.NewUnitOfWork(ctx).SessionRepository().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestGetSessionUnknown(t *testing.T) {
	svc, _ := newChatTestEnv(t, &stubProvider{reply: "hi"})

	_, err := svc.GetSession(context.Background(), uuid.New())

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestSendMessageUnknownSessionWritesNothing(t *testing.T) {
	svc, factory := newChatTestEnv(t, &stubProvider{reply: "hi"})

	_, err := svc.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{Text: "hello"})

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
	assert.EqualValues(t, 0, messageCount(t, factory))
}

func TestSendMessagePersistsBothTurns(t *testing.T) {
	provider := &stubProvider{reply: "Happy to help with that."}
	svc, _ := newChatTestEnv(t, provider)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	resp, err := svc.SendMessage(ctx, session.SessionId, &dto.SendMessageRequest{Text: "what are your hours?"})
	require.NoError(t, err)

	assert.Equal(t, "Happy to help with that.", resp.Text)
	assert.Nil(t, resp.SuggestedAction)
	assert.InDelta(t, 0.9, resp.Confidence, 1e-9)

	messages, err := svc.GetMessages(ctx, session.SessionId)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, constant.MessageRoleUser, messages[0].Role)
	assert.Equal(t, "what are your hours?", messages[0].Content)
	assert.Equal(t, constant.MessageRoleAssistant, messages[1].Role)
	assert.Less(t, messages[0].Id, messages[1].Id)
}

func TestSendMessageProviderFailureDegrades(t *testing.T) {
	provider := &stubProvider{err: errors.New("boom")}
	svc, _ := newChatTestEnv(t, provider)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	resp, err := svc.SendMessage(ctx, session.SessionId, &dto.SendMessageRequest{Text: "hello"})
	require.NoError(t, err)

	assert.Contains(t, resp.Text, "OpenRouter API error")
	assert.Nil(t, resp.SuggestedAction)
	assert.InDelta(t, 0.3, resp.Confidence, 1e-9)

	// The degraded reply is still persisted as an assistant turn.
	messages, err := svc.GetMessages(ctx, session.SessionId)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Contains(t, messages[1].Content, "OpenRouter API error")
}

func TestSendMessageIssueKeywordsSuggestTicket(t *testing.T) {
	provider := &stubProvider{reply: "Sorry to hear that."}
	svc, _ := newChatTestEnv(t, provider)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	resp, err := svc.SendMessage(ctx, session.SessionId, &dto.SendMessageRequest{Text: "I want a refund, the item arrived broken"})
	require.NoError(t, err)

	require.NotNil(t, resp.SuggestedAction)
	assert.Equal(t, "open_ticket", resp.SuggestedAction.Type)
	assert.Equal(t, "high", resp.SuggestedAction.Priority)
	assert.InDelta(t, 0.5, resp.Confidence, 1e-9)
}

func TestSendMessageReplyKeywordsOverridePriority(t *testing.T) {
	provider := &stubProvider{reply: "I will escalate this to our support team."}
	svc, _ := newChatTestEnv(t, provider)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	resp, err := svc.SendMessage(ctx, session.SessionId, &dto.SendMessageRequest{Text: "thanks"})
	require.NoError(t, err)

	require.NotNil(t, resp.SuggestedAction)
	assert.Equal(t, "open_ticket", resp.SuggestedAction.Type)
	assert.Equal(t, "medium", resp.SuggestedAction.Priority)
	assert.InDelta(t, 0.9, resp.Confidence, 1e-9)
}

func TestSendMessageAssemblesHistoryForProvider(t *testing.T) {
	provider := &stubProvider{reply: "ok"}
	svc, _ := newChatTestEnv(t, provider)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, session.SessionId, &dto.SendMessageRequest{Text: "first"})
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, session.SessionId, &dto.SendMessageRequest{Text: "second"})
	require.NoError(t, err)

	// system prompt, two prior turns, then the current user turn.
	turns := provider.lastTurns
	require.Len(t, turns, 4)
	assert.Equal(t, "system", turns[0].Role)
	assert.Equal(t, "first", turns[1].Content)
	assert.Equal(t, "ok", turns[2].Content)
	assert.Equal(t, "second", turns[3].Content)
	assert.Equal(t, constant.MessageRoleUser, turns[3].Role)
}

func TestEscalateFlipsStatusAndRecordsReason(t *testing.T) {
	svc, factory := newChatTestEnv(t, &stubProvider{reply: "hi"})
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	resp, err := svc.Escalate(ctx, session.SessionId, &dto.EscalateRequest{Reason: "angry customer"})
	require.NoError(t, err)
	assert.True(t, resp.Ok)

	got, err := svc.GetSession(ctx, session.SessionId)
	require.NoError(t, err)
	assert.Equal(t, constant.SessionStatusEscalated, got.Status)

	uow := factory.NewUnitOfWork(ctx)
	escalations, err := uow.EscalationRepository().FindAll(ctx, specification.BySessionID{SessionID: session.SessionId})
	require.NoError(t, err)
	require.Len(t, escalations, 1)
	assert.Equal(t, "angry customer", escalations[0].Reason)
}

func TestEscalateDefaultReason(t *testing.T) {
	svc, factory := newChatTestEnv(t, &stubProvider{reply: "hi"})
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = svc.Escalate(ctx, session.SessionId, &dto.EscalateRequest{})
	require.NoError(t, err)

	escalations, err := factory.NewUnitOfWork(ctx).EscalationRepository().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, escalations, 1)
	assert.Equal(t, constant.DefaultEscalationReason, escalations[0].Reason)
}

func TestEscalateObjectReasonSerialized(t *testing.T) {
	svc, factory := newChatTestEnv(t, &stubProvider{reply: "hi"})
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = svc.Escalate(ctx, session.SessionId, &dto.EscalateRequest{
		Reason: map[string]interface{}{"source": "agent"},
	})
	require.NoError(t, err)

	escalations, err := factory.NewUnitOfWork(ctx).EscalationRepository().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, escalations, 1)
	assert.JSONEq(t, `{"source":"agent"}`, escalations[0].Reason)
}

func TestEscalateUnknownSessionWritesNothing(t *testing.T) {
	svc, factory := newChatTestEnv(t, &stubProvider{reply: "hi"})
	ctx := context.Background()

	_, err := svc.Escalate(ctx, uuid.New(), &dto.EscalateRequest{Reason: "x"})

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)

	count, err := factory.NewUnitOfWork(ctx).EscalationRepository().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestRecordFeedbackIsUnchecked(t *testing.T) {
	svc, factory := newChatTestEnv(t, &stubProvider{reply: "hi"})
	ctx := context.Background()

	// References to sessions and messages that do not exist are accepted.
	resp, err := svc.RecordFeedback(ctx, &dto.FeedbackRequest{
		SessionId: uuid.New().String(),
		Rating:    4,
		Comments:  "helpful",
	})
	require.NoError(t, err)
	assert.True(t, resp.Ok)

	count, err := factory.NewUnitOfWork(ctx).FeedbackRepository().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
