package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"ai-supportbot-be/internal/dto"
	"ai-supportbot-be/internal/pkg/serverutils"
	"ai-supportbot-be/internal/repository/unitofwork"
	"ai-supportbot-be/pkg/chat/history"
	"ai-supportbot-be/pkg/database"
	"ai-supportbot-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminTestEnv struct {
	chat    IChatService
	admin   IAdminService
	jobs    IJobService
	factory unitofwork.RepositoryFactory
}

func newAdminTestEnv(t *testing.T) *adminTestEnv {
	t.Helper()
	db, err := database.NewGormDBFromDSN(":memory:")
	require.NoError(t, err)

	factory := unitofwork.NewRepositoryFactory(db)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	return &adminTestEnv{
		chat:    newTestChatService(t, factory),
		admin:   NewAdminService(factory, pubSub, nopLogger{}),
		jobs:    NewJobService(pubSub, factory, nopLogger{}),
		factory: factory,
	}
}

func newTestChatService(t *testing.T, factory unitofwork.RepositoryFactory) IChatService {
	t.Helper()
	return NewChatService(factory, &stubProvider{reply: "ok"}, history.NewLoader(factory), nopLogger{})
}

func TestMetricsReflectActivity(t *testing.T) {
	env := newAdminTestEnv(t)
	ctx := context.Background()

	session, err := env.chat.CreateSession(ctx)
	require.NoError(t, err)
	_, err = env.chat.SendMessage(ctx, session.SessionId, &dto.SendMessageRequest{Text: "hello"})
	require.NoError(t, err)
	_, err = env.chat.SendMessage(ctx, session.SessionId, &dto.SendMessageRequest{Text: "still there?"})
	require.NoError(t, err)
	_, err = env.chat.Escalate(ctx, session.SessionId, &dto.EscalateRequest{Reason: "stuck"})
	require.NoError(t, err)
	_, err = env.admin.AddFaq(ctx, &dto.AddFaqRequest{Title: "Returns", Content: "30 days", Tags: []string{"refund"}})
	require.NoError(t, err)

	metrics, err := env.admin.Metrics(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 1, metrics.TotalSessions)
	assert.EqualValues(t, 0, metrics.OpenSessions)
	assert.EqualValues(t, 1, metrics.Escalated)
	assert.EqualValues(t, 4, metrics.Messages)
	assert.EqualValues(t, 1, metrics.Faqs)
}

func TestMetricsEmptyStore(t *testing.T) {
	env := newAdminTestEnv(t)

	metrics, err := env.admin.Metrics(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 0, metrics.TotalSessions)
	assert.EqualValues(t, 0, metrics.OpenSessions)
	assert.EqualValues(t, 0, metrics.Escalated)
	assert.EqualValues(t, 0, metrics.Messages)
	assert.EqualValues(t, 0, metrics.Faqs)
}

func TestReindexAcknowledgesImmediately(t *testing.T) {
	env := newAdminTestEnv(t)

	resp, err := env.admin.Reindex(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Ok)
	assert.Equal(t, "reindex scheduled (no-op)", resp.Message)
}

func TestReindexFaqsCountsRows(t *testing.T) {
	env := newAdminTestEnv(t)
	ctx := context.Background()

	for _, title := range []string{"Shipping", "Billing", "Password reset"} {
		_, err := env.admin.AddFaq(ctx, &dto.AddFaqRequest{Title: title})
		require.NoError(t, err)
	}

	count, err := env.jobs.ReindexFaqs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSummarizeSessionUnknown(t *testing.T) {
	env := newAdminTestEnv(t)

	_, err := env.admin.SummarizeSession(context.Background(), uuid.New())

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestSummarizeSessionStoresTruncatedSummary(t *testing.T) {
	env := newAdminTestEnv(t)
	ctx := context.Background()

	session, err := env.chat.CreateSession(ctx)
	require.NoError(t, err)
	_, err = env.chat.SendMessage(ctx, session.SessionId, &dto.SendMessageRequest{
		Text: strings.Repeat("my order never arrived ", 30),
	})
	require.NoError(t, err)

	summary, err := env.jobs.SummarizeSession(ctx, events.SummarizeSessionJob{SessionId: session.SessionId})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(summary, "..."))
	assert.Len(t, summary, 303)

	faqs, err := env.factory.NewUnitOfWork(ctx).FaqRepository().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, faqs, 1)
	assert.Equal(t, "Summary for "+session.SessionId.String(), faqs[0].Title)
	assert.Equal(t, summary, faqs[0].Content)
}

func TestSummarizeSessionShortTranscript(t *testing.T) {
	env := newAdminTestEnv(t)
	ctx := context.Background()

	session, err := env.chat.CreateSession(ctx)
	require.NoError(t, err)
	_, err = env.chat.SendMessage(ctx, session.SessionId, &dto.SendMessageRequest{Text: "hi"})
	require.NoError(t, err)

	summary, err := env.jobs.SummarizeSession(ctx, events.SummarizeSessionJob{SessionId: session.SessionId})
	require.NoError(t, err)
	assert.False(t, strings.HasSuffix(summary, "..."))
	assert.Contains(t, summary, "hi")
}

func TestSummarizeJobFlowsThroughBus(t *testing.T) {
	env := newAdminTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.jobs.Consume(ctx))

	session, err := env.chat.CreateSession(ctx)
	require.NoError(t, err)
	_, err = env.chat.SendMessage(ctx, session.SessionId, &dto.SendMessageRequest{Text: "where is my parcel"})
	require.NoError(t, err)

	resp, err := env.admin.SummarizeSession(ctx, session.SessionId)
	require.NoError(t, err)
	assert.True(t, resp.Ok)

	assert.Eventually(t, func() bool {
		n, err := env.factory.NewUnitOfWork(ctx).FaqRepository().Count(ctx)
		return err == nil && n == 1
	}, 2*time.Second, 10*time.Millisecond)
}
