package service

import (
	"context"
	"encoding/json"
	"fmt"

	"ai-supportbot-be/internal/entity"
	"ai-supportbot-be/internal/pkg/logger"
	"ai-supportbot-be/internal/repository/specification"
	"ai-supportbot-be/internal/repository/unitofwork"
	"ai-supportbot-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IJobService runs the background job stubs. Jobs are fire-and-forget from
// the request path; their only contract with the core is the storage schema.
type IJobService interface {
	Consume(ctx context.Context) error
	ReindexFaqs(ctx context.Context) (int, error)
	SummarizeSession(ctx context.Context, job events.SummarizeSessionJob) (string, error)
}

type jobService struct {
	pubSub     *gochannel.GoChannel
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewJobService(
	pubSub *gochannel.GoChannel,
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
) IJobService {
	return &jobService{
		pubSub:     pubSub,
		uowFactory: uowFactory,
		logger:     sysLogger,
	}
}

func (js *jobService) Consume(ctx context.Context) error {
	reindexMsgs, err := js.pubSub.Subscribe(ctx, events.TopicReindexFaqs)
	if err != nil {
		return err
	}
	summarizeMsgs, err := js.pubSub.Subscribe(ctx, events.TopicSummarizeSession)
	if err != nil {
		return err
	}

	go func() {
		for msg := range reindexMsgs {
			js.handleReindex(ctx, msg)
		}
	}()
	go func() {
		for msg := range summarizeMsgs {
			js.handleSummarize(ctx, msg)
		}
	}()

	return nil
}

func (js *jobService) handleReindex(ctx context.Context, msg *message.Message) {
	count, err := js.ReindexFaqs(ctx)
	if err != nil {
		js.logger.Error("jobs", "reindex job failed", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}
	js.logger.Info("jobs", "reindex job finished", map[string]interface{}{"count": count})
	msg.Ack()
}

func (js *jobService) handleSummarize(ctx context.Context, msg *message.Message) {
	var job events.SummarizeSessionJob
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		js.logger.Error("jobs", "invalid summarize payload", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed payloads are never retriable
		return
	}

	summary, err := js.SummarizeSession(ctx, job)
	if err != nil {
		js.logger.Error("jobs", "summarize job failed", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}
	js.logger.Info("jobs", "summarize job finished", map[string]interface{}{
		"session_id": job.SessionId.String(),
		"length":     len(summary),
	})
	msg.Ack()
}

// ReindexFaqs walks the FAQ rows and reports the count. No vector index is
// built in this version.
func (js *jobService) ReindexFaqs(ctx context.Context) (int, error) {
	uow := js.uowFactory.NewUnitOfWork(ctx)

	faqs, err := uow.FaqRepository().FindAll(ctx)
	if err != nil {
		return 0, err
	}

	for _, f := range faqs {
		title := f.Title
		if len(title) > 40 {
			title = title[:40]
		}
		js.logger.Debug("jobs", "indexing FAQ", map[string]interface{}{"id": f.Id, "title": title})
	}

	return len(faqs), nil
}

// SummarizeSession produces a naive truncation of the transcript and stores
// it as an FAQ row for the retrieval demo.
func (js *jobService) SummarizeSession(ctx context.Context, job events.SummarizeSessionJob) (string, error) {
	uow := js.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: job.SessionId},
		specification.OrderBy{Field: "id", Desc: false},
	)
	if err != nil {
		return "", err
	}

	joined := ""
	for i, m := range messages {
		if i > 0 {
			joined += " "
		}
		joined += m.Content
	}
	if len(joined) > 1000 {
		joined = joined[:1000]
	}
	summary := joined
	if len(summary) > 300 {
		summary = summary[:300] + "..."
	}

	faq := entity.Faq{
		Title:   fmt.Sprintf("Summary for %s", job.SessionId),
		Content: summary,
	}
	if err := uow.FaqRepository().Create(ctx, &faq); err != nil {
		return "", err
	}

	return summary, nil
}
