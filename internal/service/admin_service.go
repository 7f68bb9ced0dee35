package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-supportbot-be/internal/constant"
	"ai-supportbot-be/internal/dto"
	"ai-supportbot-be/internal/entity"
	"ai-supportbot-be/internal/pkg/logger"
	"ai-supportbot-be/internal/pkg/serverutils"
	"ai-supportbot-be/internal/repository/specification"
	"ai-supportbot-be/internal/repository/unitofwork"
	"ai-supportbot-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

type IAdminService interface {
	AddFaq(ctx context.Context, request *dto.AddFaqRequest) (*dto.OkResponse, error)
	Metrics(ctx context.Context) (*dto.MetricsResponse, error)
	Reindex(ctx context.Context) (*dto.OkResponse, error)
	SummarizeSession(ctx context.Context, sessionId uuid.UUID) (*dto.OkResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  message.Publisher
	logger     logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	publisher message.Publisher,
	sysLogger logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     sysLogger,
	}
}

func (as *adminService) AddFaq(ctx context.Context, request *dto.AddFaqRequest) (*dto.OkResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	faq := entity.Faq{
		Title:     request.Title,
		Content:   request.Content,
		Tags:      request.Tags,
		CreatedAt: time.Now().UTC(),
	}

	if err := uow.FaqRepository().Create(ctx, &faq); err != nil {
		return nil, err
	}

	return &dto.OkResponse{Ok: true}, nil
}

// Metrics returns point-in-time row counts. No snapshot isolation beyond
// what the storage engine gives per statement.
func (as *adminService) Metrics(ctx context.Context) (*dto.MetricsResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	totalSessions, err := uow.SessionRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	openSessions, err := uow.SessionRepository().Count(ctx, specification.ByStatus{Status: constant.SessionStatusOpen})
	if err != nil {
		return nil, err
	}
	escalated, err := uow.EscalationRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	messages, err := uow.MessageRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	faqs, err := uow.FaqRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.MetricsResponse{
		TotalSessions: totalSessions,
		OpenSessions:  openSessions,
		Escalated:     escalated,
		Messages:      messages,
		Faqs:          faqs,
	}, nil
}

// Reindex stays a named but inert operation: the endpoint answers right away
// and the published job only counts FAQ rows. Interface stability over
// functionality until vector search lands.
func (as *adminService) Reindex(ctx context.Context) (*dto.OkResponse, error) {
	payload, err := json.Marshal(events.ReindexFaqsJob{})
	if err != nil {
		return nil, err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := as.publisher.Publish(events.TopicReindexFaqs, msg); err != nil {
		as.logger.Warn("admin", "failed to publish reindex job", map[string]interface{}{"error": err.Error()})
	}

	return &dto.OkResponse{Ok: true, Message: "reindex scheduled (no-op)"}, nil
}

func (as *adminService) SummarizeSession(ctx context.Context, sessionId uuid.UUID) (*dto.OkResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("session not found")
	}

	payload, err := json.Marshal(events.SummarizeSessionJob{SessionId: sessionId})
	if err != nil {
		return nil, err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := as.publisher.Publish(events.TopicSummarizeSession, msg); err != nil {
		return nil, err
	}

	return &dto.OkResponse{Ok: true, Message: "summarize scheduled"}, nil
}
