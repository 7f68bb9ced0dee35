package controller

import (
	"ai-supportbot-be/internal/dto"
	"ai-supportbot-be/internal/pkg/serverutils"
	"ai-supportbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	GetMessages(ctx *fiber.Ctx) error
	Escalate(ctx *fiber.Ctx) error
	RecordFeedback(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.IChatService
}

func NewSessionController(service service.IChatService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	r.Post("/sessions", c.CreateSession)
	r.Get("/sessions/:id", c.GetSession)
	r.Post("/sessions/:id/message", c.SendMessage)
	r.Get("/sessions/:id/messages", c.GetMessages)
	r.Post("/sessions/:id/escalate", c.Escalate)
	r.Post("/feedback", c.RecordFeedback)
}

// parseSessionId maps an unparseable id to 404: an invalid token can never
// name an existing session.
func parseSessionId(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, serverutils.NewNotFoundError("session not found")
	}
	return id, nil
}

func (c *sessionController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.service.CreateSession(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *sessionController) GetSession(ctx *fiber.Ctx) error {
	id, err := parseSessionId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetSession(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *sessionController) SendMessage(ctx *fiber.Ctx) error {
	id, err := parseSessionId(ctx)
	if err != nil {
		return err
	}

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendMessage(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *sessionController) GetMessages(ctx *fiber.Ctx) error {
	id, err := parseSessionId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetMessages(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *sessionController) Escalate(ctx *fiber.Ctx) error {
	id, err := parseSessionId(ctx)
	if err != nil {
		return err
	}

	// Reason is optional; an empty or absent body means manual escalation.
	var req dto.EscalateRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return serverutils.NewBadRequestError("invalid request body")
		}
	}

	res, err := c.service.Escalate(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *sessionController) RecordFeedback(ctx *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.RecordFeedback(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
