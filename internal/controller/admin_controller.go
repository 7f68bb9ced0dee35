package controller

import (
	"ai-supportbot-be/internal/dto"
	"ai-supportbot-be/internal/pkg/serverutils"
	"ai-supportbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router, adminAuth fiber.Handler)
	AddFaq(ctx *fiber.Ctx) error
	Metrics(ctx *fiber.Ctx) error
	Reindex(ctx *fiber.Ctx) error
	SummarizeSession(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{service: service}
}

func (c *adminController) RegisterRoutes(r fiber.Router, adminAuth fiber.Handler) {
	r.Post("/faqs", adminAuth, c.AddFaq)
	r.Get("/metrics", adminAuth, c.Metrics)
	r.Post("/reindex", adminAuth, c.Reindex)
	r.Post("/sessions/:id/summarize", adminAuth, c.SummarizeSession)
}

func (c *adminController) AddFaq(ctx *fiber.Ctx) error {
	var req dto.AddFaqRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AddFaq(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *adminController) Metrics(ctx *fiber.Ctx) error {
	res, err := c.service.Metrics(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *adminController) Reindex(ctx *fiber.Ctx) error {
	res, err := c.service.Reindex(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *adminController) SummarizeSession(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewNotFoundError("session not found")
	}

	res, err := c.service.SummarizeSession(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
