package controller

import (
	"errors"

	"hr-knowledge-be/internal/pkg/serverutils"
	"hr-knowledge-be/internal/service"
	"hr-knowledge-be/pkg/pipeline"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Process(ctx *fiber.Ctx) error
	Reopen(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	Logs(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) IDocumentController {
	return &documentController{
		documentService: documentService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post(":id/process", c.Process)
	h.Post(":id/reopen", c.Reopen)
	h.Get(":id/status", c.Status)
	h.Get(":id/logs", c.Logs)
}

func (c *documentController) Process(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid document id"))
	}

	res, err := c.documentService.EnqueueProcessing(ctx.Context(), id)
	if err != nil {
		return mapPipelineError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Document queued for processing", res))
}

func (c *documentController) Reopen(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid document id"))
	}

	force := ctx.QueryBool("force", false)

	if err := c.documentService.Reopen(ctx.Context(), id, force); err != nil {
		return mapPipelineError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Document reopened", nil))
}

func (c *documentController) Status(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid document id"))
	}

	res, err := c.documentService.GetStatus(ctx.Context(), id)
	if err != nil {
		return mapPipelineError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Document status", res))
}

func (c *documentController) Logs(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid document id"))
	}

	res, err := c.documentService.GetLogs(ctx.Context(), id)
	if err != nil {
		return mapPipelineError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Document processing logs", res))
}

func mapPipelineError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, pipeline.ErrDocumentNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Document not found"))
	case errors.Is(err, pipeline.ErrInvalidTransition):
		return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
	default:
		return err
	}
}
