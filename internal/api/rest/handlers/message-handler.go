package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/revtext/backend/internal/dto"
	"github.com/revtext/backend/internal/helper/utils"
	"github.com/revtext/backend/internal/services"
)

type MessageHandler struct {
	ingest services.IngestService
	query  services.QueryService
}

func NewMessageHandler(ingest services.IngestService, query services.QueryService) *MessageHandler {
	return &MessageHandler{ingest: ingest, query: query}
}

func (h *MessageHandler) SetupRoutes(api fiber.Router) {
	api.Get("/messages/user/:email", h.ListByUser)
	api.Get("/message/:id", h.GetMessage)
	api.Post("/message", h.CreateMessage)
}

// ListByUser returns the headers of messages sent or received by the email,
// newest first.
func (h *MessageHandler) ListByUser(ctx *fiber.Ctx) error {
	headers, err := h.query.ListMessagesByUser(ctx.Context(), ctx.Params("email"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseList(ctx, len(headers), headers)
}

func (h *MessageHandler) GetMessage(ctx *fiber.Ctx) error {
	message, err := h.query.GetMessage(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"headers": message.Headers,
		"body":    message.Body,
	})
}

func (h *MessageHandler) CreateMessage(ctx *fiber.Ctx) error {
	sub, err := h.parseSubmission(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	created, err := h.ingest.SubmitMessage(ctx.Context(), ctx.Get("Authorization"), sub)
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, created)
}

func (h *MessageHandler) parseSubmission(ctx *fiber.Ctx) (dto.MessageSubmission, error) {
	if ctx.Is("json") {
		var body struct {
			De        string `json:"de"`
			Para      string `json:"para"`
			Asunto    string `json:"asunto"`
			Contenido string `json:"contenido"`
			Adjunto   string `json:"adjunto"`
		}
		if err := ctx.BodyParser(&body); err != nil {
			return dto.MessageSubmission{}, err
		}
		return dto.MessageSubmission{
			De:         body.De,
			Para:       body.Para,
			Asunto:     body.Asunto,
			Contenido:  body.Contenido,
			AdjuntoURL: body.Adjunto,
		}, nil
	}

	sub := dto.MessageSubmission{
		De:         ctx.FormValue("de"),
		Para:       ctx.FormValue("para"),
		Asunto:     ctx.FormValue("asunto"),
		Contenido:  ctx.FormValue("contenido"),
		AdjuntoURL: ctx.FormValue("adjunto"),
	}

	if fh, err := ctx.FormFile("adjunto"); err == nil && fh != nil {
		part, err := readFilePart(fh)
		if err != nil {
			return dto.MessageSubmission{}, err
		}
		sub.Adjunto = &part
		sub.AdjuntoURL = ""
	}

	return sub, nil
}
