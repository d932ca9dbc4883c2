package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/revtext/backend/internal/dto"
	"github.com/revtext/backend/internal/helper/utils"
	"github.com/revtext/backend/internal/services"
)

// maxReviewImages caps the number of image parts accepted per submission.
const maxReviewImages = 5

type ReviewHandler struct {
	ingest services.IngestService
	query  services.QueryService
}

func NewReviewHandler(ingest services.IngestService, query services.QueryService) *ReviewHandler {
	return &ReviewHandler{ingest: ingest, query: query}
}

func (h *ReviewHandler) SetupRoutes(api fiber.Router) {
	api.Get("/reviews", h.ListReviews)
	api.Get("/review/:id", h.GetReview)
	api.Post("/review", h.CreateReview)
}

func (h *ReviewHandler) ListReviews(ctx *fiber.Ctx) error {
	reviews, err := h.query.ListReviews(ctx.Context())
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseList(ctx, len(reviews), reviews)
}

func (h *ReviewHandler) GetReview(ctx *fiber.Ctx) error {
	review, err := h.query.GetReview(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, review)
}

func (h *ReviewHandler) CreateReview(ctx *fiber.Ctx) error {
	sub, err := h.parseSubmission(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	created, err := h.ingest.SubmitReview(ctx.Context(), ctx.Get("Authorization"), sub)
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, created)
}

func (h *ReviewHandler) parseSubmission(ctx *fiber.Ctx) (dto.ReviewSubmission, error) {
	if ctx.Is("json") {
		// valoracion may arrive as a JSON number or a string
		var body struct {
			Nombre     string          `json:"nombre"`
			Direccion  string          `json:"direccion"`
			Valoracion json.RawMessage `json:"valoracion"`
		}
		if err := ctx.BodyParser(&body); err != nil {
			return dto.ReviewSubmission{}, err
		}
		return dto.ReviewSubmission{
			Nombre:     body.Nombre,
			Direccion:  body.Direccion,
			Valoracion: strings.Trim(string(body.Valoracion), `"`),
		}, nil
	}

	sub := dto.ReviewSubmission{
		Nombre:     ctx.FormValue("nombre"),
		Direccion:  ctx.FormValue("direccion"),
		Valoracion: ctx.FormValue("valoracion"),
	}

	if form, err := ctx.MultipartForm(); err == nil && form != nil {
		files := form.File["imagenes"]
		if len(files) > maxReviewImages {
			files = files[:maxReviewImages]
		}
		for _, fh := range files {
			part, err := readFilePart(fh)
			if err != nil {
				return dto.ReviewSubmission{}, err
			}
			sub.Imagenes = append(sub.Imagenes, part)
		}
	}

	return sub, nil
}
