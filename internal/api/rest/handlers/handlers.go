package handlers

import (
	"errors"
	"io"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/revtext/backend/internal/dto"
	"github.com/revtext/backend/internal/helper/utils"
	"github.com/revtext/backend/internal/repository"
	"github.com/revtext/backend/internal/services"
)

// respondError maps the pipeline error taxonomy onto HTTP statuses. Unknown
// errors become an opaque 500; the cause is only logged.
func respondError(ctx *fiber.Ctx, err error) error {
	var verr *services.ValidationError

	switch {
	case errors.As(err, &verr):
		return utils.ResponseError(ctx, fiber.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrUnauthorized):
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrGeocodeFailed):
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "could not geocode the address, check that it is correct")
	case errors.Is(err, repository.ErrNotFound):
		return utils.ResponseError(ctx, fiber.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrDuplicate):
		return utils.ResponseError(ctx, fiber.StatusConflict, "duplicate key")
	default:
		log.Printf("internal error: %v", err)
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "internal server error")
	}
}

func readFilePart(fh *multipart.FileHeader) (dto.FilePart, error) {
	f, err := fh.Open()
	if err != nil {
		return dto.FilePart{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return dto.FilePart{}, err
	}

	return dto.FilePart{Filename: fh.Filename, Data: data}, nil
}
