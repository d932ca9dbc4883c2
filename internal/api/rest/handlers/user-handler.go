package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/revtext/backend/internal/dto"
	"github.com/revtext/backend/internal/helper/utils"
	"github.com/revtext/backend/internal/services"
)

type UserHandler struct {
	svc services.UserService
}

func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) SetupRoutes(api fiber.Router) {
	api.Post("/users", h.CreateUser)
	api.Get("/users", h.ListUsers)
	// the email route must precede the id route or Fiber eats it as an :id
	api.Get("/users/email/:email", h.GetUserByEmail)
	api.Get("/users/:id", h.GetUser)
}

func (h *UserHandler) CreateUser(ctx *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := ctx.BodyParser(&body); err != nil || body.Email == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "missing required field: email")
	}

	user, err := h.svc.CreateUser(ctx.Context(), body)
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, user)
}

func (h *UserHandler) ListUsers(ctx *fiber.Ctx) error {
	users, err := h.svc.ListUsers(ctx.Context())
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseList(ctx, len(users), users)
}

func (h *UserHandler) GetUser(ctx *fiber.Ctx) error {
	user, err := h.svc.GetUser(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}

func (h *UserHandler) GetUserByEmail(ctx *fiber.Ctx) error {
	user, err := h.svc.GetUserByEmail(ctx.Context(), ctx.Params("email"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}
