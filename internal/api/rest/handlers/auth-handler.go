package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/revtext/backend/internal/dto"
	"github.com/revtext/backend/internal/helper"
	"github.com/revtext/backend/internal/helper/utils"
	"github.com/revtext/backend/internal/services"
)

type AuthHandler struct {
	svc  services.AuthService
	auth helper.Auth
}

func NewAuthHandler(svc services.AuthService, auth helper.Auth) *AuthHandler {
	return &AuthHandler{svc: svc, auth: auth}
}

// SetupRoutes registers the public login endpoints. They must be wired before
// the auth middleware: callers have no token yet.
func (h *AuthHandler) SetupRoutes(api fiber.Router) {
	api.Post("/auth/google", h.LoginWithGoogle)
	api.Post("/auth/github", h.LoginWithGitHub)
	api.Get("/auth/me", h.Me)
}

func (h *AuthHandler) LoginWithGoogle(ctx *fiber.Ctx) error {
	var body dto.GoogleLoginRequest
	if err := ctx.BodyParser(&body); err != nil || body.IDToken == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "missing Google idToken")
	}

	resp, err := h.svc.LoginWithGoogle(ctx.Context(), body.IDToken)
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *AuthHandler) LoginWithGitHub(ctx *fiber.Ctx) error {
	var body dto.GitHubLoginRequest
	if err := ctx.BodyParser(&body); err != nil || body.Code == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "missing GitHub code")
	}

	resp, err := h.svc.LoginWithGitHub(ctx.Context(), body.Code)
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

// Me verifies the bearer itself so it can live on the public group.
func (h *AuthHandler) Me(ctx *fiber.Ctx) error {
	claims, err := h.auth.VerifyToken(ctx.Get("Authorization"))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, claims)
}
