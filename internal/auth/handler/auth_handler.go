package handler

import (
	"errors"

	"github.com/bgarnr/hekacms/internal/auth/dto"
	"github.com/bgarnr/hekacms/internal/auth/service"
	autherror "github.com/bgarnr/hekacms/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService *service.UserService
	tokens      service.TokenGenerator
}

func NewAuthHandler(userService *service.UserService, tokens service.TokenGenerator) *AuthHandler {
	return &AuthHandler{userService: userService, tokens: tokens}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}

	out, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.RefreshOutput{
			Success: false,
			Message: "invalid input",
		})
	}

	pair, err := h.userService.Refresh(c.Context(), input)
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(dto.RefreshOutput{
			Success: false,
			Message: clientMessage(err),
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.RefreshOutput{
		Success: true,
		Data:    pair,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var input dto.LogoutInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}

	if err := h.userService.Logout(c.Context(), input.Email); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Logout failed",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User logged out successfully.",
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	user, err := h.userService.GetUser(c.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, autherror.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		}
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// AdminPing is the role-gated health check the admin frontend calls to
// confirm elevated access.
func (h *AuthHandler) AdminPing(c *fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "pong",
		"email":   claims.Email,
	})
}

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
		"message": clientMessage(err),
	})
}

// clientMessage keeps internal failure detail out of responses: only
// messages from the known taxonomy pass through.
func clientMessage(err error) string {
	switch {
	case errors.Is(err, autherror.ErrMissingFields),
		errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrEmailAlreadyInUse),
		errors.Is(err, autherror.ErrInvalidRole),
		errors.Is(err, autherror.ErrMissingRefreshToken),
		errors.Is(err, autherror.ErrInvalidRefreshToken),
		errors.Is(err, autherror.ErrRefreshTokenExpired),
		errors.Is(err, autherror.ErrRefreshTokenMismatch),
		errors.Is(err, autherror.ErrUserNotFound):
		return err.Error()
	default:
		return "internal server error"
	}
}
