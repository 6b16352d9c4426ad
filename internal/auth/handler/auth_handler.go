package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/guptaji1008/book-hotel/internal/auth/dto"
	"github.com/guptaji1008/book-hotel/internal/auth/service"
	apperrors "github.com/guptaji1008/book-hotel/internal/errors"
	"github.com/guptaji1008/book-hotel/pkg/constant"
)

type AuthHandler struct {
	userService *service.UserService
	issuer      service.SessionIssuer
	log         *slog.Logger
}

func NewAuthHandler(userService *service.UserService, issuer service.SessionIssuer, log *slog.Logger) *AuthHandler {
	return &AuthHandler{userService: userService, issuer: issuer, log: log}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	account, err := h.userService.Register(c.Context(), input)
	if err != nil {
		var verr *apperrors.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": verr.Fields,
			})
		case errors.Is(err, apperrors.ErrEmailAlreadyInUse):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			return h.serverError(c, "register failed", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewAccountOutput(account))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	out, err := h.userService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": apperrors.ErrInvalidCredentials.Error(),
			})
		}
		return h.serverError(c, "login failed", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     constant.SessionCookieName,
		Value:    out.Token,
		Expires:  out.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Status(fiber.StatusOK).JSON(out)
}

// Session reports who the current user is, reconstructed from the presented
// token. All token defects collapse into the same sign-in-again response.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	token := tokenFromRequest(c)
	if token == "" {
		return unauthenticated(c)
	}

	view, err := h.issuer.Reconstruct(token)
	if err != nil {
		return unauthenticated(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": view})
}

// Logout clears the session cookie. Tokens are stateless, so an already
// handed-out token stays valid until its window elapses.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     constant.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "logged out"})
}

func (h *AuthHandler) serverError(c *fiber.Ctx, msg string, err error) error {
	h.log.Error(msg, "error", err, "path", c.Path())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "please sign in again",
	})
}
