package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/guptaji1008/book-hotel/internal/auth/dto"
	"github.com/guptaji1008/book-hotel/pkg/constant"
)

// RequireAuth reconstructs the session from the presented token and stores
// the view in the request locals for downstream handlers.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	token := tokenFromRequest(c)
	if token == "" {
		return unauthenticated(c)
	}

	view, err := h.issuer.Reconstruct(token)
	if err != nil {
		return unauthenticated(c)
	}

	c.Locals(constant.SessionLocalKey, view)

	return c.Next()
}

// RequireRole authenticates like RequireAuth and additionally requires the
// session's role to match.
func (h *AuthHandler) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return unauthenticated(c)
		}

		view, err := h.issuer.Reconstruct(token)
		if err != nil {
			return unauthenticated(c)
		}

		if view.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "forbidden",
			})
		}

		c.Locals(constant.SessionLocalKey, view)

		return c.Next()
	}
}

// SessionFrom returns the session view stored by the middleware, or nil when
// the request is unauthenticated.
func SessionFrom(c *fiber.Ctx) *dto.SessionView {
	view, _ := c.Locals(constant.SessionLocalKey).(*dto.SessionView)
	return view
}

// tokenFromRequest accepts either transport: an Authorization bearer header
// or the session cookie set at login.
func tokenFromRequest(c *fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(authHeader, constant.DefaultTokenType+" ") {
		return strings.TrimPrefix(authHeader, constant.DefaultTokenType+" ")
	}

	return c.Cookies(constant.SessionCookieName)
}
